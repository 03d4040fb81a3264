package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/homeprohq/homepro-platform/internal/observability/metrics"
	"github.com/homeprohq/homepro-platform/internal/timing"
	"github.com/homeprohq/homepro-platform/pkg/logging"
)

var bookingTracer = otel.Tracer("homepro.internal.booking")

// HandlerConfig wires the booking handler dependencies.
type HandlerConfig struct {
	Repo          ConfirmationRepository
	Metrics       *metrics.SiteMetrics
	Logger        *logging.Logger
	SubmitLatency time.Duration
	SessionTTL    time.Duration
	// Delay overrides the wizard timer primitive, used by tests.
	Delay timing.Delay
}

// Handler handles HTTP requests for the booking wizard
type Handler struct {
	sessions *Manager
	repo     ConfirmationRepository
	metrics  *metrics.SiteMetrics
	logger   *logging.Logger
	latency  time.Duration

	confirmed confirmationIndex
}

// NewHandler creates a new booking handler
func NewHandler(cfg HandlerConfig) *Handler {
	if cfg.Repo == nil {
		cfg.Repo = NewInMemoryConfirmations()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	if cfg.SubmitLatency <= 0 {
		cfg.SubmitLatency = DefaultSubmitLatency
	}
	if cfg.Delay == nil {
		cfg.Delay = timing.Real
	}

	h := &Handler{
		repo:    cfg.Repo,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
		latency: cfg.SubmitLatency,
	}
	h.confirmed.byID = make(map[string]Confirmation)
	h.sessions = NewManager(cfg.SessionTTL, func(sessionID string) *Wizard {
		return NewWizard(
			WithDelay(cfg.Delay),
			WithSubmitLatency(cfg.SubmitLatency),
			WithConfirmedCallback(func(d Draft) { h.recordConfirmation(sessionID, d) }),
			WithFailureCallback(func(step int) {
				h.metrics.ObserveWizardFailure(strconv.Itoa(step))
			}),
		)
	})
	return h
}

// Sessions exposes the session manager, used for sweeping from main.
func (h *Handler) Sessions() *Manager {
	return h.sessions
}

type confirmationIndex struct {
	mu   sync.Mutex
	byID map[string]Confirmation
}

func (h *Handler) recordConfirmation(sessionID string, draft Draft) {
	ctx, span := bookingTracer.Start(context.Background(), "booking.confirm")
	defer span.End()
	span.SetAttributes(
		attribute.String("booking.session_id", sessionID),
		attribute.String("booking.service", draft.Service),
	)

	conf, err := h.repo.Create(ctx, draft)
	if err != nil {
		h.logger.Error("failed to store confirmation", "error", err, "session_id", sessionID)
		return
	}

	h.confirmed.mu.Lock()
	h.confirmed.byID[sessionID] = conf
	h.confirmed.mu.Unlock()

	h.metrics.ObserveBookingSubmitted(h.latency.Seconds())
	h.logger.Info("booking confirmed",
		"session_id", sessionID,
		"confirmation_id", conf.ID,
		"service", draft.Service,
		"date", draft.Date,
	)
}

func (h *Handler) confirmation(sessionID string) (Confirmation, bool) {
	h.confirmed.mu.Lock()
	defer h.confirmed.mu.Unlock()
	conf, ok := h.confirmed.byID[sessionID]
	return conf, ok
}

// SessionResponse is the response describing one wizard session
type SessionResponse struct {
	SessionID    string        `json:"session_id"`
	State        State         `json:"state"`
	MinDate      string        `json:"min_date"`
	Confirmation *Confirmation `json:"confirmation,omitempty"`
}

func (h *Handler) respondSession(w http.ResponseWriter, status int, s *Session) {
	resp := SessionResponse{
		SessionID: s.ID,
		State:     s.Wizard.State(),
		MinDate:   MinDate(time.Now()),
	}
	if conf, ok := h.confirmation(s.ID); ok {
		resp.Confirmation = &conf
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// CreateSession handles POST /bookings requests
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Create()
	h.logger.Info("booking session created", "session_id", s.ID)
	h.respondSession(w, http.StatusCreated, s)
}

// GetSession handles GET /bookings/{id} requests
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.respondSession(w, http.StatusOK, s)
}

// UpdateFieldsRequest is the payload for patching draft fields
type UpdateFieldsRequest struct {
	Fields map[string]string `json:"fields"`
}

// UpdateFields handles PATCH /bookings/{id} requests
func (h *Handler) UpdateFields(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req UpdateFieldsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	for field, value := range req.Fields {
		if err := s.Wizard.SetField(field, value); err != nil {
			h.wizardError(w, err)
			return
		}
	}
	h.respondSession(w, http.StatusOK, s)
}

// Next handles POST /bookings/{id}/next requests
func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if _, err := s.Wizard.Next(); err != nil {
		h.wizardError(w, err)
		return
	}
	h.respondSession(w, http.StatusOK, s)
}

// Back handles POST /bookings/{id}/back requests
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if err := s.Wizard.Back(); err != nil {
		h.wizardError(w, err)
		return
	}
	h.respondSession(w, http.StatusOK, s)
}

// Submit handles POST /bookings/{id}/submit requests. A started submission
// is acknowledged with 202 while the simulated reservation resolves.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	started, err := s.Wizard.Submit()
	if err != nil {
		h.wizardError(w, err)
		return
	}
	status := http.StatusOK
	if started {
		status = http.StatusAccepted
	}
	h.respondSession(w, status, s)
}

// Reset handles POST /bookings/{id}/reset requests
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	s.Wizard.Reset()
	h.confirmed.mu.Lock()
	delete(h.confirmed.byID, s.ID)
	h.confirmed.mu.Unlock()
	h.respondSession(w, http.StatusOK, s)
}

// OptionsResponse lists the selectable booking inputs
type OptionsResponse struct {
	Services  []string `json:"services"`
	TimeSlots []string `json:"time_slots"`
	MinDate   string   `json:"min_date"`
}

// GetOptions handles GET /bookings/options requests
func (h *Handler) GetOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(OptionsResponse{
		Services:  Services(),
		TimeSlots: TimeSlots(),
		MinDate:   MinDate(time.Now()),
	})
}

// ListConfirmations handles GET /bookings/confirmations requests
func (h *Handler) ListConfirmations(w http.ResponseWriter, r *http.Request) {
	confs, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list confirmations", "error", err)
		http.Error(w, "failed to list confirmations", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"confirmations": confs,
		"count":         len(confs),
	})
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	id := chi.URLParam(r, "id")
	s, err := h.sessions.Get(id)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return nil, false
	}
	return s, true
}

func (h *Handler) wizardError(w http.ResponseWriter, err error) {
	switch err {
	case ErrUnknownField:
		http.Error(w, "unknown field", http.StatusBadRequest)
	case ErrWrongStep:
		http.Error(w, "operation not valid for current step", http.StatusConflict)
	case ErrBusy:
		http.Error(w, "submission in progress or complete", http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
