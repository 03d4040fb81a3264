package contact

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/homeprohq/homepro-platform/internal/observability/metrics"
	"github.com/homeprohq/homepro-platform/internal/timing"
	"github.com/homeprohq/homepro-platform/pkg/logging"
)

var contactTracer = otel.Tracer("homepro.internal.contact")

// HandlerConfig wires the contact handler dependencies.
type HandlerConfig struct {
	Metrics *metrics.SiteMetrics
	Logger  *logging.Logger

	// Simulated send round-trip and thank-you display duration.
	SubmitLatency  time.Duration
	SuccessDisplay time.Duration

	// Delay overrides the form timer primitive, used by tests.
	Delay timing.Delay
}

// Handler handles HTTP requests for the contact page
type Handler struct {
	metrics *metrics.SiteMetrics
	logger  *logging.Logger
	latency time.Duration
	display time.Duration
	delay   timing.Delay

	mu         sync.Mutex
	accordions map[string]*Accordion
}

// NewHandler creates a new contact handler
func NewHandler(cfg HandlerConfig) *Handler {
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	if cfg.SubmitLatency <= 0 {
		cfg.SubmitLatency = DefaultSubmitLatency
	}
	if cfg.SuccessDisplay <= 0 {
		cfg.SuccessDisplay = DefaultSuccessDisplay
	}
	if cfg.Delay == nil {
		cfg.Delay = timing.Real
	}
	return &Handler{
		metrics:    cfg.Metrics,
		logger:     cfg.Logger,
		latency:    cfg.SubmitLatency,
		display:    cfg.SuccessDisplay,
		delay:      cfg.Delay,
		accordions: make(map[string]*Accordion),
	}
}

// SubmitResponse is the response for an accepted contact message
type SubmitResponse struct {
	Message string `json:"message"`
}

// ValidationResponse is the response for a rejected contact message
type ValidationResponse struct {
	Errors map[string]string `json:"errors"`
}

// SubmitMessage handles POST /contact requests. The payload runs through a
// form lifecycle: valid messages are acknowledged with 202 and complete their
// simulated send in the background; invalid ones return the per-field errors.
func (h *Handler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	_, span := contactTracer.Start(r.Context(), "contact.submit")
	defer span.End()

	var msg Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		h.logger.Error("failed to decode request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	form := NewForm(
		WithDelay(h.delay),
		WithLatencies(h.latency, h.display),
		WithSentCallback(func(sent Message) {
			h.metrics.ObserveContactMessage()
			h.logger.Info("contact message sent", "subject", sent.Subject)
		}),
	)
	form.Change(FieldName, msg.Name)
	form.Change(FieldEmail, msg.Email)
	form.Change(FieldPhone, msg.Phone)
	form.Change(FieldSubject, msg.Subject)
	form.Change(FieldMessage, msg.Message)

	if !form.Submit() {
		errs := form.Errors()
		span.SetAttributes(attribute.Int("contact.field_errors", len(errs)))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ValidationResponse{Errors: errs})
		return
	}

	h.logger.Info("contact message accepted", "subject", msg.Subject)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(SubmitResponse{Message: SuccessMessage})
}

// ListFAQs handles GET /contact/faqs requests
func (h *Handler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]FAQ{"faqs": FAQs()})
}

// ToggleFAQRequest is the payload for toggling an accordion entry
type ToggleFAQRequest struct {
	Index int `json:"index"`
}

// ToggleFAQResponse reports which entry is expanded, -1 for none
type ToggleFAQResponse struct {
	Expanded int `json:"expanded"`
}

// ToggleFAQ handles POST /contact/faqs/toggle requests. Each visitor session
// keeps one accordion; at most one entry is expanded at a time, and toggling
// the expanded entry collapses it.
func (h *Handler) ToggleFAQ(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get("X-Session-Id")
	if sessionID == "" {
		http.Error(w, "X-Session-Id header required", http.StatusBadRequest)
		return
	}

	var req ToggleFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Index < 0 || req.Index >= len(FAQs()) {
		http.Error(w, "unknown FAQ index", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	acc, ok := h.accordions[sessionID]
	if !ok {
		acc = NewAccordion()
		h.accordions[sessionID] = acc
	}
	h.mu.Unlock()

	acc.Toggle(req.Index)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ToggleFAQResponse{Expanded: acc.Expanded()})
}
