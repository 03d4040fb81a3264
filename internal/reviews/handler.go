package reviews

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/homeprohq/homepro-platform/internal/observability/metrics"
	"github.com/homeprohq/homepro-platform/pkg/logging"
)

var reviewsTracer = otel.Tracer("homepro.internal.reviews")

// Handler handles HTTP requests for reviews
type Handler struct {
	repo    Repository
	tracker HelpfulTracker
	metrics *metrics.SiteMetrics
	logger  *logging.Logger
}

// NewHandler creates a new reviews handler
func NewHandler(repo Repository, tracker HelpfulTracker, m *metrics.SiteMetrics, logger *logging.Logger) *Handler {
	if repo == nil {
		repo = NewInMemoryRepository(nil)
	}
	if tracker == nil {
		tracker = NewMemoryHelpfulTracker()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		repo:    repo,
		tracker: tracker,
		metrics: m,
		logger:  logger,
	}
}

// ListReviewsResponse is the response for listing reviews
type ListReviewsResponse struct {
	Reviews []Review        `json:"reviews"`
	Count   int             `json:"count"`
	Summary SummaryResponse `json:"summary"`
}

// ListReviews handles GET /reviews requests with optional rating and sort
// query params.
func (h *Handler) ListReviews(w http.ResponseWriter, r *http.Request) {
	rating := 0
	if v := r.URL.Query().Get("rating"); v != "" && v != "all" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 5 {
			http.Error(w, "rating must be 1-5", http.StatusBadRequest)
			return
		}
		rating = parsed
	}
	sortBy := r.URL.Query().Get("sort")
	if sortBy == "" {
		sortBy = SortRecent
	}

	all, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list reviews", "error", err)
		http.Error(w, "failed to list reviews", http.StatusInternalServerError)
		return
	}

	filtered := FilterAndSort(all, rating, sortBy)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ListReviewsResponse{
		Reviews: filtered,
		Count:   len(filtered),
		Summary: summarize(all),
	})
}

// SummaryResponse is the response for the rating summary
type SummaryResponse struct {
	Average       float64             `json:"average"`
	Display       string              `json:"display"`
	Total         int                 `json:"total"`
	VerifiedCount int                 `json:"verified_count"`
	Distribution  []DistributionEntry `json:"distribution"`
	Featured      []Review            `json:"featured"`
}

// GetSummary handles GET /reviews/summary requests
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	all, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list reviews", "error", err)
		http.Error(w, "failed to list reviews", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summarize(all))
}

// summarize computes the rating summary over the full review set. The listing
// embeds it so the page header stays accurate when a rating filter is applied.
func summarize(all []Review) SummaryResponse {
	avg := Average(all)
	return SummaryResponse{
		Average:       avg,
		Display:       strconv.FormatFloat(avg, 'f', 1, 64),
		Total:         len(all),
		VerifiedCount: VerifiedCount(all),
		Distribution:  Distribution(all),
		Featured:      Featured(all),
	}
}

// SubmitReviewRequest is the payload for posting a review
type SubmitReviewRequest struct {
	Author  string `json:"author"`
	Service string `json:"service"`
	Rating  int    `json:"rating"`
	Text    string `json:"text"`
}

func (req *SubmitReviewRequest) validate() string {
	if strings.TrimSpace(req.Author) == "" || req.Service == "" ||
		len(strings.TrimSpace(req.Text)) < 10 {
		return "Please complete all required fields to share your experience."
	}
	if req.Rating < 1 || req.Rating > 5 {
		return "Rating must be between 1 and 5 stars."
	}
	return ""
}

// SubmitReviewResponse is the response for posting a review
type SubmitReviewResponse struct {
	Review  Review `json:"review"`
	Message string `json:"message"`
}

// SubmitReview handles POST /reviews requests. New reviews start with zero
// helpful votes and without the featured or verified badges.
func (h *Handler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	ctx, span := reviewsTracer.Start(r.Context(), "reviews.submit")
	defer span.End()

	var req SubmitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if msg := req.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	// The submission date is always server-assigned so the recent sort
	// cannot be skewed by a client-supplied value.
	review := Review{
		Author:  strings.TrimSpace(req.Author),
		Service: req.Service,
		Rating:  req.Rating,
		Date:    today(),
		Text:    strings.TrimSpace(req.Text),
	}

	created, err := h.repo.Add(ctx, review)
	if err != nil {
		h.logger.Error("failed to store review", "error", err)
		http.Error(w, "failed to store review", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(
		attribute.Int("review.id", created.ID),
		attribute.Int("review.rating", created.Rating),
	)
	h.metrics.ObserveReviewSubmitted()
	h.logger.Info("review submitted", "id", created.ID, "service", created.Service, "rating", created.Rating)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SubmitReviewResponse{
		Review:  created,
		Message: "Thank you for sharing your experience.",
	})
}

// MarkHelpfulResponse is the response for a helpful vote
type MarkHelpfulResponse struct {
	Review Review `json:"review"`
	Marked bool   `json:"marked"`
}

// MarkHelpful handles POST /reviews/{id}/helpful requests. Each session may
// vote once per review; repeats leave the count unchanged.
func (h *Handler) MarkHelpful(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid review id", http.StatusBadRequest)
		return
	}

	sessionID := r.Header.Get("X-Session-Id")
	if sessionID == "" {
		http.Error(w, "missing X-Session-Id header", http.StatusBadRequest)
		return
	}

	review, err := findReview(r.Context(), h.repo, id)
	if err != nil {
		http.Error(w, "review not found", http.StatusNotFound)
		return
	}

	first, err := h.tracker.Mark(r.Context(), sessionID, id)
	if err != nil {
		h.logger.Error("failed to record helpful vote", "error", err, "review_id", id)
		http.Error(w, "failed to record vote", http.StatusInternalServerError)
		return
	}

	if first {
		review, err = h.repo.MarkHelpful(r.Context(), id)
		if err != nil {
			http.Error(w, "review not found", http.StatusNotFound)
			return
		}
		h.metrics.ObserveHelpfulMark()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MarkHelpfulResponse{Review: review, Marked: first})
}

// ListServices handles GET /reviews/services requests
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"services": Services()})
}
