package metrics

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/homeprohq/homepro-platform/pkg/logging"
)

// SiteSnapshot is a JSON view of the site counters for the ops dashboard.
type SiteSnapshot struct {
	BookingsSubmitted float64            `json:"bookings_submitted"`
	WizardFailures    map[string]float64 `json:"wizard_failures_by_step"`
	ReviewsSubmitted  float64            `json:"reviews_submitted"`
	HelpfulMarks      float64            `json:"helpful_marks"`
	ContactMessages   float64            `json:"contact_messages"`
	RevealEvents      map[string]float64 `json:"reveal_events_by_group"`
	SubmitLatency     LatencySnapshot    `json:"booking_submit_latency"`
}

// LatencySnapshot summarizes the booking submit histogram.
type LatencySnapshot struct {
	Count     int64   `json:"count"`
	AvgMs     float64 `json:"avg_ms"`
	TotalSecs float64 `json:"total_seconds"`
}

// DashboardHandler serves a point-in-time snapshot of the site metrics read
// back from the prometheus gatherer.
type DashboardHandler struct {
	gatherer prometheus.Gatherer
	logger   *logging.Logger
}

func NewDashboardHandler(gatherer prometheus.Gatherer, logger *logging.Logger) *DashboardHandler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &DashboardHandler{gatherer: gatherer, logger: logger}
}

// Get handles GET /dashboard requests
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	mfs, err := h.gatherer.Gather()
	if err != nil {
		h.logger.Error("failed to gather metrics", "error", err)
		http.Error(w, "failed to gather metrics", http.StatusInternalServerError)
		return
	}

	snap := SiteSnapshot{
		WizardFailures: map[string]float64{},
		RevealEvents:   map[string]float64{},
	}
	for _, mf := range mfs {
		if mf == nil {
			continue
		}
		switch mf.GetName() {
		case "homepro_booking_submitted_total":
			snap.BookingsSubmitted = counterSum(mf)
		case "homepro_booking_validation_failures_total":
			labelCounts(mf, "step", snap.WizardFailures)
		case "homepro_reviews_submitted_total":
			snap.ReviewsSubmitted = counterSum(mf)
		case "homepro_reviews_helpful_total":
			snap.HelpfulMarks = counterSum(mf)
		case "homepro_contact_messages_total":
			snap.ContactMessages = counterSum(mf)
		case "homepro_reveal_events_total":
			labelCounts(mf, "group", snap.RevealEvents)
		case "homepro_booking_submit_latency_seconds":
			snap.SubmitLatency = latencySnapshot(mf)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}

func counterSum(mf *dto.MetricFamily) float64 {
	total := 0.0
	for _, m := range mf.Metric {
		if m == nil || m.GetCounter() == nil {
			continue
		}
		total += m.GetCounter().GetValue()
	}
	return total
}

func labelCounts(mf *dto.MetricFamily, label string, out map[string]float64) {
	for _, m := range mf.Metric {
		if m == nil || m.GetCounter() == nil {
			continue
		}
		for _, lp := range m.Label {
			if lp != nil && lp.GetName() == label {
				out[lp.GetValue()] += m.GetCounter().GetValue()
			}
		}
	}
}

func latencySnapshot(mf *dto.MetricFamily) LatencySnapshot {
	var snap LatencySnapshot
	for _, m := range mf.Metric {
		if m == nil || m.GetHistogram() == nil {
			continue
		}
		h := m.GetHistogram()
		snap.Count += int64(h.GetSampleCount())
		snap.TotalSecs += h.GetSampleSum()
	}
	if snap.Count > 0 {
		snap.AvgMs = snap.TotalSecs / float64(snap.Count) * 1000.0
	}
	return snap
}
