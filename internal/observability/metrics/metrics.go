package metrics

import "github.com/prometheus/client_golang/prometheus"

// SiteMetrics exposes counters/histograms for the public site flows.
type SiteMetrics struct {
	bookingsSubmitted  prometheus.Counter
	wizardFailures     *prometheus.CounterVec
	reviewsSubmitted   prometheus.Counter
	reviewHelpful      prometheus.Counter
	contactMessages    prometheus.Counter
	revealEvents       *prometheus.CounterVec
	bookingSubmitDelay prometheus.Histogram
}

func NewSiteMetrics(reg prometheus.Registerer) *SiteMetrics {
	m := &SiteMetrics{
		bookingsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "homepro",
			Subsystem: "booking",
			Name:      "submitted_total",
			Help:      "Total booking wizard submissions confirmed",
		}),
		wizardFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "homepro",
			Subsystem: "booking",
			Name:      "validation_failures_total",
			Help:      "Total wizard step validation failures",
		}, []string{"step"}),
		reviewsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "homepro",
			Subsystem: "reviews",
			Name:      "submitted_total",
			Help:      "Total reviews submitted",
		}),
		reviewHelpful: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "homepro",
			Subsystem: "reviews",
			Name:      "helpful_total",
			Help:      "Total helpful marks recorded",
		}),
		contactMessages: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "homepro",
			Subsystem: "contact",
			Name:      "messages_total",
			Help:      "Total contact messages accepted",
		}),
		revealEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "homepro",
			Subsystem: "reveal",
			Name:      "events_total",
			Help:      "Total reveal state changes pushed to clients",
		}, []string{"group"}),
		bookingSubmitDelay: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "homepro",
			Subsystem: "booking",
			Name:      "submit_latency_seconds",
			Help:      "Simulated submit latency observed by wizard sessions",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.bookingsSubmitted,
		m.wizardFailures,
		m.reviewsSubmitted,
		m.reviewHelpful,
		m.contactMessages,
		m.revealEvents,
		m.bookingSubmitDelay,
	)
	return m
}

func (m *SiteMetrics) ObserveBookingSubmitted(latencySeconds float64) {
	if m == nil {
		return
	}
	m.bookingsSubmitted.Inc()
	m.bookingSubmitDelay.Observe(latencySeconds)
}

func (m *SiteMetrics) ObserveWizardFailure(step string) {
	if m == nil {
		return
	}
	m.wizardFailures.WithLabelValues(step).Inc()
}

func (m *SiteMetrics) ObserveReviewSubmitted() {
	if m == nil {
		return
	}
	m.reviewsSubmitted.Inc()
}

func (m *SiteMetrics) ObserveHelpfulMark() {
	if m == nil {
		return
	}
	m.reviewHelpful.Inc()
}

func (m *SiteMetrics) ObserveContactMessage() {
	if m == nil {
		return
	}
	m.contactMessages.Inc()
}

func (m *SiteMetrics) ObserveRevealEvent(group string) {
	if m == nil {
		return
	}
	if group == "" {
		group = "none"
	}
	m.revealEvents.WithLabelValues(group).Inc()
}
