package metrics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSnapshot(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSiteMetrics(reg)

	m.ObserveBookingSubmitted(1.6)
	m.ObserveBookingSubmitted(1.6)
	m.ObserveWizardFailure("1")
	m.ObserveWizardFailure("1")
	m.ObserveWizardFailure("2")
	m.ObserveReviewSubmitted()
	m.ObserveHelpfulMark()
	m.ObserveContactMessage()
	m.ObserveRevealEvent("features")
	m.ObserveRevealEvent("")

	h := NewDashboardHandler(reg, nil)
	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var snap SiteSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))

	assert.Equal(t, 2.0, snap.BookingsSubmitted)
	assert.Equal(t, 2.0, snap.WizardFailures["1"])
	assert.Equal(t, 1.0, snap.WizardFailures["2"])
	assert.Equal(t, 1.0, snap.ReviewsSubmitted)
	assert.Equal(t, 1.0, snap.HelpfulMarks)
	assert.Equal(t, 1.0, snap.ContactMessages)
	assert.Equal(t, 1.0, snap.RevealEvents["features"])
	assert.Equal(t, 1.0, snap.RevealEvents["none"])
	assert.Equal(t, int64(2), snap.SubmitLatency.Count)
	assert.InDelta(t, 1600.0, snap.SubmitLatency.AvgMs, 0.001)
}

func TestDashboardEmptyRegistry(t *testing.T) {
	h := NewDashboardHandler(prometheus.NewRegistry(), nil)
	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var snap SiteSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Zero(t, snap.BookingsSubmitted)
	assert.Zero(t, snap.SubmitLatency.Count)
}
