package reviews

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/reviews", h.ListReviews)
	r.Get("/reviews/summary", h.GetSummary)
	r.Get("/reviews/services", h.ListServices)
	r.Post("/reviews", h.SubmitReview)
	r.Post("/reviews/{id}/helpful", h.MarkHelpful)
	return r
}

func TestListReviewsDefaultSort(t *testing.T) {
	router := newTestRouter(NewHandler(nil, nil, nil, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reviews", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListReviewsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 6, resp.Count)
	assert.Equal(t, "Sarah Johnson", resp.Reviews[0].Author)
	assert.Equal(t, "4.5", resp.Summary.Display)
	assert.Equal(t, 6, resp.Summary.Total)
}

func TestListReviewsFilterAndSortParams(t *testing.T) {
	router := newTestRouter(NewHandler(nil, nil, nil, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reviews?rating=5&sort=helpful", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListReviewsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Count)
	assert.Equal(t, "Lisa Anderson", resp.Reviews[0].Author)
	// The summary covers the full set regardless of the filter.
	assert.Equal(t, 6, resp.Summary.Total)
}

func TestListReviewsRejectsBadRating(t *testing.T) {
	router := newTestRouter(NewHandler(nil, nil, nil, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reviews?rating=6", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSummary(t *testing.T) {
	router := newTestRouter(NewHandler(nil, nil, nil, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reviews/summary", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "4.5", resp.Display)
	assert.Equal(t, 6, resp.Total)
	assert.Equal(t, 6, resp.VerifiedCount)
	require.Len(t, resp.Distribution, 5)
	require.Len(t, resp.Featured, 3)
	assert.Equal(t, "Lisa Anderson", resp.Featured[0].Author)
}

func TestSubmitReviewEndToEnd(t *testing.T) {
	router := newTestRouter(NewHandler(nil, nil, nil, nil))

	body, _ := json.Marshal(SubmitReviewRequest{
		Author:  "  Alexandra Knight  ",
		Service: "House Cleaning",
		Rating:  5,
		Text:    "Truly exceptional work from start to finish.",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp SubmitReviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.Review.ID)
	assert.Equal(t, "Alexandra Knight", resp.Review.Author)
	assert.Equal(t, 0, resp.Review.Helpful)
	assert.False(t, resp.Review.Featured)
	assert.False(t, resp.Review.Verified)
	assert.Equal(t, time.Now().Format("2006-01-02"), resp.Review.Date)
	assert.Equal(t, "Thank you for sharing your experience.", resp.Message)

	// The new review lists first under the recent sort.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reviews", nil))
	var list ListReviewsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 7, list.Count)
	assert.Equal(t, "Alexandra Knight", list.Reviews[0].Author)
}

func TestSubmitReviewIgnoresClientDate(t *testing.T) {
	router := newTestRouter(NewHandler(nil, nil, nil, nil))

	// A backdated review would jump the recent sort; the date field in the
	// payload is ignored and the submission date is stamped server-side.
	body := []byte(`{"author":"Tom Reyes","service":"Lawn Care","rating":4,` +
		`"text":"Reliable crew, yard looks great.","date":"1999-01-01"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp SubmitReviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, time.Now().Format("2006-01-02"), resp.Review.Date)
}

func TestSubmitReviewValidation(t *testing.T) {
	router := newTestRouter(NewHandler(nil, nil, nil, nil))

	cases := []SubmitReviewRequest{
		{Author: "   ", Service: "House Cleaning", Rating: 5, Text: "Long enough text here."},
		{Author: "Jo", Service: "", Rating: 5, Text: "Long enough text here."},
		{Author: "Jo", Service: "House Cleaning", Rating: 5, Text: "short"},
	}
	for _, tc := range cases {
		body, _ := json.Marshal(tc)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Please complete all required fields to share your experience.", resp["error"])
	}
}

func TestSubmitReviewRejectsOutOfRangeRating(t *testing.T) {
	router := newTestRouter(NewHandler(nil, nil, nil, nil))

	body, _ := json.Marshal(SubmitReviewRequest{
		Author: "Jo", Service: "House Cleaning", Rating: 9, Text: "Long enough text here.",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkHelpfulOncePerSession(t *testing.T) {
	router := newTestRouter(NewHandler(nil, nil, nil, nil))

	mark := func(session string) MarkHelpfulResponse {
		req := httptest.NewRequest(http.MethodPost, "/reviews/1/helpful", nil)
		req.Header.Set("X-Session-Id", session)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp MarkHelpfulResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	first := mark("sess-1")
	assert.True(t, first.Marked)
	assert.Equal(t, 25, first.Review.Helpful)

	repeat := mark("sess-1")
	assert.False(t, repeat.Marked)
	assert.Equal(t, 25, repeat.Review.Helpful)

	other := mark("sess-2")
	assert.True(t, other.Marked)
	assert.Equal(t, 26, other.Review.Helpful)
}

func TestMarkHelpfulRequiresSessionHeader(t *testing.T) {
	router := newTestRouter(NewHandler(nil, nil, nil, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reviews/1/helpful", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkHelpfulUnknownReview(t *testing.T) {
	router := newTestRouter(NewHandler(nil, nil, nil, nil))

	req := httptest.NewRequest(http.MethodPost, "/reviews/999/helpful", nil)
	req.Header.Set("X-Session-Id", "sess-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListServicesEndpoint(t *testing.T) {
	router := newTestRouter(NewHandler(nil, nil, nil, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reviews/services", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, Services(), resp["services"])
}
