package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/homeprohq/homepro-platform/pkg/logging"
)

// Handler handles HTTP requests for the service catalog
type Handler struct {
	services []Service
	logger   *logging.Logger
}

// NewHandler creates a new catalog handler serving the given listing.
// A nil listing serves the built-in seed catalog.
func NewHandler(services []Service, logger *logging.Logger) *Handler {
	if services == nil {
		services = Seed()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// ListServicesResponse is the response for listing services
type ListServicesResponse struct {
	Services []Service `json:"services"`
	Count    int       `json:"count"`
}

// ListServices handles GET /services requests with optional
// category, price_range, and q filters.
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	q := Query{
		Category:   r.URL.Query().Get("category"),
		PriceRange: r.URL.Query().Get("price_range"),
		Search:     r.URL.Query().Get("q"),
	}

	filtered := Filter(h.services, q)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ListServicesResponse{
		Services: filtered,
		Count:    len(filtered),
	})
}

// FiltersResponse is the response for listing available filters
type FiltersResponse struct {
	Categories  []string `json:"categories"`
	PriceRanges []string `json:"price_ranges"`
}

// ListFilters handles GET /services/filters requests
func (h *Handler) ListFilters(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(FiltersResponse{
		Categories:  Categories(),
		PriceRanges: PriceRanges(),
	})
}
