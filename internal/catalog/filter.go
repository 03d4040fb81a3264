package catalog

import "strings"

// Query narrows the service listing. Zero-value fields (or "all") match
// everything, so an empty Query returns the full catalog.
type Query struct {
	Category   string
	PriceRange string
	Search     string
}

func (q Query) matches(s Service) bool {
	if q.Category != "" && q.Category != "all" && s.Category != q.Category {
		return false
	}
	if q.PriceRange != "" && q.PriceRange != "all" && s.PriceRange != q.PriceRange {
		return false
	}
	if q.Search != "" {
		term := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(s.Name), term) &&
			!strings.Contains(strings.ToLower(s.Description), term) {
			return false
		}
	}
	return true
}

// Filter returns the services matching q in their original catalog order.
// The input slice is never mutated.
func Filter(services []Service, q Query) []Service {
	out := make([]Service, 0, len(services))
	for _, s := range services {
		if q.matches(s) {
			out = append(out, s)
		}
	}
	return out
}
