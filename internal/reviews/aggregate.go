package reviews

import (
	"math"
	"sort"
	"strings"
)

// Sort orders for the review listing.
const (
	SortRecent  = "recent"
	SortHelpful = "helpful"
	SortHighest = "highest"
	SortLowest  = "lowest"
)

// DistributionEntry is one row of the rating breakdown, from 5 stars down.
type DistributionEntry struct {
	Rating     int `json:"rating"`
	Count      int `json:"count"`
	Percentage int `json:"percentage"`
}

// Average returns the mean rating, 0 for an empty set.
func Average(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

// Distribution breaks the set down per star value, 5 first. Percentages are
// rounded to the nearest integer so the rows may not sum to exactly 100.
func Distribution(reviews []Review) []DistributionEntry {
	total := len(reviews)
	entries := make([]DistributionEntry, 0, 5)
	for rating := 5; rating >= 1; rating-- {
		count := 0
		for _, r := range reviews {
			if r.Rating == rating {
				count++
			}
		}
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(count) / float64(total) * 100))
		}
		entries = append(entries, DistributionEntry{Rating: rating, Count: count, Percentage: pct})
	}
	return entries
}

// VerifiedCount reports how many reviews carry the verified badge.
func VerifiedCount(reviews []Review) int {
	n := 0
	for _, r := range reviews {
		if r.Verified {
			n++
		}
	}
	return n
}

// Featured returns up to three featured reviews, most helpful first.
func Featured(reviews []Review) []Review {
	highlighted := make([]Review, 0, len(reviews))
	for _, r := range reviews {
		if r.Featured {
			highlighted = append(highlighted, r)
		}
	}
	sort.SliceStable(highlighted, func(i, j int) bool {
		return highlighted[i].Helpful > highlighted[j].Helpful
	})
	if len(highlighted) > 3 {
		highlighted = highlighted[:3]
	}
	return highlighted
}

// FilterAndSort narrows the set to one rating (0 keeps all) and orders it by
// the given sort key. Unknown keys fall back to most recent. The input slice
// is never mutated, so applying the same query twice yields the same result.
func FilterAndSort(reviews []Review, rating int, sortBy string) []Review {
	out := make([]Review, 0, len(reviews))
	for _, r := range reviews {
		if rating == 0 || r.Rating == rating {
			out = append(out, r)
		}
	}

	switch strings.ToLower(sortBy) {
	case SortHelpful:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Helpful > out[j].Helpful })
	case SortHighest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortLowest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating < out[j].Rating })
	default:
		// Dates are ISO formatted, so string order is chronological.
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	}
	return out
}
