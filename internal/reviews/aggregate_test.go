package reviews

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageOfSeed(t *testing.T) {
	// Seed ratings are 5,4,5,4,5,4.
	assert.InDelta(t, 4.5, Average(Seed()), 0.0001)
}

func TestAverageEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Average(nil))
}

func TestDistributionRowsFiveFirst(t *testing.T) {
	dist := Distribution(Seed())
	require.Len(t, dist, 5)
	assert.Equal(t, 5, dist[0].Rating)
	assert.Equal(t, 1, dist[4].Rating)

	assert.Equal(t, 3, dist[0].Count)
	assert.Equal(t, 50, dist[0].Percentage)
	assert.Equal(t, 3, dist[1].Count)
	assert.Equal(t, 50, dist[1].Percentage)
	assert.Equal(t, 0, dist[2].Count)
	assert.Equal(t, 0, dist[2].Percentage)
}

func TestDistributionEmpty(t *testing.T) {
	dist := Distribution(nil)
	require.Len(t, dist, 5)
	for _, row := range dist {
		assert.Equal(t, 0, row.Count)
		assert.Equal(t, 0, row.Percentage)
	}
}

func TestFeaturedTopThreeByHelpful(t *testing.T) {
	featured := Featured(Seed())
	require.Len(t, featured, 3)
	assert.Equal(t, "Lisa Anderson", featured[0].Author)
	assert.Equal(t, "Emily Rodriguez", featured[1].Author)
	assert.Equal(t, "Sarah Johnson", featured[2].Author)
}

func TestFeaturedCapsAtThree(t *testing.T) {
	many := []Review{
		{ID: 1, Featured: true, Helpful: 1},
		{ID: 2, Featured: true, Helpful: 2},
		{ID: 3, Featured: true, Helpful: 3},
		{ID: 4, Featured: true, Helpful: 4},
	}
	featured := Featured(many)
	require.Len(t, featured, 3)
	assert.Equal(t, 4, featured[0].ID)
	assert.Equal(t, 2, featured[2].ID)
}

func TestFilterAndSortByRating(t *testing.T) {
	got := FilterAndSort(Seed(), 5, SortRecent)
	require.Len(t, got, 3)
	for _, r := range got {
		assert.Equal(t, 5, r.Rating)
	}
	assert.Equal(t, "2024-01-15", got[0].Date)
}

func TestFilterAndSortHelpful(t *testing.T) {
	got := FilterAndSort(Seed(), 0, SortHelpful)
	require.Len(t, got, 6)
	assert.Equal(t, 45, got[0].Helpful)
	assert.Equal(t, 15, got[5].Helpful)
}

func TestFilterAndSortHighestLowest(t *testing.T) {
	highest := FilterAndSort(Seed(), 0, SortHighest)
	assert.Equal(t, 5, highest[0].Rating)
	assert.Equal(t, 4, highest[5].Rating)

	lowest := FilterAndSort(Seed(), 0, SortLowest)
	assert.Equal(t, 4, lowest[0].Rating)
	assert.Equal(t, 5, lowest[5].Rating)
}

func TestFilterAndSortIdempotent(t *testing.T) {
	first := FilterAndSort(Seed(), 4, SortHelpful)
	second := FilterAndSort(first, 4, SortHelpful)
	assert.Equal(t, first, second)
}

func TestFilterAndSortDoesNotMutateInput(t *testing.T) {
	all := Seed()
	FilterAndSort(all, 0, SortLowest)
	assert.Equal(t, Seed(), all)
}

func TestFilterAndSortUnknownKeyFallsBackToRecent(t *testing.T) {
	got := FilterAndSort(Seed(), 0, "bogus")
	assert.Equal(t, "2024-01-15", got[0].Date)
	assert.Equal(t, "2023-12-28", got[5].Date)
}

func TestVerifiedCount(t *testing.T) {
	assert.Equal(t, 6, VerifiedCount(Seed()))
	assert.Equal(t, 0, VerifiedCount([]Review{{ID: 9}}))
}
