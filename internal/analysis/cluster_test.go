package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahullath/serializd-ai/internal/models"
)

func sampleShows(n int) []models.WatchedShow {
	genreSets := [][]string{
		{"Drama", "Crime"},
		{"Comedy"},
		{"Sci-Fi & Fantasy", "Drama"},
		{"Animation", "Comedy"},
	}
	shows := make([]models.WatchedShow, 0, n)
	for i := 0; i < n; i++ {
		s := models.WatchedShow{
			Title:           fmt.Sprintf("Show %02d", i),
			Genres:          genreSets[i%len(genreSets)],
			NumberOfSeasons: models.Int(1 + i%6),
		}
		if i%5 != 0 {
			s.VoteAverage = models.Float(6 + float64(i%4))
			s.Popularity = models.Float(float64(10 * i))
		}
		shows = append(shows, s)
	}
	return shows
}

func TestClusterCount(t *testing.T) {
	tests := []struct{ n, want int }{
		{1, 1},
		{2, 2},
		{9, 2},
		{25, 2},
		{30, 3},
		{49, 4},
		{200, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClusterCount(tt.n), "n=%d", tt.n)
	}
}

func TestClusterShows_EveryShowAssignedOnce(t *testing.T) {
	shows := sampleShows(34)
	stats := AggregateGenres(shows)

	got := ClusterShows(shows, stats.Vocabulary)

	require.Len(t, got.Clusters, 3)
	require.Len(t, got.Assignments, len(shows))

	total := 0
	for id, c := range got.Clusters {
		total += c.Size
		assert.LessOrEqual(t, len(c.Shows), clusterTitlesShown, id)
		assert.LessOrEqual(t, len(c.TopGenres), clusterGenresShown, id)
	}
	assert.Equal(t, len(shows), total)
	for _, a := range got.Assignments {
		assert.GreaterOrEqual(t, a, 0)
		assert.Less(t, a, 3)
	}
}

func TestClusterShows_Deterministic(t *testing.T) {
	shows := sampleShows(27)
	vocab := AggregateGenres(shows).Vocabulary

	first := ClusterShows(shows, vocab)
	second := ClusterShows(shows, vocab)

	assert.Equal(t, first.Assignments, second.Assignments)
	assert.Equal(t, first.Clusters, second.Clusters)
}

func TestClusterShows_NoGenreData(t *testing.T) {
	got := ClusterShows([]models.WatchedShow{{Title: "A"}, {Title: "B"}}, nil)

	assert.NotNil(t, got.Clusters)
	assert.Empty(t, got.Clusters)
	assert.Nil(t, got.Assignments)
}

func TestClusterShows_IdenticalShows(t *testing.T) {
	shows := []models.WatchedShow{
		{Title: "A", Genres: []string{"Drama"}},
		{Title: "B", Genres: []string{"Drama"}},
		{Title: "C", Genres: []string{"Drama"}},
	}

	got := ClusterShows(shows, []string{"Drama"})

	total := 0
	for _, c := range got.Clusters {
		total += c.Size
		assert.Nil(t, c.AvgRating)
	}
	assert.Equal(t, 3, total)
}

func TestStandardize_ConstantColumn(t *testing.T) {
	rows := standardize([][]float64{{1, 2}, {1, 4}})

	assert.Equal(t, []float64{0, -1}, rows[0])
	assert.Equal(t, []float64{0, 1}, rows[1])
}
