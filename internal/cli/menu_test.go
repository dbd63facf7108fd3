package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahullath/serializd-ai/internal/models"
	"github.com/rahullath/serializd-ai/internal/service"
)

type fakeRecommender struct {
	generated   int
	genErr      error
	recs        []models.ScoredRecommendation
	askedLimits []int
}

func (f *fakeRecommender) Generate(context.Context, int) ([]models.ScoredRecommendation, error) {
	if f.genErr != nil {
		return nil, f.genErr
	}
	f.generated++
	return f.recs, nil
}

func (f *fakeRecommender) Recommendations(_ context.Context, limit int) ([]models.ScoredRecommendation, error) {
	f.askedLimits = append(f.askedLimits, limit)
	return f.recs, nil
}

type fakeTracker struct {
	added    []models.WatchlistEntry
	logged   []models.WatchLogEntry
	statsErr error
}

func (f *fakeTracker) AddToWatchlist(_ context.Context, e *models.WatchlistEntry) error {
	if !models.ValidPriority(e.Priority) {
		return service.ErrInvalidPriority
	}
	f.added = append(f.added, *e)
	return nil
}

func (f *fakeTracker) Watchlist(context.Context) ([]models.WatchlistEntry, error) {
	return f.added, nil
}

func (f *fakeTracker) LogWatch(_ context.Context, e *models.WatchLogEntry) error {
	f.logged = append(f.logged, *e)
	return nil
}

func (f *fakeTracker) Stats(context.Context) (*models.WatchStats, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return &models.WatchStats{}, nil
}

func runMenu(t *testing.T, input string, recs *fakeRecommender, tr *fakeTracker) string {
	t.Helper()
	var out bytes.Buffer
	m := NewMenu(strings.NewReader(input), &out, recs, tr)
	require.NoError(t, m.Run(context.Background()))
	return out.String()
}

func TestMenu_ExitAndInvalidChoice(t *testing.T) {
	out := runMenu(t, "9\n7\n", &fakeRecommender{}, &fakeTracker{})

	assert.Contains(t, out, "Invalid choice. Please try again.")
	assert.Contains(t, out, "Goodbye!")
	assert.Equal(t, 2, strings.Count(out, "7. Exit"))
}

func TestMenu_EndOfInputStops(t *testing.T) {
	out := runMenu(t, "", &fakeRecommender{}, &fakeTracker{})
	assert.NotContains(t, out, "Goodbye!")
}

func TestMenu_Recommendations(t *testing.T) {
	recs := &fakeRecommender{recs: []models.ScoredRecommendation{{Candidate: models.Candidate{Title: "Dark"}}}}

	out := runMenu(t, "1\n2\n\n2\n3\n7\n", recs, &fakeTracker{})

	assert.Equal(t, 1, recs.generated)
	assert.Contains(t, out, "Generated 1 recommendations")
	assert.Equal(t, []int{service.DefaultListLimit, 3}, recs.askedLimits)
	assert.Contains(t, out, "1. Dark")
}

func TestMenu_GenerateFailureIsReported(t *testing.T) {
	recs := &fakeRecommender{genErr: service.ErrProfileUnavailable}

	out := runMenu(t, "1\n7\n", recs, &fakeTracker{})

	assert.Contains(t, out, "Error: recommendation generation unavailable: taste profile unavailable")
	assert.Contains(t, out, "Goodbye!")
}

func TestMenu_AddToWatchlist(t *testing.T) {
	tr := &fakeTracker{}

	out := runMenu(t, "4\nSeverance\n\nseason 2\n4\nShogun\n12\n\n3\n7\n", &fakeRecommender{}, tr)

	require.Len(t, tr.added, 1)
	assert.Equal(t, "Severance", tr.added[0].Title)
	assert.Equal(t, models.DefaultPriority, tr.added[0].Priority)
	assert.Equal(t, "season 2", tr.added[0].Notes)
	assert.Contains(t, out, "could not add to watchlist")
	assert.Contains(t, out, "YOUR WATCHLIST")
}

func TestMenu_LogWatch(t *testing.T) {
	tr := &fakeTracker{}

	runMenu(t, "5\nThe Bear\n2\nx\n11\nGreat episode\n7\n", &fakeRecommender{}, tr)

	require.Len(t, tr.logged, 1)
	got := tr.logged[0]
	assert.Equal(t, "The Bear", got.Title)
	require.NotNil(t, got.Season)
	assert.Equal(t, 2, *got.Season)
	assert.Nil(t, got.Episode)
	assert.Nil(t, got.Rating)
	assert.Equal(t, "Great episode", got.ReviewText)
}

func TestMenu_StatsUnavailable(t *testing.T) {
	out := runMenu(t, "6\n7\n", &fakeRecommender{}, &fakeTracker{statsErr: assert.AnError})
	assert.Contains(t, out, "Error: statistics unavailable")
}
