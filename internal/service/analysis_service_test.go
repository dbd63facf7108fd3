package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahullath/serializd-ai/internal/analysis"
	"github.com/rahullath/serializd-ai/internal/dataset"
)

func TestAnalyze(t *testing.T) {
	files := testFiles(t)
	writeCSV(t, files.EnrichedShows,
		"Title,Genres,Vote_Average,Number_of_Seasons\n"+
			"Severance,\"Drama, Mystery\",8.4,2\n"+
			"The Bear,\"Comedy, Drama\",8.2,3\n"+
			"Shogun,\"Drama, War & Politics\",8.6,1\n")
	writeCSV(t, files.Reviews,
		"Title,Rating,Review_Text\n"+
			"Severance,4/5,Absolutely brilliant and gripping\n"+
			"The Bear,A-,N/A\n")

	svc := NewAnalysisService(files, analysis.NewBuilder(func() time.Time { return fixedNow }))
	profile, err := svc.Analyze(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, profile.Summary.TotalShowsWatched)
	assert.Equal(t, 2, profile.Summary.TotalReviewsWritten)
	assert.Equal(t, "Drama", profile.GenrePreferences[0].Genre)
	assert.InDelta(t, 100.0, profile.GenrePreferences[0].Percentage, 1e-9)
	require.NotNil(t, profile.RatingPatterns)
	assert.Equal(t, 2, profile.RatingPatterns.TotalRatedShows)

	saved, err := dataset.LoadProfile(files.TasteProfile)
	require.NoError(t, err)
	assert.Equal(t, profile.Insights, saved.Insights)

	loaded, err := svc.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, profile.Summary, loaded.Summary)
}

func TestAnalyze_WithoutReviews(t *testing.T) {
	files := testFiles(t)
	writeCSV(t, files.WatchedShows, "Title\nSeverance\nThe Bear\n")

	profile, err := NewAnalysisService(files, analysis.NewBuilder(nil)).Analyze(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, profile.Summary.TotalShowsWatched)
	assert.Zero(t, profile.Summary.TotalReviewsWritten)
	assert.Nil(t, profile.RatingPatterns)
	assert.Empty(t, profile.ShowClusters)
}

func TestAnalyze_WithoutWatchedShows(t *testing.T) {
	_, err := NewAnalysisService(testFiles(t), analysis.NewBuilder(nil)).Analyze(context.Background())
	assert.ErrorIs(t, err, ErrWatchedShowsUnavailable)
}

func TestProfile_Missing(t *testing.T) {
	_, err := NewAnalysisService(testFiles(t), analysis.NewBuilder(nil)).Profile(context.Background())
	assert.ErrorIs(t, err, ErrProfileUnavailable)
}
