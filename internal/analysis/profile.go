package analysis

import (
	"log/slog"
	"time"

	"github.com/rahullath/serializd-ai/internal/models"
)

// AnalysisDateLayout is the timestamp format stored in the profile summary.
const AnalysisDateLayout = "2006-01-02 15:04:05"

// Builder composes the individual analyses into a TasteProfile.
type Builder struct {
	now func() time.Time
}

// NewBuilder returns a Builder stamping profiles with now. A nil clock uses
// time.Now.
func NewBuilder(now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{now: now}
}

// Build derives the complete taste profile. It never fails: sections whose
// inputs carry no usable data are left out, and so are the insights that
// depend on them.
func (b *Builder) Build(shows []models.WatchedShow, reviews []models.Review) *models.TasteProfile {
	genres := AggregateGenres(shows)

	profile := &models.TasteProfile{
		Summary: models.ProfileSummary{
			TotalShowsWatched:   len(shows),
			ShowsWithGenreData:  genres.ShowsWithGenres,
			TotalReviewsWritten: len(reviews),
			AnalysisDate:        b.now().Format(AnalysisDateLayout),
		},
		GenrePreferences:    genres.Preferences,
		RatingPatterns:      AnalyzeRatings(reviews),
		ShowCharacteristics: AnalyzeCharacteristics(shows),
		SentimentAnalysis:   AnalyzeSentiment(reviews),
		ShowClusters:        ClusterShows(shows, genres.Vocabulary).Clusters,
	}
	profile.Insights = Insights(profile)

	slog.Info("built taste profile",
		"shows", len(shows),
		"reviews", len(reviews),
		"genres", len(profile.GenrePreferences),
		"clusters", len(profile.ShowClusters),
	)
	return profile
}
