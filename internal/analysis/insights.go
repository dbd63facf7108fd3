package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rahullath/serializd-ai/internal/models"
)

const (
	topGenresInInsight  = 3
	generousRatingMean  = 7.0
	toughRatingMean     = 5.0
	positiveToneMean    = 0.2
	negativeToneMean    = -0.2
	unknownClusterGenre = "Unknown"
)

// Insights renders the human-readable observations for a profile, in a
// fixed order. Rules whose section is missing are skipped.
func Insights(p *models.TasteProfile) []string {
	insights := []string{}

	if len(p.GenrePreferences) > 0 {
		n := min(topGenresInInsight, len(p.GenrePreferences))
		names := make([]string, 0, n)
		for _, g := range p.GenrePreferences[:n] {
			names = append(names, g.Genre)
		}
		insights = append(insights,
			"Your top 3 favorite genres are: "+strings.Join(names, ", "),
			fmt.Sprintf("%s makes up %.1f%% of your watched shows",
				p.GenrePreferences[0].Genre, p.GenrePreferences[0].Percentage),
		)
	}

	if r := p.RatingPatterns; r != nil {
		switch {
		case r.AverageRating > generousRatingMean:
			insights = append(insights, "You tend to rate shows highly, suggesting you're selective about what you watch")
		case r.AverageRating < toughRatingMean:
			insights = append(insights, "You're a tough critic with generally lower ratings")
		default:
			insights = append(insights, "You have balanced rating patterns across different shows")
		}
	}

	if s := p.ShowCharacteristics.Seasons; s != nil && s.PrefersLongSeries {
		insights = append(insights, "You prefer longer series with multiple seasons")
	}
	if t := p.ShowCharacteristics.TMDBRatings; t != nil && t.PrefersHighlyRated {
		insights = append(insights, "You tend to watch critically acclaimed shows")
	}

	if s := p.SentimentAnalysis; s != nil {
		switch {
		case s.AverageSentiment > positiveToneMean:
			insights = append(insights, "Your reviews are generally positive and enthusiastic")
		case s.AverageSentiment < negativeToneMean:
			insights = append(insights, "You tend to be critical in your reviews")
		default:
			insights = append(insights, "You write balanced, objective reviews")
		}
	}

	if id, ok := LargestCluster(p.ShowClusters); ok {
		genre := unknownClusterGenre
		if top := p.ShowClusters[id].TopGenres; len(top) > 0 {
			genre = top[0].Name
		}
		insights = append(insights, fmt.Sprintf("Your largest viewing pattern centers around %s shows", genre))
	}

	return insights
}

// LargestCluster returns the id of the biggest cluster. Equal sizes resolve
// to the lowest id in lexical order.
func LargestCluster(clusters map[string]models.ShowCluster) (string, bool) {
	if len(clusters) == 0 {
		return "", false
	}
	ids := make([]string, 0, len(clusters))
	for id := range clusters {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	best := ids[0]
	for _, id := range ids[1:] {
		if clusters[id].Size > clusters[best].Size {
			best = id
		}
	}
	return best, true
}
