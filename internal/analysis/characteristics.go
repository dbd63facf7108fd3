package analysis

import (
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/rahullath/serializd-ai/internal/models"
)

const (
	longSeriesSeasons   = 3.0
	highlyRatedAverage  = 7.0
	ratingThresholdQ    = 0.25
	topNetworksReported = 10
)

// AnalyzeCharacteristics computes season, catalog rating, network and
// language statistics. Dimensions without any usable data are left nil.
func AnalyzeCharacteristics(shows []models.WatchedShow) models.ShowCharacteristics {
	return models.ShowCharacteristics{
		Seasons:     seasonStats(shows),
		TMDBRatings: catalogRatingStats(shows),
		Networks:    networkStats(shows),
		Languages:   languageStats(shows),
	}
}

func seasonStats(shows []models.WatchedShow) *models.SeasonStats {
	var seasons []float64
	dist := make(map[string]int)
	for _, s := range shows {
		if s.NumberOfSeasons == nil || *s.NumberOfSeasons <= 0 {
			continue
		}
		seasons = append(seasons, float64(*s.NumberOfSeasons))
		dist[strconv.Itoa(*s.NumberOfSeasons)]++
	}
	if len(seasons) == 0 {
		return nil
	}
	mean := stat.Mean(seasons, nil)
	return &models.SeasonStats{
		AverageSeasons:     mean,
		MedianSeasons:      median(seasons),
		PrefersLongSeries:  mean > longSeriesSeasons,
		SeasonDistribution: dist,
	}
}

func catalogRatingStats(shows []models.WatchedShow) *models.CatalogRating {
	var ratings []float64
	for _, s := range shows {
		// TMDB reports 0 for shows nobody has voted on.
		if s.VoteAverage == nil || *s.VoteAverage <= 0 {
			continue
		}
		ratings = append(ratings, *s.VoteAverage)
	}
	if len(ratings) == 0 {
		return nil
	}
	mean := stat.Mean(ratings, nil)
	return &models.CatalogRating{
		AverageShowRating:  mean,
		PrefersHighlyRated: mean > highlyRatedAverage,
		RatingThreshold:    percentile(ratings, ratingThresholdQ),
	}
}

func networkStats(shows []models.WatchedShow) *models.NetworkStats {
	c := newCounter()
	for _, s := range shows {
		for _, n := range cleanList(s.Networks) {
			c.add(n)
		}
	}
	if c.len() == 0 {
		return nil
	}
	return &models.NetworkStats{
		TopNetworks:   toCountList(c.mostCommon(topNetworksReported)),
		TotalNetworks: c.len(),
	}
}

func languageStats(shows []models.WatchedShow) *models.LanguageStats {
	c := newCounter()
	for _, s := range shows {
		if s.OriginalLanguage == "" || s.OriginalLanguage == models.NotAvailable {
			continue
		}
		c.add(s.OriginalLanguage)
	}
	if c.len() == 0 {
		return nil
	}
	dist := toCountList(c.mostCommon(0))
	return &models.LanguageStats{
		PrimaryLanguage:      dist[0].Name,
		LanguageDiversity:    c.len(),
		LanguageDistribution: dist,
	}
}

func toCountList(lcs []labelCount) models.CountList {
	out := make(models.CountList, 0, len(lcs))
	for _, lc := range lcs {
		out = append(out, models.NameCount{Name: lc.label, Count: lc.count})
	}
	return out
}
