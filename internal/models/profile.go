package models

import (
	"bytes"
	"sort"
	"strconv"

	"github.com/goccy/go-json"
)

// TasteProfile is the structured summary of a user's viewing preferences.
// It is rebuilt wholesale on every analysis run.
type TasteProfile struct {
	Summary             ProfileSummary         `json:"summary"`
	GenrePreferences    GenrePreferences       `json:"genre_preferences"`
	RatingPatterns      *RatingPatterns        `json:"rating_patterns,omitempty"`
	ShowCharacteristics ShowCharacteristics    `json:"show_characteristics"`
	SentimentAnalysis   *SentimentAnalysis     `json:"sentiment_analysis,omitempty"`
	ShowClusters        map[string]ShowCluster `json:"show_clusters"`
	Insights            []string               `json:"insights"`
}

// ProfileSummary holds the counts the rest of the profile is derived from.
type ProfileSummary struct {
	TotalShowsWatched   int    `json:"total_shows_watched"`
	ShowsWithGenreData  int    `json:"shows_with_genre_data"`
	TotalReviewsWritten int    `json:"total_reviews_written"`
	AnalysisDate        string `json:"analysis_date"`
}

// GenrePreference is the frequency of a single genre across watched shows.
type GenrePreference struct {
	Genre      string  `json:"-"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// GenrePreferences is ordered by descending count. It is serialized as a
// JSON object keyed by genre name, preserving that order.
type GenrePreferences []GenrePreference

// Names returns the set of genres present in the preferences.
func (g GenrePreferences) Names() map[string]struct{} {
	set := make(map[string]struct{}, len(g))
	for _, p := range g {
		set[p.Genre] = struct{}{}
	}
	return set
}

func (g GenrePreferences) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Genre)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (g *GenrePreferences) UnmarshalJSON(data []byte) error {
	var raw map[string]GenrePreference
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(GenrePreferences, 0, len(raw))
	for name, p := range raw {
		p.Genre = name
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Genre < out[j].Genre
	})
	*g = out
	return nil
}

// NameCount is a label with an occurrence count.
type NameCount struct {
	Name  string
	Count int
}

// CountList is ordered by descending count and serialized as a JSON object
// mapping name to count.
type CountList []NameCount

func (c CountList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, nc := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(nc.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(nc.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (c *CountList) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(CountList, 0, len(raw))
	for name, n := range raw {
		out = append(out, NameCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	*c = out
	return nil
}

// RatingPatterns summarizes the user's own ratings on a 0-10 scale.
type RatingPatterns struct {
	AverageRating      float64        `json:"average_rating"`
	MedianRating       float64        `json:"median_rating"`
	StdRating          float64        `json:"std_rating"`
	MinRating          float64        `json:"min_rating"`
	MaxRating          float64        `json:"max_rating"`
	TotalRatedShows    int            `json:"total_rated_shows"`
	RatingDistribution map[string]int `json:"rating_distribution"`
}

// ShowCharacteristics groups the optional per-dimension statistics. A nil
// section means no show carried usable data for that dimension.
type ShowCharacteristics struct {
	Seasons     *SeasonStats   `json:"seasons,omitempty"`
	TMDBRatings *CatalogRating `json:"tmdb_ratings,omitempty"`
	Networks    *NetworkStats  `json:"networks,omitempty"`
	Languages   *LanguageStats `json:"languages,omitempty"`
}

type SeasonStats struct {
	AverageSeasons     float64        `json:"average_seasons"`
	MedianSeasons      float64        `json:"median_seasons"`
	PrefersLongSeries  bool           `json:"prefers_long_series"`
	SeasonDistribution map[string]int `json:"season_distribution"`
}

type CatalogRating struct {
	AverageShowRating  float64 `json:"average_show_rating"`
	PrefersHighlyRated bool    `json:"prefers_highly_rated"`
	RatingThreshold    float64 `json:"rating_threshold"`
}

type NetworkStats struct {
	TopNetworks   CountList `json:"top_networks"`
	TotalNetworks int       `json:"total_networks"`
}

type LanguageStats struct {
	PrimaryLanguage      string    `json:"primary_language"`
	LanguageDiversity    int       `json:"language_diversity"`
	LanguageDistribution CountList `json:"language_distribution"`
}

// SentimentAnalysis aggregates review polarity and subjectivity.
type SentimentAnalysis struct {
	AverageSentiment     float64   `json:"average_sentiment"`
	SentimentStd         float64   `json:"sentiment_std"`
	AverageSubjectivity  float64   `json:"average_subjectivity"`
	PositiveReviews      int       `json:"positive_reviews"`
	NegativeReviews      int       `json:"negative_reviews"`
	NeutralReviews       int       `json:"neutral_reviews"`
	TotalAnalyzedReviews int       `json:"total_analyzed_reviews"`
	PositiveKeywords     CountList `json:"positive_keywords,omitempty"`
	NegativeKeywords     CountList `json:"negative_keywords,omitempty"`
}

// ShowCluster describes one group of similar watched shows.
type ShowCluster struct {
	Size      int       `json:"size"`
	Shows     []string  `json:"shows"`
	TopGenres CountList `json:"top_genres"`
	AvgRating *float64  `json:"avg_rating"`
}
