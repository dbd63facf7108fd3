package models

import "time"

// Candidate is a TMDB show being considered for recommendation.
type Candidate struct {
	TMDBID       int     `json:"tmdb_id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	VoteAverage  float64 `json:"vote_average"`
	Popularity   float64 `json:"popularity"`
	FirstAirDate string  `json:"first_air_date"`
	GenreIDs     []int   `json:"genre_ids"`
	Reason       string  `json:"reason"`
}

// ScoredRecommendation is a Candidate annotated with its score.
type ScoredRecommendation struct {
	Candidate
	ID           int        `json:"id,omitempty"`
	Score        float64    `json:"recommendation_score"`
	ScoreReasons []string   `json:"score_reasons"`
	Watched      bool       `json:"watched"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// WatchLogEntry records a single watch event.
type WatchLogEntry struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Season     *int      `json:"season,omitempty"`
	Episode    *int      `json:"episode,omitempty"`
	WatchDate  time.Time `json:"watch_date"`
	Rating     *int      `json:"rating,omitempty"`
	ReviewText string    `json:"review_text,omitempty"`
	TMDBID     *int      `json:"tmdb_id,omitempty"`
}

// WatchlistEntry is a show the user intends to watch.
type WatchlistEntry struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	TMDBID    *int      `json:"tmdb_id,omitempty"`
	Priority  int       `json:"priority"`
	Notes     string    `json:"notes,omitempty"`
	AddedDate time.Time `json:"added_date"`
	Watched   bool      `json:"watched"`
}

const (
	MinPriority     = 1
	MaxPriority     = 10
	DefaultPriority = 5
	MinUserRating   = 1
	MaxUserRating   = 10
)

// ValidPriority reports whether p is on the 1-10 watchlist scale.
func ValidPriority(p int) bool {
	return p >= MinPriority && p <= MaxPriority
}

// ValidUserRating reports whether r is on the 1-10 watch log scale.
func ValidUserRating(r int) bool {
	return r >= MinUserRating && r <= MaxUserRating
}

// TitleCount is a title with the number of times it was logged.
type TitleCount struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

// WatchStats aggregates the watch log.
type WatchStats struct {
	TotalWatches  int          `json:"total_watches"`
	WeekWatches   int          `json:"week_watches"`
	AverageRating float64      `json:"average_rating"`
	TopShows      []TitleCount `json:"top_shows"`
}
