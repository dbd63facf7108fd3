package models

// NotAvailable is the literal the scraper and enricher write for a value
// that is intentionally absent. It never appears inside the typed models.
const NotAvailable = "N/A"

// WatchedShow is one show from the user's watch history, optionally
// enriched with TMDB metadata. Nil pointers mean the value is unknown.
type WatchedShow struct {
	Title            string   `json:"title"`
	Genres           []string `json:"genres,omitempty"`
	VoteAverage      *float64 `json:"vote_average,omitempty"`
	Popularity       *float64 `json:"popularity,omitempty"`
	NumberOfSeasons  *int     `json:"number_of_seasons,omitempty"`
	NumberOfEpisodes *int     `json:"number_of_episodes,omitempty"`
	Networks         []string `json:"networks,omitempty"`
	OriginalLanguage string   `json:"original_language,omitempty"`
	TMDBID           *int     `json:"tmdb_id,omitempty"`

	// Descriptive fields filled by enrichment; not used for analysis.
	Overview     string `json:"overview,omitempty"`
	FirstAirDate string `json:"first_air_date,omitempty"`
	Status       string `json:"status,omitempty"`
}

// Review is one review the user wrote on the tracking site.
type Review struct {
	Title      string `json:"title"`
	RatingRaw  string `json:"rating"`
	ReviewText string `json:"review_text,omitempty"`
	WatchDate  string `json:"watch_date,omitempty"`
}

// Float returns a pointer to v, for building optional fields.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for building optional fields.
func Int(v int) *int { return &v }
