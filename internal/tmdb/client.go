package tmdb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/rahullath/serializd-ai/internal/config"
)

const requestTimeout = 15 * time.Second

// Client is the TMDB API client. Requests are spaced by the configured
// interval so a batch of lookups stays under TMDB's rate limit.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a new TMDB API client.
func NewClient(cfg config.TMDBConfig) *Client {
	interval := cfg.RequestInterval
	if interval <= 0 {
		interval = config.DefaultRequestInterval
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// ---- TMDB Response Types ----

// PagedResponse is the envelope of every TMDB list endpoint.
type PagedResponse struct {
	Page         int      `json:"page"`
	Results      []TVShow `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// TVShow is a show as it appears in search, trending and recommendation
// results.
type TVShow struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	Overview         string  `json:"overview"`
	FirstAirDate     string  `json:"first_air_date"`
	Popularity       float64 `json:"popularity"`
	VoteAverage      float64 `json:"vote_average"`
	GenreIDs         []int   `json:"genre_ids"`
	OriginalLanguage string  `json:"original_language"`
}

// TVDetail is the detailed show info from /tv/{id}.
type TVDetail struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	OriginalName     string    `json:"original_name"`
	Overview         string    `json:"overview"`
	FirstAirDate     string    `json:"first_air_date"`
	LastAirDate      string    `json:"last_air_date"`
	Status           string    `json:"status"`
	NumberOfSeasons  int       `json:"number_of_seasons"`
	NumberOfEpisodes int       `json:"number_of_episodes"`
	Genres           []Genre   `json:"genres"`
	Networks         []Network `json:"networks"`
	OriginalLanguage string    `json:"original_language"`
	Popularity       float64   `json:"popularity"`
	VoteAverage      float64   `json:"vote_average"`
	VoteCount        int       `json:"vote_count"`
}

// Genre is a genre from TMDB.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Network is a broadcaster or streaming service.
type Network struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreListResponse is the TMDB genre/tv/list response.
type GenreListResponse struct {
	Genres []Genre `json:"genres"`
}

// ---- Client Methods ----

// SearchTV returns the most relevant show for title, or nil when TMDB has
// no match. A positive year narrows the search by first air year.
func (c *Client) SearchTV(ctx context.Context, title string, year int) (*TVShow, error) {
	params := url.Values{"query": {title}}
	if year > 0 {
		params.Set("first_air_date_year", strconv.Itoa(year))
	}

	slog.Debug("searching TMDB", "title", title, "year", year)
	var result PagedResponse
	if err := c.get(ctx, "/search/tv", params, &result); err != nil {
		return nil, fmt.Errorf("failed to search %q: %w", title, err)
	}
	if len(result.Results) == 0 {
		return nil, nil
	}
	return &result.Results[0], nil
}

// GetTVDetail fetches detailed show info from TMDB.
func (c *Client) GetTVDetail(ctx context.Context, tmdbID int) (*TVDetail, error) {
	slog.Debug("fetching TMDB show detail", "tmdb_id", tmdbID)
	var result TVDetail
	if err := c.get(ctx, fmt.Sprintf("/tv/%d", tmdbID), nil, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch show %d: %w", tmdbID, err)
	}
	return &result, nil
}

// GetRecommendations fetches TMDB's recommendations for a show.
func (c *Client) GetRecommendations(ctx context.Context, tmdbID int) ([]TVShow, error) {
	slog.Debug("fetching TMDB recommendations", "tmdb_id", tmdbID)
	var result PagedResponse
	if err := c.get(ctx, fmt.Sprintf("/tv/%d/recommendations", tmdbID), nil, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch recommendations for %d: %w", tmdbID, err)
	}
	return result.Results, nil
}

// GetTrending fetches this week's trending shows.
func (c *Client) GetTrending(ctx context.Context) ([]TVShow, error) {
	slog.Debug("fetching TMDB trending")
	var result PagedResponse
	if err := c.get(ctx, "/trending/tv/week", nil, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch trending: %w", err)
	}
	return result.Results, nil
}

// GetGenres fetches all TV genres from TMDB.
func (c *Client) GetGenres(ctx context.Context) ([]Genre, error) {
	slog.Debug("fetching TMDB genres")
	var result GenreListResponse
	if err := c.get(ctx, "/genre/tv/list", nil, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch genres: %w", err)
	}
	return result.Genres, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	resp, err := c.doGet(ctx, path, params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) doGet(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}
	return resp, nil
}

// StatusError is returned for non-200 TMDB responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("TMDB API returned status %d: %s", e.Code, e.Body)
}
