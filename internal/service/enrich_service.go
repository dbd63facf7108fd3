package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/rahullath/serializd-ai/internal/config"
	"github.com/rahullath/serializd-ai/internal/dataset"
	"github.com/rahullath/serializd-ai/internal/models"
	"github.com/rahullath/serializd-ai/internal/tmdb"
)

// EnrichCatalog is the part of the TMDB client enrichment needs.
type EnrichCatalog interface {
	SearchTV(ctx context.Context, title string, year int) (*tmdb.TVShow, error)
	GetTVDetail(ctx context.Context, tmdbID int) (*tmdb.TVDetail, error)
}

// EnrichResult summarizes an enrichment run.
type EnrichResult struct {
	Total   int
	Matched int
	Failed  []string
}

// EnrichService fills the watched-shows table with TMDB metadata.
type EnrichService struct {
	catalog EnrichCatalog
	files   config.FileConfig
	apiKey  string
}

func NewEnrichService(catalog EnrichCatalog, files config.FileConfig, apiKey string) *EnrichService {
	return &EnrichService{catalog: catalog, files: files, apiKey: apiKey}
}

var titleYear = regexp.MustCompile(`^(.*?)\s*\((\d{4})\)\s*$`)

// SplitTitleYear strips a trailing "(YYYY)" from a title, returning the
// bare title and the year, or the trimmed title and 0.
func SplitTitleYear(title string) (string, int) {
	m := titleYear.FindStringSubmatch(title)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return strings.TrimSpace(title), 0
	}
	year, _ := strconv.Atoi(m[2])
	return strings.TrimSpace(m[1]), year
}

// Enrich looks every basic watched show up on TMDB and writes the enriched
// table. Shows that cannot be matched are kept with absent metadata.
func (s *EnrichService) Enrich(ctx context.Context) (*EnrichResult, error) {
	if s.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	shows, err := dataset.ReadWatchedShows(s.files.WatchedShows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWatchedShowsUnavailable, err)
	}
	slog.Info("loaded watched shows", "count", len(shows))

	result := &EnrichResult{Total: len(shows)}
	enriched := make([]models.WatchedShow, 0, len(shows))
	for i, show := range shows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		slog.Info("processing show", "n", i+1, "of", len(shows), "title", show.Title)

		e, ok := s.enrichShow(ctx, show.Title)
		if ok {
			result.Matched++
		} else {
			result.Failed = append(result.Failed, show.Title)
			slog.Warn("failed to enrich", "title", show.Title)
			e = models.WatchedShow{Title: show.Title}
		}
		enriched = append(enriched, e)
	}

	if err := dataset.WriteWatchedShows(s.files.EnrichedShows, enriched); err != nil {
		return nil, fmt.Errorf("save enriched shows: %w", err)
	}
	slog.Info("enrichment completed",
		"total", result.Total,
		"matched", result.Matched,
		"failed", len(result.Failed),
	)
	return result, nil
}

func (s *EnrichService) enrichShow(ctx context.Context, title string) (models.WatchedShow, bool) {
	query, year := SplitTitleYear(title)

	match, err := s.catalog.SearchTV(ctx, query, year)
	if err != nil {
		slog.Error("search failed", "title", title, "error", err)
		return models.WatchedShow{}, false
	}
	if match == nil {
		return models.WatchedShow{}, false
	}

	d, err := s.catalog.GetTVDetail(ctx, match.ID)
	if err != nil {
		slog.Error("detail lookup failed", "title", title, "tmdb_id", match.ID, "error", err)
		return models.WatchedShow{}, false
	}
	return fromDetail(title, d), true
}

func fromDetail(title string, d *tmdb.TVDetail) models.WatchedShow {
	show := models.WatchedShow{
		Title:            title,
		TMDBID:           models.Int(d.ID),
		VoteAverage:      models.Float(d.VoteAverage),
		Popularity:       models.Float(d.Popularity),
		NumberOfSeasons:  models.Int(d.NumberOfSeasons),
		NumberOfEpisodes: models.Int(d.NumberOfEpisodes),
		OriginalLanguage: d.OriginalLanguage,
		Overview:         d.Overview,
		FirstAirDate:     d.FirstAirDate,
		Status:           d.Status,
	}
	for _, g := range d.Genres {
		show.Genres = append(show.Genres, g.Name)
	}
	for _, n := range d.Networks {
		show.Networks = append(show.Networks, n.Name)
	}
	return show
}
