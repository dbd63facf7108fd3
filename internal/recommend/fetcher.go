package recommend

import (
	"context"
	"log/slog"

	"github.com/rahullath/serializd-ai/internal/config"
	"github.com/rahullath/serializd-ai/internal/models"
	"github.com/rahullath/serializd-ai/internal/tmdb"
)

// TrendingReason is the source reason attached to trending candidates.
const TrendingReason = "Currently trending"

// Catalog is the part of the TMDB client the fetcher needs.
type Catalog interface {
	GetRecommendations(ctx context.Context, tmdbID int) ([]tmdb.TVShow, error)
	GetTrending(ctx context.Context) ([]tmdb.TVShow, error)
}

// Fetcher gathers candidate shows from per-show recommendations and the
// weekly trending list.
type Fetcher struct {
	catalog Catalog
	cfg     config.PipelineConfig
}

func NewFetcher(catalog Catalog, cfg config.PipelineConfig) *Fetcher {
	return &Fetcher{catalog: catalog, cfg: cfg}
}

// Fetch returns at most limit candidates, deduplicated by TMDB id across
// both sources. A non-positive limit uses the configured cap. Failed
// lookups are logged and skipped.
func (f *Fetcher) Fetch(ctx context.Context, shows []models.WatchedShow, limit int) []models.Candidate {
	if limit <= 0 {
		limit = f.cfg.CandidateLimit
	}

	var candidates []models.Candidate
	seen := make(map[int]struct{})
	add := func(s tmdb.TVShow, reason string) {
		if _, ok := seen[s.ID]; ok {
			return
		}
		seen[s.ID] = struct{}{}
		candidates = append(candidates, toCandidate(s, reason))
	}

	sources := 0
	for _, show := range shows {
		if sources >= f.cfg.SimilarSourceLimit || len(candidates) >= limit {
			break
		}
		if show.TMDBID == nil {
			continue
		}
		sources++

		similar, err := f.catalog.GetRecommendations(ctx, *show.TMDBID)
		if err != nil {
			slog.Warn("skipping similar shows", "title", show.Title, "tmdb_id", *show.TMDBID, "error", err)
			continue
		}
		for _, s := range similar {
			add(s, "Recommended based on "+show.Title)
		}
	}

	if len(candidates) < limit && f.cfg.TrendingLimit > 0 {
		trending, err := f.catalog.GetTrending(ctx)
		if err != nil {
			slog.Warn("skipping trending shows", "error", err)
		}
		if len(trending) > f.cfg.TrendingLimit {
			trending = trending[:f.cfg.TrendingLimit]
		}
		for _, s := range trending {
			add(s, TrendingReason)
		}
	}

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	slog.Info("gathered candidates", "count", len(candidates), "similar_sources", sources)
	return candidates
}

func toCandidate(s tmdb.TVShow, reason string) models.Candidate {
	return models.Candidate{
		TMDBID:       s.ID,
		Title:        s.Name,
		Overview:     s.Overview,
		VoteAverage:  s.VoteAverage,
		Popularity:   s.Popularity,
		FirstAirDate: s.FirstAirDate,
		GenreIDs:     s.GenreIDs,
		Reason:       reason,
	}
}
