package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/rahullath/serializd-ai/internal/config"
	"github.com/rahullath/serializd-ai/internal/dataset"
	"github.com/rahullath/serializd-ai/internal/models"
	"github.com/rahullath/serializd-ai/internal/recommend"
	"github.com/rahullath/serializd-ai/internal/tmdb"
)

const (
	genreMapCacheKey        = "tmdb:genres:tv"
	genreMapCacheTTL        = 24 * time.Hour
	recommendationsCacheTTL = 10 * time.Minute
	recommendationsPattern  = "recommendations:*"
	DefaultListLimit        = 10
)

// RecommendationStore is the persistence the recommendation pipeline needs.
type RecommendationStore interface {
	ReplaceRecommendations(ctx context.Context, recs []models.ScoredRecommendation) error
	TopRecommendations(ctx context.Context, limit int) ([]models.ScoredRecommendation, error)
	MarkRecommendationWatched(ctx context.Context, id int) error
}

// GenreCatalog resolves TMDB genre ids.
type GenreCatalog interface {
	GetGenres(ctx context.Context) ([]tmdb.Genre, error)
}

// CandidateSource gathers candidate shows for scoring.
type CandidateSource interface {
	Fetch(ctx context.Context, shows []models.WatchedShow, limit int) []models.Candidate
}

// RecommendationService runs the generate pipeline and serves its results.
type RecommendationService struct {
	store   RecommendationStore
	genres  GenreCatalog
	source  CandidateSource
	scorer  *recommend.Scorer
	cache   *Cache
	files   config.FileConfig
	maxRecs int
}

func NewRecommendationService(
	store RecommendationStore,
	genres GenreCatalog,
	source CandidateSource,
	scorer *recommend.Scorer,
	cache *Cache,
	files config.FileConfig,
	pipeline config.PipelineConfig,
) *RecommendationService {
	return &RecommendationService{
		store:   store,
		genres:  genres,
		source:  source,
		scorer:  scorer,
		cache:   cache,
		files:   files,
		maxRecs: pipeline.CandidateLimit,
	}
}

// Generate scores fresh candidates against the saved taste profile and
// replaces the stored recommendations with them. A missing profile or
// watched-shows table aborts the run before anything is written, as does
// an empty candidate batch, so a catalog outage keeps the previous batch.
func (s *RecommendationService) Generate(ctx context.Context, limit int) ([]models.ScoredRecommendation, error) {
	if limit <= 0 {
		limit = s.maxRecs
	}

	profile, err := loadProfile(s.files.TasteProfile)
	if err != nil {
		return nil, err
	}
	shows, err := dataset.LoadWatchedShows(s.files.EnrichedShows, s.files.WatchedShows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWatchedShowsUnavailable, err)
	}

	candidates := s.source.Fetch(ctx, shows, limit)
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	scored := s.scorer.Score(profile, candidates, s.genreMap(ctx))
	if err := s.store.ReplaceRecommendations(ctx, scored); err != nil {
		return nil, fmt.Errorf("save recommendations: %w", err)
	}
	s.cache.Invalidate(ctx, recommendationsPattern)

	slog.Info("generated recommendations", "count", len(scored))
	return scored, nil
}

// Recommendations returns the top unwatched recommendations.
func (s *RecommendationService) Recommendations(ctx context.Context, limit int) ([]models.ScoredRecommendation, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	key := "recommendations:top:" + strconv.Itoa(limit)
	var recs []models.ScoredRecommendation
	if s.cache.Get(ctx, key, &recs) {
		return recs, nil
	}

	recs, err := s.store.TopRecommendations(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("get recommendations: %w", err)
	}
	s.cache.Set(ctx, key, recs, recommendationsCacheTTL)
	return recs, nil
}

// MarkWatched flags a stored recommendation as watched.
func (s *RecommendationService) MarkWatched(ctx context.Context, id int) error {
	if err := s.store.MarkRecommendationWatched(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, recommendationsPattern)
	return nil
}

// genreMap returns TMDB genre names by id. A failed lookup yields an empty
// map, so genre matching contributes nothing for this run.
func (s *RecommendationService) genreMap(ctx context.Context) map[int]string {
	var names map[int]string
	if s.cache.Get(ctx, genreMapCacheKey, &names) {
		return names
	}

	genres, err := s.genres.GetGenres(ctx)
	if err != nil {
		slog.Warn("could not fetch genre map", "error", err)
		return map[int]string{}
	}
	names = make(map[int]string, len(genres))
	for _, g := range genres {
		names[g.ID] = g.Name
	}
	s.cache.Set(ctx, genreMapCacheKey, names, genreMapCacheTTL)
	return names
}

// IsUnavailable reports whether err means a required input is missing
// rather than a failure of the run itself.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrProfileUnavailable) ||
		errors.Is(err, ErrWatchedShowsUnavailable) ||
		errors.Is(err, ErrNoCandidates)
}
