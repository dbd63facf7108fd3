package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/rahullath/serializd-ai/internal/analysis"
	"github.com/rahullath/serializd-ai/internal/config"
	"github.com/rahullath/serializd-ai/internal/database"
	"github.com/rahullath/serializd-ai/internal/recommend"
	"github.com/rahullath/serializd-ai/internal/repository"
	"github.com/rahullath/serializd-ai/internal/service"
	"github.com/rahullath/serializd-ai/internal/tmdb"
)

// deps holds the connections shared by the store-backed commands.
type deps struct {
	cfg  *config.Config
	db   *sql.DB
	rdb  *redis.Client
	repo *repository.TrackingRepository
}

// connect opens PostgreSQL and, when reachable, Redis. Redis is optional.
func connect(ctx context.Context, cfg *config.Config) (*deps, error) {
	db, err := database.NewPostgres(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connect to PostgreSQL: %w", err)
	}

	d := &deps{cfg: cfg, db: db, repo: repository.NewTrackingRepository(db)}
	rdb, err := database.NewRedis(ctx, cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, running without cache", "error", err)
	} else {
		d.rdb = rdb
	}
	return d, nil
}

func (d *deps) Close() {
	if d.rdb != nil {
		d.rdb.Close()
	}
	d.db.Close()
}

func (d *deps) recommendations() *service.RecommendationService {
	client := tmdbClient(d.cfg)
	return service.NewRecommendationService(
		d.repo,
		client,
		recommend.NewFetcher(client, d.cfg.Pipeline),
		recommend.NewScorer(nil),
		service.NewCache(d.rdb),
		d.cfg.Files,
		d.cfg.Pipeline,
	)
}

func (d *deps) tracking() *service.TrackingService {
	return service.NewTrackingService(d.repo, nil)
}

func analysisService(cfg *config.Config) *service.AnalysisService {
	return service.NewAnalysisService(cfg.Files, analysis.NewBuilder(nil))
}

func requireAPIKey(cfg *config.Config) error {
	if cfg.TMDB.APIKey == "" {
		return service.ErrMissingAPIKey
	}
	return nil
}

func tmdbClient(cfg *config.Config) *tmdb.Client {
	return tmdb.NewClient(cfg.TMDB)
}
