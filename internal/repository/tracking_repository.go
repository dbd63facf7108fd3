package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/rahullath/serializd-ai/internal/models"
)

// ErrNotFound is returned when an update matches no row.
var ErrNotFound = errors.New("not found")

const (
	recommendedStatus = "Recommended"
	topShowsReported  = 5
	statsWindow       = 7 * 24 * time.Hour
)

// TrackingRepository stores recommendations, the watchlist and the watch
// log.
type TrackingRepository struct {
	db *sql.DB
}

// NewTrackingRepository creates a new TrackingRepository.
func NewTrackingRepository(db *sql.DB) *TrackingRepository {
	return &TrackingRepository{db: db}
}

// ReplaceRecommendations clears every stored recommendation and inserts
// recs in a single transaction.
func (r *TrackingRepository) ReplaceRecommendations(ctx context.Context, recs []models.ScoredRecommendation) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace recommendations: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM recommendations`); err != nil {
		return fmt.Errorf("clear recommendations: %w", err)
	}

	for _, rec := range recs {
		if rec.ScoreReasons == nil {
			rec.ScoreReasons = []string{}
		}
		reasons, merr := json.Marshal(rec.ScoreReasons)
		if merr != nil {
			err = fmt.Errorf("encode reasons for %q: %w", rec.Title, merr)
			return err
		}
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO recommendations
				(title, tmdb_id, recommendation_score, reason, score_reasons, genres,
				 vote_average, popularity, overview, first_air_date, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, rec.Title, rec.TMDBID, rec.Score, rec.Reason, string(reasons), joinIDs(rec.GenreIDs),
			rec.VoteAverage, rec.Popularity, rec.Overview, rec.FirstAirDate, recommendedStatus,
		); err != nil {
			return fmt.Errorf("insert recommendation %q: %w", rec.Title, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit recommendations: %w", err)
	}
	return nil
}

// TopRecommendations returns up to limit unwatched recommendations, best
// score first.
func (r *TrackingRepository) TopRecommendations(ctx context.Context, limit int) ([]models.ScoredRecommendation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, tmdb_id, recommendation_score, reason, score_reasons, genres,
			vote_average, popularity, overview, first_air_date, watched, created_at
		FROM recommendations
		WHERE watched = FALSE
		ORDER BY recommendation_score DESC, id ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recommendations: %w", err)
	}
	defer rows.Close()

	recs := []models.ScoredRecommendation{}
	for rows.Next() {
		var (
			rec             models.ScoredRecommendation
			reasons, genres string
		)
		if err := rows.Scan(
			&rec.ID, &rec.Title, &rec.TMDBID, &rec.Score, &rec.Reason, &reasons, &genres,
			&rec.VoteAverage, &rec.Popularity, &rec.Overview, &rec.FirstAirDate, &rec.Watched, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan recommendation: %w", err)
		}
		rec.ScoreReasons = []string{}
		if reasons != "" {
			if err := json.Unmarshal([]byte(reasons), &rec.ScoreReasons); err != nil {
				return nil, fmt.Errorf("decode reasons of recommendation %d: %w", rec.ID, err)
			}
		}
		rec.GenreIDs = splitIDs(genres)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// MarkRecommendationWatched flags a recommendation as watched.
func (r *TrackingRepository) MarkRecommendationWatched(ctx context.Context, id int) error {
	return r.markWatched(ctx, `UPDATE recommendations SET watched = TRUE WHERE id = $1`, id)
}

// AddWatchlistEntry inserts e and fills in its id and added date.
func (r *TrackingRepository) AddWatchlistEntry(ctx context.Context, e *models.WatchlistEntry) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO watchlist (title, tmdb_id, priority, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, added_date
	`, e.Title, e.TMDBID, e.Priority, e.Notes).Scan(&e.ID, &e.AddedDate)
	if err != nil {
		return fmt.Errorf("insert watchlist entry %q: %w", e.Title, err)
	}
	return nil
}

// ListWatchlist returns unwatched entries, highest priority first and
// oldest first within a priority.
func (r *TrackingRepository) ListWatchlist(ctx context.Context) ([]models.WatchlistEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, tmdb_id, priority, notes, added_date, watched
		FROM watchlist
		WHERE watched = FALSE
		ORDER BY priority DESC, added_date ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query watchlist: %w", err)
	}
	defer rows.Close()

	entries := []models.WatchlistEntry{}
	for rows.Next() {
		var (
			e      models.WatchlistEntry
			tmdbID sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &e.Title, &tmdbID, &e.Priority, &e.Notes, &e.AddedDate, &e.Watched); err != nil {
			return nil, fmt.Errorf("scan watchlist entry: %w", err)
		}
		e.TMDBID = nullableInt(tmdbID)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// MarkWatchlistWatched flags a watchlist entry as watched. The flag is
// never cleared.
func (r *TrackingRepository) MarkWatchlistWatched(ctx context.Context, id int) error {
	return r.markWatched(ctx, `UPDATE watchlist SET watched = TRUE WHERE id = $1`, id)
}

// LogWatch appends a watch event and fills in its id.
func (r *TrackingRepository) LogWatch(ctx context.Context, e *models.WatchLogEntry) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO watch_logs (title, season, episode, watch_date, rating, review_text, tmdb_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, e.Title, e.Season, e.Episode, e.WatchDate, e.Rating, e.ReviewText, e.TMDBID).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert watch log %q: %w", e.Title, err)
	}
	return nil
}

// WatchStats aggregates the watch log as of now.
func (r *TrackingRepository) WatchStats(ctx context.Context, now time.Time) (*models.WatchStats, error) {
	stats := &models.WatchStats{TopShows: []models.TitleCount{}}

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE watch_date >= $1),
			COALESCE(ROUND(AVG(rating)::numeric, 2), 0)
		FROM watch_logs
	`, now.Add(-statsWindow)).Scan(&stats.TotalWatches, &stats.WeekWatches, &stats.AverageRating)
	if err != nil {
		return nil, fmt.Errorf("query watch totals: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT title, COUNT(*) AS watches
		FROM watch_logs
		GROUP BY title
		ORDER BY watches DESC, title ASC
		LIMIT $1
	`, topShowsReported)
	if err != nil {
		return nil, fmt.Errorf("query top shows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tc models.TitleCount
		if err := rows.Scan(&tc.Title, &tc.Count); err != nil {
			return nil, fmt.Errorf("scan top show: %w", err)
		}
		stats.TopShows = append(stats.TopShows, tc)
	}
	return stats, rows.Err()
}

func (r *TrackingRepository) markWatched(ctx context.Context, query string, id int) error {
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("mark %d watched: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark %d watched: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("mark %d watched: %w", id, ErrNotFound)
	}
	return nil
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}

func splitIDs(s string) []int {
	var ids []int
	for _, part := range strings.Split(s, ",") {
		if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
