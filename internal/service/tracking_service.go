package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rahullath/serializd-ai/internal/models"
)

// TrackingStore is the persistence behind the watchlist and watch log.
type TrackingStore interface {
	AddWatchlistEntry(ctx context.Context, e *models.WatchlistEntry) error
	ListWatchlist(ctx context.Context) ([]models.WatchlistEntry, error)
	MarkWatchlistWatched(ctx context.Context, id int) error
	LogWatch(ctx context.Context, e *models.WatchLogEntry) error
	WatchStats(ctx context.Context, now time.Time) (*models.WatchStats, error)
}

// TrackingService manages the watchlist and the watch log.
type TrackingService struct {
	store TrackingStore
	now   func() time.Time
}

func NewTrackingService(store TrackingStore, now func() time.Time) *TrackingService {
	if now == nil {
		now = time.Now
	}
	return &TrackingService{store: store, now: now}
}

// AddToWatchlist validates and stores a watchlist entry. A zero priority
// becomes the default.
func (s *TrackingService) AddToWatchlist(ctx context.Context, e *models.WatchlistEntry) error {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return ErrTitleRequired
	}
	if e.Priority == 0 {
		e.Priority = models.DefaultPriority
	}
	if !models.ValidPriority(e.Priority) {
		return fmt.Errorf("%w, got %d", ErrInvalidPriority, e.Priority)
	}
	return s.store.AddWatchlistEntry(ctx, e)
}

func (s *TrackingService) Watchlist(ctx context.Context) ([]models.WatchlistEntry, error) {
	return s.store.ListWatchlist(ctx)
}

func (s *TrackingService) MarkWatchlistWatched(ctx context.Context, id int) error {
	return s.store.MarkWatchlistWatched(ctx, id)
}

// LogWatch validates and appends a watch event, stamping it with the
// current time when no date is given.
func (s *TrackingService) LogWatch(ctx context.Context, e *models.WatchLogEntry) error {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return ErrTitleRequired
	}
	if e.Rating != nil && !models.ValidUserRating(*e.Rating) {
		return fmt.Errorf("%w, got %d", ErrInvalidRating, *e.Rating)
	}
	if e.WatchDate.IsZero() {
		e.WatchDate = s.now()
	}
	return s.store.LogWatch(ctx, e)
}

func (s *TrackingService) Stats(ctx context.Context) (*models.WatchStats, error) {
	return s.store.WatchStats(ctx, s.now())
}
