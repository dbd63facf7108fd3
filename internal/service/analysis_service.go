package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/rahullath/serializd-ai/internal/analysis"
	"github.com/rahullath/serializd-ai/internal/config"
	"github.com/rahullath/serializd-ai/internal/dataset"
	"github.com/rahullath/serializd-ai/internal/models"
)

// AnalysisService builds and persists the taste profile.
type AnalysisService struct {
	files   config.FileConfig
	builder *analysis.Builder
}

func NewAnalysisService(files config.FileConfig, builder *analysis.Builder) *AnalysisService {
	return &AnalysisService{files: files, builder: builder}
}

// Analyze rebuilds the taste profile from the watched-shows and reviews
// tables and overwrites the profile document. A missing reviews table only
// leaves the review-based sections out.
func (s *AnalysisService) Analyze(ctx context.Context) (*models.TasteProfile, error) {
	shows, err := dataset.LoadWatchedShows(s.files.EnrichedShows, s.files.WatchedShows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWatchedShowsUnavailable, err)
	}

	reviews, err := dataset.ReadReviews(s.files.Reviews)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load reviews: %w", err)
		}
		slog.Warn("no reviews data found", "file", s.files.Reviews)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	profile := s.builder.Build(shows, reviews)
	if err := dataset.SaveProfile(s.files.TasteProfile, profile); err != nil {
		return nil, fmt.Errorf("save taste profile: %w", err)
	}
	slog.Info("saved taste profile", "file", s.files.TasteProfile)
	return profile, nil
}

// Profile returns the last saved taste profile.
func (s *AnalysisService) Profile(context.Context) (*models.TasteProfile, error) {
	return loadProfile(s.files.TasteProfile)
}

func loadProfile(path string) (*models.TasteProfile, error) {
	p, err := dataset.LoadProfile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProfileUnavailable, err)
	}
	return p, nil
}
