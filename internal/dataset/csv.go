package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rahullath/serializd-ai/internal/analysis"
	"github.com/rahullath/serializd-ai/internal/models"
)

// Column names shared by the watched-shows and reviews tables.
const (
	ColTitle            = "Title"
	ColTMDBID           = "TMDB_ID"
	ColGenres           = "Genres"
	ColOverview         = "Overview"
	ColFirstAirDate     = "First_Air_Date"
	ColStatus           = "Status"
	ColNumberOfSeasons  = "Number_of_Seasons"
	ColNumberOfEpisodes = "Number_of_Episodes"
	ColNetworks         = "Networks"
	ColOriginalLanguage = "Original_Language"
	ColPopularity       = "Popularity"
	ColVoteAverage      = "Vote_Average"
	ColRating           = "Rating"
	ColReviewText       = "Review_Text"
	ColWatchDate        = "Watch_Date"
)

// EnrichedColumns is the header written for enriched watched shows.
var EnrichedColumns = []string{
	ColTitle, ColTMDBID, ColGenres, ColOverview, ColFirstAirDate, ColStatus,
	ColNumberOfSeasons, ColNumberOfEpisodes, ColNetworks, ColOriginalLanguage,
	ColPopularity, ColVoteAverage,
}

// ErrMissingTitleColumn is returned for tables without a Title column.
var ErrMissingTitleColumn = errors.New("table has no Title column")

// row gives by-name access to a CSV record.
type row struct {
	index  map[string]int
	record []string
}

func (r row) get(col string) string {
	i, ok := r.index[col]
	if !ok || i >= len(r.record) {
		return ""
	}
	v := strings.TrimSpace(r.record[i])
	if v == models.NotAvailable {
		return ""
	}
	return v
}

func (r row) float(col string) *float64 {
	v := r.get(col)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) {
		return nil
	}
	return &f
}

// int accepts integral floats such as "8.0", which spreadsheet exports
// produce for numeric columns with gaps.
func (r row) int(col string) *int {
	f := r.float(col)
	if f == nil || *f != math.Trunc(*f) {
		return nil
	}
	n := int(*f)
	return &n
}

func readTable(path string, fn func(row) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read header of %s: %w", path, err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	if _, ok := index[ColTitle]; !ok {
		return fmt.Errorf("%s: %w", path, ErrMissingTitleColumn)
	}

	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		line++
		if err != nil {
			slog.Warn("skipping malformed csv row", "file", path, "line", line, "error", err)
			continue
		}
		if err := fn(row{index: index, record: record}); err != nil {
			return err
		}
	}
}

// ReadWatchedShows parses a watched-shows table. Rows without a title are
// skipped; unparseable fields are treated as absent.
func ReadWatchedShows(path string) ([]models.WatchedShow, error) {
	var shows []models.WatchedShow
	err := readTable(path, func(r row) error {
		title := r.get(ColTitle)
		if title == "" {
			return nil
		}
		shows = append(shows, models.WatchedShow{
			Title:            title,
			Genres:           analysis.SplitList(r.get(ColGenres)),
			VoteAverage:      r.float(ColVoteAverage),
			Popularity:       r.float(ColPopularity),
			NumberOfSeasons:  r.int(ColNumberOfSeasons),
			NumberOfEpisodes: r.int(ColNumberOfEpisodes),
			Networks:         analysis.SplitList(r.get(ColNetworks)),
			OriginalLanguage: r.get(ColOriginalLanguage),
			TMDBID:           r.int(ColTMDBID),
			Overview:         r.get(ColOverview),
			FirstAirDate:     r.get(ColFirstAirDate),
			Status:           r.get(ColStatus),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return shows, nil
}

// LoadWatchedShows reads the enriched table when it exists and falls back
// to the basic one otherwise.
func LoadWatchedShows(enrichedPath, basicPath string) ([]models.WatchedShow, error) {
	if _, err := os.Stat(enrichedPath); err == nil {
		slog.Info("loading enriched watched shows", "file", enrichedPath)
		return ReadWatchedShows(enrichedPath)
	}
	slog.Info("enriched watched shows not found, using basic table", "file", basicPath)
	return ReadWatchedShows(basicPath)
}

// ReadReviews parses the reviews table.
func ReadReviews(path string) ([]models.Review, error) {
	var reviews []models.Review
	err := readTable(path, func(r row) error {
		title := r.get(ColTitle)
		if title == "" {
			return nil
		}
		reviews = append(reviews, models.Review{
			Title:      title,
			RatingRaw:  orNA(r.get(ColRating)),
			ReviewText: orNA(r.get(ColReviewText)),
			WatchDate:  r.get(ColWatchDate),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// WriteWatchedShows writes shows with the enriched header. Absent values
// are written as N/A.
func WriteWatchedShows(path string, shows []models.WatchedShow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(EnrichedColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, s := range shows {
		record := []string{
			s.Title,
			formatInt(s.TMDBID),
			joinList(s.Genres),
			orNA(s.Overview),
			orNA(s.FirstAirDate),
			orNA(s.Status),
			formatInt(s.NumberOfSeasons),
			formatInt(s.NumberOfEpisodes),
			joinList(s.Networks),
			orNA(s.OriginalLanguage),
			formatFloat(s.Popularity),
			formatFloat(s.VoteAverage),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write %q: %w", s.Title, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

func orNA(s string) string {
	if s == "" {
		return models.NotAvailable
	}
	return s
}

func joinList(xs []string) string {
	return orNA(strings.Join(xs, ", "))
}

func formatInt(v *int) string {
	if v == nil {
		return models.NotAvailable
	}
	return strconv.Itoa(*v)
}

func formatFloat(v *float64) string {
	if v == nil {
		return models.NotAvailable
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
