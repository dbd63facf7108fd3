package analysis

import (
	"log/slog"
	"strings"

	"github.com/rahullath/serializd-ai/internal/models"
)

// SplitList splits a comma-separated attribute such as "Drama, Crime",
// trimming entries and dropping empty ones and the "N/A" sentinel.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == models.NotAvailable {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" || part == models.NotAvailable {
			continue
		}
		out = append(out, part)
	}
	return out
}

// GenreStats is the result of aggregating genres across watched shows.
type GenreStats struct {
	Preferences models.GenrePreferences
	// ShowsWithGenres is the percentage denominator: shows that carried at
	// least one genre.
	ShowsWithGenres int
	// Vocabulary lists every genre in the order it was first seen.
	Vocabulary []string
}

// AggregateGenres counts genre frequencies across shows. Percentages are
// relative to the number of shows that carry any genre data. The result is
// ordered by descending count; ties keep first-seen order.
func AggregateGenres(shows []models.WatchedShow) GenreStats {
	c := newCounter()
	withGenres := 0
	for _, s := range shows {
		genres := cleanList(s.Genres)
		if len(genres) == 0 {
			continue
		}
		withGenres++
		for _, g := range genres {
			c.add(g)
		}
	}

	stats := GenreStats{
		Preferences:     models.GenrePreferences{},
		ShowsWithGenres: withGenres,
	}
	if withGenres == 0 {
		slog.Warn("no valid genre data found")
		return stats
	}

	stats.Vocabulary = append(stats.Vocabulary, c.order...)
	for _, lc := range c.mostCommon(0) {
		stats.Preferences = append(stats.Preferences, models.GenrePreference{
			Genre:      lc.label,
			Count:      lc.count,
			Percentage: float64(lc.count) / float64(withGenres) * 100,
		})
	}
	slog.Info("analyzed genres", "genres", len(stats.Preferences), "shows", withGenres)
	return stats
}

// cleanList drops blanks and sentinels that slipped into a parsed list.
func cleanList(genres []string) []string {
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g == "" || g == models.NotAvailable {
			continue
		}
		out = append(out, g)
	}
	return out
}
