package analysis

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/rahullath/serializd-ai/internal/models"
)

// gradeScale maps letter grades to the 0-10 scale.
var gradeScale = map[string]float64{
	"A+": 10, "A": 9, "A-": 8.5,
	"B+": 8, "B": 7, "B-": 6.5,
	"C+": 6, "C": 5, "C-": 4.5,
	"D+": 4, "D": 3, "F": 1,
}

// NormalizeRating converts a raw rating token ("4/5", "3.5", "8", "B+") to
// the 0-10 scale. The second return value is false when the token cannot be
// interpreted; such tokens are excluded from every aggregate.
func NormalizeRating(raw string) (float64, bool) {
	token := strings.TrimSpace(raw)
	if token == "" || token == models.NotAvailable {
		return 0, false
	}

	if strings.Contains(token, "/") {
		parts := strings.Split(token, "/")
		if len(parts) != 2 {
			return 0, false
		}
		num, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return 0, false
		}
		den, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || den == 0 {
			return 0, false
		}
		return (num / den) * 10, true
	}

	if isPlainNumber(token) {
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return 0, false
		}
		// Values up to 5 are on a five-point scale.
		if v <= 5 {
			v *= 2
		}
		return v, true
	}

	if v, ok := gradeScale[token]; ok {
		return v, true
	}
	return 0, false
}

// isPlainNumber reports whether s is all digits once a single decimal
// point is removed.
func isPlainNumber(s string) bool {
	s = strings.Replace(s, ".", "", 1)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// AnalyzeRatings summarizes the normalized ratings of all reviews. It
// returns nil when no rating could be parsed.
func AnalyzeRatings(reviews []models.Review) *models.RatingPatterns {
	ratings := make([]float64, 0, len(reviews))
	for _, r := range reviews {
		if v, ok := NormalizeRating(r.RatingRaw); ok {
			ratings = append(ratings, v)
		}
	}
	if len(ratings) == 0 {
		slog.Warn("no valid rating data found")
		return nil
	}

	mean, std := stat.PopMeanStdDev(ratings, nil)
	dist := make(map[string]int)
	for _, r := range ratings {
		dist[strconv.Itoa(int(math.RoundToEven(r)))]++
	}

	patterns := &models.RatingPatterns{
		AverageRating:      mean,
		MedianRating:       median(ratings),
		StdRating:          std,
		MinRating:          floats.Min(ratings),
		MaxRating:          floats.Max(ratings),
		TotalRatedShows:    len(ratings),
		RatingDistribution: dist,
	}
	slog.Info("analyzed ratings", "count", len(ratings), "average", mean)
	return patterns
}
