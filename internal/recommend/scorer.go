package recommend

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rahullath/serializd-ai/internal/models"
)

// Rubric weights. They sum to 1, so a score never exceeds 1.
const (
	GenreWeight      = 0.4
	RatingWeight     = 0.3
	PopularityWeight = 0.2
	RecencyWeight    = 0.1

	MinVoteAverage     = 7.0
	MinPopularity      = 50.0
	PopularityCeiling  = 1000.0
	RecencyWindowYears = 5.0
	daysPerYear        = 365
	airDateLayout      = "2006-01-02"
)

// Scorer ranks candidates against a taste profile.
type Scorer struct {
	now func() time.Time
}

// NewScorer returns a Scorer measuring recency from now. A nil clock uses
// time.Now.
func NewScorer(now func() time.Time) *Scorer {
	if now == nil {
		now = time.Now
	}
	return &Scorer{now: now}
}

// Score applies the weighted rubric to every candidate and returns them
// sorted by descending score. Candidates with equal scores keep their input
// order. genreNames resolves TMDB genre ids; unknown ids match nothing.
func (s *Scorer) Score(profile *models.TasteProfile, candidates []models.Candidate, genreNames map[int]string) []models.ScoredRecommendation {
	preferred := profile.GenrePreferences.Names()
	now := s.now()

	scored := make([]models.ScoredRecommendation, 0, len(candidates))
	for _, c := range candidates {
		score, reasons := scoreCandidate(c, preferred, genreNames, now)
		scored = append(scored, models.ScoredRecommendation{
			Candidate:    c,
			Score:        score,
			ScoreReasons: reasons,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func scoreCandidate(c models.Candidate, preferred map[string]struct{}, genreNames map[int]string, now time.Time) (float64, []string) {
	var score float64
	reasons := []string{}

	// The denominator is the size of the preferred set, not the candidate's
	// own genre count.
	if m := genreMatches(c.GenreIDs, preferred, genreNames); m > 0 {
		score += math.Min(float64(m)/float64(len(preferred)), 1) * GenreWeight
		reasons = append(reasons, fmt.Sprintf("Matches %d of your favorite genres", m))
	}

	if c.VoteAverage >= MinVoteAverage {
		score += math.Min(c.VoteAverage/10, 1) * RatingWeight
		reasons = append(reasons, fmt.Sprintf("High rating (%s/10)", formatVote(c.VoteAverage)))
	}

	if c.Popularity > MinPopularity {
		score += math.Min(c.Popularity/PopularityCeiling, 1) * PopularityWeight
		reasons = append(reasons, "Popular show")
	}

	if age, ok := ageInYears(c.FirstAirDate, now); ok && age <= RecencyWindowYears {
		score += math.Max(0, (RecencyWindowYears-age)/RecencyWindowYears) * RecencyWeight
		reasons = append(reasons, "Recent show")
	}

	return score, reasons
}

func genreMatches(ids []int, preferred map[string]struct{}, genreNames map[int]string) int {
	matched := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		name, ok := genreNames[id]
		if !ok {
			continue
		}
		if _, ok := preferred[name]; ok {
			matched[name] = struct{}{}
		}
	}
	return len(matched)
}

// ageInYears returns whole elapsed days divided by 365. Future dates are
// age zero.
func ageInYears(airDate string, now time.Time) (float64, bool) {
	if airDate == "" {
		return 0, false
	}
	t, err := time.ParseInLocation(airDateLayout, airDate, now.Location())
	if err != nil {
		return 0, false
	}
	days := math.Floor(now.Sub(t).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days / daysPerYear, true
}

// formatVote renders a vote average with at least one decimal place, as
// TMDB displays it ("8.0", "8.25").
func formatVote(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
