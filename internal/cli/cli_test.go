package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahullath/serializd-ai/internal/models"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func intPtr(n int) *int { return &n }

func TestPrinter_Recommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Recommendations(nil)
	assert.Equal(t, "No recommendations available. Run generate first.\n", buf.String())

	buf.Reset()
	p.Recommendations([]models.ScoredRecommendation{{
		Candidate: models.Candidate{
			Title:       "Dark",
			VoteAverage: 8.4,
			Reason:      "Recommended based on Severance",
			Overview:    strings.Repeat("a", 120),
		},
		Score:        0.8125,
		ScoreReasons: []string{"High rating (8.4/10)", "Popular show"},
	}})
	out := buf.String()
	assert.Contains(t, out, "YOUR PERSONALIZED TV RECOMMENDATIONS")
	assert.Contains(t, out, "1. Dark\n")
	assert.Contains(t, out, "   Score: 0.81/1.0\n")
	assert.Contains(t, out, "   Rating: 8.4/10\n")
	assert.Contains(t, out, "   Reason: Recommended based on Severance\n")
	assert.Contains(t, out, "   Why: High rating (8.4/10); Popular show\n")
	assert.Contains(t, out, "   Overview: "+strings.Repeat("a", 100)+"...\n")
}

func TestPrinter_WatchlistAndStats(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Watchlist(nil)
	assert.Equal(t, "Your watchlist is empty.\n", buf.String())

	buf.Reset()
	p.Watchlist([]models.WatchlistEntry{{
		ID:        3,
		Title:     "Severance",
		Priority:  8,
		Notes:     "season 2",
		AddedDate: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}})
	out := buf.String()
	assert.Contains(t, out, "1. Severance\n")
	assert.Contains(t, out, "   Priority: 8/10\n")
	assert.Contains(t, out, "   Notes: season 2\n")
	assert.Contains(t, out, "   Added: 2024-03-01\n")

	buf.Reset()
	p.Stats(nil)
	assert.Equal(t, "No watching statistics available.\n", buf.String())

	buf.Reset()
	p.Stats(&models.WatchStats{
		TotalWatches:  12,
		WeekWatches:   3,
		AverageRating: 8.25,
		TopShows:      []models.TitleCount{{Title: "The Bear", Count: 5}},
	})
	out = buf.String()
	assert.Contains(t, out, "Total Episodes/Shows Watched: 12\n")
	assert.Contains(t, out, "Watched This Week: 3\n")
	assert.Contains(t, out, "Average Rating: 8.25/10\n")
	assert.Contains(t, out, "  1. The Bear: 5 episodes\n")
}

func TestDescribeWatch(t *testing.T) {
	tests := []struct {
		entry models.WatchLogEntry
		want  string
	}{
		{models.WatchLogEntry{Title: "Shogun"}, "Shogun"},
		{models.WatchLogEntry{Title: "The Bear", Season: intPtr(2)}, "The Bear S2"},
		{models.WatchLogEntry{Title: "The Bear", Season: intPtr(2), Episode: intPtr(7)}, "The Bear S2E7"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, describeWatch(&tt.entry))
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	for _, bad := range []string{"", "abc", "0", "-3"} {
		_, err := parseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestRootCommand_Tree(t *testing.T) {
	root := NewRootCommand()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"analyze", "enrich", "generate", "recommendations", "watchlist", "log", "stats", "menu", "serve"} {
		assert.Contains(t, names, want)
	}

	wl, _, err := root.Find([]string{"watchlist", "add"})
	require.NoError(t, err)
	assert.Equal(t, "5", wl.Flags().Lookup("priority").DefValue)
}

func TestAnalyzeCommand(t *testing.T) {
	dir := t.TempDir()
	basic := filepath.Join(dir, "final_watched_shows.csv")
	profile := filepath.Join(dir, "taste_analysis.json")
	require.NoError(t, os.WriteFile(basic, []byte(
		"Title,Genres,Vote_Average\nSeverance,Drama,8.4\nThe Bear,\"Drama, Comedy\",8.6\n",
	), 0o644))

	t.Setenv("WATCHED_SHOWS_FILE", basic)
	t.Setenv("ENRICHED_SHOWS_FILE", filepath.Join(dir, "missing.csv"))
	t.Setenv("REVIEWS_FILE", filepath.Join(dir, "reviews.csv"))
	t.Setenv("TASTE_PROFILE_FILE", profile)

	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"analyze"})

	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "Total shows analyzed: 2\n")
	assert.Contains(t, out.String(), "  1. Drama: 2 shows (100.0%)\n")
	assert.Contains(t, out.String(), "Taste profile saved to "+profile)
	assert.FileExists(t, profile)
}

func TestAnalyzeCommand_NoWatchedShows(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WATCHED_SHOWS_FILE", filepath.Join(dir, "a.csv"))
	t.Setenv("ENRICHED_SHOWS_FILE", filepath.Join(dir, "b.csv"))
	t.Setenv("TASTE_PROFILE_FILE", filepath.Join(dir, "taste_analysis.json"))

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"analyze"})

	require.Error(t, root.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "taste analysis unavailable")
}

func TestGenerateCommand_RequiresAPIKey(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")

	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"generate"})

	err := root.ExecuteContext(context.Background())
	assert.ErrorContains(t, err, "TMDB_API_KEY")
}
