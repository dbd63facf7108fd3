package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/rahullath/serializd-ai/internal/config"
	"github.com/rahullath/serializd-ai/internal/dataset"
	"github.com/rahullath/serializd-ai/internal/models"
)

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// testFiles points every data file into a fresh temp dir.
func testFiles(t *testing.T) config.FileConfig {
	t.Helper()
	dir := t.TempDir()
	return config.FileConfig{
		WatchedShows:  filepath.Join(dir, "final_watched_shows.csv"),
		EnrichedShows: filepath.Join(dir, "enriched_watched_shows.csv"),
		Reviews:       filepath.Join(dir, "serializd_reviews.csv"),
		TasteProfile:  filepath.Join(dir, "taste_analysis.json"),
	}
}

func writeCSV(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func saveDramaProfile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, dataset.SaveProfile(path, &models.TasteProfile{
		GenrePreferences: models.GenrePreferences{
			{Genre: "Drama", Count: 8, Percentage: 80},
			{Genre: "Comedy", Count: 2, Percentage: 20},
		},
		ShowClusters: map[string]models.ShowCluster{},
		Insights:     []string{},
	}))
}

func newRedisCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewCache(rdb), mr
}
