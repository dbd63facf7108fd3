package analysis

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/rahullath/serializd-ai/internal/models"
)

const (
	clusterSeed         = 42
	minClusters         = 2
	maxClusters         = 5
	showsPerCluster     = 10
	maxKMeansIterations = 300
	clusterTitlesShown  = 10
	clusterGenresShown  = 5
)

// ClusterCount returns clamp(n/10, 2, 5), never more than n.
func ClusterCount(n int) int {
	k := n / showsPerCluster
	if k > maxClusters {
		k = maxClusters
	}
	if k < minClusters {
		k = minClusters
	}
	if k > n {
		k = n
	}
	return k
}

// ClusterResult holds the per-show assignment alongside the summaries so
// callers can check membership.
type ClusterResult struct {
	Assignments []int
	Clusters    map[string]models.ShowCluster
}

// ClusterShows groups shows by one-hot genre membership plus standardized
// numeric attributes. vocabulary is the ordered list of genres to encode;
// when it is empty clustering is skipped and the result is empty.
func ClusterShows(shows []models.WatchedShow, vocabulary []string) ClusterResult {
	result := ClusterResult{Clusters: map[string]models.ShowCluster{}}
	if len(vocabulary) == 0 || len(shows) == 0 {
		slog.Warn("cannot cluster shows without genre data")
		return result
	}

	features := standardize(featureMatrix(shows, vocabulary))
	k := ClusterCount(len(shows))
	result.Assignments = kmeans(features, k, rand.New(rand.NewSource(clusterSeed)))

	members := make([][]int, k)
	for i, c := range result.Assignments {
		members[c] = append(members[c], i)
	}
	for c, idx := range members {
		result.Clusters[ClusterID(c)] = summarizeCluster(shows, idx)
	}

	slog.Info("clustered shows", "clusters", k, "shows", len(shows))
	return result
}

// ClusterID names the c-th cluster.
func ClusterID(c int) string {
	return fmt.Sprintf("cluster_%d", c)
}

func featureMatrix(shows []models.WatchedShow, vocabulary []string) [][]float64 {
	column := make(map[string]int, len(vocabulary))
	for i, g := range vocabulary {
		column[g] = i
	}
	width := len(vocabulary) + 4

	rows := make([][]float64, len(shows))
	for i, s := range shows {
		row := make([]float64, width)
		for _, g := range cleanList(s.Genres) {
			if j, ok := column[g]; ok {
				row[j] = 1
			}
		}
		base := len(vocabulary)
		row[base] = floatOrZero(s.VoteAverage)
		row[base+1] = floatOrZero(s.Popularity)
		row[base+2] = float64(intOrZero(s.NumberOfSeasons))
		row[base+3] = float64(intOrZero(s.NumberOfEpisodes))
		rows[i] = row
	}
	return rows
}

// standardize rescales every column to zero mean and unit population
// variance. Constant columns become all zeros.
func standardize(rows [][]float64) [][]float64 {
	if len(rows) == 0 {
		return rows
	}
	width := len(rows[0])
	col := make([]float64, len(rows))
	for j := 0; j < width; j++ {
		for i := range rows {
			col[i] = rows[i][j]
		}
		mean, std := stat.PopMeanStdDev(col, nil)
		for i := range rows {
			if std == 0 {
				rows[i][j] = 0
				continue
			}
			rows[i][j] = (rows[i][j] - mean) / std
		}
	}
	return rows
}

// kmeans partitions points into k clusters using k-means++ seeding drawn
// from rng followed by Lloyd iterations until assignments settle.
func kmeans(points [][]float64, k int, rng *rand.Rand) []int {
	centroids := seedCentroids(points, k, rng)
	assign := make([]int, len(points))
	for i := range assign {
		assign[i] = -1
	}

	for iter := 0; iter < maxKMeansIterations; iter++ {
		changed := false
		for i, p := range points {
			best := nearest(p, centroids)
			if assign[i] != best {
				assign[i] = best
				changed = true
			}
		}
		if !changed {
			break
		}

		sums := make([][]float64, k)
		counts := make([]int, k)
		for i, p := range points {
			c := assign[i]
			if sums[c] == nil {
				sums[c] = make([]float64, len(p))
			}
			for j, v := range p {
				sums[c][j] += v
			}
			counts[c]++
		}
		for c := range centroids {
			// An emptied cluster keeps its previous centroid.
			if counts[c] == 0 {
				continue
			}
			for j := range centroids[c] {
				centroids[c][j] = sums[c][j] / float64(counts[c])
			}
		}
	}
	return assign
}

func seedCentroids(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, clone(points[rng.Intn(len(points))]))

	dist := make([]float64, len(points))
	for len(centroids) < k {
		var total float64
		for i, p := range points {
			dist[i] = sqDist(p, centroids[nearest(p, centroids)])
			total += dist[i]
		}
		next := 0
		if total > 0 {
			target := rng.Float64() * total
			for i, d := range dist {
				target -= d
				if target < 0 {
					next = i
					break
				}
				next = i
			}
		} else {
			// All points coincide with a centroid; take the first unused one.
			next = len(centroids) % len(points)
		}
		centroids = append(centroids, clone(points[next]))
	}
	return centroids
}

func nearest(p []float64, centroids [][]float64) int {
	best := 0
	bestDist := math.Inf(1)
	for c, centroid := range centroids {
		if d := sqDist(p, centroid); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

func sqDist(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func clone(v []float64) []float64 {
	return append([]float64(nil), v...)
}

func summarizeCluster(shows []models.WatchedShow, idx []int) models.ShowCluster {
	cluster := models.ShowCluster{
		Size:      len(idx),
		Shows:     []string{},
		TopGenres: models.CountList{},
	}
	genres := newCounter()
	var ratings []float64
	for _, i := range idx {
		s := shows[i]
		if len(cluster.Shows) < clusterTitlesShown {
			cluster.Shows = append(cluster.Shows, s.Title)
		}
		for _, g := range cleanList(s.Genres) {
			genres.add(g)
		}
		if s.VoteAverage != nil {
			ratings = append(ratings, *s.VoteAverage)
		}
	}
	if genres.len() > 0 {
		cluster.TopGenres = toCountList(genres.mostCommon(clusterGenresShown))
	}
	if len(ratings) > 0 {
		avg := stat.Mean(ratings, nil)
		cluster.AvgRating = &avg
	}
	return cluster
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
