package analysis

import (
	"math"
	"sort"
)

// median returns the middle value of xs, averaging the two middle values
// for even lengths. xs is not modified.
func median(xs []float64) float64 {
	return percentile(xs, 0.5)
}

// percentile returns the q-th quantile of xs using linear interpolation
// between closest ranks. xs is not modified.
func percentile(xs []float64, q float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// counter counts labels and remembers the order they were first seen in,
// so ties rank by first appearance.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(label string) {
	if _, ok := c.counts[label]; !ok {
		c.order = append(c.order, label)
	}
	c.counts[label]++
}

func (c *counter) len() int { return len(c.order) }

// mostCommon returns up to n labels by descending count; n <= 0 returns all.
func (c *counter) mostCommon(n int) []labelCount {
	out := make([]labelCount, 0, len(c.order))
	for _, l := range c.order {
		out = append(out, labelCount{label: l, count: c.counts[l]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].count > out[j].count })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

type labelCount struct {
	label string
	count int
}
