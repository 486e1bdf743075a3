package percolation

import (
	"fmt"
	"math"
	"math/rand"
)

// confidence95 is the normal-approximation z-value for a two-sided 95%
// confidence interval.
const confidence95 = 1.96

// statsDefaultSeed is the fixed seed used when callers pass seed==0,
// keeping unseeded estimates reproducible.
const statsDefaultSeed int64 = 1

// StatsOption configures EstimateThreshold via functional arguments.
type StatsOption func(*statsConfig)

type statsConfig struct {
	seed int64
}

// WithSeed fixes the random stream used to order site openings.
// Seed 0 selects the package default.
func WithSeed(seed int64) StatsOption {
	return func(c *statsConfig) { c.seed = seed }
}

// Stats holds the outcome of a Monte Carlo threshold estimation.
type Stats struct {
	thresholds []float64
	mean       float64
	stddev     float64
}

// EstimateThreshold performs trials independent experiments on an
// n-by-n grid: each trial opens blocked sites in uniformly random
// order until the system percolates and records the open fraction.
// Returns ErrBadDimension when n < 1 or trials < 1.
// Complexity: O(trials·N²·α(N²)).
func EstimateThreshold(n, trials int, opts ...StatsOption) (*Stats, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: grid side %d", ErrBadDimension, n)
	}
	if trials < 1 {
		return nil, fmt.Errorf("%w: trial count %d", ErrBadDimension, trials)
	}
	cfg := statsConfig{seed: 0}
	for _, opt := range opts {
		opt(&cfg)
	}
	seed := cfg.seed
	if seed == 0 {
		seed = statsDefaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	n2 := n * n
	sites := make([]int, n2)
	for p := range sites {
		sites[p] = p
	}

	thresholds := make([]float64, trials)
	for t := 0; t < trials; t++ {
		rng.Shuffle(n2, func(i, j int) { sites[i], sites[j] = sites[j], sites[i] })

		grid, err := New(n)
		if err != nil {
			return nil, err
		}
		opened := 0
		for !grid.Percolates() {
			p := sites[opened]
			opened++
			// Coordinates derived from a dense site index are always
			// valid, so Open cannot fail here.
			if err := grid.Open(p/n+1, p%n+1); err != nil {
				return nil, err
			}
		}
		thresholds[t] = float64(grid.OpenCount()) / float64(n2)
	}

	s := &Stats{thresholds: thresholds}
	s.mean = mean(thresholds)
	s.stddev = stddev(thresholds, s.mean)

	return s, nil
}

// Trials returns the number of experiments behind the estimate.
func (s *Stats) Trials() int { return len(s.thresholds) }

// Mean returns the sample mean of the percolation threshold.
func (s *Stats) Mean() float64 { return s.mean }

// Stddev returns the sample standard deviation of the threshold.
// Zero when only one trial ran.
func (s *Stats) Stddev() float64 { return s.stddev }

// ConfidenceLo returns the lower endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceLo() float64 {
	return s.mean - confidence95*s.stddev/math.Sqrt(float64(len(s.thresholds)))
}

// ConfidenceHi returns the upper endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceHi() float64 {
	return s.mean + confidence95*s.stddev/math.Sqrt(float64(len(s.thresholds)))
}

// mean is the arithmetic mean of a non-empty sample.
func mean(a []float64) float64 {
	sum := 0.0
	for _, v := range a {
		sum += v
	}
	return sum / float64(len(a))
}

// stddev is the sample standard deviation around m (n−1 denominator).
func stddev(a []float64, m float64) float64 {
	if len(a) < 2 {
		return 0
	}
	sum := 0.0
	for _, v := range a {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(a)-1))
}
