// Package percolation models a percolation system on an N×N grid and
// estimates the percolation threshold by Monte Carlo simulation.
//
// What:
//
//   - Grid tracks open/blocked sites over weighted quick-union with two
//     virtual sites; Percolates asks whether the top row connects to the
//     bottom row through open sites.
//   - IsFull uses a second, bottom-free union-find so connectivity never
//     leaks backward through the bottom virtual site ("backwash").
//   - EstimateThreshold runs repeated trials, opening sites in random
//     order until the system percolates, and reports the sample mean,
//     standard deviation, and 95% confidence interval.
//
// Why:
//
//   - The classical union-find showcase: near-constant amortized
//     connectivity queries against ~N² dynamic connections.
//
// Complexity:
//
//   - Open / IsOpen / IsFull / Percolates: O(α(N²)) amortized.
//   - EstimateThreshold: O(T·N²·α(N²)) for T trials.
//
// Errors:
//
//   - ErrBadDimension: grid side or trial count below 1.
//   - ErrIndexOutOfRange: 1-based site coordinates outside [1,N].
//
// Coordinates are 1-based: (1,1) is the upper-left site, (N,N) the
// lower-right, matching the classical statement of the problem.
package percolation
