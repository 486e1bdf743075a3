// Package board models an immutable N×N sliding-tile puzzle board.
//
// What:
//
//   - Board wraps a validated row-major tile arrangement (0 = blank).
//   - Computes distance-to-goal metrics: Hamming, Manhattan, linear conflicts.
//   - Decides solvability from inversion parity in closed form.
//   - Enumerates neighbor boards (blank swapped with an orthogonal tile)
//     and the "twin" board (first two adjacent non-blank tiles swapped).
//
// Why:
//
//   - Search: the solver package expands boards as states of an implicit graph.
//   - Teaching: Hamming vs. Manhattan vs. linear-conflict heuristic quality.
//
// Complexity:
//
//   - New / Read:             O(N²) time and memory.
//   - Hamming / Manhattan:    O(N²).
//   - LinearConflicts:        O(N³) worst case (per-line pair scans).
//   - Inversions:             O(N⁴) worst case (quadratic in N² tiles).
//   - Twin / each neighbor:   O(N²) (copy-on-derive).
//
// Errors:
//
//   - ErrInvalidBoard: non-square input, side below 2, or a broken label set.
//   - ErrIndexOutOfRange: 1-based coordinate accessor outside [1,N].
//
// Boards are immutable: every derivation returns a fresh Board and no
// method mutates the receiver, so values may be shared freely.
package board
