// Package randqueue provides a generic randomized queue backed by a
// circular buffer.
//
// What:
//
//   - Queue[T] supports O(1) amortized enqueue and uniformly random
//     dequeue/sample.
//   - The buffer doubles when full and halves at quarter occupancy, so
//     memory stays proportional to the live item count.
//
// Why:
//
//   - Reservoir-style consumers: pull items in uniformly random order
//     without shuffling the whole collection up front.
//
// Complexity:
//
//   - Enqueue / Dequeue / Sample: O(1) amortized.
//   - Values: O(n).
//
// Determinism:
//
//   - Randomness comes from a seeded math/rand source. Seed 0 selects a
//     fixed default seed, so unseeded queues behave reproducibly; pass
//     WithSeed for an explicit stream.
//
// Errors:
//
//   - ErrEmptyQueue: dequeue or sample on an empty queue.
package randqueue
