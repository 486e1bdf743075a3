// Package deque provides a generic doubly-linked double-ended queue.
//
// What:
//
//   - Deque[T] supports O(1) insertion and removal at both ends.
//   - Values preserves front-to-back order for inspection.
//
// Why:
//
//   - The classic warm-up container: a queue and a stack in one type,
//     with strict constant-time end operations (no amortization).
//
// Complexity:
//
//   - PushFront / PushBack / PopFront / PopBack / Len: O(1).
//   - Values: O(n).
//
// Errors:
//
//   - ErrEmptyDeque: a pop or peek on an empty deque.
//
// A Deque is not safe for concurrent use; guard it externally if shared.
package deque
