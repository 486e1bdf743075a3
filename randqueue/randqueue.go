package randqueue

import (
	"errors"
	"math/rand"
)

// ErrEmptyQueue is returned by Dequeue and Sample on an empty queue.
var ErrEmptyQueue = errors.New("randqueue: empty queue")

// defaultSeed is the fixed seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// minCapacity is the smallest buffer the queue shrinks back to.
const minCapacity = 8

// Option configures a Queue via functional arguments.
type Option func(*config)

type config struct {
	seed int64
}

// WithSeed fixes the random stream. Seed 0 selects the package default.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// Queue is a randomized FIFO-shaped container: items go in at the tail
// of a circular buffer and come out in uniformly random order. The zero
// value is not usable; construct with New.
type Queue[T any] struct {
	buf  []T
	head int // index of the logical first item
	size int
	rng  *rand.Rand
}

// New returns an empty randomized queue.
func New[T any](opts ...Option) *Queue[T] {
	cfg := config{seed: 0}
	for _, opt := range opts {
		opt(&cfg)
	}
	seed := cfg.seed
	if seed == 0 {
		seed = defaultSeed
	}
	return &Queue[T]{
		buf: make([]T, minCapacity),
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Len returns the number of stored items.
// Complexity: O(1).
func (q *Queue[T]) Len() int { return q.size }

// Enqueue appends v, growing the ring when full.
// Complexity: O(1) amortized.
func (q *Queue[T]) Enqueue(v T) {
	if q.size == len(q.buf) {
		q.resize(2 * len(q.buf))
	}
	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
}

// Dequeue removes and returns a uniformly random item, shrinking the
// ring at quarter occupancy. Returns ErrEmptyQueue when empty.
// Complexity: O(1) amortized.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	// Swap a random slot with the logical head, then advance the head:
	// uniform removal without shifting the buffer.
	i := (q.head + q.rng.Intn(q.size)) % len(q.buf)
	q.buf[i], q.buf[q.head] = q.buf[q.head], q.buf[i]

	v := q.buf[q.head]
	var zero T
	q.buf[q.head] = zero // release the reference
	q.head = (q.head + 1) % len(q.buf)
	q.size--

	if len(q.buf) > minCapacity && q.size <= len(q.buf)/4 {
		q.resize(len(q.buf) / 2)
	}
	return v, nil
}

// Sample returns a uniformly random item without removing it.
// Returns ErrEmptyQueue when empty.
// Complexity: O(1).
func (q *Queue[T]) Sample() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.buf[(q.head+q.rng.Intn(q.size))%len(q.buf)], nil
}

// Values returns the items in a fresh, independently shuffled order;
// the queue itself is untouched.
// Complexity: O(n).
func (q *Queue[T]) Values() []T {
	out := make([]T, 0, q.size)
	for i := 0; i < q.size; i++ {
		out = append(out, q.buf[(q.head+i)%len(q.buf)])
	}
	// Fisher–Yates, driven by the queue's own stream.
	for i := len(out) - 1; i > 0; i-- {
		j := q.rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// resize copies the live items into a buffer of the given capacity,
// re-anchoring the head at slot zero.
func (q *Queue[T]) resize(capacity int) {
	if capacity < minCapacity {
		capacity = minCapacity
	}
	next := make([]T, capacity)
	for i := 0; i < q.size; i++ {
		next[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = next
	q.head = 0
}
