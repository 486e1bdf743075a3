package deque

import "errors"

// ErrEmptyDeque is returned by pops and peeks on an empty deque.
var ErrEmptyDeque = errors.New("deque: empty deque")

// node is one link of the chain; prev points toward the front,
// next toward the back.
type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// Deque is a doubly-linked double-ended queue. The zero value is not
// usable; construct with New.
type Deque[T any] struct {
	front *node[T]
	back  *node[T]
	size  int
}

// New returns an empty deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// Len returns the number of stored items.
// Complexity: O(1).
func (d *Deque[T]) Len() int { return d.size }

// PushFront inserts v at the front.
// Complexity: O(1).
func (d *Deque[T]) PushFront(v T) {
	n := &node[T]{value: v, next: d.front}
	if d.front != nil {
		d.front.prev = n
	} else {
		d.back = n
	}
	d.front = n
	d.size++
}

// PushBack inserts v at the back.
// Complexity: O(1).
func (d *Deque[T]) PushBack(v T) {
	n := &node[T]{value: v, prev: d.back}
	if d.back != nil {
		d.back.next = n
	} else {
		d.front = n
	}
	d.back = n
	d.size++
}

// PopFront removes and returns the front item.
// Returns ErrEmptyDeque when the deque holds nothing.
// Complexity: O(1).
func (d *Deque[T]) PopFront() (T, error) {
	if d.front == nil {
		var zero T
		return zero, ErrEmptyDeque
	}
	n := d.front
	d.front = n.next
	if d.front != nil {
		d.front.prev = nil
	} else {
		d.back = nil
	}
	n.next = nil // unlink so the node is collectable
	d.size--

	return n.value, nil
}

// PopBack removes and returns the back item.
// Returns ErrEmptyDeque when the deque holds nothing.
// Complexity: O(1).
func (d *Deque[T]) PopBack() (T, error) {
	if d.back == nil {
		var zero T
		return zero, ErrEmptyDeque
	}
	n := d.back
	d.back = n.prev
	if d.back != nil {
		d.back.next = nil
	} else {
		d.front = nil
	}
	n.prev = nil
	d.size--

	return n.value, nil
}

// Front returns the front item without removing it.
// Complexity: O(1).
func (d *Deque[T]) Front() (T, error) {
	if d.front == nil {
		var zero T
		return zero, ErrEmptyDeque
	}
	return d.front.value, nil
}

// Back returns the back item without removing it.
// Complexity: O(1).
func (d *Deque[T]) Back() (T, error) {
	if d.back == nil {
		var zero T
		return zero, ErrEmptyDeque
	}
	return d.back.value, nil
}

// Values returns the items in front-to-back order. The slice is a
// fresh copy; mutating it does not touch the deque.
// Complexity: O(n).
func (d *Deque[T]) Values() []T {
	out := make([]T, 0, d.size)
	for n := d.front; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}
