// Package queue provides a generic FIFO queue over github.com/ef-ds/deque.
package queue

import (
	"github.com/ef-ds/deque"
)

// Q is a first-in first-out queue. All operations are O(1) amortized except Drain.
type Q[T any] struct {
	items *deque.Deque
}

// New creates an empty Q
func New[T any]() *Q[T] {
	return &Q[T]{items: deque.New()}
}

// Enqueue appends item
func (q *Q[T]) Enqueue(item T) {
	q.items.PushBack(item)
}

// Dequeue removes and returns the oldest item
func (q *Q[T]) Dequeue() (T, bool) {
	return typed[T](q.items.PopFront())
}

// Front returns the oldest item without removing it
func (q *Q[T]) Front() (T, bool) {
	return typed[T](q.items.Front())
}

func (q *Q[T]) Len() int {
	return q.items.Len()
}

// Clear removes every item
func (q *Q[T]) Clear() {
	q.items.Init()
}

// Drain offers every item to keep, oldest first. Items keep returns true for stay queued in
// their original relative order. Items enqueued by keep are not offered.
func (q *Q[T]) Drain(keep func(item T) bool) {
	for n := q.items.Len(); n > 0; n-- {
		item, _ := q.Dequeue()
		if keep(item) {
			q.Enqueue(item)
		}
	}
}

func typed[T any](v interface{}, ok bool) (T, bool) {
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}
