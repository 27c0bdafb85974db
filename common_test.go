package main

import (
	"testing"
)

func TestCircularQueue(t *testing.T) {
	q := NewCircularQueue[int](4)

	if !q.IsEmpty() {
		t.Fatal("new queue not empty")
	}

	for i := 1; i <= 4; i++ {
		q.Enqueue(i)
	}
	if !q.IsFull() {
		t.Fatal("queue not full after filling")
	}

	// overgrowing drops the oldest items
	q.Enqueue(5)
	q.Enqueue(6)

	if got := q.PeekFirst(); got != 3 {
		t.Errorf("PeekFirst: %d, want 3", got)
	}
	if got := q.PeekLast(); got != 6 {
		t.Errorf("PeekLast: %d, want 6", got)
	}
	for i, want := range []int{3, 4, 5, 6} {
		if got := q.At(i); got != want {
			t.Errorf("At(%d): %d, want %d", i, got, want)
		}
	}

	for _, want := range []int{3, 4, 5, 6} {
		if got := q.Dequeue(); got != want {
			t.Errorf("Dequeue: %d, want %d", got, want)
		}
	}
	if !q.IsEmpty() {
		t.Error("queue not empty after draining")
	}

	// interleaved enqueue and dequeue across the wrap point
	q.Enqueue(7)
	q.Enqueue(8)
	if got := q.Dequeue(); got != 7 {
		t.Errorf("Dequeue after refill: %d, want 7", got)
	}
	q.Enqueue(9)
	if got, want := q.PeekFirst(), 8; got != want {
		t.Errorf("PeekFirst after wrap: %d, want %d", got, want)
	}
	if got, want := q.Length, 2; got != want {
		t.Errorf("Length after wrap: %d, want %d", got, want)
	}
}

func TestCircularQueueDequeueEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Dequeue on an empty queue did not panic")
		}
	}()

	q := NewCircularQueue[int](2)
	q.Dequeue()
}
