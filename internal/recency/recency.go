// Package recency is an intrusive doubly linked list over slot indices,
// ordered from most to least recently touched.
//
// Links are stored in parallel index arrays rather than nodes,
// so the list never allocates after construction.
package recency

import "iter"

type (
	// List tracks touch order of indices in [0, capacity).
	// The zero value is not usable; construct with [New].
	List struct {
		prev, next []int
		head, tail int
	}
)

// None marks the absence of a neighbour, head, or tail.
const None = -1

// New creates an empty list able to hold indices [0, capacity).
func New(capacity int) *List {
	l := &List{
		prev: make([]int, capacity),
		next: make([]int, capacity),
		head: None,
		tail: None,
	}
	for i := range capacity {
		l.prev[i] = None
		l.next[i] = None
	}
	return l
}

// Head returns the most recent index, or [None].
func (l *List) Head() int { return l.head }

// Tail returns the least recent index, or [None].
func (l *List) Tail() int { return l.tail }

// Next returns the index touched just before i, or [None].
func (l *List) Next(i int) int { return l.next[i] }

// Prev returns the index touched just after i, or [None].
func (l *List) Prev(i int) int { return l.prev[i] }

// LinkToHead adds i as the most recent index.
// i must not currently be linked.
func (l *List) LinkToHead(i int) {
	l.prev[i] = None
	l.next[i] = l.head
	if l.head != None {
		l.prev[l.head] = i
	}
	l.head = i
	if l.tail == None {
		l.tail = i
	}
}

// MoveToHead makes the linked index i the most recent.
func (l *List) MoveToHead(i int) {
	if i == l.head {
		return
	}
	l.Unlink(i)
	l.LinkToHead(i)
}

// Unlink splices the linked index i out of the list.
func (l *List) Unlink(i int) {
	prev, next := l.prev[i], l.next[i]
	if prev != None {
		l.next[prev] = next
	} else {
		l.head = next
	}
	if next != None {
		l.prev[next] = prev
	} else {
		l.tail = prev
	}
	l.prev[i] = None
	l.next[i] = None
}

// All returns an iterator from head (most recent) to tail.
// The behavior of All is undefined if the list is modified
// during iteration.
func (l *List) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := l.head; i != None; i = l.next[i] {
			if !yield(i) {
				return
			}
		}
	}
}

// Backward returns an iterator from tail (least recent) to head.
func (l *List) Backward() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := l.tail; i != None; i = l.prev[i] {
			if !yield(i) {
				return
			}
		}
	}
}

// Len computes the number of linked indices.
// It executes in time proportional to that number.
func (l *List) Len() int {
	n := 0
	for range l.All() {
		n++
	}
	return n
}
