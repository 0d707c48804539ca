package fixedtable

import (
	"iter"

	"github.com/djdv/go-fixedtable/internal/recency"
	"github.com/djdv/go-fixedtable/internal/slots"
)

// Table is a fixed-capacity string to int map
// which tracks the order its entries were last inserted or updated.
// Concurrent access must be guarded by the caller,
// including iteration.
// Constructed by [New].
type Table struct {
	store  *slots.Store
	recent *recency.List
	size   int
}

// MinimumCapacity defines the lowest value supported by [New].
const MinimumCapacity = 1

// New creates a [Table] with the given capacity.
// The capacity never changes.
func New(capacity int) (*Table, error) {
	if capacity < MinimumCapacity {
		return nil, minCapacityError(capacity)
	}
	store, err := slots.New(capacity)
	if err != nil {
		return nil, err
	}
	return &Table{
		store:  store,
		recent: recency.New(capacity),
	}, nil
}

// Insert sets key to value and marks it as the most recent entry,
// whether the key is new or already present.
// If key is new and no slot is available, [ErrTableFull]
// is returned and the table is unchanged.
func (t *Table) Insert(key string, value int) error {
	found, insert := t.store.Probe(key)
	switch {
	case found != slots.None:
		t.store.SetValue(found, value)
		t.recent.MoveToHead(found)
	case insert != slots.None:
		t.store.Occupy(insert, key, value)
		t.recent.LinkToHead(insert)
		t.size++
	default:
		return tableFullError(key, t.store.Cap())
	}
	if debugging {
		t.checkInvariants()
	}
	return nil
}

// Get returns the value for key, or [ErrKeyNotFound].
// Recency is not affected.
func (t *Table) Get(key string) (int, error) {
	found, _ := t.store.Probe(key)
	if found == slots.None {
		return 0, keyNotFoundError(key)
	}
	return t.store.Value(found), nil
}

// Remove deletes key, or returns [ErrKeyNotFound].
// The remaining entries keep their relative order.
func (t *Table) Remove(key string) error {
	found, _ := t.store.Probe(key)
	if found == slots.None {
		return keyNotFoundError(key)
	}
	t.recent.Unlink(found)
	t.store.Vacate(found)
	t.size--
	if debugging {
		t.checkInvariants()
	}
	return nil
}

// MostRecent returns the most recently inserted or updated entry.
// If the table is empty, [ErrEmptyTable] is returned.
func (t *Table) MostRecent() (string, int, error) {
	return t.entry(t.recent.Head())
}

// LeastRecent returns the least recently inserted or updated entry.
// If the table is empty, [ErrEmptyTable] is returned.
func (t *Table) LeastRecent() (string, int, error) {
	return t.entry(t.recent.Tail())
}

func (t *Table) entry(i int) (string, int, error) {
	if i == recency.None {
		return "", 0, ErrEmptyTable
	}
	return t.store.Key(i), t.store.Value(i), nil
}

// Items returns an iterator over every entry in slot order
// (which is unrelated to insertion or recency order).
// The behavior of Items is undefined if the table
// is modified during iteration.
func (t *Table) Items() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		store := t.store
		for i := range store.Cap() {
			if store.State(i) != slots.Occupied {
				continue
			}
			if !yield(store.Key(i), store.Value(i)) {
				return
			}
		}
	}
}

// Recent returns an iterator over every entry
// from most to least recently inserted or updated.
// The behavior of Recent is undefined if the table
// is modified during iteration.
func (t *Table) Recent() iter.Seq2[string, int] {
	return t.walk(t.recent.All())
}

// Oldest is the reverse of [Table.Recent],
// iterating from least to most recent.
func (t *Table) Oldest() iter.Seq2[string, int] {
	return t.walk(t.recent.Backward())
}

func (t *Table) walk(indices iter.Seq[int]) iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for i := range indices {
			if !yield(t.store.Key(i), t.store.Value(i)) {
				return
			}
		}
	}
}

// Len returns the number of entries.
func (t *Table) Len() int { return t.size }

// Cap returns the number of slots.
func (t *Table) Cap() int { return t.store.Cap() }

func (t *Table) checkInvariants() {
	var (
		head = t.recent.Head()
		tail = t.recent.Tail()
	)
	assert(t.size >= 0 && t.size <= t.store.Cap(),
		"size out of range")
	assert((head == recency.None) == (t.size == 0),
		"head presence disagrees with size")
	assert((tail == recency.None) == (t.size == 0),
		"tail presence disagrees with size")
	linked := 0
	for i := range t.recent.All() {
		assert(t.store.State(i) == slots.Occupied,
			"recency list holds a non-occupied slot")
		linked++
	}
	assert(linked == t.size,
		"recency list length disagrees with size")
}
