// Package slots is the fixed-size backing store of an
// open-addressing table, along with its linear probe.
package slots

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

type (
	// State is the occupancy of a slot.
	State uint8
	// Store holds parallel per-slot state, key, and value arrays.
	// Its capacity is fixed at construction.
	Store struct {
		states []State
		keys   []string
		values []int
	}
	constError string
)

const (
	// Empty slots have never held a key.
	// They terminate probes.
	Empty State = iota
	// Occupied slots hold a live key and value.
	Occupied
	// Deleted slots are tombstones.
	// Probes skip over them, and inserts may reuse them.
	Deleted
)

// None is returned in place of an index when there is no such slot.
const None = -1

// ErrInvalidCapacity may be returned from [New].
const ErrInvalidCapacity = constError("invalid capacity")

func (errStr constError) Error() string { return string(errStr) }

// New allocates a store of capacity slots, all [Empty].
func New(capacity int) (*Store, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf(
			"%w: must be >0 but %d was requested",
			ErrInvalidCapacity, capacity)
	}
	return &Store{
		states: make([]State, capacity),
		keys:   make([]string, capacity),
		values: make([]int, capacity),
	}, nil
}

func (s *Store) Cap() int              { return len(s.states) }
func (s *Store) State(i int) State     { return s.states[i] }
func (s *Store) Key(i int) string      { return s.keys[i] }
func (s *Store) Value(i int) int       { return s.values[i] }
func (s *Store) SetValue(i, value int) { s.values[i] = value }

// Occupy stores key and value in slot i.
// The slot must not be [Occupied].
func (s *Store) Occupy(i int, key string, value int) {
	s.states[i] = Occupied
	s.keys[i] = key
	s.values[i] = value
}

// Vacate turns slot i into a tombstone, clearing its key and value.
func (s *Store) Vacate(i int) {
	s.states[i] = Deleted
	s.keys[i] = ""
	s.values[i] = 0
}

func (s *Store) start(key string) int {
	return int(xxhash.Sum64String(key) % uint64(len(s.states)))
}

// Probe searches for key, starting at its home slot and
// stepping forward one slot at a time (wrapping).
//
// If key is present, found is its slot and insert is [None].
// Otherwise found is [None] and insert is the first tombstone
// passed over, or the [Empty] slot that ended the search.
// A search that cycles back to its start without meeting
// an empty slot ends there; insert is then the first tombstone,
// or [None] if every slot is occupied.
func (s *Store) Probe(key string) (found, insert int) {
	var (
		capacity  = len(s.states)
		start     = s.start(key)
		tombstone = None
	)
	for i := start; ; {
		switch s.states[i] {
		case Empty:
			if tombstone != None {
				return None, tombstone
			}
			return None, i
		case Occupied:
			if s.keys[i] == key {
				return i, None
			}
		case Deleted:
			if tombstone == None {
				tombstone = i
			}
		}
		if i++; i == capacity {
			i = 0
		}
		if i == start {
			return None, tombstone
		}
	}
}
