// Package fixedtable implements a fixed-capacity [Table]
// mapping string keys to integer values.
//
// The table uses open addressing with linear probing,
// and marks removed slots as tombstones.
// Occupied slots are additionally threaded onto an intrusive
// recency list so that the most and least recently touched
// entries can be found in constant time.
//
// The following is a summary intended for maintainers.
//
// Slots:
//
//   - Empty
//
//     Never held a key. Ends a probe.
//
//   - Occupied
//
//     Holds a live key and value, and is linked into the recency list.
//
//   - Deleted
//
//     A tombstone. Probes for other keys skip it,
//     and the first one seen is preferred as an insertion slot.
//
// Probing:
//
//   - Start at hash(key) mod capacity and step forward by one, wrapping.
//
//   - Stop on the key, on an empty slot, or upon returning to the start.
//
//     The last case is what bounds a probe over a table that
//     holds no empty slot. If no tombstone was seen either,
//     the table is saturated and inserting a new key fails with [ErrTableFull].
//
// Recency:
//
//   - Head is the most recently touched entry, tail the least.
//
//   - [Table.Insert] always moves its slot to the head,
//     whether the key was new or only its value changed.
//
//   - [Table.Get] never changes order.
//
//   - [Table.Remove] unlinks its slot, leaving the rest in order.
//
// Limits:
//
//   - The table never grows or rehashes.
//     Callers handle [ErrTableFull] by rebuilding into a larger table.
//
//   - Tombstones are only reclaimed by reuse.
//     Long remove/insert churn lengthens probes toward O(capacity).
package fixedtable
