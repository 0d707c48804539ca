package fixedtable

import "fmt"

type constError string

const (
	// ErrInvalidCapacity may be returned from [New].
	ErrInvalidCapacity = constError("invalid capacity")
	// ErrTableFull is returned when a new key has no slot to occupy.
	ErrTableFull = constError("table full")
	// ErrKeyNotFound is returned when a key is not present.
	ErrKeyNotFound = constError("key not found")
	// ErrEmptyTable is returned when recency is queried on an empty table.
	ErrEmptyTable = constError("table empty")
)

func (errStr constError) Error() string { return string(errStr) }

func minCapacityError(capacity int) error {
	return fmt.Errorf(
		"%w: must be >=%d but %d was requested",
		ErrInvalidCapacity, MinimumCapacity, capacity)
}

func tableFullError(key string, capacity int) error {
	return fmt.Errorf(
		"%w: no slot for %q in %d slots",
		ErrTableFull, key, capacity)
}

func keyNotFoundError(key string) error {
	return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
}
