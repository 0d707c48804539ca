// Package wordcount tallies word occurrences in a [fixedtable.Table].
package wordcount

import (
	"errors"
	"fmt"
	"iter"

	"github.com/djdv/go-fixedtable"
	"go.uber.org/zap"
)

type (
	// Counter counts words, where the most recent entry
	// is the word counted last (whether it was new or not).
	// Concurrent access must be guarded by the caller.
	Counter struct {
		table  *fixedtable.Table
		log    *zap.Logger
		growth int
	}
	// Option configures a [Counter].
	Option func(*Counter) error
)

// WithGrowth rebuilds the table into one factor times larger
// whenever it fills, instead of returning [fixedtable.ErrTableFull].
// A factor of 0 disables growth.
func WithGrowth(factor int) Option {
	return func(c *Counter) error {
		if factor != 0 && factor < 2 {
			return fmt.Errorf("growth factor must be 0 or >=2 but %d was requested", factor)
		}
		c.growth = factor
		return nil
	}
}

// WithLogger sets the logger used to report table rebuilds.
func WithLogger(log *zap.Logger) Option {
	return func(c *Counter) error {
		c.log = log
		return nil
	}
}

func New(capacity int, options ...Option) (*Counter, error) {
	table, err := fixedtable.New(capacity)
	if err != nil {
		return nil, err
	}
	counter := &Counter{
		table: table,
		log:   zap.NewNop(),
	}
	for _, apply := range options {
		if err := apply(counter); err != nil {
			return nil, err
		}
	}
	return counter, nil
}

// Table returns the table holding the counts.
// It may change after a call to [Counter.Add] if growth is enabled.
func (c *Counter) Table() *fixedtable.Table { return c.table }

// Add increments the count for word.
func (c *Counter) Add(word string) error {
	count, err := c.table.Get(word)
	switch {
	case err == nil:
	case errors.Is(err, fixedtable.ErrKeyNotFound):
		count = 0
	default:
		return err
	}
	err = c.table.Insert(word, count+1)
	if err == nil ||
		!errors.Is(err, fixedtable.ErrTableFull) ||
		c.growth == 0 {
		return err
	}
	if err := c.grow(); err != nil {
		return err
	}
	return c.table.Insert(word, count+1)
}

// Count calls [Counter.Add] for each word,
// stopping at the first error.
func (c *Counter) Count(words iter.Seq[string]) error {
	for word := range words {
		if err := c.Add(word); err != nil {
			return err
		}
	}
	return nil
}

// grow replaces the table with a larger copy.
// Entries are replayed from least to most recent
// so recency order is preserved.
func (c *Counter) grow() error {
	var (
		old      = c.table
		capacity = old.Cap() * c.growth
	)
	table, err := fixedtable.New(capacity)
	if err != nil {
		return err
	}
	for key, value := range old.Oldest() {
		if err := table.Insert(key, value); err != nil {
			return fmt.Errorf("rebuilding table: %w", err)
		}
	}
	c.log.Info("grew table",
		zap.Int("from", old.Cap()),
		zap.Int("to", capacity),
		zap.Int("entries", table.Len()),
	)
	c.table = table
	return nil
}
