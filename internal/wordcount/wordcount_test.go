package wordcount_test

import (
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/djdv/go-fixedtable"
	"github.com/djdv/go-fixedtable/internal/wordcount"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCount(t *testing.T) {
	counter, err := wordcount.New(16)
	require.NoError(t, err)
	words := strings.Fields("the cat and the hat and the bat")
	require.NoError(t, counter.Count(slices.Values(words)))

	table := counter.Table()
	require.Equal(t, 5, table.Len())
	require.Equal(t, map[string]int{
		"the": 3, "cat": 1, "and": 2, "hat": 1, "bat": 1,
	}, maps.Collect(table.Items()))

	key, value, err := table.MostRecent()
	require.NoError(t, err)
	require.Equal(t, "bat", key)
	require.Equal(t, 1, value)

	key, value, err = table.LeastRecent()
	require.NoError(t, err)
	require.Equal(t, "cat", key)
	require.Equal(t, 1, value)
}

func TestUpdateIsRecent(t *testing.T) {
	counter, err := wordcount.New(4)
	require.NoError(t, err)
	for _, word := range []string{"a", "b", "a"} {
		require.NoError(t, counter.Add(word))
	}
	key, value, err := counter.Table().MostRecent()
	require.NoError(t, err)
	require.Equal(t, "a", key)
	require.Equal(t, 2, value)
}

func TestFull(t *testing.T) {
	counter, err := wordcount.New(2)
	require.NoError(t, err)
	require.NoError(t, counter.Add("a"))
	require.NoError(t, counter.Add("b"))
	require.ErrorIs(t, counter.Add("c"), fixedtable.ErrTableFull)
	require.NoError(t, counter.Add("a"), "existing words still count")
	require.Equal(t, 2, counter.Table().Len())
}

func TestGrowth(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	counter, err := wordcount.New(2,
		wordcount.WithGrowth(2),
		wordcount.WithLogger(zap.New(core)),
	)
	require.NoError(t, err)
	words := []string{"a", "b", "a", "c", "d", "e", "b"}
	require.NoError(t, counter.Count(slices.Values(words)))

	table := counter.Table()
	require.Equal(t, 8, table.Cap())
	require.Equal(t, map[string]int{
		"a": 2, "b": 2, "c": 1, "d": 1, "e": 1,
	}, maps.Collect(table.Items()))

	var order []string
	for key := range table.Recent() {
		order = append(order, key)
	}
	require.Equal(t, []string{"b", "e", "d", "c", "a"}, order)
	require.Equal(t, 2, logs.FilterMessage("grew table").Len())
}

func TestOptions(t *testing.T) {
	_, err := wordcount.New(0)
	require.ErrorIs(t, err, fixedtable.ErrInvalidCapacity)
	_, err = wordcount.New(4, wordcount.WithGrowth(1))
	require.Error(t, err)
	_, err = wordcount.New(4, wordcount.WithGrowth(0))
	require.NoError(t, err)
}
