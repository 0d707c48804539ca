// Command wordcount counts words from files or standard input
// using a fixed-capacity table, then reports the table's contents.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/djdv/go-fixedtable"
	"github.com/djdv/go-fixedtable/internal/tokenize"
	"github.com/djdv/go-fixedtable/internal/wordcount"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type settings struct {
	capacity, growth, sample int
	lookups                  []string
	verbose                  bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var set settings
	cmd := &cobra.Command{
		Use:   "wordcount [file...]",
		Short: "Count words in a fixed-capacity table",
		Long: "Count lowercase words read from the given files (or standard input)" +
			" and report the unique word count, the most and least recently" +
			" changed counts, and a sample of entries in table order.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(set.verbose)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck
			return run(cmd, args, set, log)
		},
	}
	flags := cmd.Flags()
	flags.IntVarP(&set.capacity, "capacity", "c", 32_768, "table capacity (slots)")
	flags.IntVarP(&set.growth, "grow", "g", 0, "grow the table by this factor when full (0 disables)")
	flags.IntVarP(&set.sample, "sample", "n", 10, "number of entries to print")
	flags.StringArrayVarP(&set.lookups, "lookup", "l", nil, "print the count for this word (repeatable)")
	flags.BoolVarP(&set.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return config.Build()
}

func run(cmd *cobra.Command, args []string, set settings, log *zap.Logger) error {
	counter, err := wordcount.New(set.capacity,
		wordcount.WithGrowth(set.growth),
		wordcount.WithLogger(log),
	)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		log.Debug("reading standard input")
		if err := count(counter, cmd.InOrStdin()); err != nil {
			return fmt.Errorf("stdin: %w", err)
		}
	}
	for _, name := range args {
		if err := countFile(counter, name, log); err != nil {
			return err
		}
	}
	return report(cmd.OutOrStdout(), counter.Table(), set)
}

func countFile(counter *wordcount.Counter, name string, log *zap.Logger) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()
	log.Debug("reading file", zap.String("name", name))
	if err := count(counter, file); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func count(counter *wordcount.Counter, r io.Reader) error {
	scanner := tokenize.NewScanner(r)
	if err := counter.Count(scanner.Words()); err != nil {
		return err
	}
	return scanner.Err()
}

func report(w io.Writer, table *fixedtable.Table, set settings) error {
	fmt.Fprintln(w, "Unique words:", table.Len())
	for _, word := range set.lookups {
		n, err := table.Get(word)
		if errors.Is(err, fixedtable.ErrKeyNotFound) {
			n, err = 0, nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Count(%q): %d\n", word, n)
	}
	if table.Len() == 0 {
		return nil
	}
	key, value, err := table.MostRecent()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Most recent change: %s %d\n", key, value)
	if key, value, err = table.LeastRecent(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Least recent change: %s %d\n", key, value)
	printed := 0
	for key, value := range table.Items() {
		if printed == set.sample {
			break
		}
		fmt.Fprintln(w, key, value)
		printed++
	}
	return nil
}
