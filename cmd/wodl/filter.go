package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/wodl/internal/finder"
	"github.com/verte-zerg/wodl/internal/grid"
)

const terminalWidthBackup = 80

var (
	filterLength  string
	filterExclude string
	filterPrefix  string
	filterGuesses []string
	filterPlain   bool
)

func newFilterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Print the candidates matching the given constraints",
		Example: `  wodl filter --length 5 --exclude xyz
  wodl filter --guess crane:+--.+ --guess chose:+++-+`,
		Args: cobra.NoArgs,
		RunE: runFilterCmd,
	}
	cmd.Flags().StringVar(&filterLength, "length", "", "word length")
	cmd.Flags().StringVar(&filterExclude, "exclude", "", "characters that must not occur")
	cmd.Flags().StringVar(&filterPrefix, "prefix", "", "leading characters")
	cmd.Flags().StringArrayVar(&filterGuesses, "guess", nil, "WORD:PATTERN feedback, applied in order (repeatable)")
	cmd.Flags().BoolVar(&filterPlain, "plain", false, "print one word per line")
	return cmd
}

func runFilterCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	f, err := openFinder(cfg, false)
	if err != nil {
		return err
	}
	if len(f.Master()) == 0 {
		return fmt.Errorf("word list %s is empty (import one with: wodl load FILE)", cfg.WordListPath)
	}
	if err := applyFilters(f, filterLength, filterExclude, filterPrefix, filterGuesses); err != nil {
		return err
	}
	return writeWords(cmd.OutOrStdout(), f.Working(), cfg.Columns, filterPlain)
}

// applyFilters runs the field filters once, then each guess in order.
func applyFilters(f *finder.Finder, length, exclude, prefix string, guesses []string) error {
	if err := f.ExcludeCharsChanged(exclude); err != nil {
		return err
	}
	if err := f.SearchTermChanged(prefix); err != nil {
		return err
	}
	if err := f.LengthChanged(length); err != nil {
		return fmt.Errorf("--length %q: %w", length, err)
	}
	for _, guess := range guesses {
		word, pattern, ok := strings.Cut(guess, ":")
		if !ok || strings.TrimSpace(word) == "" {
			return fmt.Errorf("--guess %q: expected WORD:PATTERN", guess)
		}
		if _, err := f.WordSelected(word); err != nil {
			return fmt.Errorf("--guess %q: %w", guess, err)
		}
		if err := f.PatternSubmitted(pattern); err != nil {
			return fmt.Errorf("--guess %q: %w", guess, err)
		}
	}
	return nil
}

func writeWords(w io.Writer, words []string, columns int, plain bool) error {
	if plain {
		for _, word := range words {
			if _, err := fmt.Fprintln(w, word); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		return nil
	}
	if len(words) == 0 {
		_, err := fmt.Fprintln(w, "No matches found.")
		return err
	}
	layout := grid.NewLayout(words, columns, terminalWidth())
	if _, err := fmt.Fprintln(w, grid.Render(words, layout, nil)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return terminalWidthBackup
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
