// Package main provides the CLI entrypoint for wodl.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wodl/internal/config"
	"github.com/verte-zerg/wodl/internal/finder"
	"github.com/verte-zerg/wodl/internal/model"
	"github.com/verte-zerg/wodl/internal/store"
	"github.com/verte-zerg/wodl/internal/tui"
	"github.com/verte-zerg/wodl/internal/wordlist"
)

var (
	rootFile    string
	rootColumns int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wodl",
		Short:         "Word puzzle candidate finder",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runFinderCmd,
	}

	rootCmd.PersistentFlags().StringVar(&rootFile, "file", "", "word list file (default: $XDG_CONFIG_HOME/wodl/wodl.txt)")
	rootCmd.PersistentFlags().IntVar(&rootColumns, "columns", 0, "words per grid row (0 = automatic)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newFilterCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newLoadCmd())

	return rootCmd
}

func runFinderCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	f, err := openFinder(cfg, true)
	if err != nil {
		return err
	}
	if len(f.Master()) == 0 {
		logErrln("word list is empty, press ctrl+o to load one:", cfg.WordListPath)
	}

	m := tui.NewModel(cfg, f)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if answer, ok := m.Answer(); ok {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), answer); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// resolveConfig merges the config file with explicitly set flags.
func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	path := config.DefaultWordListPath()
	columns := 0
	if fileCfg.Finder.WordList != nil {
		path = *fileCfg.Finder.WordList
	}
	if fileCfg.Finder.Columns != nil {
		columns = *fileCfg.Finder.Columns
	}
	applyStringFlag(cmd, "file", &path, rootFile)
	applyIntFlag(cmd, "columns", &columns, rootColumns)

	cfg := model.Config{
		WordListPath: expandHome(path),
		Columns:      columns,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

// openFinder loads the configured word list. With persist set, later adds and
// loads are written back to it; only the default list is rewritten in
// canonical form at startup, so a file given by --file is never touched by
// merely opening it.
func openFinder(cfg model.Config, persist bool) (*finder.Finder, error) {
	words, err := wordlist.LoadWords(cfg.WordListPath)
	if err != nil {
		return nil, err
	}
	st := store.New()
	st.Load(words)
	if !persist {
		return finder.New(st, nil), nil
	}
	sink := wordlist.NewFileSink(cfg.WordListPath)
	if cfg.WordListPath == config.DefaultWordListPath() {
		if err := sink.Save(st.Master()); err != nil {
			return nil, err
		}
	}
	return finder.New(st, sink), nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(config.Template(config.DefaultWordListPath())), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add WORD...",
		Short: "Add words to the word list",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAddCmd,
	}
}

func runAddCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	f, err := openFinder(cfg, true)
	if err != nil {
		return err
	}
	for _, arg := range args {
		if err := f.NewWordSubmitted(arg); err != nil {
			return fmt.Errorf("cannot add %q: %w", arg, err)
		}
	}
	logErrf("Wrote %d words to %s\n", len(f.Master()), cfg.WordListPath)
	return nil
}

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load FILE",
		Short: "Replace the word list with the words found in FILE",
		Args:  cobra.ExactArgs(1),
		RunE:  runLoadCmd,
	}
}

func runLoadCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	text, err := wordlist.LoadText(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	f := finder.New(store.New(), wordlist.NewFileSink(cfg.WordListPath))
	if err := f.LoadText(text); err != nil {
		return err
	}
	if len(f.Master()) == 0 {
		return fmt.Errorf("no words of at least %d letters found in %s", wordlist.MinWordLength, args[0])
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d words into %s\n", len(f.Master()), cfg.WordListPath); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyStringFlag(cmd *cobra.Command, name string, target *string, value string) {
	if cmd.Flags().Changed(name) {
		*target = value
	}
}

func applyIntFlag(cmd *cobra.Command, name string, target *int, value int) {
	if cmd.Flags().Changed(name) {
		*target = value
	}
}

func validateConfig(cfg model.Config) error {
	if cfg.WordListPath == "" {
		return fmt.Errorf("--file must not be empty")
	}
	if cfg.Columns < 0 {
		return fmt.Errorf("--columns must be >= 0")
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
