// Package cli wires the passgen command line: one-shot generation to stdout
// and the interactive generator screen.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vaultpass/passgen-go/internal/clipboard"
	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/ui"
)

var ErrInvalidCount = errors.New("count must be at least 1")

// deps are the pieces tests replace.
type deps struct {
	clip       clipboard.Writer
	isTerminal func() bool
	runUI      func(ui.Model) error
}

func defaultDeps() deps {
	return deps{
		clip: clipboard.System(),
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
		runUI: ui.Run,
	}
}

type flags struct {
	length    int
	digits    bool
	uppercase bool
	symbols   bool
	count     int
	seed      uint64
	copy      bool
	verbose   bool
}

// Execute runs the root command against os.Args.
func Execute(version string) error {
	return NewRootCmd(version).Execute()
}

// NewRootCmd builds a fresh command tree. Each call has its own flag state,
// so tests can create as many as they need.
func NewRootCmd(version string) *cobra.Command {
	return newRootCmd(version, defaultDeps())
}

func newRootCmd(version string, d deps) *cobra.Command {
	var (
		f   flags
		cfg config.Config
	)

	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate random passwords",
		Long: `passgen builds a random password from lowercase letters plus,
optionally, digits, uppercase letters and symbols.

Running without flags in a terminal opens the interactive generator screen.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			setupLogging(cmd.ErrOrStderr(), cfg, f.verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !generationFlagsSet(cmd) && d.isTerminal() {
				return runScreen(d, ui.New(nil, d.clip, cfg.DefaultLength))
			}
			if !cmd.Flags().Changed("length") {
				f.length = cfg.DefaultLength
			}
			return runGenerate(cmd, f, d.clip)
		},
	}

	cmd.Flags().IntVarP(&f.length, "length", "l", generator.DefaultLength, "password length (7-32)")
	cmd.Flags().BoolVarP(&f.digits, "digits", "d", false, "include digits (0-9)")
	cmd.Flags().BoolVarP(&f.uppercase, "uppercase", "u", false, "include uppercase letters (A-Z)")
	cmd.Flags().BoolVarP(&f.symbols, "symbols", "s", false, "include ASCII punctuation")
	cmd.Flags().IntVarP(&f.count, "count", "n", 1, "number of passwords to print")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "seed the random source for reproducible output")
	cmd.Flags().BoolVarP(&f.copy, "copy", "c", false, "copy the last password to the clipboard")

	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(newTUICmd(&cfg, d))

	return cmd
}

func newTUICmd(cfg *config.Config, d deps) *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive generator screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("length") {
				length = cfg.DefaultLength
			}
			return runScreen(d, ui.New(nil, d.clip, length))
		},
	}
	cmd.Flags().IntVarP(&length, "length", "l", generator.DefaultLength, "initial slider length")

	return cmd
}

// generationFlags select one-shot output. Logging flags do not.
var generationFlags = []string{"length", "digits", "uppercase", "symbols", "count", "seed", "copy"}

func generationFlagsSet(cmd *cobra.Command) bool {
	for _, name := range generationFlags {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// runScreen discards log output while the alternate screen owns the terminal.
func runScreen(d deps, m ui.Model) error {
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.DiscardHandler))
	defer slog.SetDefault(prev)

	return d.runUI(m)
}

func runGenerate(cmd *cobra.Command, f flags, clip clipboard.Writer) error {
	opts := generator.Options{
		Length:    f.length,
		Digits:    f.digits,
		Uppercase: f.uppercase,
		Symbols:   f.symbols,
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("--length %d: %w", f.length, err)
	}
	if f.count < 1 {
		return ErrInvalidCount
	}

	var src generator.RandomSource
	if cmd.Flags().Changed("seed") {
		src = generator.NewSeededSource(f.seed)
	}
	gen := generator.New(src)

	out := cmd.OutOrStdout()
	var last string
	for range f.count {
		password, err := gen.Generate(opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, password)
		last = password
	}

	if f.copy {
		printNotification(cmd.ErrOrStderr(), clipboard.Copy(clip, last))
	}
	return nil
}

// printNotification reports a copy attempt. Failures are shown, not returned.
func printNotification(w io.Writer, n clipboard.Notification) {
	c := color.New(color.FgGreen)
	if !n.OK() {
		c = color.New(color.FgRed)
	}
	c.Fprintln(w, n.String())
}

func setupLogging(w io.Writer, cfg config.Config, verbose bool) {
	level := cfg.Level()
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
