// Package cli implements the pretty command line.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/pretty/internal/config"
	"github.com/roach88/pretty/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	Width      int
	MaxIndent  int
	Trim       bool

	// Set by the root command before any subcommand runs.
	Config config.Config
	RunID  string
	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the pretty CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "pretty",
		Short: "pretty - lay out structured text within a line width",
		Long: `Lay out structured text within a line width.

Documents are built from text, soft spaces, line breaks, nesting and
groups. A group is printed on one line when it fits and broken
otherwise. Input can be written in the pretty markup language,
Markdown, or plain words.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if err := opts.resolveConfig(cmd); err != nil {
				return err
			}
			opts.setupLogger(cmd)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (.yaml, .yml or .cue)")
	cmd.PersistentFlags().IntVarP(&opts.Width, "width", "w", 0, "line width (default 80)")
	cmd.PersistentFlags().IntVar(&opts.MaxIndent, "max-indent", 0, "maximum indentation (default 40)")
	cmd.PersistentFlags().BoolVar(&opts.Trim, "trim", false, "drop trailing spaces")

	// Add subcommands
	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewWordsCommand(opts))
	cmd.AddCommand(NewMarkdownCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewDemoCommand(opts))

	return cmd
}

// resolveConfig layers defaults, the config file, the environment and
// explicit flags, in that order.
func (o *RootOptions) resolveConfig(cmd *cobra.Command) error {
	cfg := config.Default()
	if o.ConfigPath != "" {
		loaded, err := config.Load(o.ConfigPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "loading config", err)
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return WrapExitError(ExitCommandError, "reading environment", err)
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = o.Width
	}
	if flags.Changed("max-indent") {
		cfg.MaxIndent = o.MaxIndent
	}
	if flags.Changed("trim") {
		cfg.Trim = o.Trim
	}

	if err := cfg.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid settings", err)
	}
	o.Config = cfg
	return nil
}

// setupLogger installs a text logger on stderr, tagged with a fresh run ID.
func (o *RootOptions) setupLogger(cmd *cobra.Command) {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.RunID = uuid.NewString()
	o.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})).
		With("run_id", o.RunID)
	logging.SetLogger(o.Logger)
}

// formatter returns the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
		RunID:     o.RunID,
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
