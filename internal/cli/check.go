package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/pretty/internal/doc"
	"github.com/roach88/pretty/internal/render"
	"github.com/roach88/pretty/internal/source"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	RenderOptions
	RequireFlat bool // fail unless the document fits on one line
}

// CheckResult is the outcome of a check.
type CheckResult struct {
	Name      string    `json:"name"`
	Stats     doc.Stats `json:"stats"`
	Fits      bool      `json:"fits"`
	Width     int       `json:"width"`
	Remaining int       `json:"remaining,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RenderOptions: RenderOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Parse a document and report its shape",
		Long: `Parse a document without rendering it.

Reports node counts, nesting depth and whether the whole document fits
on a single line of the configured width.

Exit codes:
  0 - Document is valid
  1 - --flat was given and the document does not fit on one line
  2 - Command error (unreadable input, syntax error, etc.)

Examples:
  pretty check layout.pd
  pretty check --flat --width 40 --format json header.pd`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runCheck(cmd, opts, path)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "input format (markup|markdown|words)")
	cmd.Flags().StringSliceVarP(&opts.Sections, "section", "s", nil, "enable an @section (repeatable)")
	cmd.Flags().BoolVar(&opts.RequireFlat, "flat", false, "fail unless the document fits on one line")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions, path string) error {
	f := opts.formatter(cmd)

	format, err := opts.inputFormat(path)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeInput, "invalid input format", err)
	}
	data, name, err := readInput(cmd, path)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeInput, "reading input", err)
	}
	d, err := source.Build(name, format, data)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeParse, "building document", err)
	}

	reg := opts.Config.Registry()
	reg.Enable(opts.Sections...)
	defer doc.Free(d, reg.Dispose)

	settings := opts.Config.Settings(reg.Resolver())
	result := CheckResult{
		Name:  name,
		Stats: doc.Measure(d),
		Width: settings.Width,
	}
	budget := settings.Width
	if render.CanFlatten(&settings, d, &budget) {
		result.Fits = true
		result.Remaining = budget
	}

	if f.IsJSON() {
		if err := f.Success(result); err != nil {
			return err
		}
	} else {
		if err := f.Success(formatCheck(result)); err != nil {
			return err
		}
	}

	if opts.RequireFlat && !result.Fits {
		return NewExitError(ExitFailure, fmt.Sprintf("%s does not fit in %d columns", name, result.Width))
	}
	return nil
}

func formatCheck(r CheckResult) string {
	fit := fmt.Sprintf("does not fit in %d columns", r.Width)
	if r.Fits {
		fit = fmt.Sprintf("fits in %d columns (%d left)", r.Width, r.Remaining)
	}
	return fmt.Sprintf("ok: %s\n  nodes: %d, text bytes: %d, groups: %d, extensions: %d, depth: %d\n  flat: %s\n",
		r.Name, r.Stats.Nodes, r.Stats.TextBytes, r.Stats.Groups, r.Stats.Extensions, r.Stats.Depth, fit)
}
