package cli

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/pretty/internal/doc"
	"github.com/roach88/pretty/internal/render"
	"github.com/roach88/pretty/internal/source"
)

// RenderOptions holds flags for the render commands.
type RenderOptions struct {
	*RootOptions
	Input    string   // input format; empty guesses from the file name
	Sections []string // @section names to enable
}

// RenderResult is the JSON payload of a render.
type RenderResult struct {
	Output    string `json:"output"`
	Width     int    `json:"width"`
	MaxIndent int    `json:"max_indent"`
	Bytes     int    `json:"bytes"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a document",
		Long: `Render a document to stdout.

The input format is taken from --input, or guessed from the file
extension: .md is Markdown, .txt is plain words, anything else is
markup. With no file, or "-", the document is read from stdin.

Examples:
  pretty render layout.pd
  pretty render --width 60 --section debug layout.pd
  pretty render -i markdown < README.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			format, err := opts.inputFormat(path)
			if err != nil {
				return opts.formatter(cmd).Fail(ExitCommandError, ErrCodeInput, "invalid input format", err)
			}
			return renderPath(cmd, opts, path, format)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "input format (markup|markdown|words)")
	cmd.Flags().StringSliceVarP(&opts.Sections, "section", "s", nil, "enable an @section (repeatable)")

	return cmd
}

// NewWordsCommand creates the words command.
func NewWordsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	return &cobra.Command{
		Use:   "words [text...]",
		Short: "Fill plain text to the line width",
		Long: `Fill plain text to the line width.

Spaces are soft and newlines are breaks. The arguments are joined with
spaces; with no arguments the text is read from stdin.

Examples:
  pretty words --width 20 the quick brown fox jumps over the lazy dog
  fortune | pretty words -w 30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return renderSource(cmd, opts, "args", source.Words, []byte(strings.Join(args, " ")))
			}
			return renderPath(cmd, opts, "", source.Words)
		},
	}
}

// NewMarkdownCommand creates the markdown command.
func NewMarkdownCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	return &cobra.Command{
		Use:   "markdown [file]",
		Short: "Reflow a Markdown file",
		Long: `Reflow a Markdown file to the line width.

Paragraphs, headings and list items are refilled; code blocks keep
their lines.

Examples:
  pretty markdown --width 72 README.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return renderPath(cmd, opts, path, source.Markdown)
		},
	}
}

func (o *RenderOptions) inputFormat(path string) (source.Format, error) {
	if o.Input != "" {
		return source.ParseFormat(o.Input)
	}
	return source.FormatFromPath(path), nil
}

// readInput reads path, or stdin for "" and "-".
func readInput(cmd *cobra.Command, path string) ([]byte, string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		return data, "stdin", err
	}
	data, err := os.ReadFile(path)
	return data, path, err
}

func renderPath(cmd *cobra.Command, opts *RenderOptions, path string, format source.Format) error {
	data, name, err := readInput(cmd, path)
	if err != nil {
		return opts.formatter(cmd).Fail(ExitCommandError, ErrCodeInput, "reading input", err)
	}
	return renderSource(cmd, opts, name, format, data)
}

func renderSource(cmd *cobra.Command, opts *RenderOptions, name string, format source.Format, data []byte) error {
	f := opts.formatter(cmd)

	d, err := source.Build(name, format, data)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeParse, "building document", err)
	}
	f.VerboseLog("built %s document from %s (%d bytes)", format, name, len(data))

	out, err := renderDoc(opts.RootOptions, d, opts.Sections)
	if err != nil {
		return f.Fail(ExitFailure, ErrCodeRender, "rendering", err)
	}

	if f.IsJSON() {
		return f.Success(RenderResult{
			Output:    out,
			Width:     opts.Config.Width,
			MaxIndent: opts.Config.MaxIndent,
			Bytes:     len(out),
		})
	}
	return f.Success(out + "\n")
}

// renderDoc renders and frees d with the resolved configuration.
func renderDoc(opts *RootOptions, d doc.Doc, sections []string) (string, error) {
	reg := opts.Config.Registry()
	reg.Enable(sections...)
	defer func() {
		if err := doc.Free(d, reg.Dispose); err != nil {
			opts.Logger.Warn("free failed", "error", err)
		}
	}()

	settings := opts.Config.Settings(reg.Resolver())

	var buf bytes.Buffer
	var w io.Writer = &buf
	if opts.Config.Trim {
		w = render.TrimTrailingSpace(&buf)
	}
	err := render.Render(w, &settings, d)
	return buf.String(), err
}
