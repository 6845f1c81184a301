package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/pretty/internal/doc"
	"github.com/roach88/pretty/internal/render"
)

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the built-in demonstration documents",
		Long: `Print two built-in documents: a nested document at width 40,
then a group of four words at width 40 (fits) and width 15 (breaks).

Global layout flags are ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := runDemo()
			if err != nil {
				return rootOpts.formatter(cmd).Fail(ExitFailure, ErrCodeRender, "rendering demo", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func demoBasic() doc.Doc {
	return doc.Appends(
		doc.Words("hello world"),
		doc.Nest(4, doc.Appends(
			doc.Line(), doc.Words("indented"),
			doc.Nest(4, doc.Appends(
				doc.Line(), doc.Words("more indented"),
				doc.Line(), doc.Words("across lines"),
			)),
			doc.Line(), doc.Words("and with really long lines with many words including "+
				"veryveryveryverylongandcontiguouswordswhichneedwrapping"),
		)),
	)
}

func demoGrouped() doc.Doc {
	return doc.Group(doc.Appends(
		doc.MustText("one"), doc.Line(),
		doc.MustText("two"), doc.Line(),
		doc.MustText("three"), doc.Line(),
		doc.MustText("four"),
	))
}

// runDemo renders the demo documents, each followed by a blank line.
func runDemo() ([]byte, error) {
	var buf bytes.Buffer
	basic, grouped := demoBasic(), demoGrouped()
	defer doc.Free(basic, nil)
	defer doc.Free(grouped, nil)

	runs := []struct {
		d         doc.Doc
		width     int
		maxIndent int
	}{
		{basic, 40, 20},
		{grouped, 40, 20},
		{grouped, 15, 4},
	}
	for _, run := range runs {
		s := render.Settings{Width: run.width, MaxIndent: run.maxIndent}
		if err := render.Render(&buf, &s, run.d); err != nil {
			return nil, fmt.Errorf("width %d: %w", run.width, err)
		}
		buf.WriteString("\n\n")
	}
	return buf.Bytes(), nil
}
