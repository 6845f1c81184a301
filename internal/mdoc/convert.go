// Package mdoc converts Markdown into documents, so prose can be reflowed
// to any width.
package mdoc

import (
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/roach88/pretty/internal/doc"
)

// codeIndent is the indentation of code blocks.
const codeIndent = 4

// Convert parses Markdown src and returns the equivalent document.
//
// Paragraphs and headings reflow; soft line breaks become spaces and hard
// line breaks are kept. Code blocks keep their lines and are indented by
// four columns. Inline markup is reduced to its text, except code spans
// which keep their backticks.
//
// A blockquote gets a single "> " marker on its first line; lines it wraps
// onto are indented by two columns without a marker, so a reflowed quote
// reads as an indented block rather than as Markdown quote syntax. The
// algebra has no per-line prefix to repeat the marker with.
func Convert(src []byte) (doc.Doc, error) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))

	c := &converter{src: src}
	d := c.blocks(root, true)
	if c.err != nil {
		return nil, c.err
	}
	return d, nil
}

// Read reads all of r and converts it.
func Read(r io.Reader) (doc.Doc, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Convert(src)
}

type converter struct {
	src []byte
	err error
}

// blocks converts the children of n, separated by a blank line when loose
// and by a single break otherwise.
func (c *converter) blocks(n ast.Node, loose bool) doc.Doc {
	sep := doc.Line()
	if loose {
		sep = doc.Append(doc.Line(), doc.Line())
	}
	var parts []doc.Doc
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if d := c.block(child); d != nil {
			if len(parts) > 0 {
				parts = append(parts, sep)
			}
			parts = append(parts, d)
		}
	}
	return doc.Appends(parts...)
}

func (c *converter) block(n ast.Node) doc.Doc {
	switch node := n.(type) {
	case *ast.Heading:
		marker := strings.Repeat("#", node.Level)
		return doc.Appends(c.text(marker), doc.Sep(), c.inline(node))
	case *ast.Paragraph, *ast.TextBlock:
		return c.inline(node)
	case *ast.List:
		return c.list(node)
	case *ast.FencedCodeBlock:
		return c.code(node.Lines())
	case *ast.CodeBlock:
		return c.code(node.Lines())
	case *ast.Blockquote:
		return doc.Append(c.text("> "), doc.Nest(2, c.blocks(node, true)))
	case *ast.ThematicBreak:
		return c.text("---")
	case *ast.HTMLBlock:
		return c.lines(node.Lines())
	}
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		return c.lines(n.Lines())
	}
	return nil
}

func (c *converter) list(l *ast.List) doc.Doc {
	var items []doc.Doc
	num := l.Start
	for it := l.FirstChild(); it != nil; it = it.NextSibling() {
		marker := string(l.Marker)
		if l.IsOrdered() {
			marker = fmt.Sprintf("%d%c", num, l.Marker)
			num++
		}
		body := c.blocks(it, !l.IsTight)
		item := doc.Appends(c.text(marker), doc.Sep(), doc.Nest(len(marker)+1, body))
		if len(items) > 0 {
			if l.IsTight {
				items = append(items, doc.Line())
			} else {
				items = append(items, doc.Line(), doc.Line())
			}
		}
		items = append(items, item)
	}
	return doc.Appends(items...)
}

// code keeps every line of a code block and indents the block.
func (c *converter) code(segs *text.Segments) doc.Doc {
	return doc.Append(c.text(strings.Repeat(" ", codeIndent)), doc.Nest(codeIndent, c.lines(segs)))
}

// lines emits one text per source line, joined by breaks.
func (c *converter) lines(segs *text.Segments) doc.Doc {
	parts := make([]doc.Doc, 0, 2*segs.Len())
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		line := strings.TrimRight(string(seg.Value(c.src)), "\r\n")
		if i > 0 {
			parts = append(parts, doc.Line())
		}
		parts = append(parts, c.text(line))
	}
	return doc.Appends(parts...)
}

// inline converts the inline children of n. Each run between hard line
// breaks becomes a group of words.
func (c *converter) inline(n ast.Node) doc.Doc {
	runs := []*strings.Builder{{}}
	c.collect(n, &runs)

	parts := make([]doc.Doc, 0, 2*len(runs))
	for i, run := range runs {
		if i > 0 {
			parts = append(parts, doc.Line())
		}
		parts = append(parts, doc.Group(doc.Words(strings.Join(strings.Fields(run.String()), " "))))
	}
	return doc.Appends(parts...)
}

func (c *converter) collect(n ast.Node, runs *[]*strings.Builder) {
	cur := func() *strings.Builder { return (*runs)[len(*runs)-1] }
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch node := child.(type) {
		case *ast.Text:
			cur().Write(node.Segment.Value(c.src))
			switch {
			case node.HardLineBreak():
				*runs = append(*runs, &strings.Builder{})
			case node.SoftLineBreak():
				cur().WriteByte(' ')
			}
		case *ast.String:
			cur().Write(node.Value)
		case *ast.CodeSpan:
			cur().WriteByte('`')
			c.collect(node, runs)
			cur().WriteByte('`')
		case *ast.AutoLink:
			cur().Write(node.URL(c.src))
		case *ast.RawHTML:
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				cur().Write(seg.Value(c.src))
			}
		default:
			c.collect(child, runs)
		}
	}
}

func (c *converter) text(s string) doc.Doc {
	d, err := doc.Text(s)
	if err != nil {
		if c.err == nil {
			c.err = err
		}
		return doc.Nil()
	}
	return d
}
