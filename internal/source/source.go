// Package source turns input text in one of the supported formats into a
// document.
package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/roach88/pretty/internal/doc"
	"github.com/roach88/pretty/internal/markup"
	"github.com/roach88/pretty/internal/mdoc"
)

// Format names an input language.
type Format string

const (
	// Markup is the layout language of package markup.
	Markup Format = "markup"
	// Markdown is CommonMark, reflowed by package mdoc.
	Markdown Format = "markdown"
	// Words is plain text: spaces become Sep, newlines become Line.
	Words Format = "words"
)

// ErrUnknownFormat is returned for a format name that is not supported.
var ErrUnknownFormat = errors.New("unknown format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{Markup, Markdown, Words}
}

// ParseFormat maps a name to a Format. The empty name is Markup.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return Markup, nil
	case Markup, Markdown, Words:
		return f, nil
	case "md":
		return Markdown, nil
	case "text", "txt":
		return Words, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return Markdown
	case ".txt":
		return Words
	}
	return Markup
}

// Build turns src into a document. name labels markup errors.
func Build(name string, f Format, src []byte) (doc.Doc, error) {
	switch f {
	case Markup:
		return markup.LoadString(name, string(src))
	case Markdown:
		return mdoc.Convert(src)
	case Words:
		return doc.Words(strings.TrimRight(string(src), "\n")), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}
