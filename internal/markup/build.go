package markup

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/roach88/pretty/internal/doc"
	"github.com/roach88/pretty/internal/ext"
)

// Build turns a parsed file into a document.
func Build(f *File) (doc.Doc, error) {
	if f == nil {
		return doc.Nil(), nil
	}
	return buildItems(f.Items)
}

// Load parses r and builds the document.
func Load(filename string, r io.Reader) (doc.Doc, error) {
	f, err := Parse(filename, r)
	if err != nil {
		return nil, err
	}
	return Build(f)
}

// LoadString parses input and builds the document.
func LoadString(filename, input string) (doc.Doc, error) {
	f, err := ParseString(filename, input)
	if err != nil {
		return nil, err
	}
	return Build(f)
}

func buildItems(items []*Item) (doc.Doc, error) {
	docs := make([]doc.Doc, 0, len(items))
	for _, it := range items {
		d, err := buildItem(it)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return doc.Appends(docs...), nil
}

func buildBlock(b *Block) (doc.Doc, error) {
	if b == nil {
		return doc.Nil(), nil
	}
	return buildItems(b.Items)
}

func buildItem(it *Item) (doc.Doc, error) {
	switch {
	case it.Text != nil:
		d, err := doc.Text(string(*it.Text))
		if err != nil {
			return nil, errorAt(it.Pos, err)
		}
		return d, nil
	case it.Words != nil:
		return doc.Words(string(*it.Words)), nil
	case it.Nil:
		return doc.Nil(), nil
	case it.Sep:
		return doc.Sep(), nil
	case it.Line:
		return doc.Line(), nil
	case it.Nest != nil:
		body, err := buildBlock(it.Nest.Body)
		if err != nil {
			return nil, err
		}
		return doc.Nest(it.Nest.Indent, body), nil
	case it.Group != nil:
		body, err := buildBlock(it.Group)
		if err != nil {
			return nil, err
		}
		return doc.Group(body), nil
	case it.Ext != nil:
		return buildExt(it.Ext)
	}
	return nil, &Error{Pos: it.Pos, Msg: "empty item"}
}

func buildExt(e *ExtItem) (doc.Doc, error) {
	arg := ""
	if e.Arg != nil {
		arg = string(*e.Arg)
	}
	switch e.Name {
	case "time":
		if e.Body != nil {
			return nil, extError(e.Pos, "@time takes no body")
		}
		return ext.NewTimestamp(arg), nil
	case "section":
		if e.Arg == nil {
			return nil, extError(e.Pos, "@section needs a name")
		}
		body, err := buildBlock(e.Body)
		if err != nil {
			return nil, err
		}
		return ext.NewSection(arg, body), nil
	case "lazy":
		if e.Arg != nil {
			return nil, extError(e.Pos, "@lazy takes no argument")
		}
		body, err := buildBlock(e.Body)
		if err != nil {
			return nil, err
		}
		return ext.NewLazy(func() doc.Doc { return body }), nil
	}
	return nil, errorAt(e.Pos, fmt.Errorf("%w: @%s", ErrUnknownExtension, e.Name))
}

func extError(pos lexer.Position, msg string) *Error {
	return &Error{Pos: pos, Msg: msg}
}
