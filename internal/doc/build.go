package doc

import (
	"fmt"
	"strings"
)

// Nil returns the empty document.
func Nil() Doc { return NilDoc{} }

// Sep returns an optional space.
func Sep() Doc { return SepDoc{} }

// Line returns a line break.
func Line() Doc { return LineDoc{} }

// Text returns a literal document for s.
// It fails with ErrEmbeddedNewline if s contains a newline.
func Text(s string) (Doc, error) {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return nil, fmt.Errorf("%w at byte %d", ErrEmbeddedNewline, i)
	}
	return &TextDoc{Text: s}, nil
}

// TextBytes is Text for a byte slice. The bytes are copied.
func TextBytes(b []byte) (Doc, error) {
	return Text(string(b))
}

// String returns a literal document for the whole of s.
func String(s string) (Doc, error) {
	return Text(s)
}

// MustText is like Text but panics on a newline. Use it for literals.
func MustText(s string) Doc {
	d, err := Text(s)
	if err != nil {
		panic(fmt.Sprintf("doc.MustText(%q): %v", s, err))
	}
	return d
}

// text builds a TextDoc for input already known to be newline free.
func text(s string) Doc {
	return &TextDoc{Text: s}
}

// Nest raises the indentation of breaks inside d by n. A negative n is
// treated as 0.
func Nest(n int, d Doc) Doc {
	if n < 0 {
		n = 0
	}
	return &NestDoc{Indent: n, Doc: orNil(d)}
}

// Append concatenates a and b.
func Append(a, b Doc) Doc {
	return &AppendDoc{Left: orNil(a), Right: orNil(b)}
}

// Group marks d as a unit that is flattened when it fits.
func Group(d Doc) Doc {
	return &GroupDoc{Doc: orNil(d)}
}

// Appends right-folds Append over docs, ending in Nil:
// Appends(a, b) is Append(a, Append(b, Nil())). A nil element ends the list
// and anything after it is ignored. Appends() is Nil().
func Appends(docs ...Doc) Doc {
	for i, d := range docs {
		if d == nil {
			docs = docs[:i]
			break
		}
	}
	out := Nil()
	for i := len(docs) - 1; i >= 0; i-- {
		out = Append(docs[i], out)
	}
	return out
}

// Spaced joins docs with Sep.
func Spaced(docs ...Doc) Doc {
	if len(docs) == 0 {
		return Nil()
	}
	out := orNil(docs[len(docs)-1])
	for i := len(docs) - 2; i >= 0; i-- {
		out = Append(docs[i], Append(Sep(), out))
	}
	return out
}

// NewExtension wraps payload in an extension node with the given tag.
func NewExtension(tag Kind, payload any) (*Extension, error) {
	if !tag.IsExtension() {
		return nil, fmt.Errorf("%w: %d", ErrCoreTag, int(tag))
	}
	return &Extension{Tag: tag, Payload: payload}, nil
}

func orNil(d Doc) Doc {
	if d == nil {
		return Nil()
	}
	return d
}
