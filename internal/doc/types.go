package doc

import (
	"fmt"
	"sync/atomic"
)

// Kind identifies the variant of a Doc.
type Kind int

const (
	KindNil Kind = iota
	KindText
	KindSep
	KindLine
	KindNest
	KindAppend
	KindGroup
)

// ExtensionStart is the first tag available to extension nodes. Every tag
// at or above it is resolved by the renderer before use.
const ExtensionStart Kind = 100

// IsExtension reports whether k is an extension tag.
func (k Kind) IsExtension() bool {
	return k >= ExtensionStart
}

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindText:
		return "text"
	case KindSep:
		return "sep"
	case KindLine:
		return "line"
	case KindNest:
		return "nest"
	case KindAppend:
		return "append"
	case KindGroup:
		return "group"
	}
	if k.IsExtension() {
		return fmt.Sprintf("extension(%d)", int(k))
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Doc is a sealed interface over the node kinds of this package.
type Doc interface {
	Kind() Kind
	doc() // Sealed - only this package implements it
}

// NilDoc renders nothing.
type NilDoc struct{}

func (NilDoc) Kind() Kind { return KindNil }
func (NilDoc) doc()       {}

// SepDoc is an optional space.
type SepDoc struct{}

func (SepDoc) Kind() Kind { return KindSep }
func (SepDoc) doc()       {}

// LineDoc is a line break that flattens to a space.
type LineDoc struct{}

func (LineDoc) Kind() Kind { return KindLine }
func (LineDoc) doc()       {}

// TextDoc is literal content. Text never contains '\n'; its width is
// len(Text) bytes.
type TextDoc struct {
	Text string
}

func (*TextDoc) Kind() Kind { return KindText }
func (*TextDoc) doc()       {}

// Len returns the width of the text in bytes.
func (t *TextDoc) Len() int { return len(t.Text) }

// NestDoc adds Indent columns to the indentation of breaks inside Doc.
type NestDoc struct {
	Indent int
	Doc    Doc
}

func (*NestDoc) Kind() Kind { return KindNest }
func (*NestDoc) doc()       {}

// AppendDoc renders Left followed by Right.
type AppendDoc struct {
	Left  Doc
	Right Doc
}

func (*AppendDoc) Kind() Kind { return KindAppend }
func (*AppendDoc) doc()       {}

// GroupDoc renders Doc on one line when it fits, or fully broken otherwise.
type GroupDoc struct {
	Doc Doc
}

func (*GroupDoc) Kind() Kind { return KindGroup }
func (*GroupDoc) doc()       {}

// Extension is a node kind defined outside this package. The renderer asks
// its resolver what the node stands for; Payload is opaque here.
type Extension struct {
	Tag     Kind
	Payload any

	released atomic.Bool
}

// Kind returns the extension tag.
func (e *Extension) Kind() Kind { return e.Tag }
func (*Extension) doc()         {}

// Released reports whether Free has already disposed of this node.
func (e *Extension) Released() bool { return e.released.Load() }

// Disposer is implemented by extension payloads that hold resources.
// Dispose must release the payload and free any Doc the payload owns,
// typically by calling Free.
type Disposer interface {
	Dispose() error
}
