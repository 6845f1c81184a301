// Package ext provides extension nodes for documents and the resolver that
// turns them into core nodes at render time.
//
//   - Timestamp renders the current time of the registry's clock.
//   - Section renders its body only while its name is enabled.
//   - Lazy builds its document when it is rendered.
//
// A Registry holds the state these nodes depend on. Pass reg.Resolver() in
// render.Settings and reg.Dispose to doc.Free. A caller with its own hook
// for foreign extensions passes DisposeWith(hook) instead, so the hook also
// sees the extensions inside section bodies.
package ext

import (
	"github.com/roach88/pretty/internal/doc"
	"github.com/roach88/pretty/internal/logging"
)

// Extension tags.
const (
	TagTimestamp = doc.ExtensionStart + iota
	TagSection
	TagLazy
)

// DefaultTimeLayout is the layout of timestamps that name none, unless the
// registry is given another.
const DefaultTimeLayout = "2006-01-02 15:04:05"

// Timestamp is the payload of a TagTimestamp node.
type Timestamp struct {
	Layout string
}

// Section is the payload of a TagSection node. Body is owned by the
// section and released with it by the free hook.
type Section struct {
	Name string
	Body doc.Doc
}

// Lazy is the payload of a TagLazy node. Build is called every time the
// node is resolved, for the fit check as well as for output, and must
// return the same document both times.
type Lazy struct {
	Build func() doc.Doc
}

// NewTimestamp returns a node rendering the current time in layout. An
// empty layout defers to the registry.
func NewTimestamp(layout string) *doc.Extension {
	return &doc.Extension{Tag: TagTimestamp, Payload: Timestamp{Layout: layout}}
}

// NewSection returns a node that renders body while name is enabled.
func NewSection(name string, body doc.Doc) *doc.Extension {
	if body == nil {
		body = doc.Nil()
	}
	return &doc.Extension{Tag: TagSection, Payload: &Section{Name: name, Body: body}}
}

// Dispose is the doc.Free hook for the nodes of this package. Section
// bodies are freed with the same hook.
func Dispose(e *doc.Extension) {
	switch e.Tag {
	case TagTimestamp, TagLazy:
		return
	case TagSection:
		if _, ok := e.Payload.(*Section); ok {
			DisposeWith(nil)(e)
			return
		}
	}
	logging.Logger().Debug("disposing unknown extension", "tag", int(e.Tag))
}

// DisposeWith returns a doc.Free hook that frees section bodies with
// itself and hands every other extension to hook. A nil hook means
// Dispose.
func DisposeWith(hook func(*doc.Extension)) func(*doc.Extension) {
	if hook == nil {
		hook = Dispose
	}
	var h func(*doc.Extension)
	h = func(e *doc.Extension) {
		sec, ok := e.Payload.(*Section)
		if e.Tag != TagSection || !ok {
			hook(e)
			return
		}
		if err := doc.Free(sec.Body, h); err != nil {
			logging.Logger().Warn("freeing section body failed", "section", sec.Name, "error", err)
		}
	}
	return h
}

// NewLazy returns a node whose document is built at render time.
func NewLazy(build func() doc.Doc) *doc.Extension {
	return &doc.Extension{Tag: TagLazy, Payload: Lazy{Build: build}}
}
