package ext

import (
	"fmt"
	"sort"
	"sync"

	"github.com/roach88/pretty/internal/doc"
	"github.com/roach88/pretty/internal/logging"
	"github.com/roach88/pretty/internal/render"
)

// Registry resolves the extension nodes of this package.
//
// Thread-safety: a Registry may serve concurrent renders. Section state is
// guarded by a RWMutex; enabling or disabling a section while a render is
// running may change the answer between the fit check and the output.
type Registry struct {
	clock  Clock
	layout string

	mu       sync.RWMutex
	sections map[string]bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock sets the clock used by timestamps.
func WithClock(c Clock) Option {
	return func(r *Registry) { r.clock = c }
}

// WithTimeLayout sets the layout of timestamps that name none. An empty
// layout keeps DefaultTimeLayout.
func WithTimeLayout(layout string) Option {
	return func(r *Registry) {
		if layout != "" {
			r.layout = layout
		}
	}
}

// WithSections enables the named sections.
func WithSections(names ...string) Option {
	return func(r *Registry) {
		for _, n := range names {
			r.sections[n] = true
		}
	}
}

// NewRegistry creates a registry using the system clock and no enabled
// sections.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		clock:    SystemClock{},
		layout:   DefaultTimeLayout,
		sections: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Enable turns the named sections on.
func (r *Registry) Enable(names ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range names {
		r.sections[n] = true
	}
}

// Disable turns the named sections off.
func (r *Registry) Disable(names ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range names {
		delete(r.sections, n)
	}
}

// Enabled reports whether the named section is on.
func (r *Registry) Enabled(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sections[name]
}

// Sections returns the enabled section names in sorted order.
func (r *Registry) Sections() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.sections))
	for n := range r.sections {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Resolver returns r.Resolve as a render.Resolver.
func (r *Registry) Resolver() render.Resolver {
	return r.Resolve
}

// Resolve maps a node of this package to the document it stands for.
// Unknown tags resolve to Nil.
func (r *Registry) Resolve(_ *render.Settings, e *doc.Extension) doc.Doc {
	switch e.Tag {
	case TagTimestamp:
		ts, ok := e.Payload.(Timestamp)
		if !ok {
			return r.malformed(e)
		}
		layout := ts.Layout
		if layout == "" {
			layout = r.layout
		}
		d, err := doc.Text(r.clock.Now().Format(layout))
		if err != nil {
			logging.Logger().Warn("timestamp layout produced a newline", "layout", layout)
			return doc.Nil()
		}
		return d
	case TagSection:
		sec, ok := e.Payload.(*Section)
		if !ok {
			return r.malformed(e)
		}
		if !r.Enabled(sec.Name) {
			return doc.Nil()
		}
		return sec.Body
	case TagLazy:
		lz, ok := e.Payload.(Lazy)
		if !ok || lz.Build == nil {
			return r.malformed(e)
		}
		return lz.Build()
	}
	logging.Logger().Debug("unknown extension tag", "tag", int(e.Tag))
	return doc.Nil()
}

func (r *Registry) malformed(e *doc.Extension) doc.Doc {
	logging.Logger().Warn("malformed extension payload",
		"tag", int(e.Tag),
		"payload", fmt.Sprintf("%T", e.Payload),
	)
	return doc.Nil()
}

// Dispose is the doc.Free hook for documents resolved by r.
func (r *Registry) Dispose(e *doc.Extension) {
	Dispose(e)
}
