package doc

import (
	"errors"
	"fmt"

	"github.com/roach88/pretty/internal/logging"
)

// Walk calls fn for every node of d in post-order. Nodes reachable twice
// through shared pointers are visited once. Walk does not look inside
// extension payloads.
func Walk(d Doc, fn func(Doc)) {
	w := walker{seen: make(map[Doc]struct{}), fn: fn}
	w.walk(orNil(d))
}

type walker struct {
	seen map[Doc]struct{}
	fn   func(Doc)
}

func (w *walker) walk(d Doc) {
	switch n := d.(type) {
	case *NestDoc, *AppendDoc, *GroupDoc, *TextDoc, *Extension:
		if _, ok := w.seen[n]; ok {
			return
		}
		w.seen[n] = struct{}{}
	}

	switch n := d.(type) {
	case *NestDoc:
		w.walk(orNil(n.Doc))
	case *AppendDoc:
		w.walk(orNil(n.Left))
		w.walk(orNil(n.Right))
	case *GroupDoc:
		w.walk(orNil(n.Doc))
	}
	w.fn(d)
}

// Free releases d. Core nodes need no work. Each extension node is disposed
// at most once across all calls: through its payload's Dispose method when
// the payload is a Disposer, otherwise through hook. An extension with
// neither is logged as leaked. Errors from Dispose are joined.
func Free(d Doc, hook func(*Extension)) error {
	var errs []error
	Walk(d, func(n Doc) {
		ext, ok := n.(*Extension)
		if !ok {
			return
		}
		if !ext.released.CompareAndSwap(false, true) {
			return
		}
		if p, ok := ext.Payload.(Disposer); ok {
			if err := p.Dispose(); err != nil {
				errs = append(errs, fmt.Errorf("dispose %s: %w", ext.Tag, err))
			}
			return
		}
		if hook != nil {
			hook(ext)
			return
		}
		logging.Logger().Warn("extension leaked: no destructor",
			"tag", int(ext.Tag),
			"payload", fmt.Sprintf("%T", ext.Payload),
		)
	})
	return errors.Join(errs...)
}

// Stats summarizes the shape of a document.
type Stats struct {
	Nodes      int            `json:"nodes"`
	TextBytes  int            `json:"text_bytes"`
	Groups     int            `json:"groups"`
	Extensions int            `json:"extensions"`
	Depth      int            `json:"depth"`
	ByKind     map[string]int `json:"by_kind"`
}

// Measure walks d and returns its Stats.
func Measure(d Doc) Stats {
	st := Stats{ByKind: make(map[string]int)}
	Walk(d, func(n Doc) {
		st.Nodes++
		k := n.Kind()
		if k.IsExtension() {
			st.Extensions++
			st.ByKind["extension"]++
			return
		}
		st.ByKind[k.String()]++
		switch n := n.(type) {
		case *TextDoc:
			st.TextBytes += n.Len()
		case *GroupDoc:
			st.Groups++
		}
	})
	st.Depth = depth(orNil(d))
	return st
}

func depth(d Doc) int {
	switch n := d.(type) {
	case *NestDoc:
		return 1 + depth(orNil(n.Doc))
	case *AppendDoc:
		return 1 + max(depth(orNil(n.Left)), depth(orNil(n.Right)))
	case *GroupDoc:
		return 1 + depth(orNil(n.Doc))
	}
	return 1
}
