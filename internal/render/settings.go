package render

import (
	"fmt"

	"github.com/roach88/pretty/internal/doc"
)

// Default layout settings.
const (
	DefaultWidth     = 80
	DefaultMaxIndent = 40
)

// MaxResolveSteps bounds how many times one node may be handed to the
// resolver before the render is aborted with ErrResolveLimit.
const MaxResolveSteps = 64

// Resolver maps an extension node to the document it stands for.
//
// The result may be a new core node built from the payload, a document the
// payload wraps, Nil (or nil) to suppress the node, or another extension to
// be resolved in turn. Resolvers run during both the fit check and the
// actual rendering and must answer the same way for both; a resolver that
// reads shared mutable state synchronizes it itself.
type Resolver func(s *Settings, ext *doc.Extension) doc.Doc

// Settings configure a render.
type Settings struct {
	// Width is the maximum line length in bytes.
	Width int
	// MaxIndent caps the indentation produced by nesting.
	MaxIndent int
	// Resolver resolves extension nodes. With no resolver, extensions
	// render as Nil.
	Resolver Resolver
}

// DefaultSettings returns width 80 and max indent 40.
func DefaultSettings() Settings {
	return Settings{Width: DefaultWidth, MaxIndent: DefaultMaxIndent}
}

// Validate checks that Width is positive and that MaxIndent leaves at least
// one column on every line.
func (s *Settings) Validate() error {
	if s.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidSettings, s.Width)
	}
	if s.MaxIndent < 0 {
		return fmt.Errorf("%w: max indent must not be negative, got %d", ErrInvalidSettings, s.MaxIndent)
	}
	if s.MaxIndent >= s.Width {
		return fmt.Errorf("%w: max indent %d must be less than width %d", ErrInvalidSettings, s.MaxIndent, s.Width)
	}
	return nil
}

// clampIndent returns min(indent, MaxIndent).
func (s *Settings) clampIndent(indent int) int {
	if indent > s.MaxIndent {
		return s.MaxIndent
	}
	return indent
}

// lineBudget is the space left on a line that has just been broken.
func (s *Settings) lineBudget(indent int) int {
	return s.Width - indent
}
