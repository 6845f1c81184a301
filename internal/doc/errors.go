package doc

import "errors"

var (
	// ErrEmbeddedNewline is returned when text handed to a Text constructor
	// contains '\n'. Breaks must be expressed with Line.
	ErrEmbeddedNewline = errors.New("text contains a newline")

	// ErrCoreTag is returned when an extension is created with a tag below
	// ExtensionStart.
	ErrCoreTag = errors.New("extension tag is below ExtensionStart")
)
