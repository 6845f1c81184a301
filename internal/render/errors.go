package render

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSettings is returned by Render and Settings.Validate for
	// unusable settings.
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrResolveLimit is returned when an extension does not resolve to a
	// core node within MaxResolveSteps calls.
	ErrResolveLimit = errors.New("extension resolution did not terminate")
)

// WriteError wraps an error returned by the output writer.
type WriteError struct {
	// Offset is the number of bytes written successfully before the failure.
	Offset int64
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write failed after %d bytes: %v", e.Offset, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// IsWriteError reports whether err came from the output writer.
// Uses errors.As to handle wrapped errors.
func IsWriteError(err error) bool {
	var we *WriteError
	return errors.As(err, &we)
}
