package markup

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrUnknownExtension is returned for an @name the builder does not know.
var ErrUnknownExtension = errors.New("unknown extension")

// Error is a syntax or build error at a position in the source.
type Error struct {
	Pos lexer.Position
	Msg string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrapParseError(err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		return &Error{Pos: perr.Position(), Msg: perr.Message(), Err: err}
	}
	return err
}

func errorAt(pos lexer.Position, err error) *Error {
	return &Error{Pos: pos, Msg: err.Error(), Err: err}
}
