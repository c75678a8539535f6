package derive

import (
	"fmt"

	"github.com/derive-go/derive/lexer"
)

// Error represents a diagnostic raised while deriving.
//
// The error will contain positional information if available.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position the diagnostic is anchored at.
	Position() lexer.Position
}

type deriveError struct {
	message string
	pos     lexer.Position
}

func (d *deriveError) Error() string            { return lexer.FormatError(d.pos, d.message) }
func (d *deriveError) Message() string          { return d.message }
func (d *deriveError) Position() lexer.Position { return d.pos }

// Errorf creates a new Error at the given position.
func Errorf(pos lexer.Position, format string, args ...interface{}) Error {
	return &deriveError{message: fmt.Sprintf(format, args...), pos: pos}
}

// AnnotateError wraps an existing error with a position.
//
// If the existing error is already an Error it is returned unmodified.
func AnnotateError(pos lexer.Position, err error) error {
	if derr, ok := err.(Error); ok {
		return derr
	}
	return &deriveError{message: err.Error(), pos: pos}
}
