package lexer

import "fmt"

// Error represents an error while lexing or parsing.
type Error struct {
	Message string
	Pos     Position
}

// Errorf creates a new Error at the given position.
func Errorf(pos Position, format string, args ...interface{}) *Error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}

func (e *Error) Error() string {
	return FormatError(e.Pos, e.Message)
}

// FormatError renders a message with its position in "file:line:col" form.
func FormatError(pos Position, message string) string {
	return fmt.Sprintf("%s: %s", pos, message)
}
