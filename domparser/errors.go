package domparser

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by Cursor.Current when the cursor is at the end
// of its input.
var ErrOutOfRange = errors.New("cursor out of range")

// ParseError is the base error type for all domparser errors.
type ParseError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// UnexpectedCharError reports a required literal ('<', '>', '/', '=', a quote)
// that was not present. Found is "EOF" when the input ended.
type UnexpectedCharError struct {
	ParseError
	Expected string
	Found    string
}

func (e *UnexpectedCharError) Error() string {
	msg := fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, msg)
	}
	return msg
}

// TagMismatchError reports a closing tag whose name differs from the
// opening tag.
type TagMismatchError struct {
	ParseError
	Opening string
	Closing string
}

// UnterminatedError reports end of input inside a construct that needs a
// terminator (a comment or a quoted attribute value).
type UnterminatedError struct {
	ParseError
	Construct string
}

// EmptyTagNameError reports a tag or attribute name with no characters.
type EmptyTagNameError struct{ ParseError }

// NestingTooDeepError reports element nesting beyond Options.MaxDepth.
type NestingTooDeepError struct {
	ParseError
	Limit int
}

func unexpectedChar(pos Position, expected, found string) error {
	return &UnexpectedCharError{
		ParseError: ParseError{Pos: pos},
		Expected:   expected,
		Found:      found,
	}
}
