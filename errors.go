// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jchunk

import (
	"errors"
	"fmt"
)

// Errors reported by the parsers. A *SyntaxError returned by a parser wraps
// exactly one of these, so callers may test for them with errors.Is.
var (
	// ErrUnexpectedCharacter means a value was expected, but the next
	// character cannot start any JSON value.
	ErrUnexpectedCharacter = errors.New("unexpected character")

	// ErrMalformedToken means the text of a constant (true, false, null)
	// did not match.
	ErrMalformedToken = errors.New("malformed token")

	// ErrInvalidNumber means a numeric literal was not well-formed, or its
	// magnitude is too large to represent.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrExpectedComma means an array element or object member was not
	// followed by a comma or the closing bracket.
	ErrExpectedComma = errors.New("expected comma")

	// ErrExpectedColon means an object key was not followed by a colon.
	ErrExpectedColon = errors.New("expected colon")

	// ErrTrailingComma means a comma was followed directly by the closing
	// bracket of an array or object.
	ErrTrailingComma = errors.New("trailing comma")

	// ErrUnexpectedEOF means the input ended in the middle of a value.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrTooDeep means arrays and objects were nested more deeply than the
	// configured limit.
	ErrTooDeep = errors.New("nesting too deep")
)

// SyntaxError is the concrete type of errors reported by the parsers.
type SyntaxError struct {
	Offset  int // byte offset of the error in the input
	Message string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at offset %d: %s", s.Offset, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

// syntaxError constructs a *SyntaxError of the given kind at offset pos,
// relative to the text being parsed.
func syntaxError(kind error, pos int, msg string, args ...any) *SyntaxError {
	return &SyntaxError{Offset: pos, Message: fmt.Sprintf(msg, args...), err: kind}
}

// shift adjusts the offset of a syntax error reported for a suffix of the
// text by the caller, which began n bytes earlier. Other errors are returned
// unmodified.
func shift(err error, n int) error {
	var se *SyntaxError
	if errors.As(err, &se) {
		se.Offset += n
	}
	return err
}
