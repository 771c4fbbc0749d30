// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jchunk

import (
	"fmt"

	"github.com/timvandam/jchunk/ast"
)

// A Parser consumes the text of a single JSON value, which may arrive in any
// number of pieces.
//
// Each call to Feed consumes a prefix of text. If the value is not yet
// complete, Feed consumes all of text and returns a nil value; the caller
// must provide more text to make progress. Otherwise, Feed returns the value
// and the unconsumed remainder of text, which is a suffix of text.
//
// If the input is malformed, Feed reports an error of concrete type
// *SyntaxError, whose offset is relative to the start of text. Once a Parser
// has reported a value or an error it must not be used again.
//
// An array or object passes the text it is fed down to the parser for its
// innermost open value, so the cost of a call to Feed grows with the nesting
// depth of the input as well as the length of text. Input split into very
// small chunks with deep nesting is slow to parse; see Decoder.SetMaxDepth.
type Parser interface {
	// Feed consumes text and reports a complete value and the remainder of
	// text, or a nil value if more input is required.
	Feed(text string) (v ast.Value, rest string, err error)

	// End reports that no more input is available. A parser whose value is
	// complete at end of input returns that value; otherwise End reports
	// ErrUnexpectedEOF.
	End() (ast.Value, error)
}

// syntax records the grammar extensions enabled for a parse.
type syntax struct {
	comments bool // allow /* ... */ and // ... comments as whitespace
	tcomma   bool // allow trailing commas in arrays and objects
	maxDepth int  // maximum nesting of arrays and objects; 0 means no limit
	depth    int  // number of arrays and objects enclosing the current value
}

// Dispatch returns a parser for the value whose first character is ch. The
// parser expects to be fed text beginning with ch.
//
// The opening characters of JSON values are:
//
//	Character | Value
//	--------- | -------------------------
//	[         | array
//	{         | object
//	"         | string
//	t, f      | constant: true, false
//	n         | constant: null
//	-, 0-9    | number
//
// Dispatch reports ErrUnexpectedCharacter for any other character, including
// whitespace, which the caller must skip.
func Dispatch(ch byte) (Parser, error) { return dispatch(ch, syntax{}) }

func dispatch(ch byte, syn syntax) (Parser, error) {
	switch ch {
	case '[', '{':
		if syn.maxDepth > 0 && syn.depth >= syn.maxDepth {
			return nil, syntaxError(ErrTooDeep, 0, "nesting exceeds %d levels", syn.maxDepth)
		}
		syn.depth++
		if ch == '[' {
			return &arrayParser{syn: syn}, nil
		}
		return &objectParser{syn: syn}, nil
	case '"':
		return new(stringParser), nil
	case 't':
		return newSymbolParser("true", ast.Bool(true)), nil
	case 'f':
		return newSymbolParser("false", ast.Bool(false)), nil
	case 'n':
		return newSymbolParser("null", ast.Null{}), nil
	}
	if isNumStart(ch) {
		return new(numberParser), nil
	}
	return nil, syntaxError(ErrUnexpectedCharacter, 0, "unexpected %s", quoteByte(ch))
}

func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }

// quoteByte renders ch for an error message.
func quoteByte(ch byte) string {
	if ch < 0x80 {
		return fmt.Sprintf("%q", rune(ch))
	}
	return fmt.Sprintf("byte %#02x", ch)
}

// eofError reports that the input ended inside a value described by what.
func eofError(what string) error {
	return syntaxError(ErrUnexpectedEOF, 0, "unexpected end of input in %s", what)
}
