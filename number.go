// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jchunk

import (
	"errors"

	"github.com/timvandam/jchunk/ast"
)

// A numberParser accumulates a numeric literal.
//
// A number has no closing delimiter: it ends at the first byte that cannot
// belong to a number, which is left in the remainder for the caller. A chunk
// boundary is not evidence that the number is complete, so a number that
// runs to the end of the available text is finished only by End.
type numberParser struct {
	buf []byte
}

func (p *numberParser) Feed(text string) (ast.Value, string, error) {
	for i := 0; i < len(text); i++ {
		if !isNumByte(text[i]) {
			p.buf = append(p.buf, text[:i]...)
			v, err := p.finish()
			if err != nil {
				return nil, "", shift(err, i)
			}
			return v, text[i:], nil
		}
	}
	p.buf = append(p.buf, text...)
	return nil, "", nil
}

func (p *numberParser) End() (ast.Value, error) { return p.finish() }

func (p *numberParser) finish() (ast.Value, error) {
	n, err := ast.ParseNumber(string(p.buf))
	if errors.Is(err, ast.ErrNumberRange) {
		return nil, syntaxError(ErrInvalidNumber, 0, "number %q out of range", p.buf)
	} else if err != nil {
		return nil, syntaxError(ErrInvalidNumber, 0, "invalid number %q", p.buf)
	}
	return n, nil
}

// isNumByte reports whether ch can occur in a numeric literal.
func isNumByte(ch byte) bool {
	return isDigit(ch) || ch == '-' || ch == '+' || ch == '.' || ch == 'e' || ch == 'E'
}
