// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jchunk

import (
	"github.com/timvandam/jchunk/ast"
	"go4.org/mem"
)

// A symbolParser matches a constant with one fixed spelling: true, false, or
// null.
type symbolParser struct {
	want  mem.RO    // the complete spelling
	n     int       // number of bytes of want matched so far
	value ast.Value // reported on a complete match
}

func newSymbolParser(want string, value ast.Value) *symbolParser {
	return &symbolParser{want: mem.S(want), value: value}
}

func (p *symbolParser) Feed(text string) (ast.Value, string, error) {
	for i := 0; i < len(text); i++ {
		if text[i] != p.want.At(p.n) {
			return nil, "", syntaxError(ErrMalformedToken, i,
				"unknown constant: got %s, want %q", quoteByte(text[i]), p.want.StringCopy())
		}
		if p.n++; p.n == p.want.Len() {
			return p.value, text[i+1:], nil
		}
	}
	return nil, "", nil
}

func (p *symbolParser) End() (ast.Value, error) {
	return nil, eofError("constant " + p.want.StringCopy())
}
