// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jchunk

import (
	"strings"

	"github.com/timvandam/jchunk/ast"
	"github.com/timvandam/jchunk/internal/escape"
)

// A stringParser decodes a quoted string. Escape sequences may be split at
// any point between chunks.
type stringParser struct {
	open bool // the opening quote has been consumed
	dec  escape.Decoder
}

func (p *stringParser) Feed(text string) (ast.Value, string, error) {
	rest := text
	if !p.open && rest != "" {
		rest = rest[1:] // discard the opening quote
		p.open = true
	}
	for rest != "" {
		if p.dec.Escaped() {
			p.dec.WriteByte(rest[0])
			rest = rest[1:]
			continue
		}
		i := strings.IndexByte(rest, '"')
		if i < 0 {
			p.dec.WriteString(rest)
			break
		}

		// The quote closes the string unless the text before it ends with an
		// unpaired backslash.
		p.dec.WriteString(rest[:i])
		rest = rest[i+1:]
		if !p.dec.Escaped() {
			return ast.String(p.dec.String()), rest, nil
		}
		p.dec.WriteByte('"')
	}
	return nil, "", nil
}

func (p *stringParser) End() (ast.Value, error) { return nil, eofError("string") }
