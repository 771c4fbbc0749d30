// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jchunk

import "github.com/timvandam/jchunk/ast"

type arrayState byte

const (
	wantValueOrClose arrayState = iota // after "["
	wantElement                        // after ","
	wantCommaOrClose                   // after an element
)

// An arrayParser parses a bracketed sequence of comma-separated values.
// Each element is parsed by a child parser chosen by dispatch.
type arrayParser struct {
	syn   syntax
	open  bool // the opening bracket has been consumed
	state arrayState
	ws    space
	child Parser // the parser for the current element, or nil
	vals  ast.Array
}

func (p *arrayParser) Feed(text string) (ast.Value, string, error) {
	rest := text
	if !p.open && rest != "" {
		rest = rest[1:] // discard the opening bracket
		p.open = true
	}
	for {
		// If an element is in progress, it gets the text first.
		if p.child != nil {
			v, tail, err := p.child.Feed(rest)
			if err != nil {
				return nil, "", shift(err, len(text)-len(rest))
			} else if v == nil {
				return nil, "", nil // the element needs more input
			}
			p.vals = append(p.vals, v)
			p.child = nil
			p.state = wantCommaOrClose
			rest = tail
		}

		tail, err := p.ws.skip(rest, p.syn.comments)
		if err != nil {
			return nil, "", shift(err, len(text)-len(rest))
		} else if tail == "" {
			return nil, "", nil
		}
		rest = tail
		pos := len(text) - len(rest)

		switch ch := rest[0]; {
		case ch == ']':
			if p.state == wantElement && !p.syn.tcomma {
				return nil, "", syntaxError(ErrTrailingComma, pos, "unexpected %q after comma", ch)
			}
			if p.vals == nil {
				p.vals = ast.Array{}
			}
			return p.vals, rest[1:], nil

		case p.state == wantCommaOrClose:
			if ch != ',' {
				return nil, "", syntaxError(ErrExpectedComma, pos, `expected "," or "]", got %s`, quoteByte(ch))
			}
			p.state = wantElement
			rest = rest[1:]

		default:
			child, err := dispatch(ch, p.syn)
			if err != nil {
				return nil, "", shift(err, pos)
			}
			p.child = child
		}
	}
}

func (p *arrayParser) End() (ast.Value, error) { return nil, eofError("array") }
