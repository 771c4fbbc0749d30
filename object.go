// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jchunk

import (
	"slices"

	"github.com/timvandam/jchunk/ast"
)

type objectState byte

const (
	wantKeyOrClose   objectState = iota // after "{"
	wantKey                             // after ","
	inKey                               // parsing a key string
	wantColon                           // after a key
	wantMemberValue                     // after ":"
	inMemberValue                       // parsing a member value
	wantMemberComma                     // after a member value
)

// An objectParser parses a braced sequence of comma-separated "key": value
// members. Keys are parsed by a string parser and values by a child parser
// chosen by dispatch.
//
// If a key occurs more than once, the last member with that key wins, and
// takes its position from the last write.
type objectParser struct {
	syn   syntax
	open  bool // the opening brace has been consumed
	state objectState
	ws    space
	child Parser // the parser for the current key or value, or nil
	key   string // the key of the member in progress
	obj   ast.Object
	index map[string]int // key -> offset in obj
}

func (p *objectParser) Feed(text string) (ast.Value, string, error) {
	rest := text
	if !p.open && rest != "" {
		rest = rest[1:] // discard the opening brace
		p.open = true
	}
	for {
		if p.child != nil {
			v, tail, err := p.child.Feed(rest)
			if err != nil {
				return nil, "", shift(err, len(text)-len(rest))
			} else if v == nil {
				return nil, "", nil // the key or value needs more input
			}
			p.child = nil
			rest = tail
			if p.state == inKey {
				p.key = string(v.(ast.String))
				p.state = wantColon
			} else {
				p.set(p.key, v)
				p.state = wantMemberComma
			}
		}

		tail, err := p.ws.skip(rest, p.syn.comments)
		if err != nil {
			return nil, "", shift(err, len(text)-len(rest))
		} else if tail == "" {
			return nil, "", nil
		}
		rest = tail
		pos := len(text) - len(rest)

		switch ch := rest[0]; p.state {
		case wantKeyOrClose, wantKey:
			if ch == '}' {
				if p.state == wantKey && !p.syn.tcomma {
					return nil, "", syntaxError(ErrTrailingComma, pos, "unexpected %q after comma", ch)
				}
				return p.result(), rest[1:], nil
			} else if ch != '"' {
				return nil, "", syntaxError(ErrUnexpectedCharacter, pos, `expected "}" or string key, got %s`, quoteByte(ch))
			}
			p.child = new(stringParser)
			p.state = inKey

		case wantColon:
			if ch != ':' {
				return nil, "", syntaxError(ErrExpectedColon, pos, `expected ":", got %s`, quoteByte(ch))
			}
			p.state = wantMemberValue
			rest = rest[1:]

		case wantMemberValue:
			child, err := dispatch(ch, p.syn)
			if err != nil {
				return nil, "", shift(err, pos)
			}
			p.child = child
			p.state = inMemberValue

		case wantMemberComma:
			switch ch {
			case '}':
				return p.result(), rest[1:], nil
			case ',':
				p.state = wantKey
				rest = rest[1:]
			default:
				return nil, "", syntaxError(ErrExpectedComma, pos, `expected "," or "}", got %s`, quoteByte(ch))
			}
		}
	}
}

func (p *objectParser) End() (ast.Value, error) { return nil, eofError("object") }

// set records a member, replacing and reordering any earlier member with the
// same key.
func (p *objectParser) set(key string, v ast.Value) {
	if p.index == nil {
		p.index = make(map[string]int)
	}
	if i, ok := p.index[key]; ok {
		p.obj = slices.Delete(p.obj, i, i+1)
		for j := i; j < len(p.obj); j++ {
			p.index[p.obj[j].Key] = j
		}
	}
	p.index[key] = len(p.obj)
	p.obj = append(p.obj, ast.Field(key, v))
}

func (p *objectParser) result() ast.Object {
	if p.obj == nil {
		return ast.Object{}
	}
	return p.obj
}
