// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jchunk

type spaceState byte

const (
	inSpace     spaceState = iota // between tokens
	inSlash                       // after "/"
	inLine                        // line comment, up to LF
	inBlock                       // block comment
	inBlockStar                   // block comment, after "*"
)

// A space discards insignificant whitespace, and comments if they are
// enabled. Comments are a non-standard extension of JSON: C++ style block
// comments (/* ... */) and line comments (// ...) are treated as whitespace.
// A comment may span any number of chunks.
type space struct {
	state spaceState
}

// skip discards whitespace and comments from the front of text, and returns
// the remaining text beginning with the next significant character. If it
// returns an empty string, all of text was consumed.
func (s *space) skip(text string, comments bool) (string, error) {
	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch s.state {
		case inSlash:
			switch ch {
			case '/':
				s.state = inLine
			case '*':
				s.state = inBlock
			default:
				return "", syntaxError(ErrUnexpectedCharacter, i, "invalid %s in comment", quoteByte(ch))
			}
		case inLine:
			if ch == '\n' {
				s.state = inSpace
			}
		case inBlock:
			if ch == '*' {
				s.state = inBlockStar
			}
		case inBlockStar:
			if ch == '/' {
				s.state = inSpace
			} else if ch != '*' {
				s.state = inBlock
			}
		default:
			if isSpace(ch) {
				continue
			} else if ch == '/' && comments {
				s.state = inSlash
				continue
			}
			return text[i:], nil
		}
	}
	return "", nil
}

// end reports an error if the input ended inside an incomplete comment. A
// line comment may be terminated by the end of input.
func (s *space) end() error {
	switch s.state {
	case inSlash, inBlock, inBlockStar:
		return eofError("comment")
	}
	return nil
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}
