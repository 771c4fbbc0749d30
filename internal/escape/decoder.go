// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

type decState byte

const (
	plain   decState = iota // copying bytes through
	escaped                 // after a backslash
	hex                     // inside the digits of a \u escape
)

// A Decoder decodes the body of a JSON string literal, one piece of text at a
// time. The enclosing quotation marks are not passed to the decoder; the
// caller is responsible for recognizing the closing quote, which is any
// unescaped '"' (see Escaped).
//
// Escape sequences are replaced with their unescaped equivalents. Invalid
// escapes, malformed \u escapes, and unpaired surrogates are replaced by the
// Unicode replacement rune. The decoder state survives across calls, so an
// escape sequence may be split at any point.
//
// The zero value is ready for use.
type Decoder struct {
	buf   []byte
	state decState
	code  rune // accumulated \u digits
	nhex  int  // number of \u digits seen
	high  rune // pending high surrogate, or 0
}

// Escaped reports whether the next byte is the character following a
// backslash. In that state a '"' does not close the string.
func (d *Decoder) Escaped() bool { return d.state == escaped }

// WriteString decodes s, which must not contain a closing quote.
func (d *Decoder) WriteString(s string) {
	for len(s) != 0 {
		if d.state != plain {
			d.WriteByte(s[0])
			s = s[1:]
			continue
		}

		// Copy everything up to the next escape directly.
		i := strings.IndexByte(s, '\\')
		if i < 0 {
			d.flushHigh()
			d.buf = append(d.buf, s...)
			return
		} else if i > 0 {
			d.flushHigh()
			d.buf = append(d.buf, s[:i]...)
		}
		d.state = escaped
		s = s[i+1:]
	}
}

// WriteByte decodes a single byte of the string body. It never reports an
// error; the signature matches io.ByteWriter.
func (d *Decoder) WriteByte(b byte) error {
	switch d.state {
	case escaped:
		d.state = plain
		switch b {
		case '"', '\\', '/':
			d.putByte(b)
		case 'b':
			d.putByte('\b')
		case 'f':
			d.putByte('\f')
		case 'n':
			d.putByte('\n')
		case 'r':
			d.putByte('\r')
		case 't':
			d.putByte('\t')
		case 'u':
			d.state, d.code, d.nhex = hex, 0, 0
		default:
			d.putRune(utf8.RuneError)
		}

	case hex:
		v, ok := hexValue(b)
		if !ok {
			// The escape is cut short; replace it and reprocess b.
			d.state = plain
			d.putRune(utf8.RuneError)
			return d.WriteByte(b)
		}
		d.code = d.code<<4 | v
		if d.nhex++; d.nhex == 4 {
			d.state = plain
			d.putCode(d.code)
		}

	default:
		if b == '\\' {
			d.state = escaped
		} else {
			d.putByte(b)
		}
	}
	return nil
}

// String completes decoding and returns the decoded text. Any incomplete
// escape sequence at the end of the input is replaced by the Unicode
// replacement rune.
func (d *Decoder) String() string {
	if d.state != plain {
		d.state = plain
		d.putRune(utf8.RuneError)
	}
	d.flushHigh()
	return string(d.buf)
}

// Reset discards the contents of d so that it may be reused.
func (d *Decoder) Reset() { *d = Decoder{buf: d.buf[:0]} }

func (d *Decoder) putByte(b byte) {
	d.flushHigh()
	d.buf = append(d.buf, b)
}

func (d *Decoder) putRune(r rune) {
	d.flushHigh()
	d.buf = utf8.AppendRune(d.buf, r)
}

// putCode emits the code point of a completed \u escape, pairing surrogates.
func (d *Decoder) putCode(r rune) {
	if d.high != 0 {
		hi := d.high
		d.high = 0
		if p := utf16.DecodeRune(hi, r); p != utf8.RuneError {
			d.buf = utf8.AppendRune(d.buf, p)
			return
		}
		d.buf = utf8.AppendRune(d.buf, utf8.RuneError)
	}
	switch {
	case 0xD800 <= r && r < 0xDC00:
		d.high = r // wait for the low half
	case utf16.IsSurrogate(r):
		d.buf = utf8.AppendRune(d.buf, utf8.RuneError)
	default:
		d.buf = utf8.AppendRune(d.buf, r)
	}
}

// flushHigh replaces a high surrogate that was not followed by its pair.
func (d *Decoder) flushHigh() {
	if d.high != 0 {
		d.high = 0
		d.buf = utf8.AppendRune(d.buf, utf8.RuneError)
	}
}

func hexValue(b byte) (rune, bool) {
	switch {
	case '0' <= b && b <= '9':
		return rune(b - '0'), true
	case 'a' <= b && b <= 'f':
		return rune(b-'a') + 10, true
	case 'A' <= b && b <= 'F':
		return rune(b-'A') + 10, true
	}
	return 0, false
}
