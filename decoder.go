// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jchunk

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/timvandam/jchunk/ast"
)

// A Decoder parses a sequence of JSON values from text delivered in chunks.
// The caller pushes chunks as they arrive and pulls complete values with
// Next. When the input is exhausted, the caller must call Close, since a
// chunk boundary alone does not show whether a value is complete.
//
// A Decoder parses a single input stream. Once it has reported an error it
// reports the same error for every subsequent call.
type Decoder struct {
	syn    syntax
	logger log.Logger

	pend []string // chunks not yet consumed; pend[0] may be partly consumed
	base int      // offset in the input of pend[0][0]
	cur  Parser   // the parser for the value in progress, or nil
	ws   space
	eof  bool
	err  error
}

// NewDecoder constructs a new empty Decoder.
func NewDecoder() *Decoder { return &Decoder{logger: log.NewNopLogger()} }

// AllowComments configures d to treat comments as whitespace (true) or to
// reject them (false). Comments are a non-standard extension of JSON.  If
// enabled, C++ style block comments (/* ... */) and line comments (// ...)
// are recognized and discarded.
func (d *Decoder) AllowComments(ok bool) { d.syn.comments = ok }

// AllowTrailingCommas configures d to allow (true) or reject (false) trailing
// commas in objects and arrays.
func (d *Decoder) AllowTrailingCommas(ok bool) { d.syn.tcomma = ok }

// SetMaxDepth limits the nesting of arrays and objects to n levels. Input
// nested more deeply is reported as ErrTooDeep. If n <= 0, nesting is not
// limited, which is the default.
func (d *Decoder) SetMaxDepth(n int) { d.syn.maxDepth = max(n, 0) }

// SetLogger sets the logger to which d writes debug records about completed
// values and failures. By default nothing is logged.
func (d *Decoder) SetLogger(logger log.Logger) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	d.logger = logger
}

// Push adds a chunk of text to the end of the input. Empty chunks are
// ignored. Push panics if called after Close.
func (d *Decoder) Push(chunk string) {
	if d.eof {
		panic("jchunk: Push after Close")
	}
	if chunk != "" {
		d.pend = append(d.pend, chunk)
	}
}

// Next returns the next complete value from the input pushed so far. If the
// input does not yet contain a complete value, Next returns nil, nil and the
// caller should push more input or call Close. After Close, Next returns
// io.EOF once all values have been returned.
func (d *Decoder) Next() (ast.Value, error) {
	if d.err != nil {
		return nil, d.err
	}
	for len(d.pend) != 0 {
		text := d.pend[0]
		if d.cur == nil {
			// Find the start of the next value.
			tail, err := d.ws.skip(text, d.syn.comments)
			if err != nil {
				return nil, d.fail(err)
			} else if tail == "" {
				d.consume(len(text))
				continue
			}
			d.consume(len(text) - len(tail))
			text = tail

			p, err := dispatch(text[0], d.syn)
			if err != nil {
				return nil, d.fail(err)
			}
			d.cur = p
		}

		v, rest, err := d.cur.Feed(text)
		if err != nil {
			return nil, d.fail(err)
		} else if v == nil {
			d.consume(len(text))
			continue
		}
		d.cur = nil
		d.consume(len(text) - len(rest))
		level.Debug(d.logger).Log("msg", "parsed value", "end", d.base, "type", typeName(v))
		return v, nil
	}
	if d.eof {
		return d.finish()
	}
	return nil, nil
}

// More reports whether the input pushed so far contains the start of another
// value, without parsing that value. Whitespace and comments before the value
// are consumed. If More reports false, the caller cannot tell whether another
// value follows until it pushes more input or calls Close.
func (d *Decoder) More() (bool, error) {
	if d.err == io.EOF {
		return false, nil
	} else if d.err != nil {
		return false, d.err
	} else if d.cur != nil {
		return true, nil
	}
	for len(d.pend) != 0 {
		text := d.pend[0]
		tail, err := d.ws.skip(text, d.syn.comments)
		if err != nil {
			return false, d.fail(err)
		}
		d.consume(len(text) - len(tail))
		if tail != "" {
			return true, nil
		}
	}
	return false, nil
}

// Close reports the end of the input, and returns the next value as Next
// does. After Close, the caller should call Next until it reports io.EOF.
//
// Only a number can be completed by the end of the input, since it has no
// closing delimiter. If the input ends inside any other value, or inside a
// block comment, the decoder reports ErrUnexpectedEOF.
func (d *Decoder) Close() (ast.Value, error) {
	if d.err != nil {
		return nil, d.err
	}
	d.eof = true
	return d.Next()
}

// finish handles the end of the input once all pushed text is consumed.
func (d *Decoder) finish() (ast.Value, error) {
	if d.cur == nil {
		if err := d.ws.end(); err != nil {
			return nil, d.fail(err)
		}
		d.err = io.EOF
		return nil, io.EOF
	}
	p := d.cur
	d.cur = nil
	v, err := p.End()
	if err != nil {
		return nil, d.fail(err)
	}
	level.Debug(d.logger).Log("msg", "parsed value at end of input", "end", d.base, "type", typeName(v))
	return v, nil
}

// Remainder returns the text pushed to d that has not yet been consumed.
func (d *Decoder) Remainder() string {
	switch len(d.pend) {
	case 0:
		return ""
	case 1:
		return d.pend[0]
	}
	var n int
	for _, s := range d.pend {
		n += len(s)
	}
	buf := make([]byte, 0, n)
	for _, s := range d.pend {
		buf = append(buf, s...)
	}
	return string(buf)
}

// Offset returns the offset in the input of the first unconsumed byte.
func (d *Decoder) Offset() int { return d.base }

// consume discards the first n bytes of pend[0], which must exist.
func (d *Decoder) consume(n int) {
	d.base += n
	if n == len(d.pend[0]) {
		d.pend[0] = ""
		d.pend = d.pend[1:]
	} else {
		d.pend[0] = d.pend[0][n:]
	}
}

// fail records a terminal error. Syntax errors arrive with offsets relative
// to the start of pend[0] and are adjusted to the whole input.
func (d *Decoder) fail(err error) error {
	d.err = shift(err, d.base)
	d.cur = nil
	level.Debug(d.logger).Log("msg", "parse failed", "err", d.err)
	return d.err
}

func typeName(v ast.Value) string {
	switch v.(type) {
	case ast.Null:
		return "null"
	case ast.Bool:
		return "bool"
	case ast.Number:
		return "number"
	case ast.String:
		return "string"
	case ast.Array:
		return "array"
	case ast.Object:
		return "object"
	}
	return "unknown"
}
