// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jchunk

import (
	"context"
	"io"
	"iter"

	"github.com/go-kit/log"
	"github.com/timvandam/jchunk/ast"
)

// A ChunkSource delivers the text of an input stream in chunks.
type ChunkSource interface {
	// NextChunk returns the next chunk of the input. At the end of the input,
	// it returns "", io.EOF. Any other error is reported to the caller of the
	// Driver unchanged.
	NextChunk(ctx context.Context) (string, error)
}

// A Driver parses a sequence of JSON values from text read from a
// ChunkSource. Each call to Next reads chunks until a value is complete.
type Driver struct {
	src ChunkSource
	dec *Decoder
	err error // error from src, sticky
}

// NewDriver constructs a new Driver that consumes input from src.
func NewDriver(src ChunkSource) *Driver {
	return &Driver{src: src, dec: NewDecoder()}
}

// AllowComments configures the parser to treat comments as whitespace (true)
// or to reject them (false).
func (d *Driver) AllowComments(ok bool) { d.dec.AllowComments(ok) }

// AllowTrailingCommas configures the parser to allow (true) or reject (false)
// trailing commas in objects and arrays.
func (d *Driver) AllowTrailingCommas(ok bool) { d.dec.AllowTrailingCommas(ok) }

// SetMaxDepth limits the nesting of arrays and objects to n levels, or
// removes the limit if n <= 0.
func (d *Driver) SetMaxDepth(n int) { d.dec.SetMaxDepth(n) }

// SetLogger sets the logger to which d writes debug records.
func (d *Driver) SetLogger(logger log.Logger) { d.dec.SetLogger(logger) }

// Next parses and returns the next value from the input. If the input ends
// cleanly between values, Next returns io.EOF. In case of a syntax error, the
// returned error has type *SyntaxError. Errors from the source are returned
// as-is. Any error other than io.EOF is terminal.
func (d *Driver) Next(ctx context.Context) (ast.Value, error) {
	for {
		if d.err != nil {
			return nil, d.err
		}
		v, err := d.dec.Next()
		if err != nil || v != nil {
			return v, err
		}

		chunk, err := d.src.NextChunk(ctx)
		if err == io.EOF {
			return d.dec.Close()
		} else if err != nil {
			d.err = err
			return nil, err
		}
		d.dec.Push(chunk)
	}
}

// All returns an iterator over the values of the input. If parsing fails,
// the iterator yields the error and stops.
func (d *Driver) All(ctx context.Context) iter.Seq2[ast.Value, error] {
	return func(yield func(ast.Value, error) bool) {
		for {
			v, err := d.Next(ctx)
			if err == io.EOF {
				return
			} else if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// More reports whether the input contains another value, reading from the
// source only as far as the first byte of that value. The value itself is
// not parsed, so More does not report whether it is well-formed.
func (d *Driver) More(ctx context.Context) (bool, error) {
	for {
		if d.err != nil {
			return false, d.err
		}
		ok, err := d.dec.More()
		if err != nil || ok {
			return ok, err
		}

		chunk, err := d.src.NextChunk(ctx)
		if err == io.EOF {
			if _, err := d.dec.Close(); err != io.EOF {
				return false, err
			}
			return false, nil
		} else if err != nil {
			d.err = err
			return false, err
		}
		d.dec.Push(chunk)
	}
}

// Remainder returns the text read from the source that has not been consumed
// by the values returned so far.
func (d *Driver) Remainder() string { return d.dec.Remainder() }

// Offset returns the offset in the input of the first unconsumed byte.
func (d *Driver) Offset() int { return d.dec.Offset() }

// Values returns an iterator over the values parsed from a sequence of
// chunks. The sequence is consumed lazily: each value is yielded as soon as
// the chunks containing it have been read. If parsing fails, the iterator
// yields the error and stops.
func Values(chunks iter.Seq[string]) iter.Seq2[ast.Value, error] {
	return func(yield func(ast.Value, error) bool) {
		dec := NewDecoder()

		// drain yields the values available, and reports whether to continue.
		drain := func() bool {
			for {
				v, err := dec.Next()
				if err == io.EOF || (err == nil && v == nil) {
					return err == nil
				} else if !yield(v, err) || err != nil {
					return false
				}
			}
		}
		for chunk := range chunks {
			dec.Push(chunk)
			if !drain() {
				return
			}
		}
		v, err := dec.Close()
		if err == io.EOF {
			return
		} else if !yield(v, err) || err != nil {
			return
		}
		drain()
	}
}

// ParseAll parses all the values in the given chunks. In case of error, any
// complete values already parsed are returned along with the error.
func ParseAll(chunks ...string) ([]ast.Value, error) {
	var vs []ast.Value
	for v, err := range NewDriver(Chunks(chunks...)).All(context.Background()) {
		if err != nil {
			return vs, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}
