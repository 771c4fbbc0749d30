// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package body reads JSON values from HTTP response bodies as the body
// arrives, without buffering the whole body.
package body

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/timvandam/jchunk"
	"github.com/timvandam/jchunk/ast"
)

var (
	// ErrContentType is reported for a response whose content type is not
	// JSON.
	ErrContentType = errors.New("content type is not JSON")

	// ErrNoValue is reported by ReadValue for a body with no value.
	ErrNoValue = errors.New("no value in body")

	// ErrExtraInput is reported by ReadValue for a body containing more than
	// one value.
	ErrExtraInput = errors.New("extra input after value")
)

// An Option configures how a body is read.
type Option func(*config)

type config struct {
	size     int
	depth    int
	logger   log.Logger
	comments bool
	tcomma   bool
}

// DefaultMaxDepth is the nesting limit for arrays and objects in a body,
// unless changed by WithMaxDepth.
const DefaultMaxDepth = 10000

// WithChunkSize sets the maximum size of a single read from the body.
func WithChunkSize(n int) Option { return func(c *config) { c.size = n } }

// WithMaxDepth sets the maximum nesting of arrays and objects in the body.
// If n <= 0, nesting is not limited.
func WithMaxDepth(n int) Option { return func(c *config) { c.depth = n } }

// WithLogger sets the logger for debug records.
func WithLogger(logger log.Logger) Option { return func(c *config) { c.logger = logger } }

// WithComments enables (true) or disables (false) comments and trailing
// commas in the body.
func WithComments(ok bool) Option {
	return func(c *config) { c.comments, c.tcomma = ok, ok }
}

func newConfig(opts []Option) *config {
	c := &config{size: jchunk.DefaultChunkSize, depth: DefaultMaxDepth, logger: log.NewNopLogger()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsJSON reports whether contentType names a JSON media type, either
// application/json or a structured syntax type ending in "+json". An empty
// content type is not JSON.
func IsJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" || (strings.HasPrefix(mt, "application/") && strings.HasSuffix(mt, "+json"))
}

// NewDriver returns a driver that parses values from the body of rsp as it
// is read. It reports ErrContentType if the response does not declare a JSON
// content type. The caller remains responsible for closing the body.
func NewDriver(rsp *http.Response, opts ...Option) (*jchunk.Driver, error) {
	ct := rsp.Header.Get("Content-Type")
	if !IsJSON(ct) {
		return nil, fmt.Errorf("%w: %q", ErrContentType, ct)
	}
	return newDriver(rsp.Body, ct, newConfig(opts)), nil
}

// NewReaderDriver returns a driver that parses values from r.
func NewReaderDriver(r io.Reader, opts ...Option) *jchunk.Driver {
	return newDriver(r, "", newConfig(opts))
}

func newDriver(r io.Reader, ct string, c *config) *jchunk.Driver {
	level.Debug(c.logger).Log("msg", "reading JSON body", "content_type", ct, "chunk_size", c.size, "max_depth", c.depth)
	d := jchunk.NewDriver(jchunk.NewReaderSource(r, c.size))
	d.AllowComments(c.comments)
	d.AllowTrailingCommas(c.tcomma)
	d.SetMaxDepth(c.depth)
	d.SetLogger(c.logger)
	return d
}

// ReadValue reads the body of rsp, which must contain exactly one JSON
// value, and returns that value. The body is closed before ReadValue returns.
//
// If the value is followed by anything other than whitespace, ReadValue
// returns the value with ErrExtraInput. The body is not read beyond the start
// of the extra input.
func ReadValue(ctx context.Context, rsp *http.Response, opts ...Option) (ast.Value, error) {
	defer rsp.Body.Close()
	d, err := NewDriver(rsp, opts...)
	if err != nil {
		return nil, err
	}
	v, err := d.Next(ctx)
	if err == io.EOF {
		return nil, ErrNoValue
	} else if err != nil {
		return nil, err
	}
	if more, err := d.More(ctx); err != nil {
		return v, err
	} else if more {
		return v, ErrExtraInput
	}
	return v, nil
}
