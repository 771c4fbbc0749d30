// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jchunk

import (
	"context"
	"io"
)

// Chunks returns a ChunkSource that delivers each of the given chunks in
// order, then reports io.EOF.
func Chunks(chunks ...string) ChunkSource { return &sliceSource{chunks: chunks} }

type sliceSource struct{ chunks []string }

func (s *sliceSource) NextChunk(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	} else if len(s.chunks) == 0 {
		return "", io.EOF
	}
	next := s.chunks[0]
	s.chunks = s.chunks[1:]
	return next, nil
}

// DefaultChunkSize is the chunk size used by NewReaderSource if the requested
// size is not positive.
const DefaultChunkSize = 4096

// NewReaderSource returns a ChunkSource that reads chunks of up to size bytes
// from r. Each chunk contains whatever a single read returned, so the chunk
// boundaries are those of the underlying reader. The reader cannot be
// interrupted, but the context is checked before each read.
func NewReaderSource(r io.Reader, size int) ChunkSource {
	if size <= 0 {
		size = DefaultChunkSize
	}
	return &readerSource{r: r, buf: make([]byte, size)}
}

type readerSource struct {
	r   io.Reader
	buf []byte
}

// maxEmptyReads is the number of consecutive empty reads after which a
// reader source gives up with io.ErrNoProgress.
const maxEmptyReads = 100

func (s *readerSource) NextChunk(ctx context.Context) (string, error) {
	for range maxEmptyReads {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		n, err := s.r.Read(s.buf)
		if n > 0 {
			return string(s.buf[:n]), nil // copy: buf is reused
		} else if err != nil {
			return "", err
		}
	}
	return "", io.ErrNoProgress
}

// ChanSource returns a ChunkSource that receives chunks from ch. The end of
// the input is marked by closing ch. If the context ends while waiting for a
// chunk, NextChunk reports the context's error.
func ChanSource(ch <-chan string) ChunkSource { return chanSource(ch) }

type chanSource <-chan string

func (c chanSource) NextChunk(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case s, ok := <-c:
		if !ok {
			return "", io.EOF
		}
		return s, nil
	}
}
