// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jchunk implements an incremental JSON parser for text that arrives
// in chunks, as from a network stream.
//
// The text of a value may be split at any point, including in the middle of
// a string escape, a number, or a constant such as true. Values are reported
// as soon as they are complete, without buffering the rest of the input.
// Values are represented by the types of package ast.
//
// # Decoding
//
// The Decoder type is the push interface. Push chunks as they arrive and call
// Next to collect complete values. Next returns nil, nil when it needs more
// input. At the end of the input, call Close, then call Next until it returns
// io.EOF:
//
//	dec := jchunk.NewDecoder()
//	for chunk := range chunks {
//	   dec.Push(chunk)
//	   for {
//	      v, err := dec.Next()
//	      if err != nil {
//	         log.Fatalf("Parse failed: %v", err)
//	      } else if v == nil {
//	         break // more input needed
//	      }
//	      log.Printf("Value: %s", v.JSON())
//	   }
//	}
//
// The end of the input must be reported explicitly, since a number has no
// closing delimiter: "12" followed by "3" is the single number 123.
//
// # Driving
//
// The Driver type is the pull interface. Construct a Driver from a
// ChunkSource and call its Next method. Next returns io.EOF if the input ends
// cleanly between values:
//
//	d := jchunk.NewDriver(jchunk.NewReaderSource(r, 0))
//	for v, err := range d.All(ctx) {
//	   if err != nil {
//	      log.Fatalf("Parse failed: %v", err)
//	   }
//	   log.Printf("Value: %s", v.JSON())
//	}
//
// # Parsers
//
// Each JSON value is parsed by a Parser specific to its grammar production,
// chosen by Dispatch from the first character of the value. A parser consumes
// as much text as it is given: either the value is complete, and the parser
// returns it along with the unconsumed remainder of the text, or the parser
// has consumed all the text and must be fed more. Arrays and objects feed
// their elements to child parsers.
//
// # Errors
//
// Malformed input is reported as an error of concrete type *SyntaxError,
// which gives the byte offset of the error and wraps one of the Err* values
// of this package. Errors are terminal: once a parse fails, the rest of the
// input is not examined.
package jchunk
