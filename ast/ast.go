// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines the JSON values produced by the chunked parser.
//
// Each value reports its compact JSON encoding via the JSON method. The
// concrete type of a Value is one of Null, Bool, Number, String, Array, or
// Object.
package ast

import (
	"errors"
	"math"
	"slices"
	"strconv"

	"github.com/timvandam/jchunk/internal/escape"
	"go4.org/mem"
)

// A Value is an arbitrary JSON value.
type Value interface {
	// JSON returns the compact JSON encoding of the value.
	JSON() string
}

// Null represents the null constant.
type Null struct{}

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

// A Number is a numeric value. Text is the literal as it appeared in the
// input, and Value is its decimal value.
type Number struct {
	Text  string
	Value float64
}

// ErrNumberRange is reported by ParseNumber for a literal whose magnitude is
// not representable as a float64.
var ErrNumberRange = errors.New("number out of range")

// ParseNumber parses text as a JSON number literal.
func ParseNumber(text string) (Number, error) {
	if !ValidNumber(text) {
		return Number{}, strconv.ErrSyntax
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(v, 0) {
		return Number{}, ErrNumberRange
	}
	return Number{Text: text, Value: v}, nil
}

// MustNumber parses text as a JSON number literal, and panics if it is not
// valid.
func MustNumber(text string) Number {
	n, err := ParseNumber(text)
	if err != nil {
		panic("invalid number " + strconv.Quote(text) + ": " + err.Error())
	}
	return n
}

// Int returns a Number with the given integer value.
func Int(z int64) Number { return Number{Text: strconv.FormatInt(z, 10), Value: float64(z)} }

// Float returns a Number with the given floating-point value. It panics if v
// is infinite or NaN, which have no JSON representation.
func Float(v float64) Number {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		panic("invalid JSON number")
	}
	return Number{Text: strconv.FormatFloat(v, 'g', -1, 64), Value: v}
}

// JSON satisfies the Value interface.
func (n Number) JSON() string { return n.Text }

// IsInt reports whether n is written as an integer, with no fraction or
// exponent.
func (n Number) IsInt() bool {
	for i := 0; i < len(n.Text); i++ {
		switch n.Text[i] {
		case '.', 'e', 'E':
			return false
		}
	}
	return true
}

// Int64 returns the value of n as an int64, if n is an integer that fits.
func (n Number) Int64() (int64, bool) {
	if !n.IsInt() {
		return 0, false
	}
	z, err := strconv.ParseInt(n.Text, 10, 64)
	return z, err == nil
}

// A String is a decoded string value.
type String string

// JSON satisfies the Value interface.
func (s String) JSON() string { return string(escape.AppendQuote(nil, mem.S(string(s)))) }

// An Array is a sequence of values.
type Array []Value

// JSON satisfies the Value interface.
func (a Array) JSON() string { return string(a.appendJSON(nil)) }

func (a Array) appendJSON(buf []byte) []byte {
	buf = append(buf, '[')
	for i, v := range a {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendValue(buf, v)
	}
	return append(buf, ']')
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
func Field(key string, value Value) *Member { return &Member{Key: key, Value: value} }

// JSON returns the encoding of the member as it appears inside an object.
func (m *Member) JSON() string { return string(m.appendJSON(nil)) }

func (m *Member) appendJSON(buf []byte) []byte {
	buf = escape.AppendQuote(buf, mem.S(m.Key))
	buf = append(buf, ':')
	return appendValue(buf, m.Value)
}

// An Object is a collection of key-value members. Keys are unique, and the
// members are ordered by when their key was last written.
type Object []*Member

// JSON satisfies the Value interface.
func (o Object) JSON() string { return string(o.appendJSON(nil)) }

func (o Object) appendJSON(buf []byte) []byte {
	buf = append(buf, '{')
	for i, m := range o {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = m.appendJSON(buf)
	}
	return append(buf, '}')
}

// Find returns the member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	if i := o.index(key); i >= 0 {
		return o[i]
	}
	return nil
}

// Set sets the value of key in o and returns the updated object. If key was
// already present, its old member is removed and the new one is appended, so
// that the last write wins and determines the order.
func (o Object) Set(key string, value Value) Object {
	if i := o.index(key); i >= 0 {
		o = slices.Delete(o, i, i+1)
	}
	return append(o, Field(key, value))
}

// Keys returns the keys of o in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

func (o Object) index(key string) int {
	return slices.IndexFunc(o, func(m *Member) bool { return m.Key == key })
}

func appendValue(buf []byte, v Value) []byte {
	switch t := v.(type) {
	case Array:
		return t.appendJSON(buf)
	case Object:
		return t.appendJSON(buf)
	case String:
		return escape.AppendQuote(buf, mem.S(string(t)))
	case nil:
		return append(buf, "null"...)
	default:
		return append(buf, v.JSON()...)
	}
}
