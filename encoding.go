// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jchunk

import (
	"errors"
	"strings"

	"github.com/timvandam/jchunk/ast"
	"github.com/timvandam/jchunk/internal/escape"
	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return string(escape.AppendQuote(nil, mem.S(src))) }

// Unquote decodes a JSON string value. Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// Invalid escapes, including incomplete ones, are replaced by the Unicode
// replacement rune. Unquote reports an error if src is not a single quoted
// string.
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	v, rest, err := new(stringParser).Feed(src)
	if err != nil {
		return "", err
	} else if v == nil || rest != "" {
		return "", errors.New("malformed string")
	}
	return string(v.(ast.String)), nil
}
