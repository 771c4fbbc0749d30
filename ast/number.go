// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

// ValidNumber reports whether text is a well-formed JSON number literal:
//
//	-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
func ValidNumber(text string) bool {
	i := 0
	if i < len(text) && text[i] == '-' {
		i++ // skip leading sign
	}

	// Integer part. A leading zero is OK only if it is the only digit.
	n := digits(text[i:])
	if n == 0 || (n > 1 && text[i] == '0') {
		return false
	}
	i += n

	// Optional fraction, which requires at least one digit.
	if i < len(text) && text[i] == '.' {
		i++
		n = digits(text[i:])
		if n == 0 {
			return false
		}
		i += n
	}

	// Optional exponent, with an optional sign and at least one digit.
	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		i++
		if i < len(text) && (text[i] == '+' || text[i] == '-') {
			i++
		}
		n = digits(text[i:])
		if n == 0 {
			return false
		}
		i += n
	}
	return i == len(text)
}

// digits reports the length of the run of decimal digits at the front of s.
func digits(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return i
		}
	}
	return len(s)
}
