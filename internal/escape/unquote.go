// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles unquoting of JSON string literals.
package escape

import (
	"errors"
	"fmt"

	"go4.org/mem"
)

// decode maps each supported escape character to its decoded byte.
var decode = [...]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Valid reports whether ch may follow a backslash in a string literal.
func Valid(ch rune) bool {
	return ch >= 0 && int(ch) < len(decode) && decode[ch] != 0
}

// Unquote decodes the body of a string literal. The input must have the
// enclosing double quotation marks already removed.
//
// Only the escapes accepted by Valid are decoded; Unquote reports an error
// for any other escape and for an incomplete escape at the end of src.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}
	for {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		r, n := mem.DecodeRune(src)
		if !Valid(r) {
			return nil, fmt.Errorf("invalid escape %q", r)
		}
		dec = append(dec, decode[r])
		src = src.SliceFrom(n)

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
	}
}
