// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jdoc

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the errors reported by the lexer and parser.
type ErrorKind byte

// Constants defining the valid ErrorKind values. Lexical kinds precede
// syntactic kinds; see ErrorKind.IsLexical.
const (
	UnknownError ErrorKind = iota

	UnexpectedChar     // a character that cannot start any token
	UnterminatedString // end of input inside a string literal
	InvalidEscape      // unsupported \-escape in a string literal
	BadKeyword         // misspelled true, false, or null
	BadNumber          // malformed number literal
	InvalidUTF8        // input is not valid UTF-8

	MissingColon       // object key not followed by ":"
	TrailingComma      // "," immediately before "}" or "]"
	UnexpectedToken    // wrong token after a member or element
	UnterminatedObject // end of input inside an object
	UnterminatedArray  // end of input inside an array
	InvalidKey         // object key is not a string
	IllegalValue       // token cannot begin a value
	RootNotObject      // document root is not an object
	TrailingInput      // tokens after the root object
	TooDeep            // nesting exceeds the parser limit

	firstSyntaxKind = MissingColon
)

var kindStr = [...]string{
	UnknownError: "unknown error",

	UnexpectedChar:     "unexpected character",
	UnterminatedString: "unterminated string",
	InvalidEscape:      "invalid escape",
	BadKeyword:         "bad keyword",
	BadNumber:          "bad number",
	InvalidUTF8:        "invalid UTF-8",

	MissingColon:       "missing colon",
	TrailingComma:      "trailing comma",
	UnexpectedToken:    "unexpected token",
	UnterminatedObject: "unterminated object",
	UnterminatedArray:  "unterminated array",
	InvalidKey:         "invalid key",
	IllegalValue:       "illegal value",
	RootNotObject:      "root is not an object",
	TrailingInput:      "trailing input",
	TooDeep:            "nesting too deep",
}

func (k ErrorKind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[UnknownError]
	}
	return kindStr[k]
}

// IsLexical reports whether k is detected by the lexer rather than the parser.
func (k ErrorKind) IsLexical() bool { return k != UnknownError && k < firstSyntaxKind }

// Sentinel errors matched by errors.Is against an *Error of the
// corresponding class.
var (
	ErrLex    = errors.New("lexical error")
	ErrSyntax = errors.New("syntax error")
)

// Error is the concrete type of errors reported by the lexer and by the
// parser in package ast. Parsing stops at the first Error; there is no
// partial result.
type Error struct {
	Kind     ErrorKind
	Location LineCol // where the error was detected
	Where    string  // the production that detected the error
	Found    Token   // the offending token, if any
	Message  string

	err error
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("at %s: %s: %s", e.Location, e.Where, e.Message)
}

// Is reports whether target is the class sentinel (ErrLex or ErrSyntax) for
// the kind of e.
func (e *Error) Is(target error) bool {
	if e.Kind.IsLexical() {
		return target == ErrLex
	}
	return target == ErrSyntax && e.Kind != UnknownError
}

// Unwrap supports error wrapping.
func (e *Error) Unwrap() error { return e.err }

// Errorf constructs an *Error of the given kind detected by the production
// where at location loc. The found token, if any, is recorded as Invalid; use
// Error.WithToken to attach one.
func Errorf(kind ErrorKind, loc LineCol, where, msg string, args ...any) *Error {
	err := fmt.Errorf(msg, args...)
	return &Error{
		Kind:     kind,
		Location: loc,
		Where:    where,
		Message:  err.Error(),
		err:      errors.Unwrap(err),
	}
}

// WithToken sets the Found field of e to tok and returns e.
func (e *Error) WithToken(tok Token) *Error { e.Found = tok; return e }
