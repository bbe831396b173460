// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jdoc

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/creachadair/jdoc/internal/escape"

	"go4.org/mem"
)

// Token is the type of a lexical token in the JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Comma                // comma ","
	Colon                // colon ":"
	String               // quoted string
	Number               // number
	True                 // constant: true
	False                // constant: false
	Null                 // constant: null
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	String:  "string",
	Number:  "number",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// A Lexeme is a single token of the input together with its text and
// location. For a String, Text is the decoded contents without quotation
// marks; for a Number it is the literal exactly as written. For all other
// tokens Text is the source spelling of the token.
type Lexeme struct {
	Token    Token
	Text     string
	Location Location
}

// String renders x for use in diagnostics.
func (x Lexeme) String() string {
	switch x.Token {
	case String:
		return fmt.Sprintf("string %q", x.Text)
	case Number:
		return "number " + x.Text
	}
	return x.Token.String()
}

// Tokenize returns the complete sequence of lexemes in text, or the first
// lexical error. In case of error the returned error has concrete type
// [*Error] and no lexemes are returned.
func Tokenize(text string) ([]Lexeme, error) { return NewLexer(text).All() }

// A Lexer reads lexical tokens from a string.  Each call to Next advances the
// lexer to the next token, or reports an error.
type Lexer struct {
	src string

	pos, end int // start and end offsets of current token
	last     int // size in bytes of last-read input rune

	// Apparent line and column offsets (0-based)
	pline, pcol int
	eline, ecol int

	// Line and column before the last-read rune, for unrune.
	uline, ucol int
}

// NewLexer constructs a new lexer that consumes input from text.
func NewLexer(text string) *Lexer { return &Lexer{src: text} }

// All consumes the remainder of the input and returns the lexemes found.
func (lx *Lexer) All() ([]Lexeme, error) {
	var out []Lexeme
	for {
		x, err := lx.Next()
		if err == io.EOF {
			return out, nil
		} else if err != nil {
			return nil, err
		}
		out = append(out, x)
	}
}

// Next returns the next token of the input, or reports an error.
// At the end of the input, Next returns io.EOF. Any other error has concrete
// type [*Error].
func (lx *Lexer) Next() (Lexeme, error) {
	lx.pos, lx.pline, lx.pcol = lx.end, lx.eline, lx.ecol
	for {
		ch, err := lx.rune()
		if err != nil {
			return Lexeme{}, err
		}

		// Discard whitespace.
		if unicode.IsSpace(ch) {
			lx.pos, lx.pline, lx.pcol = lx.end, lx.eline, lx.ecol
			continue
		}

		// Handle punctuation.
		if t, ok := selfDelim(ch); ok {
			return lx.emit(t, lx.src[lx.pos:lx.end]), nil
		}

		// Handle numbers.
		if isNumStart(ch) {
			return lx.scanNumber(ch)
		}

		// Handle string values.
		if ch == '"' {
			return lx.scanString()
		}

		// Handle constants: true, false, null
		switch ch {
		case 't':
			return lx.scanKeyword(True)
		case 'f':
			return lx.scanKeyword(False)
		case 'n':
			return lx.scanKeyword(Null)
		}
		return Lexeme{}, Errorf(UnexpectedChar, lx.first(), "input", "unexpected character %q", ch)
	}
}

func (lx *Lexer) emit(tok Token, text string) Lexeme {
	return Lexeme{
		Token: tok,
		Text:  text,
		Location: Location{
			Span:  Span{Pos: lx.pos, End: lx.end},
			First: lx.first(),
			Last:  lx.current(),
		},
	}
}

// first reports the location of the start of the current token.
func (lx *Lexer) first() LineCol { return LineCol{Line: lx.pline + 1, Column: lx.pcol} }

// prev reports the location of the last-read rune.
func (lx *Lexer) prev() LineCol { return LineCol{Line: lx.uline + 1, Column: lx.ucol} }

// current reports the location of the read position.
func (lx *Lexer) current() LineCol { return LineCol{Line: lx.eline + 1, Column: lx.ecol} }

func (lx *Lexer) scanString() (Lexeme, error) {
	var esc bool
	for {
		ch, err := lx.rune()
		if err == io.EOF {
			return Lexeme{}, Errorf(UnterminatedString, lx.first(), "string", "unterminated string")
		} else if err != nil {
			return Lexeme{}, err
		}
		if esc {
			// We are awaiting the completion of a \-escape.
			if !escape.Valid(ch) {
				return Lexeme{}, Errorf(InvalidEscape, lx.prev(), "string", "invalid %q after escape", ch)
			}
			esc = false
		} else if ch == '"' {
			dec, err := escape.Unquote(mem.S(lx.src[lx.pos+1 : lx.end-1]))
			if err != nil {
				return Lexeme{}, Errorf(InvalidEscape, lx.first(), "string", "%w", err)
			}
			return lx.emit(String, string(dec)), nil
		} else {
			esc = ch == '\\'
		}
	}
}

func (lx *Lexer) scanNumber(start rune) (Lexeme, error) {
	if start == '-' {
		// If there is a leading sign, we need at least one digit.
		// Otherwise, we already have one in start.
		if _, err := lx.require(isDigit, "digit"); err != nil {
			return Lexeme{}, err
		}
	}

	// Consume the remainder of the integer part.
	ch, err := lx.skipWhile(isDigit)

	// If a decimal point follows, consume a fractional part.
	if err == nil && ch == '.' {
		if _, err := lx.require(isDigit, "digit after decimal point"); err != nil {
			return Lexeme{}, err
		}
		ch, err = lx.skipWhile(isDigit)
	}

	// If an exponent follows, consume it.
	if err == nil && (ch == 'e' || ch == 'E') {
		sign, rerr := lx.require(isExpStart, "sign or digit in exponent")
		if rerr != nil {
			return Lexeme{}, rerr
		}
		if sign == '-' || sign == '+' {
			// It's OK to have no further digits if the previous rune was not a
			// sign, otherwise we have to have at least one.
			if _, err := lx.require(isDigit, "exponent digits"); err != nil {
				return Lexeme{}, err
			}
		}
		ch, err = lx.skipWhile(isDigit)
	}

	if err == io.EOF {
		return lx.emit(Number, lx.src[lx.pos:lx.end]), nil
	} else if err != nil {
		return Lexeme{}, err
	}
	lx.unrune() // ch is not part of the number
	return lx.emit(Number, lx.src[lx.pos:lx.end]), nil
}

// scanKeyword matches the spelling of tok at the start of the current token.
// Precondition: the first rune of the token has been read.
func (lx *Lexer) scanKeyword(tok Token) (Lexeme, error) {
	want := tok.String()
	if !mem.HasPrefix(mem.S(lx.src[lx.pos:]), mem.S(want)) {
		return Lexeme{}, Errorf(BadKeyword, lx.first(), tok.String(), "expected keyword %q", want)
	}
	lx.end = lx.pos + len(want)
	lx.ecol = lx.pcol + len(want)
	lx.last = 0
	return lx.emit(tok, want), nil
}

func (lx *Lexer) rune() (rune, error) {
	if lx.end >= len(lx.src) {
		lx.last = 0
		return 0, io.EOF
	}
	ch, nb := utf8.DecodeRuneInString(lx.src[lx.end:])
	if ch == utf8.RuneError && nb == 1 {
		return 0, Errorf(InvalidUTF8, lx.current(), "input", "invalid UTF-8 byte %#x", lx.src[lx.end])
	}
	lx.uline, lx.ucol = lx.eline, lx.ecol
	lx.last = nb
	lx.end += nb
	if ch == '\n' {
		lx.eline++
		lx.ecol = 0
	} else {
		lx.ecol += nb
	}
	return ch, nil
}

func (lx *Lexer) unrune() {
	if lx.last == 0 {
		return
	}
	lx.end -= lx.last
	lx.eline, lx.ecol = lx.uline, lx.ucol
	lx.last = 0
}

// require reads a single rune matching f from the input, or returns an error
// mentioning the desired label. It is used only within number literals.
func (lx *Lexer) require(f func(rune) bool, label string) (rune, error) {
	ch, err := lx.rune()
	if err == io.EOF {
		return 0, Errorf(BadNumber, lx.current(), "number", "want %s, got end of input", label)
	} else if err != nil {
		return 0, err
	} else if !f(ch) {
		lx.unrune()
		return 0, Errorf(BadNumber, lx.current(), "number", "got %q, want %s", ch, label)
	}
	return ch, nil
}

// skipWhile consumes runes matching f from the input until EOF or until a
// rune not matching f is found. The first non-matching rune (if any) is
// returned; it is the caller's responsibility to unread it, if desired.
func (lx *Lexer) skipWhile(f func(rune) bool) (rune, error) {
	for {
		ch, err := lx.rune()
		if err != nil {
			return 0, err
		} else if !f(ch) {
			return ch, nil
		}
	}
}

func isNumStart(ch rune) bool { return ch == '-' || isDigit(ch) }
func isExpStart(ch rune) bool { return ch == '-' || ch == '+' || isDigit(ch) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Token, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
