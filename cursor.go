// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jdoc

// A Cursor is a single-token lookahead buffer over a sequence of lexemes.
// A new Cursor has no current token; call Advance to load the first one.
//
// The Cursor does not modify the slice it wraps.
type Cursor struct {
	lex  []Lexeme
	next int // offset of the lexeme after cur

	cur Lexeme
	ok  bool // cur is valid
}

// NewCursor constructs a cursor over lex.
func NewCursor(lex []Lexeme) *Cursor { return &Cursor{lex: lex} }

// Advance discards the current token and loads the next one, which it
// returns. It reports false when the input is exhausted.
func (c *Cursor) Advance() (Lexeme, bool) {
	if c.next < len(c.lex) {
		c.cur, c.ok = c.lex[c.next], true
		c.next++
	} else {
		c.cur, c.ok = Lexeme{}, false
		c.next = len(c.lex) + 1 // mark exhausted
	}
	return c.cur, c.ok
}

// Current returns the token loaded by the most recent call to Advance.
// It reports false before the first Advance and after the input is exhausted.
func (c *Cursor) Current() (Lexeme, bool) { return c.cur, c.ok }

// Peek returns the token after the current one without moving the cursor.
func (c *Cursor) Peek() (Lexeme, bool) {
	if c.next < len(c.lex) {
		return c.lex[c.next], true
	}
	return Lexeme{}, false
}

// Location reports the starting location of the current token. Before the
// first Advance this is the start of the input; after the input is exhausted
// it is the end of the last token.
func (c *Cursor) Location() LineCol {
	if c.ok {
		return c.cur.Location.First
	} else if c.next == 0 || len(c.lex) == 0 {
		return LineCol{Line: 1}
	}
	return c.lex[len(c.lex)-1].Location.Last
}
