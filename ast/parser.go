// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"github.com/creachadair/jdoc"
)

// DefaultMaxDepth is the nesting limit used by a Parser whose MaxDepth is
// not positive.
const DefaultMaxDepth = 10000

// Parse parses text as a JSON document whose root is an object. Any token
// after the root object is reported as a jdoc.TrailingInput error. It is
// shorthand for calling the Parse method of a zero Parser.
func Parse(text string) (Value, error) { return new(Parser).Parse(text) }

// MustParse parses text as for Parse, but panics if parsing fails.
// It is intended for static values in programs and tests.
func MustParse(text string) Value {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

// A Parser parses JSON documents. The zero value is ready for use.
// A Parser holds no state between calls and is safe for concurrent use.
type Parser struct {
	// MaxDepth, if positive, limits the nesting depth of objects and arrays.
	// The root object has depth 1. If MaxDepth ≤ 0, DefaultMaxDepth is used.
	MaxDepth int
}

// Parse parses text as a JSON document. The root of the document must be an
// object, and no tokens may follow it: trailing input is a jdoc.TrailingInput
// error, not ignored.
//
// Parsing stops at the first error, and no partial document is returned. In
// case of error, the returned error has concrete type [*jdoc.Error].
func (p *Parser) Parse(text string) (_ Value, err error) {
	lex, err := jdoc.Tokenize(text)
	if err != nil {
		return nil, err
	}
	st := &parseState{c: jdoc.NewCursor(lex), maxDepth: p.MaxDepth}
	if st.maxDepth <= 0 {
		st.maxDepth = DefaultMaxDepth
	}
	defer st.recoverParseError(&err)

	st.c.Advance() // load the first token
	return st.parseDocument(), nil
}

// parseState carries the cursor for a single call of Parse.
type parseState struct {
	c        *jdoc.Cursor
	maxDepth int
}

func (p *parseState) recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		if err, ok := perr.(*jdoc.Error); ok {
			*errp = err
			return
		}
		panic(perr)
	}
}

// parseDocument consumes a complete document.
// Postcondition: the input is exhausted.
func (p *parseState) parseDocument() Object {
	x, ok := p.c.Current()
	if !ok {
		p.failEOF(jdoc.RootNotObject, "document", "expected object")
	} else if x.Token != jdoc.LBrace {
		p.fail(x, jdoc.RootNotObject, "document", "expected object, got %v", x)
	}
	obj := p.parseObject(1)
	if x, ok := p.c.Current(); ok {
		p.fail(x, jdoc.TrailingInput, "document", "unexpected %v after root object", x)
	}
	return obj
}

// parseObject consumes an object and its members.
// Precondition: token == LBrace.
// Postcondition: the token after the closing RBrace is current.
func (p *parseState) parseObject(depth int) Object {
	p.checkDepth(depth)

	obj := make(Object)
	x := p.advance(jdoc.UnterminatedObject, "object")
	if x.Token == jdoc.RBrace {
		p.c.Advance()
		return obj // empty object
	}
	for {
		// Parse a single member: "key": value
		if x.Token != jdoc.String {
			p.fail(x, jdoc.InvalidKey, "object", "expected string key, got %v", x)
		}
		key := x.Text
		if c := p.advance(jdoc.UnterminatedObject, "object"); c.Token != jdoc.Colon {
			p.fail(c, jdoc.MissingColon, "object", "expected %v after key %q, got %v", jdoc.Colon, key, c)
		}
		p.advance(jdoc.UnterminatedObject, "object")
		obj[key] = p.parseValue(depth)

		// Check whether we have more members (",") or are done ("}").
		x = p.current(jdoc.UnterminatedObject, "object")
		switch x.Token {
		case jdoc.RBrace:
			p.c.Advance()
			return obj
		case jdoc.Comma:
			p.checkTrailingComma(x, jdoc.RBrace, "object")
			x = p.advance(jdoc.UnterminatedObject, "object")
		default:
			p.fail(x, jdoc.UnexpectedToken, "object", "expected %v or %v, got %v", jdoc.Comma, jdoc.RBrace, x)
		}
	}
}

// parseArray consumes an array and its elements.
// Precondition: token == LSquare.
// Postcondition: the token after the closing RSquare is current.
func (p *parseState) parseArray(depth int) Array {
	p.checkDepth(depth)

	arr := Array{}
	if x := p.advance(jdoc.UnterminatedArray, "array"); x.Token == jdoc.RSquare {
		p.c.Advance()
		return arr // empty array
	}
	for {
		arr = append(arr, p.parseValue(depth))

		// Check whether we have more elements (",") or are done ("]").
		x := p.current(jdoc.UnterminatedArray, "array")
		switch x.Token {
		case jdoc.RSquare:
			p.c.Advance()
			return arr
		case jdoc.Comma:
			p.checkTrailingComma(x, jdoc.RSquare, "array")
			p.advance(jdoc.UnterminatedArray, "array")
		default:
			p.fail(x, jdoc.UnexpectedToken, "array", "expected %v or %v, got %v", jdoc.Comma, jdoc.RSquare, x)
		}
	}
}

// parseValue consumes a single value of any type. The depth is that of the
// enclosing object or array.
// Postcondition: the token after the value is current.
func (p *parseState) parseValue(depth int) Value {
	x := p.current(jdoc.IllegalValue, "value")
	switch x.Token {
	case jdoc.LBrace:
		return p.parseObject(depth + 1)
	case jdoc.LSquare:
		return p.parseArray(depth + 1)
	case jdoc.String:
		p.c.Advance()
		return String(x.Text)
	case jdoc.Number:
		p.c.Advance()
		return Number(x.Text)
	case jdoc.True, jdoc.False:
		p.c.Advance()
		return Bool(x.Token == jdoc.True)
	case jdoc.Null:
		p.c.Advance()
		return NullValue
	}
	p.fail(x, jdoc.IllegalValue, "value", "unexpected %v in value position", x)
	panic("unreachable")
}

// checkTrailingComma reports an error if the token after the current comma
// closes the enclosing collection.
func (p *parseState) checkTrailingComma(comma jdoc.Lexeme, closer jdoc.Token, where string) {
	if next, ok := p.c.Peek(); ok && next.Token == closer {
		p.fail(comma, jdoc.TrailingComma, where, "trailing comma before %v", closer)
	}
}

func (p *parseState) checkDepth(depth int) {
	if depth > p.maxDepth {
		x, _ := p.c.Current()
		p.fail(x, jdoc.TooDeep, "value", "nesting depth exceeds %d", p.maxDepth)
	}
}

// advance moves to the next token and returns it. At the end of input it
// fails with an error of the given kind.
func (p *parseState) advance(kind jdoc.ErrorKind, where string) jdoc.Lexeme {
	p.c.Advance()
	return p.current(kind, where)
}

// current returns the current token. At the end of input it fails with an
// error of the given kind.
func (p *parseState) current(kind jdoc.ErrorKind, where string) jdoc.Lexeme {
	x, ok := p.c.Current()
	if !ok {
		p.failEOF(kind, where, "unexpected end of input")
	}
	return x
}

func (p *parseState) fail(x jdoc.Lexeme, kind jdoc.ErrorKind, where, msg string, args ...any) {
	panic(jdoc.Errorf(kind, x.Location.First, where, msg, args...).WithToken(x.Token))
}

func (p *parseState) failEOF(kind jdoc.ErrorKind, where, msg string, args ...any) {
	panic(jdoc.Errorf(kind, p.c.Location(), where, msg, args...))
}
