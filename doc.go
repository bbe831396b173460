// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jdoc implements a lexer and token cursor for JSON documents.
//
// # Lexing
//
// The Lexer type implements a lexical scanner for JSON.  Construct a lexer
// from a string and call its Next method to iterate over the input. Next
// returns the next token, or reports an error:
//
//	lx := jdoc.NewLexer(input)
//	for {
//	   x, err := lx.Next()
//	   if err == io.EOF {
//	      break
//	   } else if err != nil {
//	      log.Fatalf("Lexing failed: %v", err)
//	   }
//	   log.Printf("Next token: %v", x)
//	}
//
// To collect all the tokens at once, use Tokenize. String tokens are decoded
// by the lexer; number tokens retain their literal text.
//
// # Cursors
//
// A Cursor wraps the output of Tokenize and provides a single token of
// lookahead. Advance loads the next token, Current reports it again, and
// Peek reports the token after it without moving:
//
//	c := jdoc.NewCursor(lexemes)
//	for x, ok := c.Advance(); ok; x, ok = c.Advance() {
//	   if next, ok := c.Peek(); ok && next.Token == jdoc.RBrace {
//	      ...
//	   }
//	}
//
// # Errors
//
// Errors from the lexer, and from the parser in package ast, have concrete
// type *jdoc.Error. The Kind field classifies the error; use errors.Is with
// ErrLex or ErrSyntax to test the class:
//
//	Class     | Kinds
//	--------- | ----------------------------------------------------------
//	ErrLex    | UnexpectedChar, UnterminatedString, InvalidEscape,
//	          | BadKeyword, BadNumber, InvalidUTF8
//	ErrSyntax | MissingColon, TrailingComma, UnexpectedToken, InvalidKey,
//	          | UnterminatedObject, UnterminatedArray, IllegalValue,
//	          | RootNotObject, TrailingInput, TooDeep
//
// Processing stops at the first error; nothing is recovered. A document is
// exactly one root object: any token after its closing brace, including a
// second object, is a TrailingInput error rather than being ignored.
package jdoc
