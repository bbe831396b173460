// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package nav implements traversal into the structure of a parsed document.
package nav

import (
	"fmt"
	"strings"

	"github.com/creachadair/jdoc/ast"
)

// Path traverses path from v as documented for Cursor.Down, and returns the
// value reached narrowed to type T.
func Path[T ast.Value](v ast.Value, path ...any) (T, error) {
	c := New(v).Down(path...)
	var result T
	if err := c.Err(); err != nil {
		return result, err
	}
	out, ok := c.Value().(T)
	if !ok {
		return result, fmt.Errorf("at %s: wrong value type %s", c, ast.KindOf(c.Value()))
	}
	return out, nil
}

// A Cursor walks downward into the structure of an ast.Value, remembering
// the path elements it has consumed.
type Cursor struct {
	cur  ast.Value
	path []any // elements consumed so far
	err  error
}

// New constructs a new Cursor positioned at v.
func New(v ast.Value) *Cursor { return &Cursor{cur: v} }

// Value reports the current value under the cursor.
func (c *Cursor) Value() ast.Value { return c.cur }

// Err reports the error from the most recent call to Down, if any.
func (c *Cursor) Err() error { return c.err }

// String renders the path elements consumed so far, for example
// $["list"][1].
func (c *Cursor) String() string {
	var sb strings.Builder
	sb.WriteString("$")
	for _, elt := range c.path {
		switch t := elt.(type) {
		case string:
			fmt.Fprintf(&sb, "[%q]", t)
		case int:
			fmt.Fprintf(&sb, "[%d]", t)
		default:
			sb.WriteString("[func]")
		}
	}
	return sb.String()
}

// Down consumes path elements starting from the current value. A string
// selects the member of an object with that key. An int indexes an array,
// counting backward from the end if it is negative (-1 is last). A function
//
//	func(ast.Value) (ast.Value, error)
//
// replaces the current value with its result.
//
// Traversal stops at the first element that cannot be applied, leaving the
// cursor at the last value reached, and the error is recorded for Err.
// Down returns c to permit chaining.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	for _, elt := range path {
		next, err := step(c.cur, elt)
		if err != nil {
			c.err = fmt.Errorf("at %s: %w", c, err)
			return c
		}
		if i, ok := elt.(int); ok && i < 0 {
			elt = i + len(c.cur.(ast.Array)) // record the resolved offset
		}
		c.cur = next
		c.path = append(c.path, elt)
	}
	return c
}

// step applies a single path element to v.
func step(v ast.Value, elt any) (ast.Value, error) {
	switch t := elt.(type) {
	case string:
		obj, ok := ast.AsObject(v)
		if !ok {
			return nil, fmt.Errorf("cannot select %q from %s", t, ast.KindOf(v))
		}
		if next, ok := obj.Find(t); ok {
			return next, nil
		}
		return nil, fmt.Errorf("key %q not found", t)

	case int:
		arr, ok := ast.AsArray(v)
		if !ok {
			return nil, fmt.Errorf("cannot index %s with %d", ast.KindOf(v), t)
		}
		i := t
		if i < 0 {
			i += len(arr)
		}
		if i < 0 || i >= len(arr) {
			return nil, fmt.Errorf("array index %d out of bounds (n=%d)", t, len(arr))
		}
		return arr[i], nil

	case func(ast.Value) (ast.Value, error):
		return t(v)
	}
	return nil, fmt.Errorf("invalid path element %T", elt)
}
