// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a document tree for JSON values, and a parser that
// constructs document trees from JSON source.
//
// A document is a Value, which is exactly one of Object, Array, String,
// Number, Bool, or Null. Use a type switch, or the As* projection functions,
// to recover the payload of a value:
//
//	doc, err := ast.Parse(input)
//	if err != nil {
//	   log.Fatalf("Parse: %v", err)
//	}
//	root, _ := ast.AsObject(doc) // the root is always an object
//	if name, ok := ast.AsString(root["name"]); ok {
//	   log.Printf("Name: %s", name)
//	}
package ast

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies the variant of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	InvalidKind Kind = iota
	ObjectKind
	ArrayKind
	StringKind
	NumberKind
	BoolKind
	NullKind
)

var kindStr = [...]string{
	InvalidKind: "invalid",
	ObjectKind:  "object",
	ArrayKind:   "array",
	StringKind:  "string",
	NumberKind:  "number",
	BoolKind:    "bool",
	NullKind:    "null",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[InvalidKind]
	}
	return kindStr[k]
}

// A Value is an arbitrary JSON value.
type Value interface {
	// Kind reports which variant the value is.
	Kind() Kind
}

// KindOf reports the kind of v, or InvalidKind if v == nil.
func KindOf(v Value) Kind {
	if v == nil {
		return InvalidKind
	}
	return v.Kind()
}

// An Object is a collection of key-value members. Keys are unique; when a
// key is repeated in the source, the last value wins.
type Object map[string]Value

// Kind satisfies the Value interface.
func (Object) Kind() Kind { return ObjectKind }

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the value of the member of o with the given key.
func (o Object) Find(key string) (Value, bool) { v, ok := o[key]; return v, ok }

// Keys returns the keys of o in lexicographic order.
func (o Object) Keys() []string { return slices.Sorted(maps.Keys(o)) }

// An Array is a sequence of values.
type Array []Value

// Kind satisfies the Value interface.
func (Array) Kind() Kind { return ArrayKind }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// A String is a decoded string value.
type String string

// Kind satisfies the Value interface.
func (String) Kind() Kind { return StringKind }

// A Number is a numeric value, represented by its literal text from the
// source. Use the conversion methods to obtain a numeric value.
type Number string

// Kind satisfies the Value interface.
func (Number) Kind() Kind { return NumberKind }

// Text returns the literal text of n.
func (n Number) Text() string { return string(n) }

// IsInt reports whether n is written as an integer, with no fraction or
// exponent.
func (n Number) IsInt() bool { return !strings.ContainsAny(string(n), ".eE") }

// Int64 converts n to an int64. It fails if n is not an integer literal or
// does not fit.
func (n Number) Int64() (int64, error) {
	v, err := strconv.ParseInt(string(n), 10, 64)
	if err != nil {
		return 0, &ConversionError{Text: string(n), Target: "int64", Err: err}
	}
	return v, nil
}

// Int32 converts n to an int32. It fails if n is not an integer literal or
// does not fit.
func (n Number) Int32() (int32, error) {
	v, err := strconv.ParseInt(string(n), 10, 32)
	if err != nil {
		return 0, &ConversionError{Text: string(n), Target: "int32", Err: err}
	}
	return int32(v), nil
}

// Float64 converts n to a float64. It fails if n is out of range.
func (n Number) Float64() (float64, error) {
	v, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0, &ConversionError{Text: string(n), Target: "float64", Err: err}
	}
	return v, nil
}

// Float32 converts n to a float32. It fails if n is out of range.
func (n Number) Float32() (float32, error) {
	v, err := strconv.ParseFloat(string(n), 32)
	if err != nil {
		return 0, &ConversionError{Text: string(n), Target: "float32", Err: err}
	}
	return float32(v), nil
}

// A Bool is a Boolean constant, true or false.
type Bool bool

// Kind satisfies the Value interface.
func (Bool) Kind() Kind { return BoolKind }

// Null represents the null constant.
type Null struct{}

// Kind satisfies the Value interface.
func (Null) Kind() Kind { return NullKind }

// NullValue is the canonical Null value.
var NullValue = Null{}

// AsObject returns the members of v if it is an Object.
func AsObject(v Value) (Object, bool) { o, ok := v.(Object); return o, ok }

// AsArray returns the elements of v if it is an Array.
func AsArray(v Value) (Array, bool) { a, ok := v.(Array); return a, ok }

// AsString returns the text of v if it is a String.
func AsString(v Value) (string, bool) { s, ok := v.(String); return string(s), ok }

// AsNumber returns v if it is a Number.
func AsNumber(v Value) (Number, bool) { n, ok := v.(Number); return n, ok }

// AsBool returns the truth value of v if it is a Bool.
func AsBool(v Value) (bool, bool) { b, ok := v.(Bool); return bool(b), ok }

// IsNull reports whether v is Null.
func IsNull(v Value) bool { _, ok := v.(Null); return ok }

// ConversionError is the concrete type of errors reported by the conversion
// methods of Number. It does not affect the document the number belongs to.
type ConversionError struct {
	Text   string // the literal text of the number
	Target string // the requested type, e.g. "int64"
	Err    error  // the underlying *strconv.NumError
}

// Error satisfies the error interface.
func (c *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s: %v", c.Text, c.Target, c.Err)
}

// Unwrap supports error wrapping.
func (c *ConversionError) Unwrap() error { return c.Err }
