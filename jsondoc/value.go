// Package jsondoc is a tagged representation of a parsed JSON document.
//
// A Value is exactly one of Null, Bool, Number, String, Array or Object.
// The set is closed: Value has an unexported method so no other package can
// add a case, and a type switch over the six types is exhaustive.
package jsondoc

import (
	"encoding/json"
	"strconv"
)

// Kind identifies which case of Value a document holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a JSON document.
type Value interface {
	Kind() Kind
	// Interface converts the document to plain Go values
	// (nil, bool, json.Number, string, []any, map[string]any).
	Interface() any
	json.Marshaler
	sealed()
}

type (
	Null   struct{}
	Bool   bool
	String string
	Array  []Value
	Object map[string]Value
)

// Number keeps the literal text of a JSON number so no precision is lost
// between the store and the caller.
type Number json.Number

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }
func (Object) Kind() Kind { return KindObject }

func (Null) sealed()   {}
func (Bool) sealed()   {}
func (Number) sealed() {}
func (String) sealed() {}
func (Array) sealed()  {}
func (Object) sealed() {}

func (Null) Interface() any     { return nil }
func (b Bool) Interface() any   { return bool(b) }
func (n Number) Interface() any { return json.Number(n) }
func (s String) Interface() any { return string(s) }

func (a Array) Interface() any {
	out := make([]any, len(a))
	for i, v := range a {
		out[i] = v.Interface()
	}
	return out
}

func (o Object) Interface() any {
	out := make(map[string]any, len(o))
	for k, v := range o {
		out[k] = v.Interface()
	}
	return out
}

// Int64 reports the number as an int64 when it is an integer literal in range.
func (n Number) Int64() (int64, error) { return json.Number(n).Int64() }

// Float64 reports the number as a float64.
func (n Number) Float64() (float64, error) { return json.Number(n).Float64() }

func (n Number) String() string { return string(n) }

// Get returns the member stored under key. ok is false when the member is
// missing.
func (o Object) Get(key string) (v Value, ok bool) {
	v, ok = o[key]
	return v, ok
}

// Int builds a Number from an integer.
func Int(i int64) Number { return Number(strconv.FormatInt(i, 10)) }

// Float builds a Number from a float using the shortest representation.
func Float(f float64) Number { return Number(strconv.FormatFloat(f, 'g', -1, 64)) }
