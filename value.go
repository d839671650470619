// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstate

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// A Value is an arbitrary JSON value. The concrete type of a Value is one
// of Null, Bool, Number, String, Array, or Object.
type Value interface {
	// JSON renders the value as minimal JSON text.
	JSON() string
}

// Null is the JSON null value. All Null values are equal.
type Null struct{}

func (Null) JSON() string   { return "null" }
func (Null) String() string { return "null" }

// Len reports zero, the length of a null value.
func (Null) Len() int { return 0 }

// A Bool is a Boolean value, true or false.
type Bool bool

func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

// A Number is a numeric value.
type Number float64

// JSON renders n in the shortest decimal form that parses back to n.
// Values with magnitude below 1e-6 or at least 1e21 use exponent form.
// JSON has no representation for NaN or infinities; they render as null.
func (n Number) JSON() string {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	buf := strconv.AppendFloat(nil, f, format, -1, 64)
	if format == 'e' {
		// Clean up e-09 to e-9.
		if m := len(buf); m >= 4 && buf[m-4] == 'e' && buf[m-3] == '-' && buf[m-2] == '0' {
			buf[m-2] = buf[m-1]
			buf = buf[:m-1]
		}
	}
	return string(buf)
}

func (n Number) String() string { return n.JSON() }

// A String is a string value. It holds the decoded text, without quotes or
// escapes.
type String string

func (s String) JSON() string { return Quote(string(s)) }

// Len reports the number of Unicode code points in s.
func (s String) Len() int { return len([]rune(string(s))) }

// An Array is an ordered sequence of values.
type Array []Value

func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(a[0].JSON())
	for _, elt := range a[1:] {
		sb.WriteByte(',')
		sb.WriteString(elt.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// An Object is a collection of key-value members. Keys are unique, and the
// order of members is not significant.
type Object map[string]Value

// JSON renders o with its members in ascending order by key.
func (o Object) JSON() string {
	if len(o) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, key := range o.Keys() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(Quote(key))
		sb.WriteByte(':')
		sb.WriteString(o[key].JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Keys returns the keys of o in ascending order.
func (o Object) Keys() []string { return slices.Sorted(maps.Keys(o)) }

// Find returns the value of the member of o with the given key, and
// reports whether the member was found.
func (o Object) Find(key string) (Value, bool) {
	v, ok := o[key]
	return v, ok
}

// ToValue converts a string, int, float, bool, nil, or Value into a Value.
// Slices of these are converted to arrays, and string-keyed maps to
// objects. It panics if v does not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case string:
		return String(t)
	case int:
		return Number(t)
	case int64:
		return Number(t)
	case float64:
		return Number(t)
	case bool:
		return Bool(t)
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	case map[string]any:
		out := make(Object, len(t))
		for key, elt := range t {
			out[key] = ToValue(elt)
		}
		return out
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}
