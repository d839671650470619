// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstate_test

import (
	"math"
	"testing"

	"github.com/creachadair/jstate"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		input jstate.Value
		want  string
	}{
		{jstate.Null{}, "null"},

		{jstate.Bool(false), "false"},
		{jstate.Bool(true), "true"},

		{str(""), `""`},
		{str("a \t b"), `"a \t b"`},
		{str(`say "hi" \o/`), `"say \"hi\" \\o/"`},
		{str("\u2028"), `"\u2028"`},

		{num(0), `0`},
		{num(15), `15`},
		{num(-25), `-25`},
		{num(-0.00239), `-0.00239`},
		{num(1e20), `100000000000000000000`},
		{num(1e21), `1e+21`},
		{num(1e-7), `1e-7`},
		{num(-2.5e-10), `-2.5e-10`},
		{num(1.5e-6), `0.0000015`},
		{num(math.NaN()), `null`},
		{num(math.Inf(-1)), `null`},

		{arr{}, `[]`},
		{arr{
			jstate.Bool(false),
		}, `[false]`},
		{arr{
			jstate.Bool(true),
			num(199),
		}, `[true,199]`},
		{arr{
			str("free"),
			str("your"),
			str("mind"),
		}, `["free","your","mind"]`},

		{obj{}, `{}`},
		{obj{"xs": jstate.Null{}}, `{"xs":null}`},
		{obj{
			"name":  str("Dennis"),
			"age":   num(37),
			"isOld": jstate.Bool(false),
		}, `{"age":37,"isOld":false,"name":"Dennis"}`},

		{obj{
			"values": arr{num(5), num(10), jstate.Bool(true)},
			"page": obj{
				"token": str("xyz-pdq-zvm"),
				"count": num(100),
			},
		}, `{"page":{"count":100,"token":"xyz-pdq-zvm"},"values":[5,10,true]}`},
		{obj{"a\"b": arr{obj{}}}, `{"a\"b":[{}]}`},
	}
	for _, test := range tests {
		got := test.input.JSON()
		if got != test.want {
			t.Errorf("Input: %+v\nGot:  %s\nWant: %s", test.input, got, test.want)
		}
	}
}

func TestLen(t *testing.T) {
	type lener interface{ Len() int }
	tests := []struct {
		input jstate.Value
		want  int
	}{
		{jstate.Null{}, 0},
		{str(""), 0},
		{str("abc"), 3},
		{str("日本語"), 3},
		{arr{}, 0},
		{arr{jstate.Null{}, arr{num(1), num(2)}}, 2},
		{obj{}, 0},
		{obj{"a": num(1), "b": num(2), "c": num(3)}, 3},
	}
	for _, test := range tests {
		got := test.input.(lener).Len()
		if got != test.want {
			t.Errorf("Len %s: got %d, want %d", test.input.JSON(), got, test.want)
		}
	}
}

func TestObject(t *testing.T) {
	o := jstate.MustParse(`{"z": 1, "a": [true], "m": null}`).(jstate.Object)

	if diff := cmp.Diff([]string{"a", "m", "z"}, o.Keys()); diff != "" {
		t.Errorf("Keys: (-want, +got)\n%s", diff)
	}
	if v, ok := o.Find("m"); !ok || v != (jstate.Null{}) {
		t.Errorf("Find m: got (%v, %v), want (null, true)", v, ok)
	}
	if v, ok := o.Find("q"); ok {
		t.Errorf("Find q: got (%v, %v), want (nil, false)", v, ok)
	}
}

func TestToValue(t *testing.T) {
	tests := []struct {
		input any
		want  jstate.Value
	}{
		{nil, jstate.Null{}},
		{"a", str("a")},
		{25, num(25)},
		{int64(-3), num(-3)},
		{1.5, num(1.5)},
		{true, jstate.Bool(true)},
		{str("already"), str("already")},
		{[]any{}, arr{}},
		{[]any{"x", 1, nil}, arr{str("x"), num(1), jstate.Null{}}},
		{map[string]any{
			"k": []any{false},
			"o": map[string]any{},
		}, obj{"k": arr{jstate.Bool(false)}, "o": obj{}}},
	}
	for _, test := range tests {
		got := jstate.ToValue(test.input)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ToValue(%v): (-want, +got)\n%s", test.input, diff)
		}
	}

	mtest.MustPanic(t, func() { jstate.ToValue([]bool{true}) })
	mtest.MustPanic(t, func() { jstate.ToValue(func() {}) })
	mtest.MustPanic(t, func() { jstate.ToValue(map[string]any{"bad": uint(1)}) })
}

func TestNull(t *testing.T) {
	v := jstate.MustParse(`[null]`).(jstate.Array)[0]
	switch v.(type) {
	case jstate.Null:
		// OK
	default:
		t.Errorf("Parse null: got %T, want jstate.Null", v)
	}
	if v != (jstate.Null{}) || jstate.ToValue(nil) != v {
		t.Errorf("Null values differ: %#v, %#v", v, jstate.ToValue(nil))
	}
}
