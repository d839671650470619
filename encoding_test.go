// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstate_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jstate"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{`\ufffd`, `"\\ufffd"`},
		{"\u2028 \u2029 \ufffd", `"\u2028 \u2029 \ufffd"`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
		{"\xff", `"\ufffd"`},
		{"/ and 日本", `"/ and 日本"`},
	}
	for _, test := range tests {
		got := jstate.Quote(test.input)
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, true},                           // missing quotes
		{`"`, ``, true},                          // missing quotes
		{`"missing quote`, ``, true},             // missing quotes
		{`missing quote"`, ``, true},             // missing quotes
		{`""`, ``, false},                        // ok
		{`"ok go"`, "ok go", false},              // ok
		{`"abc\ndef"`, "abc\ndef", false},        // C escapes
		{`"\tabc\n"`, "\tabc\n", false},          // C escapes
		{`"\b\f\n\r\t\/"`, "\b\f\n\r\t/", false}, // C escapes
		{`"a \u0026 b"`, "a & b", false},         // short Unicode escape
		{`"\uD83D\uDE00"`, "\U0001F600", false},  // surrogate pair
		{`"\u"`, ``, true},                       // incomplete Unicode escape
		{`"\u00"`, ``, true},                     // incomplete Unicode escape
		{`"\u00x9"`, ``, true},                   // invalid Unicode escape
		{`"\u019 "`, ``, true},                   // invalid Unicode escape
		{`"\uDE00"`, ``, true},                   // unpaired low surrogate
		{`"a\"b"`, `a"b`, false},                 // ok
		{`"a\\b\\cd"`, `a\b\cd`, false},          // ok
		{`"a\"`, ``, true},                       // escaped final quote
		{`"a"b"`, ``, true},                      // text after the string
		{" \"a\" ", ``, true},                    // surrounding space
		{"\"tab\there\"", ``, true},              // unescaped control
	}

	for _, test := range tests {
		got, err := jstate.Unquote(test.input)
		if err != nil {
			if !test.fail {
				t.Errorf("Unquote(%#q): got %v, want no error", test.input, err)
			} else {
				t.Logf("Unquote(%#q): got expected error: %v", test.input, err)
			}
		} else if err == nil && test.fail {
			t.Errorf("Unquote(%#q): got nil, want error", test.input)
		}
		if got != test.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestUnquoteError(t *testing.T) {
	_, err := jstate.Unquote(`"abc\q"`)
	var serr *jstate.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("Unquote: got %v, want *SyntaxError", err)
	}
	if serr.Kind != jstate.InvalidEscape || serr.Offset != 6 {
		t.Errorf("Unquote: got %v at %d, want %v at 6", serr.Kind, serr.Offset, jstate.InvalidEscape)
	}
}

func TestUnquoteInvalidUTF8(t *testing.T) {
	// Unquote and Parse reject the same malformed input at the same offset.
	const input = "\"a\xffb\""
	_, uerr := jstate.Unquote(input)
	_, perr := jstate.Parse(input)
	for _, err := range []error{uerr, perr} {
		var serr *jstate.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Got %v, want *SyntaxError", err)
			continue
		}
		if serr.Kind != jstate.UnexpectedCharacter || serr.Offset != 3 {
			t.Errorf("Got %v at %d, want %v at 3", serr.Kind, serr.Offset, jstate.UnexpectedCharacter)
		}
	}
}
