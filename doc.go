// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jstate implements a JSON parser built from incremental,
// character-at-a-time recognizers.
//
// # Parsing
//
// Call Parse to convert JSON text into a Value:
//
//	v, err := jstate.Parse(`{"name": "Dennis", "tags": [1, 2, 3]}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// The input must contain exactly one value, optionally surrounded by
// whitespace. In case of error, the concrete type of the error is
// *jstate.SyntaxError, which reports the kind of failure and the
// character offset and line/column location at which it occurred. Use
// errors.Is to check for a particular kind:
//
//	if errors.Is(err, jstate.UnterminatedString) {
//	   log.Print("Missing a closing quote")
//	}
//
// To limit the nesting depth of arrays and objects, use a Parser:
//
//	var p jstate.Parser
//	p.SetMaxDepth(64)
//	v, err := p.Parse(input)
//
// # Recognizers
//
// Each production of the JSON grammar is handled by its own recognizer, a
// small state machine that is fed one character at a time:
//
//	Production | Recognizer state
//	---------- | ------------------------------------------------------
//	literal    | position in the keyword null, true, or false
//	number     | the number text seen so far
//	string     | decoded text, and the progress of an escape sequence
//	array      | elements so far, and the recognizer of the current one
//	object     | members so far, and the recognizer of the current key or value
//
// Arrays and objects delegate the characters of each element to a child
// recognizer chosen by the element's first significant character. Because
// a number has no terminator, the number recognizer completes only when it
// sees a character that cannot belong to it; that character is then handed
// back to the enclosing recognizer to be processed again.
//
// # Values
//
// A Value is one of Null, Bool, Number, String, Array, or Object. The JSON
// method of each value renders it as minimal JSON text. Object members are
// rendered in ascending order by key.
package jstate
