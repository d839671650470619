// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstate

// A recognizer is an incremental state machine for one production of the
// JSON grammar. It is fed one character per call, and holds the partial
// value it has accumulated so far.
type recognizer interface {
	// feed advances the recognizer by one character. At the end of the
	// input, the caller feeds eof.
	//
	// Once feed has reported stepDone or stepBack, the recognizer is
	// complete and must not be fed again.
	feed(r rune) (step, error)

	// value returns the completed value. It is only valid after feed has
	// reported completion.
	value() Value
}

// A step reports the outcome of feeding a character to a recognizer.
type step byte

const (
	stepMore step = iota // character consumed, production incomplete
	stepDone             // character consumed, production complete
	stepBack             // production complete, character not consumed
)

// eof is the pseudo-character fed to a recognizer at the end of the input.
const eof rune = -1

// isSpace reports whether r is insignificant whitespace between tokens.
func isSpace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\r' || r == '\t'
}

// A limit bounds the nesting depth of arrays and objects.
type limit struct {
	depth int // nesting depth of the container that owns the child
	max   int // maximum permitted depth
}

// nest returns the limit for a container nested inside l.
func (l limit) nest() (limit, error) {
	if l.depth >= l.max {
		return l, failf(TooDeep, "more than %d nested arrays or objects", l.max)
	}
	return limit{depth: l.depth + 1, max: l.max}, nil
}

// newRecognizer returns a recognizer for the value whose first significant
// character is r. The caller must then feed r to the new recognizer.
func newRecognizer(r rune, lim limit) (recognizer, error) {
	switch r {
	case 'n':
		return newLiteral("null", Null{}), nil
	case 't':
		return newLiteral("true", Bool(true)), nil
	case 'f':
		return newLiteral("false", Bool(false)), nil
	case '"':
		return new(stringRecognizer), nil
	case '[':
		sub, err := lim.nest()
		if err != nil {
			return nil, err
		}
		return &arrayRecognizer{lim: sub}, nil
	case '{':
		sub, err := lim.nest()
		if err != nil {
			return nil, err
		}
		return &objectRecognizer{lim: sub}, nil
	}
	if isNumStart(r) {
		return new(numberRecognizer), nil
	}
	return nil, failf(UnexpectedCharacter, "got %s, want start of value", describe(r))
}
