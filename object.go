// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstate

// An objectRecognizer recognizes an object. Member names are recognized by
// a child string recognizer, and member values by a child of whatever kind
// the value requires.
type objectRecognizer struct {
	obj  Object
	mode objectMode
	key  string // name of the member whose value is being recognized

	// The active child: a string recognizer in objKey, the value's
	// recognizer in objChild, and nil otherwise.
	child recognizer
	lim   limit
}

type objectMode byte

const (
	objStart objectMode = iota // awaiting "{"
	objFirst                   // awaiting the first member name or "}"
	objKey                     // feeding a member name
	objColon                   // awaiting ":"
	objValue                   // awaiting a member value
	objChild                   // feeding a member value's recognizer
	objAfter                   // awaiting "," or "}"
	objEnd                     // complete
)

func (o *objectRecognizer) feed(r rune) (step, error) {
	switch o.mode {
	case objStart:
		if isSpace(r) {
			return stepMore, nil
		} else if r != '{' {
			return stepMore, failf(UnexpectedCharacter, "got %s, want %q", describe(r), '{')
		}
		o.obj = make(Object)
		o.mode = objFirst
		return stepMore, nil

	case objFirst:
		if isSpace(r) {
			return stepMore, nil
		} else if r == '}' {
			o.mode = objEnd
			return stepDone, nil
		}
		o.startKey()
		return o.feedKey(r)

	case objKey:
		return o.feedKey(r)

	case objColon:
		switch {
		case isSpace(r):
			return stepMore, nil
		case r == ':':
			o.mode = objValue
			return stepMore, nil
		case r == eof:
			return stepMore, failf(UnterminatedObject, `want ":" after member name`)
		}
		return stepMore, failf(UnexpectedCharacter, `got %s, want ":"`, describe(r))

	case objValue:
		if isSpace(r) {
			return stepMore, nil
		} else if r == eof {
			return stepMore, failf(UnterminatedObject, "want value of member %q", o.key)
		}
		child, err := newRecognizer(r, o.lim)
		if err != nil {
			return stepMore, err
		}
		o.child = child
		o.mode = objChild
		return o.feedValue(r)

	case objChild:
		return o.feedValue(r)

	case objAfter:
		switch {
		case isSpace(r):
			return stepMore, nil
		case r == ',':
			o.startKey()
			return stepMore, nil
		case r == '}':
			o.mode = objEnd
			return stepDone, nil
		case r == eof:
			return stepMore, failf(UnterminatedObject, `want "," or "}"`)
		}
		return stepMore, failf(UnexpectedCharacter, `got %s, want "," or "}"`, describe(r))
	}
	return stepMore, failf(ReenteredTerminalState, "object already complete")
}

func (o *objectRecognizer) startKey() {
	o.child = new(stringRecognizer)
	o.mode = objKey
}

// feedKey feeds r to the recognizer for the current member name.
func (o *objectRecognizer) feedKey(r rune) (step, error) {
	if r == eof && o.child.(*stringRecognizer).mode == strStart {
		return stepMore, failf(UnterminatedObject, "want member name")
	}
	st, err := o.child.feed(r)
	if err != nil || st == stepMore {
		return stepMore, err
	}
	o.key = o.child.(*stringRecognizer).text()
	o.child = nil
	o.mode = objColon
	return stepMore, nil
}

// feedValue feeds r to the recognizer for the current member value, and
// stores the member when the value is complete.
func (o *objectRecognizer) feedValue(r rune) (step, error) {
	st, err := o.child.feed(r)
	if err != nil || st == stepMore {
		return stepMore, err
	}
	o.obj[o.key] = o.child.value() // last write wins
	o.child = nil
	o.key = ""
	o.mode = objAfter
	if st == stepBack {
		return o.feed(r)
	}
	return stepMore, nil
}

func (o *objectRecognizer) value() Value { return o.obj }
