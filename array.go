// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstate

// An arrayRecognizer recognizes an array, delegating each element to a
// child recognizer.
type arrayRecognizer struct {
	vals  Array
	mode  arrayMode
	child recognizer // the active element; non-nil only in arrChild
	lim   limit
}

type arrayMode byte

const (
	arrStart arrayMode = iota // awaiting "["
	arrFirst                  // awaiting the first element or "]"
	arrValue                  // awaiting an element after ","
	arrChild                  // feeding an element's recognizer
	arrAfter                  // awaiting "," or "]"
	arrEnd                    // complete
)

func (a *arrayRecognizer) feed(r rune) (step, error) {
	switch a.mode {
	case arrStart:
		if isSpace(r) {
			return stepMore, nil
		} else if r != '[' {
			return stepMore, failf(UnexpectedCharacter, "got %s, want %q", describe(r), '[')
		}
		a.mode = arrFirst
		return stepMore, nil

	case arrFirst, arrValue:
		if isSpace(r) {
			return stepMore, nil
		} else if r == eof {
			return stepMore, failf(UnterminatedArray, "want array element")
		} else if r == ']' && a.mode == arrFirst {
			a.mode = arrEnd
			return stepDone, nil
		}
		child, err := newRecognizer(r, a.lim)
		if err != nil {
			return stepMore, err
		}
		a.child = child
		a.mode = arrChild
		return a.delegate(r)

	case arrChild:
		return a.delegate(r)

	case arrAfter:
		switch {
		case isSpace(r):
			return stepMore, nil
		case r == ',':
			a.mode = arrValue
			return stepMore, nil
		case r == ']':
			a.mode = arrEnd
			return stepDone, nil
		case r == eof:
			return stepMore, failf(UnterminatedArray, `want "," or "]"`)
		}
		return stepMore, failf(UnexpectedCharacter, `got %s, want "," or "]"`, describe(r))
	}
	return stepMore, failf(ReenteredTerminalState, "array already complete")
}

// delegate feeds r to the active child, and collects its value when the
// child is complete.
func (a *arrayRecognizer) delegate(r rune) (step, error) {
	st, err := a.child.feed(r)
	if err != nil || st == stepMore {
		return stepMore, err
	}
	a.vals = append(a.vals, a.child.value())
	a.child = nil
	a.mode = arrAfter
	if st == stepBack {
		return a.feed(r)
	}
	return stepMore, nil
}

func (a *arrayRecognizer) value() Value {
	if a.vals == nil {
		return Array{}
	}
	return a.vals
}
