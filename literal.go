// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstate

// A literalRecognizer matches one of the fixed keywords null, true, false.
type literalRecognizer struct {
	word string // the keyword to match
	val  Value  // the value the keyword denotes
	pos  int    // offset of the next expected letter
	done bool
}

func newLiteral(word string, val Value) *literalRecognizer {
	return &literalRecognizer{word: word, val: val}
}

func (l *literalRecognizer) feed(r rune) (step, error) {
	if l.done {
		return stepMore, failf(ReenteredTerminalState, "literal %s already complete", l.word)
	}
	if l.pos == 0 && isSpace(r) {
		return stepMore, nil
	}
	if r != rune(l.word[l.pos]) {
		want := l.word[l.pos]
		l.pos = 0
		return stepMore, failf(InvalidLiteral, "got %s, want %q in %s", describe(r), want, l.word)
	}
	l.pos++
	if l.pos < len(l.word) {
		return stepMore, nil
	}
	l.pos = 0
	l.done = true
	return stepDone, nil
}

func (l *literalRecognizer) value() Value { return l.val }
