// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstate

import (
	"errors"
	"strconv"
	"strings"
)

// A numberRecognizer accumulates the text of a number.
//
// JSON numbers have no terminator, so the number is only known to be
// complete when a character that cannot belong to it arrives. The
// recognizer then parses what it has collected and reports stepBack, so the
// caller can offer that character to whatever follows the number.
type numberRecognizer struct {
	buf  strings.Builder
	num  Number
	done bool
}

func (n *numberRecognizer) feed(r rune) (step, error) {
	if n.done {
		return stepMore, failf(ReenteredTerminalState, "number %s already complete", n.buf.String())
	}
	if n.buf.Len() == 0 && isSpace(r) {
		return stepMore, nil
	}
	if isNumRune(r) {
		n.buf.WriteRune(r)
		return stepMore, nil
	}
	if err := n.finish(); err != nil {
		return stepMore, err
	}
	return stepBack, nil
}

func (n *numberRecognizer) finish() error {
	text := n.buf.String()
	if text == "" {
		return failf(InvalidNumber, "no digits")
	}
	if msg := checkNumber(text); msg != "" {
		return failf(InvalidNumber, "%q: %s", text, msg)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return wrapf(InvalidNumber, err, "%q: out of range", text)
		}
		return wrapf(InvalidNumber, err, "%q", text)
	}
	n.num = Number(v)
	n.done = true
	return nil
}

func (n *numberRecognizer) value() Value { return n.num }

// checkNumber reports whether text satisfies the JSON number grammar
//
//	-? (0 | [1-9][0-9]*) (. [0-9]+)? ([eE] [+-]? [0-9]+)?
//
// It returns "" if so, otherwise a description of the problem.
func checkNumber(text string) string {
	s := strings.TrimPrefix(text, "-")

	// Integer part.
	nd := countDigits(s)
	if nd == 0 {
		return "missing integer digits"
	} else if s[0] == '0' && nd > 1 {
		return "extra leading zeroes"
	}
	s = s[nd:]

	// Fraction.
	if rest, ok := strings.CutPrefix(s, "."); ok {
		nd := countDigits(rest)
		if nd == 0 {
			return "no digits after decimal point"
		}
		s = rest[nd:]
	}

	// Exponent.
	if s != "" && (s[0] == 'e' || s[0] == 'E') {
		s = s[1:]
		if s != "" && (s[0] == '+' || s[0] == '-') {
			s = s[1:]
		}
		nd := countDigits(s)
		if nd == 0 {
			return "missing exponent digits"
		}
		s = s[nd:]
	}

	if s != "" {
		return "unexpected " + strconv.Quote(s)
	}
	return ""
}

// countDigits returns the length of the longest prefix of s that consists
// of decimal digits.
func countDigits(s string) int {
	for i := 0; i < len(s); i++ {
		if !isDigit(rune(s[i])) {
			return i
		}
	}
	return len(s)
}

func isNumStart(r rune) bool { return r == '-' || isDigit(r) }
func isDigit(r rune) bool    { return '0' <= r && r <= '9' }

func isNumRune(r rune) bool {
	return isDigit(r) || r == '-' || r == '+' || r == '.' || r == 'e' || r == 'E'
}
