// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstate

import (
	"strings"

	"github.com/creachadair/jstate/internal/escape"
)

// A stringRecognizer decodes a quoted string, including its escapes.
type stringRecognizer struct {
	buf  strings.Builder
	mode stringMode

	// State for \u escapes, meaningful only in modes strUnicode through
	// strLow: the number of hex digits read for the current code unit, and
	// the high and low UTF-16 code units.
	ndig  int
	units [2]uint16
}

type stringMode byte

const (
	strStart     stringMode = iota // awaiting the opening quote
	strBody                        // plain characters
	strEscape                      // after a backslash
	strUnicode                     // hex digits of a \u escape
	strLowSlash                    // awaiting the \ of a low surrogate
	strLowU                        // awaiting the u of a low surrogate
	strLow                         // hex digits of a low surrogate
	strEnd                         // complete
)

// The ranges of UTF-16 surrogate code units.
const (
	surrHighMin = 0xD800
	surrHighMax = 0xDBFF
	surrLowMin  = 0xDC00
	surrLowMax  = 0xDFFF
)

var simpleEsc = map[rune]rune{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

func (s *stringRecognizer) feed(r rune) (step, error) {
	if r == eof && s.mode != strEnd {
		if s.mode == strStart {
			return stepMore, failf(UnexpectedCharacter, "got end of input, want string")
		}
		return stepMore, failf(UnterminatedString, "missing closing quote")
	}

	switch s.mode {
	case strStart:
		if isSpace(r) {
			return stepMore, nil
		} else if r != '"' {
			return stepMore, failf(UnexpectedCharacter, "got %s, want string", describe(r))
		}
		s.mode = strBody

	case strBody:
		switch {
		case r == '"':
			s.mode = strEnd
			return stepDone, nil
		case r == '\\':
			s.mode = strEscape
		case r < ' ':
			return stepMore, failf(UnexpectedCharacter, "unescaped control %q in string", r)
		default:
			s.buf.WriteRune(r)
		}

	case strEscape:
		if r == 'u' {
			s.mode = strUnicode
			s.ndig, s.units = 0, [2]uint16{}
		} else if dec, ok := simpleEsc[r]; ok {
			s.buf.WriteRune(dec)
			s.mode = strBody
		} else {
			return stepMore, failf(InvalidEscape, "invalid %s after escape", describe(r))
		}

	case strUnicode, strLow:
		return s.hexDigit(r)

	case strLowSlash:
		if r != '\\' {
			return stepMore, failf(InvalidEscape,
				"high surrogate %04X not followed by a low surrogate escape", s.units[0])
		}
		s.mode = strLowU

	case strLowU:
		if r != 'u' {
			return stepMore, failf(InvalidEscape,
				"high surrogate %04X not followed by a low surrogate escape", s.units[0])
		}
		s.mode = strLow
		s.ndig = 0

	case strEnd:
		return stepMore, failf(ReenteredTerminalState, "string already complete")
	}
	return stepMore, nil
}

// hexDigit consumes one hex digit of a \u escape.
func (s *stringRecognizer) hexDigit(r rune) (step, error) {
	d, ok := escape.HexValue(r)
	if !ok {
		return stepMore, failf(InvalidEscape, "invalid hex digit %s in Unicode escape", describe(r))
	}
	i := 0
	if s.mode == strLow {
		i = 1
	}
	s.units[i] = s.units[i]<<4 | d
	s.ndig++
	if s.ndig < 4 {
		return stepMore, nil
	}

	hi, lo := s.units[0], s.units[1]
	switch {
	case s.mode == strLow:
		if lo < surrLowMin || lo > surrLowMax {
			return stepMore, failf(InvalidEscape, "%04X is not a low surrogate", lo)
		}
		s.buf.WriteRune(0x10000 + (rune(hi)-surrHighMin)*0x400 + (rune(lo) - surrLowMin))
		s.mode = strBody
	case hi >= surrHighMin && hi <= surrHighMax:
		s.mode = strLowSlash
	case hi >= surrLowMin && hi <= surrLowMax:
		return stepMore, failf(InvalidEscape, "unpaired low surrogate %04X", hi)
	default:
		s.buf.WriteRune(rune(hi))
		s.mode = strBody
	}
	return stepMore, nil
}

func (s *stringRecognizer) value() Value { return String(s.buf.String()) }

// text returns the decoded text accumulated so far.
func (s *stringRecognizer) text() string { return s.buf.String() }
