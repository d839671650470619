// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstate

import "fmt"

// ErrorKind classifies the errors reported by the parser. An ErrorKind is
// itself an error, so that errors.Is(err, jstate.InvalidEscape) reports
// whether err is a syntax error of that kind.
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	UnknownError           ErrorKind = iota // unclassified error
	EmptyInput                              // the input contains no value
	UnexpectedCharacter                     // a character not permitted here
	InvalidLiteral                          // a malformed null, true or false
	InvalidNumber                           // a malformed or out-of-range number
	InvalidEscape                           // a malformed string escape
	UnterminatedString                      // input ended inside a string
	UnterminatedArray                       // input ended inside an array
	UnterminatedObject                      // input ended inside an object
	ReenteredTerminalState                  // a completed recognizer was fed again
	TooDeep                                 // arrays and objects nested too deeply
)

var kindStr = [...]string{
	UnknownError:           "unknown error",
	EmptyInput:             "empty input",
	UnexpectedCharacter:    "unexpected character",
	InvalidLiteral:         "invalid literal",
	InvalidNumber:          "invalid number",
	InvalidEscape:          "invalid escape",
	UnterminatedString:     "unterminated string",
	UnterminatedArray:      "unterminated array",
	UnterminatedObject:     "unterminated object",
	ReenteredTerminalState: "recognizer already complete",
	TooDeep:                "nesting too deep",
}

func (k ErrorKind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[UnknownError]
	}
	return kindStr[v]
}

// Error satisfies the error interface.
func (k ErrorKind) Error() string { return k.String() }

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Kind     ErrorKind
	Offset   int     // character offset, 1-based; 0 for empty input
	Location LineCol // location of the offending character
	Message  string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	msg := s.Kind.String()
	if s.Message != "" {
		msg += ": " + s.Message
	}
	if s.Offset == 0 {
		return msg
	}
	return fmt.Sprintf("at offset %d (%s): %s", s.Offset, s.Location, msg)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

// Is reports whether target is the kind of s.
func (s *SyntaxError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == s.Kind
}

// failf constructs a *SyntaxError of the given kind with no position. The
// driver fills in the position when the error reaches it.
func failf(kind ErrorKind, msg string, args ...any) error {
	return &SyntaxError{Kind: kind, Message: fmt.Sprintf(msg, args...)}
}

// wrapf is as failf, but records err as the underlying cause.
func wrapf(kind ErrorKind, err error, msg string, args ...any) error {
	return &SyntaxError{Kind: kind, Message: fmt.Sprintf(msg, args...), err: err}
}

// describe renders r for use in an error message.
func describe(r rune) string {
	if r == eof {
		return "end of input"
	}
	return fmt.Sprintf("%q", r)
}
