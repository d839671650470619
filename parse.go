// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstate

import (
	"errors"
	"unicode/utf8"

	"go4.org/mem"
)

// DefaultMaxDepth is the default limit on the nesting depth of arrays and
// objects accepted by a Parser.
//
// Each character is delivered through every open container, so the cost of
// parsing grows with the product of the input length and its nesting depth.
// Raising the limit admits inputs that take correspondingly longer to reject.
const DefaultMaxDepth = 1000

// A Parser parses JSON text into Value trees. The zero value is ready for
// use with default settings. A Parser holds only configuration, and may be
// used concurrently by multiple goroutines once configured.
type Parser struct {
	maxDepth int
}

// SetMaxDepth sets the maximum nesting depth of arrays and objects that p
// accepts. If n <= 0, the limit is reset to DefaultMaxDepth.
func (p *Parser) SetMaxDepth(n int) { p.maxDepth = n }

func (p *Parser) limit() limit {
	if p == nil || p.maxDepth <= 0 {
		return limit{max: DefaultMaxDepth}
	}
	return limit{max: p.maxDepth}
}

// Parse parses a single JSON value from text. Whitespace may precede and
// follow the value, but nothing else. In case of error, the returned error
// has concrete type *SyntaxError.
func (p *Parser) Parse(text string) (Value, error) { return p.parse(mem.S(text)) }

// ParseBytes is as Parse, but reads its input from data.
func (p *Parser) ParseBytes(data []byte) (Value, error) { return p.parse(mem.B(data)) }

func (p *Parser) parse(src mem.RO) (Value, error) {
	if src.Len() == 0 {
		return nil, failf(EmptyInput, "no input")
	}
	doc := &document{lim: p.limit()}
	pos := newPosition()
	if err := decode(src, &pos, func(r rune) error {
		_, err := doc.feed(r)
		return err
	}); err != nil {
		return nil, err
	}
	pos.atEOF()
	if _, err := doc.feed(eof); err != nil {
		return nil, pos.locate(err)
	}
	return doc.value(), nil
}

// decode calls f with each character of src in order, advancing pos before
// each call. It stops at the first error from f, or at the first byte that is
// not valid UTF-8, and returns that error located at pos.
func decode(src mem.RO, pos *position, f func(rune) error) error {
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)
		pos.advance(r)
		if r == utf8.RuneError && n == 1 {
			return pos.locate(failf(UnexpectedCharacter, "invalid UTF-8 encoding"))
		}
		if err := f(r); err != nil {
			return pos.locate(err)
		}
	}
	return nil
}

// Parse parses a single JSON value from text using a default Parser.
func Parse(text string) (Value, error) { return (*Parser)(nil).Parse(text) }

// ParseBytes parses a single JSON value from data using a default Parser.
func ParseBytes(data []byte) (Value, error) { return (*Parser)(nil).ParseBytes(data) }

// MustParse parses a single JSON value from text, and panics if parsing
// fails. It is intended for use in tests and package initialization.
func MustParse(text string) Value {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

// A document recognizes a complete input: optional whitespace, a single
// value, and optional whitespace.
type document struct {
	mode  docMode
	child recognizer // non-nil in docValue
	val   Value
	lim   limit
}

type docMode byte

const (
	docStart docMode = iota // awaiting the first significant character
	docValue                // feeding the value's recognizer
	docAfter                // only whitespace may follow
	docEnd                  // end of input seen
)

func (d *document) feed(r rune) (step, error) {
	switch d.mode {
	case docStart:
		if isSpace(r) {
			return stepMore, nil
		} else if r == eof {
			return stepMore, failf(EmptyInput, "no value in input")
		}
		child, err := newRecognizer(r, d.lim)
		if err != nil {
			return stepMore, err
		}
		d.child = child
		d.mode = docValue
		return d.delegate(r)

	case docValue:
		return d.delegate(r)

	case docAfter:
		if isSpace(r) {
			return stepMore, nil
		} else if r == eof {
			d.mode = docEnd
			return stepDone, nil
		}
		return stepMore, failf(UnexpectedCharacter, "got %s after value, want end of input", describe(r))
	}
	return stepMore, failf(ReenteredTerminalState, "input already complete")
}

func (d *document) delegate(r rune) (step, error) {
	st, err := d.child.feed(r)
	if err != nil || st == stepMore {
		return stepMore, err
	}
	d.val = d.child.value()
	d.child = nil
	d.mode = docAfter
	if st == stepBack {
		return d.feed(r)
	}
	return stepMore, nil
}

func (d *document) value() Value { return d.val }

// locate records the current position in err, if it is a *SyntaxError
// that does not already have one.
func (p *position) locate(err error) error {
	var serr *SyntaxError
	if errors.As(err, &serr) && serr.Offset == 0 {
		serr.Offset = p.offset
		serr.Location = p.at
	}
	return err
}
