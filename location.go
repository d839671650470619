// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstate

import "fmt"

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // character offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A position tracks the location of the most recently read character.
type position struct {
	offset int     // characters read so far
	at     LineCol // location of the most recent character
	next   LineCol // location of the next character
}

func newPosition() position {
	p := position{next: LineCol{Line: 1}}
	p.at = p.next
	return p
}

// advance records that r was read.
func (p *position) advance(r rune) {
	p.offset++
	p.at = p.next
	if r == '\n' {
		p.next.Line++
		p.next.Column = 0
	} else {
		p.next.Column++
	}
}

// atEOF records that the end of input was reached.
func (p *position) atEOF() {
	p.offset++
	p.at = p.next
}
