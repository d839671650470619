// Package jpath implements a minimal JSONPath expression parser, and compiles
// parsed expressions into queries.
package jpath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

/*
Grammar:

  expr = root steps
  root = "$"
 steps = step [steps]
  step = "." name
  step = ".." name
  step = "[" value "]"
  step = "[" slice "]"
  name = WORD
  name = "'" QTEXT "'"
  name = "*"
 value = name
 value = INDEX ["," INDEX]...
 value = script
 value = filter
 slice = [INDEX] ":" [INDEX]
script = "(" TEXT ")"
filter = "?(" TEXT ")"

  WORD = RE `\w+`
 QTEXT = RE `[^']*`
 INDEX = RE `-?\d+`
  TEXT = { all text with nested parentheses }

Source:
  https://www.ietf.org/archive/id/draft-goessner-dispatch-jsonpath-00.html
*/

// An Expr is a parsed JSONPath expression.
type Expr []Step

// A Step is a single step of a JSONPath expression.
type Step struct {
	Op Op

	Name   string // Member, Recur, Key: the name, or "*" for a wildcard
	Quoted bool   // Name was written in single quotes
	Index  []int  // Index: the selected offsets
	Lo, Hi string // Slice: the bounds as written; either may be empty
	Text   string // Filter, Script: the text inside the parentheses
}

// IsWildcard reports whether s selects every member or element.
func (s Step) IsWildcard() bool { return s.Name == "*" && !s.Quoted }

func (s Step) String() string {
	name := s.Name
	if s.Quoted {
		name = "'" + name + "'"
	}
	switch s.Op {
	case Member:
		return "." + name
	case Recur:
		return ".." + name
	case Key:
		return "[" + name + "]"
	case Index:
		ss := make([]string, len(s.Index))
		for i, v := range s.Index {
			ss[i] = strconv.Itoa(v)
		}
		return "[" + strings.Join(ss, ",") + "]"
	case Slice:
		return "[" + s.Lo + ":" + s.Hi + "]"
	case Filter:
		return "[?(" + s.Text + ")]"
	case Script:
		return "[(" + s.Text + ")]"
	}
	return "<invalid>"
}

func (e Expr) String() string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, s := range e {
		buf.WriteString(s.String())
	}
	return buf.String()
}

// Parse parses s as a JSONPath expression.
func Parse(s string) (Expr, error) {
	rest, ok := strings.CutPrefix(s, "$")
	if !ok {
		return nil, errors.New("missing root marker")
	}
	p := &parser{rest: rest}
	var e Expr
	for p.rest != "" {
		step, err := p.step()
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", len(s)-len(p.rest), err)
		}
		e = append(e, step)
	}
	return e, nil
}

// A parser consumes the steps of an expression from the front of rest.
type parser struct {
	rest string
}

func (p *parser) consume(pfx string) bool {
	var ok bool
	p.rest, ok = strings.CutPrefix(p.rest, pfx)
	return ok
}

func (p *parser) match(re *regexp.Regexp) (string, bool) {
	m := re.FindStringSubmatch(p.rest)
	if m == nil {
		return "", false
	}
	p.rest = p.rest[len(m[0]):]
	return m[1], true
}

func (p *parser) step() (Step, error) {
	switch {
	case p.consume(".."):
		step, err := p.name(Recur)
		if err != nil {
			return Step{}, fmt.Errorf("invalid ..name: %w", err)
		}
		return step, nil

	case p.consume("."):
		step, err := p.name(Member)
		if err != nil {
			return Step{}, fmt.Errorf("invalid .name: %w", err)
		}
		return step, nil

	case p.consume("["):
		step, err := p.value()
		if err != nil {
			return Step{}, err
		}
		if !p.consume("]") {
			return Step{}, errors.New("missing close bracket")
		}
		return step, nil
	}
	return Step{}, errors.New("invalid path step")
}

func (p *parser) name(op Op) (Step, error) {
	if p.consume("*") {
		return Step{Op: op, Name: "*"}, nil
	}
	if w, ok := p.match(wordRE); ok {
		return Step{Op: op, Name: w}, nil
	}
	if q, ok := p.match(quoteRE); ok {
		return Step{Op: op, Name: q, Quoted: true}, nil
	}
	return Step{}, errors.New("invalid name")
}

func (p *parser) value() (Step, error) {
	switch {
	case p.consume("?("):
		text, err := p.script()
		return Step{Op: Filter, Text: text}, err
	case p.consume("("):
		text, err := p.script()
		return Step{Op: Script, Text: text}, err
	}

	lo, hasLo := p.match(indexRE)
	if p.consume(":") {
		hi, hasHi := p.match(indexRE)
		if !hasLo && !hasHi {
			return Step{}, errors.New("invalid slice")
		} else if strings.Contains(lo+hi, ",") {
			return Step{}, errors.New("invalid slice bound")
		}
		return Step{Op: Slice, Lo: lo, Hi: hi}, nil
	} else if hasLo {
		var idx []int
		for _, s := range strings.Split(lo, ",") {
			v, err := strconv.Atoi(s)
			if err != nil {
				return Step{}, fmt.Errorf("invalid index %q", s)
			}
			idx = append(idx, v)
		}
		return Step{Op: Index, Index: idx}, nil
	}

	if step, err := p.name(Key); err == nil {
		return step, nil
	}
	return Step{}, fmt.Errorf("invalid value: %q", p.rest)
}

// script consumes text up to the parenthesis that balances one already
// consumed, and returns the text without that parenthesis.
func (p *parser) script() (string, error) {
	np := 1
	for i := 0; i < len(p.rest); i++ {
		switch p.rest[i] {
		case '(':
			np++
		case ')':
			np--
			if np == 0 {
				text := p.rest[:i]
				p.rest = p.rest[i+1:]
				return text, nil
			}
		}
	}
	return "", errors.New("unbalanced parentheses")
}

var (
	wordRE  = regexp.MustCompile(`^(\w+)`)
	indexRE = regexp.MustCompile(`^(-?\d+(?:,-?\d+)*)`)
	quoteRE = regexp.MustCompile(`^'([^']*)'`)
)

// An Op is a path operator.
type Op byte

const (
	Invalid Op = iota // invalid operator
	Member            // member lookup (.name)
	Recur             // recursive descent (..name)
	Key               // bracketed member lookup ([name])
	Index             // array index lookup ([n] or [n,m,...])
	Slice             // array slice ([lo:hi])
	Filter            // filter operator ([?(...)])
	Script            // script operator ([(...)])
)

var opText = [...]string{
	Invalid: "invalid",
	Member:  ".",
	Recur:   "..",
	Key:     "key",
	Index:   "index",
	Slice:   "slice",
	Filter:  "?(...)",
	Script:  "(...)",
}

func (o Op) String() string {
	if int(o) < len(opText) {
		return opText[o]
	}
	return opText[Invalid]
}
