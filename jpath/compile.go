package jpath

import (
	"fmt"
	"strconv"

	"github.com/creachadair/jstate/query"
)

// Compile parses s as a JSONPath expression and compiles it into a query.
// It is shorthand for calling Parse and then Expr.Query.
func Compile(s string) (query.Query, error) {
	e, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return e.Query()
}

// Query compiles e into an equivalent query.
//
// A step that selects several values (a wildcard, a slice, or a list of
// indices) yields an array, and the steps that follow it are applied to each
// element of that array. A recursive step applies itself and the steps that
// follow it to every value in the tree, and yields an array of the matches.
//
// Filter and script steps are not supported.
func (e Expr) Query() (query.Query, error) {
	if len(e) == 0 {
		return query.Path(), nil
	}
	s := e[0]
	tail, err := e[1:].Query()
	if err != nil {
		return nil, err
	}

	switch s.Op {
	case Member, Key:
		if s.IsWildcard() {
			return each(query.Glob(), e[1:], tail), nil
		}
		return query.Path(s.Name, tail), nil

	case Recur:
		if s.IsWildcard() {
			return query.Recur(query.Glob(), tail), nil
		}
		return query.Recur(s.Name, tail), nil

	case Index:
		if len(s.Index) == 1 {
			return query.Path(s.Index[0], tail), nil
		}
		return each(query.Pick(s.Index...), e[1:], tail), nil

	case Slice:
		lo, err := bound(s.Lo)
		if err != nil {
			return nil, err
		}
		hi, err := bound(s.Hi)
		if err != nil {
			return nil, err
		}
		return each(query.Slice(lo, hi), e[1:], tail), nil
	}
	return nil, fmt.Errorf("unsupported step %s", s)
}

// each returns a query that applies tail to each element of the array
// selected by q. If rest is empty, it returns q alone.
func each(q query.Query, rest Expr, tail query.Query) query.Query {
	if len(rest) == 0 {
		return q
	}
	return query.Seq{q, query.Each(tail)}
}

// bound parses a slice bound. An empty bound is zero, which Slice treats as
// the start or the end of the array.
func bound(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid slice bound %q", s)
	}
	return v, nil
}
