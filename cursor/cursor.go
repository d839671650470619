// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over the structure of a JSON value.
package cursor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jstate"
)

// Path traverses path from v as Cursor.Down does, and returns the value it
// reaches. It reports an error if the traversal fails, or if the value
// reached does not have type T.
func Path[T jstate.Value](v jstate.Value, path ...any) (T, error) {
	var zero T
	c := New(v).Down(path...)
	if c.err != nil {
		return zero, c.err
	}
	if out, ok := c.Value().(T); ok {
		return out, nil
	}
	return zero, fmt.Errorf("at %s: got %T, want %T", c.Location(), c.Value(), zero)
}

// A Cursor is a position in the structure of a jstate.Value. It records the
// values it has passed through from the origin, and the path elements that
// selected them.
type Cursor struct {
	org jstate.Value
	stk []frame
	err error
}

// A frame is one step of a cursor's traversal.
type frame struct {
	label string       // the path element that selected val
	val   jstate.Value // the value selected
}

// New constructs a new Cursor positioned at origin.
func New(origin jstate.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() jstate.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value returns the value at the current position of c.
func (c *Cursor) Value() jstate.Value {
	if n := len(c.stk); n > 0 {
		return c.stk[n-1].val
	}
	return c.org
}

// Path returns the values from the origin to the current position, inclusive.
func (c *Cursor) Path() []jstate.Value {
	out := make([]jstate.Value, 0, len(c.stk)+1)
	out = append(out, c.org)
	for _, f := range c.stk {
		out = append(out, f.val)
	}
	return out
}

// Location returns a dotted description of the path elements leading from
// the origin to the current position, for example "list.0.name".
// At the origin it returns "$".
func (c *Cursor) Location() string {
	if c.AtOrigin() {
		return "$"
	}
	labels := make([]string, len(c.stk))
	for i, f := range c.stk {
		labels[i] = f.label
	}
	return strings.Join(labels, ".")
}

// Err reports the error from the most recent call to Down, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves c to the position before its current one, if it is not at its
// origin. It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset returns c to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down moves c along path from its current position, and returns c to permit
// chaining. If some element of path cannot be followed, c stops at the value
// reached before it and records an error; use Err to recover the error.
//
// Each element of path is one of the following:
//
//   - A string selects the member of an object with that key.
//   - An int selects the element at that offset of an array, or of an object
//     whose members are taken in ascending order by key. Negative offsets
//     count backward from the end (-1 is last).
//   - A func(jstate.Value) (jstate.Value, error) is called with the current
//     value, and its result becomes the next value.
//   - A nil element is ignored.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	for _, elt := range path {
		if elt == nil {
			continue
		}
		next, label, err := resolve(c.Value(), elt)
		if err != nil {
			c.err = fmt.Errorf("at %s: %w", c.Location(), err)
			break
		}
		c.stk = append(c.stk, frame{label: label, val: next})
	}
	return c
}

// resolve follows one path element from v, and returns the value it selects
// and a label describing the element.
func resolve(v jstate.Value, elt any) (jstate.Value, string, error) {
	switch t := elt.(type) {
	case string:
		obj, ok := v.(jstate.Object)
		if !ok {
			return nil, "", fmt.Errorf("cannot select key %q from %T", t, v)
		}
		next, ok := obj.Find(t)
		if !ok {
			return nil, "", fmt.Errorf("key %q not found", t)
		}
		return next, t, nil

	case int:
		next, err := element(v, t)
		return next, strconv.Itoa(t), err

	case func(jstate.Value) (jstate.Value, error):
		next, err := t(v)
		return next, "()", err
	}
	return nil, "", fmt.Errorf("invalid path element %T", elt)
}

// element returns the value at offset n of an array, or of the members of
// an object in ascending order by key.
func element(v jstate.Value, n int) (jstate.Value, error) {
	var size int
	switch t := v.(type) {
	case jstate.Array:
		size = len(t)
	case jstate.Object:
		size = len(t)
	default:
		return nil, fmt.Errorf("cannot select offset %d from %T", n, v)
	}
	i := n
	if i < 0 {
		i += size
	}
	if i < 0 || i >= size {
		return nil, fmt.Errorf("offset %d out of range for %d elements", n, size)
	}
	if obj, ok := v.(jstate.Object); ok {
		return obj[obj.Keys()[i]], nil
	}
	return v.(jstate.Array)[i], nil
}
