// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jwcc

import (
	"bytes"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/creachadair/jstate"
)

// A Formatter carries the settings for pretty-printing JSON values.
// A zero value is ready for use with default settings.
type Formatter struct {
	// Strict, if true, omits the trailing comma after the last element of a
	// multi-line array or object, so the output is plain JSON.
	Strict bool

	// Indent is the indentation added for each level of nesting. It should
	// contain only spaces, since tabs are used to align object members.
	// If empty, two spaces are used.
	Indent string

	// MaxLineItems is the maximum number of elements of an array that may be
	// rendered on one line. If zero, 3 is used.
	MaxLineItems int
}

func (f Formatter) indent() string {
	if f.Indent == "" {
		return "  "
	}
	return f.Indent
}

func (f Formatter) maxLineItems() int {
	if f.MaxLineItems <= 0 {
		return 3
	}
	return f.MaxLineItems
}

// Indent renders a pretty-printed representation of v with default settings.
// The result is JWCC text, which Parse accepts.
func Indent(v jstate.Value) string { return Formatter{}.String(v) }

// String renders a pretty-printed representation of v using the settings
// from f.
func (f Formatter) String(v jstate.Value) string {
	var buf bytes.Buffer
	f.Format(&buf, v) // a bytes.Buffer does not fail
	return buf.String()
}

// Format renders a pretty-printed representation of v to w using the settings
// from f.
func (f Formatter) Format(w io.Writer, v jstate.Value) error {
	tw := tabwriter.NewWriter(w, 4, 4, 1, ' ', 0)
	f.formatValue(tw, v, "", "")
	return tw.Flush()
}

type writeFlusher interface {
	io.Writer
	Flush() error
}

// formatValue writes a representation of v to w indented by indent.
// The first line is prefixed by init rather than indent.
func (f Formatter) formatValue(w writeFlusher, v jstate.Value, init, indent string) {
	switch t := v.(type) {
	case jstate.Array:
		f.formatArray(w, t, init, indent)
	case jstate.Object:
		f.formatObject(w, t, init, indent)
	default:
		fmt.Fprint(w, init, v.JSON())
	}
}

func (f Formatter) formatArray(w writeFlusher, a jstate.Array, init, indent string) {
	if f.isBoring(a) {
		fmt.Fprint(w, init, "[")
		for i, v := range a {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			f.formatValue(w, v, "", "")
		}
		io.WriteString(w, "]")
		return
	}

	fmt.Fprint(w, init, "[\n")
	adent := indent + f.indent()
	for i, v := range a {
		f.formatValue(w, v, adent, adent)
		io.WriteString(w, f.comma(i, len(a)))
	}
	w.Flush()
	fmt.Fprint(w, indent, "]")
}

func (f Formatter) formatObject(w writeFlusher, o jstate.Object, init, indent string) {
	keys := o.Keys()
	if f.isBoring(o) {
		fmt.Fprint(w, init, "{")
		for i, key := range keys {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			fmt.Fprint(w, jstate.Quote(key), ": ")
			f.formatValue(w, o[key], "", "")
		}
		io.WriteString(w, "}")
		return
	}

	fmt.Fprint(w, init, "{\n")
	mdent := indent + f.indent()
	prevBoring, curBoring := true, true
	for i, key := range keys {
		val := o[key]

		// Leave extra space before the next member if either it or its
		// predecessor was non-boring.
		prevBoring, curBoring = curBoring, f.isBoring(val)
		if i != 0 && !(prevBoring && curBoring) {
			io.WriteString(w, "\n")
		}

		fmt.Fprint(w, mdent, jstate.Quote(key), f.objSep(val))
		f.formatValue(w, val, "", mdent)
		io.WriteString(w, f.comma(i, len(keys)))
	}
	w.Flush()
	fmt.Fprint(w, indent, "}")
}

// comma returns the separator that ends the line of element i of n in a
// multi-line array or object.
func (f Formatter) comma(i, n int) string {
	if f.Strict && i == n-1 {
		return "\n"
	}
	return ",\n"
}

// objSep returns a key-value separator for the given value.
// Boring values get indented so they line up in columns;
// non-boring values are stapled directly to the key.
func (f Formatter) objSep(v jstate.Value) string {
	if f.isBoring(v) {
		return ":\t"
	}
	return ": "
}

// isBoring reports whether v has a simple enough structure that it can be
// rendered on one line.
func (f Formatter) isBoring(v jstate.Value) bool {
	switch t := v.(type) {
	case jstate.Array:
		for i, v := range t {
			if !f.isBoring(v) || i >= f.maxLineItems() {
				return false
			}
		}
		return true
	case jstate.Object:
		if len(t) == 1 {
			for _, v := range t {
				return f.isBoring(v)
			}
		}
		return len(t) == 0
	default:
		return true
	}
}
