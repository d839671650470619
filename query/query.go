// Package query implements structural queries over JSON values.
//
// A query selects part of a jstate.Value: an object member, an element, a
// range of elements, or the results of applying another query throughout the
// tree. Queries compose, so that
//
//	query.Path("episodes", query.Each("title"))
//
// applied to an object with an "episodes" array of objects yields an array of
// the episode titles.
//
// Queries that select by offset (Path with an int, Pick, Slice) accept arrays
// and objects alike. The elements of an object are its member values taken in
// ascending order by key, the same order used by Object.JSON and Glob.
package query

import (
	"errors"
	"fmt"

	"github.com/creachadair/jstate"
	"github.com/creachadair/mds/stack"
)

// A Query describes a traversal of a JSON value.
type Query interface {
	eval(jstate.Value) (jstate.Value, error)
}

// Eval evaluates q starting from root, and returns the selected value.
func Eval(root jstate.Value, q Query) (jstate.Value, error) { return q.eval(root) }

// queryFunc adapts a function to the Query interface.
type queryFunc func(jstate.Value) (jstate.Value, error)

func (f queryFunc) eval(v jstate.Value) (jstate.Value, error) { return f(v) }

// Path composes a sequence of steps from the root. A string selects the
// object member with that key, an int selects an element by offset (see
// Index), and a Query is applied as given. With no steps, Path selects the
// root itself. Path panics if a step has any other type.
func Path(steps ...any) Query {
	var seq Seq
	for _, step := range steps {
		switch t := step.(type) {
		case string:
			seq = append(seq, Key(t))
		case int:
			seq = append(seq, Index(t))
		case Seq:
			seq = append(seq, t...)
		case Query:
			seq = append(seq, t)
		default:
			panic(fmt.Sprintf("invalid path element %T", step))
		}
	}
	if len(seq) == 1 {
		return seq[0]
	}
	return seq
}

// Key selects the value of the member of an object with the given key.
func Key(key string) Query {
	return queryFunc(func(v jstate.Value) (jstate.Value, error) {
		obj, ok := v.(jstate.Object)
		if !ok {
			return nil, fmt.Errorf("key %q: got %T, want object", key, v)
		}
		if val, ok := obj.Find(key); ok {
			return val, nil
		}
		return nil, fmt.Errorf("key %q not found", key)
	})
}

// Index selects the element at offset n of an array or object. A negative
// offset counts backward from the end.
func Index(n int) Query {
	return queryFunc(func(v jstate.Value) (jstate.Value, error) {
		elts, err := elements(v)
		if err != nil {
			return nil, err
		}
		i, err := offset(n, len(elts))
		if err != nil {
			return nil, err
		}
		return elts[i], nil
	})
}

// Pick selects an array of the elements at the given offsets, in the order
// given. Negative offsets count backward from the end.
func Pick(offsets ...int) Query {
	return queryFunc(func(v jstate.Value) (jstate.Value, error) {
		elts, err := elements(v)
		if err != nil {
			return nil, err
		}
		out := make(jstate.Array, len(offsets))
		for i, n := range offsets {
			j, err := offset(n, len(elts))
			if err != nil {
				return nil, err
			}
			out[i] = elts[j]
		}
		return out, nil
	})
}

// Slice selects an array of the elements from offset lo up to but not
// including hi. Negative offsets count backward from the end, and hi == 0
// denotes the end.
func Slice(lo, hi int) Query {
	return queryFunc(func(v jstate.Value) (jstate.Value, error) {
		elts, err := elements(v)
		if err != nil {
			return nil, err
		}
		n := len(elts)
		start, end := lo, hi
		if start < 0 {
			start += n
		}
		if end <= 0 {
			end += n
		}
		if start < 0 || end > n || start > end {
			return nil, fmt.Errorf("slice [%d:%d] out of range for %d elements", lo, hi, n)
		}
		return elts[start:end], nil
	})
}

// Glob selects an array of all the elements of an array or object.
func Glob() Query {
	return queryFunc(func(v jstate.Value) (jstate.Value, error) { return elements(v) })
}

// Each applies a query to each element of an array or object, and selects an
// array of the results. It fails if the query fails for any element. The
// arguments have the same meaning as for Path.
func Each(steps ...any) Query {
	q := Path(steps...)
	return queryFunc(func(v jstate.Value) (jstate.Value, error) {
		elts, err := elements(v)
		if err != nil {
			return nil, err
		}
		out := make(jstate.Array, len(elts))
		for i, elt := range elts {
			r, err := q.eval(elt)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = r
		}
		return out, nil
	})
}

// Recur applies a query to its input and to every value nested inside it,
// and selects an array of the results for which the query succeeds. Values are
// visited in document order, with object members in ascending order by key.
// Recur fails if the query succeeds nowhere. The arguments have the same
// meaning as for Path.
func Recur(steps ...any) Query {
	q := Path(steps...)
	return queryFunc(func(v jstate.Value) (jstate.Value, error) {
		var out jstate.Array
		stk := stack.New[jstate.Value]()
		stk.Push(v)
		for !stk.IsEmpty() {
			next, _ := stk.Pop()
			if r, err := q.eval(next); err == nil {
				out = append(out, r)
			}

			// Push children last to first, so they pop in order.
			elts, _ := elements(next)
			for i := len(elts) - 1; i >= 0; i-- {
				stk.Push(elts[i])
			}
		}
		if len(out) == 0 {
			return nil, errors.New("no matches")
		}
		return out, nil
	})
}

// Select selects an array of the elements of an array or object for which
// keep reports true.
func Select(keep func(jstate.Value) bool) Query {
	return queryFunc(func(v jstate.Value) (jstate.Value, error) {
		elts, err := elements(v)
		if err != nil {
			return nil, err
		}
		out := jstate.Array{}
		for _, elt := range elts {
			if keep(elt) {
				out = append(out, elt)
			}
		}
		return out, nil
	})
}

// Len selects a Number giving the length of its input: the number of elements
// of an array, the number of members of an object, the number of Unicode code
// points in a string, or zero for null.
func Len() Query {
	return queryFunc(func(v jstate.Value) (jstate.Value, error) {
		switch t := v.(type) {
		case jstate.Array:
			return jstate.Number(len(t)), nil
		case jstate.Object:
			return jstate.Number(len(t)), nil
		case jstate.String:
			return jstate.Number(t.Len()), nil
		case jstate.Null:
			return jstate.Number(0), nil
		}
		return nil, fmt.Errorf("cannot take length of %T", v)
	})
}

// Const ignores its input and selects v, converted by jstate.ToValue.
// It panics if v cannot be converted.
func Const(v any) Query {
	val := jstate.ToValue(v)
	return queryFunc(func(jstate.Value) (jstate.Value, error) { return val, nil })
}

// Seq applies each query in turn to the value selected by the one before.
// An empty Seq selects its input.
type Seq []Query

func (q Seq) eval(v jstate.Value) (jstate.Value, error) {
	for _, sub := range q {
		next, err := sub.eval(v)
		if err != nil {
			return nil, err
		}
		v = next
	}
	return v, nil
}

// Alt selects the result of the first of its queries that succeeds.
// If none succeeds, Alt reports the error from the last one.
type Alt []Query

func (q Alt) eval(v jstate.Value) (jstate.Value, error) {
	err := errors.New("no alternatives")
	for _, alt := range q {
		var r jstate.Value
		if r, err = alt.eval(v); err == nil {
			return r, nil
		}
	}
	return nil, err
}

// elements returns the elements of an array, or the member values of an
// object in ascending order by key.
func elements(v jstate.Value) (jstate.Array, error) {
	switch t := v.(type) {
	case jstate.Array:
		return t, nil
	case jstate.Object:
		out := make(jstate.Array, 0, len(t))
		for _, key := range t.Keys() {
			out = append(out, t[key])
		}
		return out, nil
	}
	return nil, fmt.Errorf("got %T, want array or object", v)
}

// offset resolves n as an offset into a sequence of length elements.
func offset(n, length int) (int, error) {
	i := n
	if i < 0 {
		i += length
	}
	if i < 0 || i >= length {
		return 0, fmt.Errorf("offset %d out of range for %d elements", n, length)
	}
	return i, nil
}
