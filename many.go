// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

import (
	"fmt"
	"iter"
	"reflect"
	"strings"
)

// Many is an ordered, possibly empty, possibly duplicated sequence —
// the nondeterminism container. Construction order is preserved by every
// operation; Apply enumerates the cartesian product with the function
// sequence varying slowest and Bind concatenates in element order.
type Many struct {
	xs []Erased
}

// NewMany builds a Many from the given elements.
// The elements are copied; the container owns its payload exclusively.
func NewMany(xs ...Erased) Many {
	return Many{xs: append([]Erased(nil), xs...)}
}

// Len returns the number of elements.
func (m Many) Len() int {
	return len(m.xs)
}

// At returns the element at index i.
func (m Many) At(i int) Erased {
	return m.xs[i]
}

// Contains reports whether the sequence holds an element structurally
// equal to x.
func (m Many) Contains(x Erased) bool {
	for _, e := range m.xs {
		if reflect.DeepEqual(e, x) {
			return true
		}
	}
	return false
}

// Values returns an iterator over the elements in construction order.
func (m Many) Values() iter.Seq[Erased] {
	return func(yield func(Erased) bool) {
		for _, x := range m.xs {
			if !yield(x) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements in construction order.
func (m Many) Slice() []Erased {
	return append([]Erased(nil), m.xs...)
}

// Filter returns the elements satisfying pred, in order.
func (m Many) Filter(pred func(Erased) bool) Many {
	var out []Erased
	for _, x := range m.xs {
		if pred(x) {
			out = append(out, x)
		}
	}
	return Many{xs: out}
}

// Fold reduces the sequence left to right starting from initial.
func (m Many) Fold(initial Erased, fn func(acc, x Erased) Erased) Erased {
	y := initial
	for _, x := range m.xs {
		y = fn(y, x)
	}
	return y
}

// Map applies f to every element, preserving order.
func (m Many) Map(f func(Erased) Erased) Mappable {
	out := make([]Erased, len(m.xs))
	for i, x := range m.xs {
		out[i] = f(x)
	}
	return Many{xs: out}
}

// Apply calls every held function with every element of other.
// The function sequence is the outer loop, the value sequence the inner
// one, so Many(f1, f2).Apply(Many(1, 2)) yields f1(1), f1(2), f2(1), f2(2).
func (m Many) Apply(other Applicable) Applicable {
	o := sameVariant[Many]("Many.Apply", other)
	out := make([]Erased, 0, len(m.xs)*len(o.xs))
	for _, f := range m.xs {
		for _, x := range o.xs {
			out = append(out, callErased(f, x))
		}
	}
	return Many{xs: out}
}

// Bind flat-maps f over the sequence: the result is the in-order
// concatenation of f(x)'s elements for each x. f must produce Many
// containers.
func (m Many) Bind(f func(Erased) Bindable) Bindable {
	var out []Erased
	for _, x := range m.xs {
		r := sameVariant[Many]("Many.Bind result", f(x))
		out = append(out, r.xs...)
	}
	return Many{xs: out}
}

func (m Many) String() string {
	var b strings.Builder
	b.WriteString("Many(")
	for i, x := range m.xs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", x)
	}
	b.WriteByte(')')
	return b.String()
}

type manyVariant struct{}

// ManyVariant is the Variant witness for the Many family.
var ManyVariant Variant = manyVariant{}

func (manyVariant) Wrap(x Erased) Bindable { return NewMany(x) }

func (manyVariant) Is(x Erased) bool {
	_, ok := x.(Many)
	return ok
}

func (manyVariant) Name() string { return "Many" }
