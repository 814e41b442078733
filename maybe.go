// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

import "fmt"

// Maybe holds zero or one value. Emptiness short-circuits every
// operation: once Nothing, always Nothing through any chain of Map,
// Apply, and Bind.
type Maybe struct {
	val Erased
	ok  bool
}

// NewMaybe builds a Maybe from zero or one positional values, mirroring
// the variadic constructor surface.
// Panics with [*ArityError] when given more than one value.
func NewMaybe(xs ...Erased) Maybe {
	switch len(xs) {
	case 0:
		return Maybe{}
	case 1:
		return Maybe{val: xs[0], ok: true}
	}
	panic(&ArityError{Want: 1, Got: len(xs)})
}

// Just returns a Maybe holding x.
func Just(x Erased) Maybe {
	return Maybe{val: x, ok: true}
}

// Nothing returns the empty Maybe.
func Nothing() Maybe {
	return Maybe{}
}

// IsNothing reports whether the Maybe is empty.
func (m Maybe) IsNothing() bool {
	return !m.ok
}

// Get returns the held value and whether one is present.
func (m Maybe) Get() (Erased, bool) {
	return m.val, m.ok
}

// Otherwise returns the held value, or alt when empty.
func (m Maybe) Otherwise(alt Erased) Erased {
	if m.ok {
		return m.val
	}
	return alt
}

// Map applies f to the held value; Nothing propagates.
func (m Maybe) Map(f func(Erased) Erased) Mappable {
	if !m.ok {
		return Maybe{}
	}
	return Just(f(m.val))
}

// Apply calls the held function with other's held value; Nothing on
// either side propagates.
func (m Maybe) Apply(other Applicable) Applicable {
	o := sameVariant[Maybe]("Maybe.Apply", other)
	if !m.ok || !o.ok {
		return Maybe{}
	}
	return Just(callErased(m.val, o.val))
}

// Bind runs f on the held value; Nothing propagates.
func (m Maybe) Bind(f func(Erased) Bindable) Bindable {
	if !m.ok {
		return Maybe{}
	}
	return f(m.val)
}

func (m Maybe) String() string {
	if !m.ok {
		return "Nothing"
	}
	return fmt.Sprintf("Maybe(%v)", m.val)
}

type maybeVariant struct{}

// MaybeVariant is the Variant witness for the Maybe family.
var MaybeVariant Variant = maybeVariant{}

func (maybeVariant) Wrap(x Erased) Bindable { return Just(x) }

func (maybeVariant) Is(x Erased) bool {
	_, ok := x.(Maybe)
	return ok
}

func (maybeVariant) Name() string { return "Maybe" }
