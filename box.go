// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

import "fmt"

// Box is the identity container: it wraps exactly one value.
// Map, Apply, and Bind never change the element count, which makes Box
// the simplest lawful carrier for the combinators.
type Box struct {
	val Erased
}

// NewBox wraps x in a Box.
func NewBox(x Erased) Box {
	return Box{val: x}
}

// Unwrap returns the wrapped value.
func (b Box) Unwrap() Erased {
	return b.val
}

// Map applies f to the wrapped value.
func (b Box) Map(f func(Erased) Erased) Mappable {
	return Box{val: f(b.val)}
}

// Apply calls the function held by the receiver with the value held by
// other.
func (b Box) Apply(other Applicable) Applicable {
	o := sameVariant[Box]("Box.Apply", other)
	return Box{val: callErased(b.val, o.val)}
}

// Bind runs f on the wrapped value.
func (b Box) Bind(f func(Erased) Bindable) Bindable {
	return f(b.val)
}

func (b Box) String() string {
	return fmt.Sprintf("Box(%v)", b.val)
}

type boxVariant struct{}

// BoxVariant is the Variant witness for the Box family.
var BoxVariant Variant = boxVariant{}

func (boxVariant) Wrap(x Erased) Bindable { return NewBox(x) }

func (boxVariant) Is(x Erased) bool {
	_, ok := x.(Box)
	return ok
}

func (boxVariant) Name() string { return "Box" }
