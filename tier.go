// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

import "fmt"

// Erased represents a type-erased container element.
// Combinators process heterogeneous element types through a homogeneous
// pipeline; concrete types are recovered via type assertions at the
// container boundary.
type Erased = any

// Mappable is the functor tier: containers that can transform their
// contents while preserving shape.
//
// Shape preservation is an assumed law, not a runtime check:
// Map with the identity function must return an equal container, and
// mapping f then g must equal mapping their composition.
type Mappable interface {
	// Map applies f to every element, returning a new container.
	// The receiver is never mutated.
	Map(f func(Erased) Erased) Mappable
}

// Applicable is the applicative tier: Mappable containers that can
// combine a contained function with a contained value.
//
// The container's unit lives on its [Variant] witness, not here, because
// wrapping needs no receiver.
type Applicable interface {
	Mappable

	// Apply combines the functions held by the receiver with the values
	// held by other. The operand must belong to the receiver's family.
	Apply(other Applicable) Applicable
}

// Bindable is the monad tier: Applicable containers that can sequence a
// computation which itself produces a container of the same family.
type Bindable interface {
	Applicable

	// Bind runs f on every element and merges the produced containers
	// according to the family's semantics.
	Bind(f func(Erased) Bindable) Bindable
}

// Variant is the witness for a container family. It carries the
// operations that in class-based encodings are static: the unit and the
// runtime family test used by [Flatten].
//
// One witness value is exported per built-in family: [BoxVariant],
// [MaybeVariant], [ManyVariant], [FuncVariant], [AsyncVariant].
type Variant interface {
	// Wrap lifts a raw value into a container of this family.
	Wrap(x Erased) Bindable

	// Is reports whether x is a container of this family.
	Is(x Erased) bool

	// Name returns the family name, used in diagnostics.
	Name() string
}

// sameVariant recovers the concrete container type of an operand that
// must belong to the receiver's family. Panics with a descriptive
// message otherwise: mixing families in Apply/Bind is a caller bug.
func sameVariant[T any](op string, v Erased) T {
	t, ok := v.(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("mona: %s requires a %T operand, got %T", op, zero, v))
	}
	return t
}

// mustMappable recovers the Mappable tier from an erased value that the
// caller declared to be wrapped (a non-zero depth in MMap).
func mustMappable(x Erased) Mappable {
	m, ok := x.(Mappable)
	if !ok {
		panic(fmt.Sprintf("mona: value of type %T is not Mappable", x))
	}
	return m
}

// mustApplicable recovers the Applicable tier after a Map call inside a
// combinator fold. All built-in families satisfy every tier, so this
// only fires on foreign Mappable-only containers.
func mustApplicable(x Erased) Applicable {
	a, ok := x.(Applicable)
	if !ok {
		panic(fmt.Sprintf("mona: value of type %T is not Applicable", x))
	}
	return a
}

// mustBindable is the Bindable counterpart of mustApplicable.
func mustBindable(x Erased) Bindable {
	b, ok := x.(Bindable)
	if !ok {
		panic(fmt.Sprintf("mona: value of type %T is not Bindable", x))
	}
	return b
}

// callErased invokes a contained function value with one argument.
// Containers hold either a [Curried] chain (produced by the combinators)
// or a plain unary function supplied by the caller.
func callErased(f, x Erased) Erased {
	switch fn := f.(type) {
	case Curried:
		return fn(x)
	case func(Erased) Erased:
		return fn(x)
	}
	panic(fmt.Sprintf("mona: value of type %T is not callable", f))
}
