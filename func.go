// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

// Func is the reader container: a pure unary function from a shared
// argument to a result. There is no stored state besides the function;
// composition threads the same argument to every side.
type Func struct {
	fn func(Erased) Erased
}

// NewFunc wraps a unary function.
func NewFunc(fn func(Erased) Erased) Func {
	return Func{fn: fn}
}

// Call invokes the wrapped function with arg.
func (f Func) Call(arg Erased) Erased {
	return f.fn(arg)
}

// Map post-composes g: the result computes g(f(arg)).
func (f Func) Map(g func(Erased) Erased) Mappable {
	return Func{fn: func(arg Erased) Erased {
		return g(f.fn(arg))
	}}
}

// Apply threads the shared argument to both sides: the result computes
// f(arg)(other(arg)).
func (f Func) Apply(other Applicable) Applicable {
	o := sameVariant[Func]("Func.Apply", other)
	return Func{fn: func(arg Erased) Erased {
		return callErased(f.fn(arg), o.fn(arg))
	}}
}

// Bind computes g(f(arg)) to obtain the next reader, then applies it to
// the same argument.
func (f Func) Bind(g func(Erased) Bindable) Bindable {
	return Func{fn: func(arg Erased) Erased {
		next := sameVariant[Func]("Func.Bind result", g(f.fn(arg)))
		return next.fn(arg)
	}}
}

func (f Func) String() string {
	return "Func"
}

type funcVariant struct{}

// FuncVariant is the Variant witness for the Func family.
var FuncVariant Variant = funcVariant{}

// Wrap returns the constant reader ignoring its argument.
func (funcVariant) Wrap(x Erased) Bindable {
	return Func{fn: func(Erased) Erased { return x }}
}

func (funcVariant) Is(x Erased) bool {
	_, ok := x.(Func)
	return ok
}

func (funcVariant) Name() string { return "Func" }
