// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

// Applicative lifter: broadcast an n-ary function through exactly one
// layer of Applicable containers, opted in per argument.

// Lift returns a transformer from a k-ary function to a function taking
// k arguments. An argument flagged true must arrive already wrapped in
// an Applicable container of v's family and is combined via Apply; an
// argument flagged false is a raw value threaded in via Map.
//
//	fw := Lift(ManyVariant, true, false, true)(f)(fx, y, fz)
//
// The fold starts from v.Wrap of the curried function and proceeds left
// to right, so the produced container belongs to v's family even when
// every flag is false.
//
// Panics with [*EmptyCombinatorError] when no flags are declared; the
// produced function panics with [*ArityError] on a wrong argument count.
func Lift(v Variant, flags ...bool) func(f Fn) func(args ...Erased) Applicable {
	if len(flags) == 0 {
		panic(&EmptyCombinatorError{Combinator: "Lift"})
	}
	k := len(flags)
	return func(f Fn) func(args ...Erased) Applicable {
		return func(args ...Erased) Applicable {
			if len(args) != k {
				panic(&ArityError{Want: k, Got: len(args)})
			}
			y := Applicable(v.Wrap(Curry(k, f)))
			for i, flagged := range flags {
				if flagged {
					y = y.Apply(mustApplicable(args[i]))
					continue
				}
				x := args[i]
				y = mustApplicable(y.Map(func(fe Erased) Erased {
					return applyCurried(fe, x)
				}))
			}
			return y
		}
	}
}
