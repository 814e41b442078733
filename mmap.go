// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

// Functor multiplex: broadcast an n-ary function through independently
// specified nesting depths of Mappable containers, one depth per
// positional argument.

// MMap returns a transformer from a k-ary function to a function taking
// k arguments, where argument i is a value nested levels[i] layers deep
// inside Mappable containers. Layers may belong to different families,
// as long as every one of them is Mappable. A depth of 0 marks a raw,
// unwrapped argument applied directly with no Map call.
//
// The result carries f broadcast through all nesting, ordered
// outer-to-inner by argument position: the layers contributed by the
// first argument are outermost, those of the second argument next, and
// so on.
//
//	ffw := MMap(1, 2, 0)(f)(fx, ffy, z)
//
// Panics with [*EmptyCombinatorError] when no levels are declared,
// [*DepthError] on a negative level, and the produced function panics
// with [*ArityError] when called with the wrong argument count.
func MMap(levels ...int) func(f Fn) func(args ...Erased) Erased {
	if len(levels) == 0 {
		panic(&EmptyCombinatorError{Combinator: "MMap"})
	}
	for _, l := range levels {
		if l < 0 {
			panic(&DepthError{Depth: l})
		}
	}
	k := len(levels)
	return func(f Fn) func(args ...Erased) Erased {
		return func(args ...Erased) Erased {
			if len(args) != k {
				panic(&ArityError{Want: k, Got: len(args)})
			}
			// y holds the partially applied function: first the bare
			// curried chain, then — once a wrapped argument has been
			// folded in — the chain buried under that argument's layers.
			y := Erased(Curry(k, f))
			layer := 0
			for i := range k {
				// update applies argument x to the partial result y.
				// Each wrapping below adds one descent: first through
				// x's own levels[i] layers, then through the `layer`
				// layers the previous arguments stacked around y.
				update := applyCurried
				for range levels[i] {
					u := update
					update = func(y, x Erased) Erased {
						return mustMappable(x).Map(func(xi Erased) Erased {
							return u(y, xi)
						})
					}
				}
				for range layer {
					u := update
					update = func(y, x Erased) Erased {
						return mustMappable(y).Map(func(yi Erased) Erased {
							return u(yi, x)
						})
					}
				}
				layer += levels[i]
				y = update(y, args[i])
			}
			return y
		}
	}
}

// applyCurried feeds one collected argument to the curried chain.
// It is only reached with a chain still expecting arguments: exactly k
// applications happen, and the kth yields the underlying result.
func applyCurried(y, x Erased) Erased {
	return y.(Curried)(x)
}
