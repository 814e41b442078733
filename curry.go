// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

// Fn is an n-ary function over erased values. The declared arity is
// tracked by the combinator that curries it, not by the type.
type Fn func(args ...Erased) Erased

// Curried is one link of a curried chain: it consumes a single argument
// and returns either the next link or, on the final argument, the result
// of the underlying function.
type Curried func(x Erased) Erased

// Curry converts an n-ary function into a chain of n unary closures.
// Arguments are replayed to f in the order they were collected.
// n = 1 degenerates to direct invocation.
//
// Panics with [*ArityError] if n is not strictly positive.
func Curry(n int, f Fn) Curried {
	if n < 1 {
		panic(&ArityError{Want: 1, Got: n})
	}
	return curryLink(f, n, nil)
}

// curryLink builds the link that collects argument len(acc)+1 of n.
// acc is never mutated; each link copies before appending so partially
// applied chains can be shared and reused.
func curryLink(f Fn, remaining int, acc []Erased) Curried {
	return func(x Erased) Erased {
		args := make([]Erased, len(acc), len(acc)+1)
		copy(args, acc)
		args = append(args, x)
		if remaining == 1 {
			return f(args...)
		}
		return curryLink(f, remaining-1, args)
	}
}

// UnCurry is the inverse of [Curry]: it converts a curried chain back
// into an n-ary function by threading each positional argument through
// the successive links.
//
// The returned function panics with [*ArityError] unless called with
// exactly n arguments. Panics immediately with [*ArityError] if n is not
// strictly positive.
//
// The round trip UnCurry(n, Curry(n, f)) is extensionally equal to f.
func UnCurry(n int, f Curried) Fn {
	if n < 1 {
		panic(&ArityError{Want: 1, Got: n})
	}
	return func(args ...Erased) Erased {
		if len(args) != n {
			panic(&ArityError{Want: n, Got: len(args)})
		}
		y := Erased(f)
		for _, x := range args {
			y = y.(Curried)(x)
		}
		return y
	}
}
