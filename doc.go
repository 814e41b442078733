// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mona provides algebraic combinators for effectful containers
// in Go.
//
// Values wrapped in a container — exactly one value, zero or one value,
// an ordered sequence, a function, a concurrent computation — compose
// through the functor, applicative, and monad operations, plus a
// currying utility and a procedural do-notation sequencer built on top
// of them.
//
// # Capability Tiers
//
// Containers opt in to combinators through three nested interfaces:
//
//   - [Mappable]: Map — transform contents, preserve shape
//   - [Applicable]: adds Apply — combine a wrapped function with a wrapped value
//   - [Bindable]: adds Bind — sequence a computation producing a wrapped value
//
// The statics of a container family — its unit and runtime family test —
// live on a [Variant] witness value. Five families are built in, each
// satisfying every tier:
//
//   - [Box]: identity, exactly one value
//   - [Maybe]: optionality, emptiness short-circuits
//   - [Many]: nondeterminism, order-preserving sequence
//   - [Func]: reader, a function from a shared argument
//   - [Async]: concurrency, one eager worker goroutine per value
//
// # Combinators
//
//   - [Curry] / [UnCurry]: convert an n-ary function to and from a chain
//     of unary closures
//   - [MMap]: broadcast an n-ary function through independently specified
//     nesting depths of Mappable containers per argument
//   - [Lift]: broadcast an n-ary function through exactly one layer of
//     Applicable containers, opted in per argument
//   - [Do] / [Loop]: sequence named Bindable-producing steps into a
//     growing [Record]; Loop repeats while a predicate holds
//   - [Flatten]: repeatedly join self-nesting of one family until the
//     first non-matching layer
//
// All combinators run single-threaded and perform no suspension
// themselves; the only source of real parallelism is [Async], whose
// construction eagerly starts a dedicated worker goroutine.
//
// # Laws
//
// Every built-in family satisfies functor identity and composition,
// applicative identity, homomorphism, and composition, and the monad
// left identity, right identity, and associativity laws. The laws are
// assumed invariants — callers supplying their own containers are
// trusted to preserve them; nothing verifies them at runtime.
//
// # Contract Violations
//
// Misusing a combinator — wrong arity, negative depth, an empty argument
// list, a duplicate do field — panics at the violating call with a typed
// error value ([*ArityError], [*DepthError], [*EmptyCombinatorError],
// [*DuplicateFieldError]). Worker failures are asynchronous outcomes and
// are returned by [Async.Join] as [*WorkerError] instead.
package mona
