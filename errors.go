// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

import (
	"errors"
	"fmt"
)

// Error kinds for contract violations.
//
// Misuse of a combinator (wrong arity, negative depth, empty argument
// list, duplicate do field) is a synchronous caller bug; it is delivered
// by panicking with a typed error value at the violating call, never
// retried or recovered internally. Callers that need to observe the kind
// can recover and use errors.As.
//
// Worker failures are different: they are asynchronous outcomes, so they
// are returned by [Async.Join] rather than panicked at the call site.

// ArityError reports a call that supplied the wrong number of positional
// arguments, or declared a non-positive arity.
type ArityError struct {
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("mona: function takes %d positional arguments but %d were given", e.Want, e.Got)
}

// DepthError reports a negative functor depth passed to [MMap].
type DepthError struct {
	Depth int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("mona: functor depth must be non-negative, got %d", e.Depth)
}

// EmptyCombinatorError reports [MMap] or [Lift] declared over zero
// positional arguments.
type EmptyCombinatorError struct {
	Combinator string
}

func (e *EmptyCombinatorError) Error() string {
	return fmt.Sprintf("mona: %s requires a strictly positive number of positional arguments", e.Combinator)
}

// DuplicateFieldError reports a do block declaring the same field name
// twice in one call.
type DuplicateFieldError struct {
	Name string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("mona: duplicate do field %q", e.Name)
}

// WorkerError reports a panic that escaped an [Async] worker. The panic
// value is preserved in Cause; when the cause is itself an error it is
// exposed through Unwrap for errors.Is/errors.As chains.
type WorkerError struct {
	Cause any
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("mona: async worker panicked: %v", e.Cause)
}

func (e *WorkerError) Unwrap() error {
	err, _ := e.Cause.(error)
	return err
}

// ErrJoinTimeout is returned by [Async.Join] when the timeout elapses
// before the worker finishes. The worker keeps running untracked; the
// result produced after an early return is unobservable through the
// same Join call.
var ErrJoinTimeout = errors.New("mona: join timed out before the worker finished")

// workerFailure normalizes a recovered panic value into a WorkerError.
// An already-wrapped failure from an upstream worker is kept as-is so a
// chain of workers reports the original cause.
func workerFailure(r any) *WorkerError {
	if we, ok := r.(*WorkerError); ok {
		return we
	}
	return &WorkerError{Cause: r}
}
