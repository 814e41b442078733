// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Async is the concurrent container: construction eagerly starts one
// dedicated worker goroutine computing the wrapped value. There is no
// pooling, queueing, or cancellation; every Map, Apply, and Bind starts
// a fresh worker that blocks on the prior worker's join, so a chain of n
// operations runs n goroutines that complete in sequence.
//
// The result slot is written exactly once, by the worker, before done is
// closed; after the close it may be read any number of times. Workers
// are single-shot — joining is idempotent and returns the same outcome
// every time.
type Async struct {
	done   chan struct{}
	result Erased
	err    error
}

// NewAsync starts a worker computing proc and returns its handle.
// A panic inside proc is captured as a [*WorkerError] and delivered
// through [Async.Join] instead of crashing the process.
func NewAsync(proc func() Erased) *Async {
	a := &Async{done: make(chan struct{})}
	go func() {
		defer close(a.done)
		defer func() {
			if r := recover(); r != nil {
				a.err = workerFailure(r)
			}
		}()
		a.result = proc()
	}()
	return a
}

// resolved returns an already-completed Async holding x, without
// spawning a worker. This backs Wrap, where starting a goroutine to
// return a constant would be pure overhead.
func resolved(x Erased) *Async {
	done := make(chan struct{})
	close(done)
	return &Async{done: done, result: x}
}

// Join blocks until the worker finishes and returns its result.
// A zero or negative timeout waits indefinitely.
//
// When the timeout elapses first, Join returns (nil, [ErrJoinTimeout])
// and the worker keeps running untracked — the handle is still valid and
// may be joined again, but any work done in the meantime was unobserved.
// A worker that panicked yields (nil, *[WorkerError]).
func (a *Async) Join(timeout time.Duration) (Erased, error) {
	if timeout <= 0 {
		<-a.done
	} else {
		select {
		case <-a.done:
		case <-time.After(timeout):
			return nil, ErrJoinTimeout
		}
	}
	return a.result, a.err
}

// mustJoin blocks on a prior worker from inside a composing worker.
// A failure is re-raised as a panic so the enclosing worker's recover
// records it, propagating the original cause down the chain.
func mustJoin(a *Async) Erased {
	v, err := a.Join(0)
	if err != nil {
		panic(err)
	}
	return v
}

// Map starts a worker computing f of the receiver's result.
func (a *Async) Map(f func(Erased) Erased) Mappable {
	return NewAsync(func() Erased {
		return f(mustJoin(a))
	})
}

// Apply starts a worker joining the receiver for a function and other
// for its argument, in that order.
func (a *Async) Apply(other Applicable) Applicable {
	o := sameVariant[*Async]("Async.Apply", other)
	return NewAsync(func() Erased {
		return callErased(mustJoin(a), mustJoin(o))
	})
}

// Bind starts a worker that joins the receiver, runs f to obtain the
// next Async, and joins that in turn.
func (a *Async) Bind(f func(Erased) Bindable) Bindable {
	return NewAsync(func() Erased {
		next := sameVariant[*Async]("Async.Bind result", f(mustJoin(a)))
		return mustJoin(next)
	})
}

// String peeks at the worker state without blocking.
func (a *Async) String() string {
	select {
	case <-a.done:
		if a.err != nil {
			return fmt.Sprintf("Async(failed: %v)", a.err)
		}
		return fmt.Sprintf("Async(%v)", a.result)
	default:
		return "Async(pending)"
	}
}

// JoinAll joins several Async values concurrently and returns their
// results in argument order. The timeout applies to each join
// individually. On the first failure — timeout or worker error — the
// error is returned and the remaining results are discarded.
func JoinAll(timeout time.Duration, asyncs ...*Async) ([]Erased, error) {
	results := make([]Erased, len(asyncs))
	var g errgroup.Group
	for i, a := range asyncs {
		g.Go(func() error {
			v, err := a.Join(timeout)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

type asyncVariant struct{}

// AsyncVariant is the Variant witness for the Async family.
var AsyncVariant Variant = asyncVariant{}

// Wrap returns an immediately-resolved worker holding x.
func (asyncVariant) Wrap(x Erased) Bindable { return resolved(x) }

func (asyncVariant) Is(x Erased) bool {
	_, ok := x.(*Async)
	return ok
}

func (asyncVariant) Name() string { return "Async" }
