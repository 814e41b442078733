// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/mona"
)

func TestAsyncJoin(t *testing.T) {
	a := mona.NewAsync(func() mona.Erased { return 42 })
	got, err := a.Join(0)
	require.NoError(t, err)
	require.Equal(t, 42, got)
}

func TestAsyncJoinIsIdempotent(t *testing.T) {
	a := mona.NewAsync(func() mona.Erased { return 42 })
	for range 3 {
		got, err := a.Join(0)
		require.NoError(t, err)
		require.Equal(t, 42, got)
	}
}

func TestAsyncJoinTimeout(t *testing.T) {
	release := make(chan struct{})
	a := mona.NewAsync(func() mona.Erased {
		<-release
		return 1
	})
	_, err := a.Join(5 * time.Millisecond)
	require.ErrorIs(t, err, mona.ErrJoinTimeout)

	// The handle stays valid after an early return.
	close(release)
	got, err := a.Join(0)
	require.NoError(t, err)
	require.Equal(t, 1, got)
}

func TestAsyncWorkerPanic(t *testing.T) {
	a := mona.NewAsync(func() mona.Erased { panic("boom") })
	_, err := a.Join(0)
	var we *mona.WorkerError
	require.ErrorAs(t, err, &we)
	require.Equal(t, "boom", we.Cause)
}

func TestAsyncWorkerErrorUnwrap(t *testing.T) {
	cause := errors.New("broken")
	a := mona.NewAsync(func() mona.Erased { panic(cause) })
	_, err := a.Join(0)
	require.ErrorIs(t, err, cause)
}

func TestAsyncChainPropagatesFailure(t *testing.T) {
	a := mona.NewAsync(func() mona.Erased { panic("boom") })
	chained := a.Map(incErased).(*mona.Async).Bind(func(x mona.Erased) mona.Bindable {
		return mona.NewAsync(func() mona.Erased { return x })
	}).(*mona.Async)

	_, err := chained.Join(0)
	var we *mona.WorkerError
	require.ErrorAs(t, err, &we)
	// The original cause survives the chain unwrapped.
	require.Equal(t, "boom", we.Cause)
}

func TestAsyncMap(t *testing.T) {
	a := mona.NewAsync(func() mona.Erased { return 20 })
	got, err := a.Map(incErased).(*mona.Async).Join(0)
	require.NoError(t, err)
	require.Equal(t, 21, got)
}

func TestAsyncApplyJoinsBothSides(t *testing.T) {
	fa := mona.NewAsync(func() mona.Erased {
		return func(x mona.Erased) mona.Erased { return x.(int) * 2 }
	})
	xa := mona.NewAsync(func() mona.Erased { return 21 })
	got, err := fa.Apply(xa).(*mona.Async).Join(0)
	require.NoError(t, err)
	require.Equal(t, 42, got)
}

func TestAsyncBindSequences(t *testing.T) {
	a := mona.NewAsync(func() mona.Erased { return 6 })
	got, err := a.Bind(func(x mona.Erased) mona.Bindable {
		return mona.NewAsync(func() mona.Erased { return x.(int) * 7 })
	}).(*mona.Async).Join(0)
	require.NoError(t, err)
	require.Equal(t, 42, got)
}

func TestAsyncWrapResolvesImmediately(t *testing.T) {
	a := mona.AsyncVariant.Wrap(5).(*mona.Async)
	got, err := a.Join(time.Nanosecond)
	require.NoError(t, err)
	require.Equal(t, 5, got)
}

func TestAsyncString(t *testing.T) {
	release := make(chan struct{})
	a := mona.NewAsync(func() mona.Erased {
		<-release
		return 5
	})
	require.Equal(t, "Async(pending)", a.String())
	close(release)
	_, err := a.Join(0)
	require.NoError(t, err)
	require.Equal(t, "Async(5)", a.String())
}

func TestJoinAll(t *testing.T) {
	asyncs := make([]*mona.Async, 3)
	for i := range asyncs {
		asyncs[i] = mona.NewAsync(func() mona.Erased { return i * 10 })
	}
	got, err := mona.JoinAll(0, asyncs...)
	require.NoError(t, err)
	require.Equal(t, []mona.Erased{0, 10, 20}, got)
}

func TestJoinAllSurfacesFailure(t *testing.T) {
	ok := mona.NewAsync(func() mona.Erased { return 1 })
	bad := mona.NewAsync(func() mona.Erased { panic("boom") })
	_, err := mona.JoinAll(0, ok, bad)
	var we *mona.WorkerError
	require.ErrorAs(t, err, &we)
}

func TestJoinAllTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	slow := mona.NewAsync(func() mona.Erased {
		<-release
		return 1
	})
	fast := mona.NewAsync(func() mona.Erased { return 2 })
	_, err := mona.JoinAll(5*time.Millisecond, fast, slow)
	require.ErrorIs(t, err, mona.ErrJoinTimeout)
}

func TestAsyncVariantWitness(t *testing.T) {
	require.Equal(t, "Async", mona.AsyncVariant.Name())
	require.True(t, mona.AsyncVariant.Is(mona.NewAsync(func() mona.Erased { return 1 })))
	require.False(t, mona.AsyncVariant.Is(1))
}
