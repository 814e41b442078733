// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/mona"
)

func TestMMapSingleLayer(t *testing.T) {
	inc := func(args ...mona.Erased) mona.Erased {
		return args[0].(int) + 1
	}
	got := mona.MMap(1)(inc)(mona.NewMany(1, 2, 3)).(mona.Many)
	require.Equal(t, []mona.Erased{2, 3, 4}, got.Slice())
}

func TestMMapZeroDepthIsRawApplication(t *testing.T) {
	got := mona.MMap(0, 0)(addErased)(3, 4)
	require.Equal(t, 7, got)
}

func TestMMapNestedSameFamily(t *testing.T) {
	inc := func(args ...mona.Erased) mona.Erased {
		return args[0].(int) + 1
	}
	nested := mona.NewMany(mona.NewMany(1), mona.NewMany(2, 3))
	got := mona.MMap(2)(inc)(nested).(mona.Many)
	require.Equal(t, 2, got.Len())
	require.Equal(t, []mona.Erased{2}, got.At(0).(mona.Many).Slice())
	require.Equal(t, []mona.Erased{3, 4}, got.At(1).(mona.Many).Slice())
}

// TestMMapMixedDepthsAndFamilies drives the ffw = mmap(1, 2, 0) shape:
// the first argument contributes the outermost layer, the second its two
// layers beneath, and the third is applied raw at the innermost level.
func TestMMapMixedDepthsAndFamilies(t *testing.T) {
	sum3 := func(args ...mona.Erased) mona.Erased {
		return args[0].(int) + args[1].(int) + args[2].(int)
	}
	fx := mona.Just(10)                             // one Maybe layer
	ffy := mona.NewMany(mona.Just(1), mona.Just(2)) // Many outside, Maybe inside
	z := 100                                        // raw

	got := mona.MMap(1, 2, 0)(sum3)(fx, ffy, z).(mona.Maybe)

	inner, ok := got.Get()
	require.True(t, ok)
	many := inner.(mona.Many)
	require.Equal(t, 2, many.Len())
	first, ok := many.At(0).(mona.Maybe).Get()
	require.True(t, ok)
	require.Equal(t, 111, first)
	second, ok := many.At(1).(mona.Maybe).Get()
	require.True(t, ok)
	require.Equal(t, 112, second)
}

func TestMMapArgumentOrderGovernsNesting(t *testing.T) {
	pair := func(args ...mona.Erased) mona.Erased {
		return [2]mona.Erased{args[0], args[1]}
	}
	// Layers of the first argument stay outermost regardless of depth.
	got := mona.MMap(1, 1)(pair)(mona.NewMany(1, 2), mona.NewMany("a", "b")).(mona.Many)
	require.Equal(t, 2, got.Len())
	inner := got.At(0).(mona.Many)
	require.Equal(t, []mona.Erased{
		[2]mona.Erased{1, "a"},
		[2]mona.Erased{1, "b"},
	}, inner.Slice())
	inner = got.At(1).(mona.Many)
	require.Equal(t, []mona.Erased{
		[2]mona.Erased{2, "a"},
		[2]mona.Erased{2, "b"},
	}, inner.Slice())
}

func TestMMapShortCircuitsThroughNothing(t *testing.T) {
	got := mona.MMap(1, 1)(addErased)(mona.Nothing(), mona.Just(1)).(mona.Maybe)
	require.True(t, got.IsNothing())
}

func TestMMapEmptyLevels(t *testing.T) {
	err := recoverAs[*mona.EmptyCombinatorError](t, func() {
		mona.MMap()
	})
	require.Equal(t, "MMap", err.Combinator)
}

func TestMMapNegativeDepth(t *testing.T) {
	err := recoverAs[*mona.DepthError](t, func() {
		mona.MMap(1, -2)
	})
	require.Equal(t, -2, err.Depth)
}

func TestMMapArgumentCountMismatch(t *testing.T) {
	f := mona.MMap(1, 1)(addErased)
	err := recoverAs[*mona.ArityError](t, func() {
		f(mona.NewMany(1))
	})
	require.Equal(t, 2, err.Want)
	require.Equal(t, 1, err.Got)
}
