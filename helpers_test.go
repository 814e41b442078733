// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mona_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/mona"
)

// recoverAs runs fn, requires that it panics with an error value, and
// returns the error matched as E.
func recoverAs[E error](t *testing.T, fn func()) E {
	t.Helper()
	var caught any
	func() {
		defer func() { caught = recover() }()
		fn()
	}()
	require.NotNil(t, caught, "expected panic")
	err, ok := caught.(error)
	require.True(t, ok, "panic value %v (%T) is not an error", caught, caught)
	var matched E
	require.ErrorAs(t, err, &matched)
	return matched
}

// addErased is the erased binary addition used across combinator tests.
func addErased(args ...mona.Erased) mona.Erased {
	return args[0].(int) + args[1].(int)
}

// incErased is the erased unary increment.
func incErased(x mona.Erased) mona.Erased {
	return x.(int) + 1
}

// projectField extracts one record field from a wrapped do result.
func projectField(w mona.Bindable, name string) mona.Mappable {
	return w.Map(func(s mona.Erased) mona.Erased {
		return s.(mona.Record).MustGet(name)
	})
}
