// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slbool

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBool(t *testing.T) {
	assert.Equal(t, uintptr(4), unsafe.Sizeof(True))
	assert.True(t, True.Bool())
	assert.False(t, False.Bool())
	assert.True(t, Bool(7).IsTrue())
	assert.Equal(t, True, FromBool(true))
	assert.Equal(t, False, FromBool(false))

	var b Bool
	b.SetBool(true)
	assert.Equal(t, True, b)
	assert.True(t, IsTrue(b))
	assert.False(t, IsFalse(b))
}

func TestLogic(t *testing.T) {
	vals := []Bool{False, True}
	for _, a := range vals {
		assert.Equal(t, FromBool(!a.Bool()), a.Not())
		for _, b := range vals {
			assert.Equal(t, FromBool(a.Bool() && b.Bool()), a.And(b))
			assert.Equal(t, FromBool(a.Bool() || b.Bool()), a.Or(b))
			assert.Equal(t, FromBool(a.Bool() != b.Bool()), a.Xor(b))
		}
	}
}

func TestText(t *testing.T) {
	assert.Equal(t, "true", True.String())
	assert.Equal(t, "false", False.String())

	txt, err := True.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "true", string(txt))

	var b Bool
	require.NoError(t, b.UnmarshalText([]byte("True")))
	assert.Equal(t, True, b)
	require.NoError(t, b.UnmarshalText([]byte("nope")))
	assert.Equal(t, False, b)
}
