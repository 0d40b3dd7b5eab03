// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"reflect"
	"testing"

	"cogentcore.org/sltype"
	"cogentcore.org/sltype/slbool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Params struct {
	On    sltype.Bool3
	Gain  float32
	Mask  sltype.Bool4
	Pos   sltype.Float2
	Count int32
	Flag  slbool.Bool
}

type Nested struct {
	Inner Params
	Color sltype.Float4
	Lits  [2]sltype.Int4
}

type Straddle struct {
	A sltype.Float2
	B float32
	C sltype.Float2 // crosses the first register
	D float32
	E float32
	F float32
}

type BadTypes struct {
	On   bool
	Big  float64
	Pad1 int32
	Pad2 int32
}

type BadArray struct {
	Vals [4]float32
}

type Short struct {
	A sltype.Float3
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(Params{}))
	assert.NoError(t, Check(&Nested{}))

	n, err := Size(reflect.TypeFor[Nested]())
	require.NoError(t, err)
	assert.Equal(t, 48+16+32, n)

	err = Check(Straddle{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Straddle.C: offset 12 in Go is 16 in HLSL")

	err = Check(BadTypes{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BadTypes.On: type bool")
	assert.Contains(t, err.Error(), "BadTypes.Big: type float64")

	err = Check(BadArray{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element size 4")

	err = Check(Short{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size 12 is not a multiple of 16")

	assert.Error(t, Check(3))
	assert.Error(t, Check(nil))
	_, err = Size(reflect.TypeFor[int]())
	assert.Error(t, err)
}

func TestIsVector(t *testing.T) {
	assert.True(t, IsVector(reflect.TypeFor[sltype.Bool3]()))
	assert.True(t, IsVector(reflect.TypeFor[sltype.Vector4[uint32]]()))
	assert.False(t, IsVector(reflect.TypeFor[Params]()))
	assert.False(t, IsVector(reflect.TypeFor[int32]()))
}
