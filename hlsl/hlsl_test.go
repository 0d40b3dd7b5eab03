// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hlsl

import (
	"math"
	"testing"

	"cogentcore.org/sltype"
	"cogentcore.org/sltype/slbool"
	"cogentcore.org/sltype/swizzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeName(t *testing.T) {
	tests := []struct {
		kind sltype.Kind
		n    int
		want string
	}{
		{sltype.KindBool, 1, "bool"},
		{sltype.KindBool, 2, "bool2"},
		{sltype.KindBool, 3, "bool3"},
		{sltype.KindBool, 4, "bool4"},
		{sltype.KindInt, 3, "int3"},
		{sltype.KindUint, 2, "uint2"},
		{sltype.KindFloat, 1, "float"},
		{sltype.KindFloat, 4, "float4"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := TypeName(tt.kind, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	_, err := TypeName(sltype.KindBool, 5)
	assert.ErrorIs(t, err, ErrSize)
	_, err = TypeName(sltype.KindBool, 0)
	assert.ErrorIs(t, err, ErrSize)

	assert.Equal(t, "bool", ScalarName[slbool.Bool]())
	assert.Equal(t, "uint", ScalarName[uint32]())
	assert.Equal(t, "bool3", VectorName[slbool.Bool](3))
	assert.Equal(t, "int2", VectorName[int32](2))
	assert.Panics(t, func() { VectorName[float32](1) })
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		v    any
		want string
	}{
		{slbool.True, "true"},
		{int32(-3), "-3"},
		{uint32(7), "7u"},
		{float32(2), "2.0"},
		{float32(0.5), "0.5"},
		{sltype.Vec2(slbool.True, slbool.False), "bool2(true, false)"},
		{sltype.Vec3(slbool.True, slbool.False, slbool.True), "bool3(true, false, true)"},
		{sltype.Bool4FromBools(false, false, false, true), "bool4(false, false, false, true)"},
		{sltype.Vec3[int32](1, -2, 3), "int3(1, -2, 3)"},
		{sltype.Vec4[uint32](1, 2, 3, 4), "uint4(1u, 2u, 3u, 4u)"},
		{sltype.Vec2[float32](1, 0.25), "float2(1.0, 0.25)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := Literal(tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	_, err := Literal(true)
	assert.ErrorIs(t, err, ErrUnsupportedValue)
	_, err = Literal(sltype.Vec2(float32(math.Inf(1)), 0))
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestMember(t *testing.T) {
	v := Var("color", sltype.KindBool, 4)

	m, err := Member(v, "BGR")
	require.NoError(t, err)
	assert.Equal(t, "color.bgr", m.Text)
	assert.Equal(t, 3, m.Size)
	assert.True(t, m.LValue)
	tn, err := m.TypeName()
	require.NoError(t, err)
	assert.Equal(t, "bool3", tn)

	m, err = Member(v, "XXY")
	require.NoError(t, err)
	assert.Equal(t, "color.xxy", m.Text)
	assert.False(t, m.LValue)

	_, err = Member(v, "xg")
	assert.ErrorIs(t, err, swizzle.ErrMixedAlphabet)
	_, err = Member(Var("p", sltype.KindFloat, 2), "xyz")
	assert.ErrorIs(t, err, swizzle.ErrOutOfRange)

	s, err := Member(Var("s", sltype.KindFloat, 1), "xxx")
	require.NoError(t, err)
	assert.Equal(t, "s.xxx", s.Text)
	assert.Equal(t, 3, s.Size)

	_, err = Member(Var("m", sltype.KindFloat, 6), "x")
	assert.ErrorIs(t, err, ErrSize)

	val := Value("f()", sltype.KindInt, 3)
	m, err = Member(val, "zy")
	require.NoError(t, err)
	assert.Equal(t, "f().zy", m.Text)
	assert.False(t, m.LValue)

	m, err = Member(Value("a + b", sltype.KindFloat, 3), "xy")
	require.NoError(t, err)
	assert.Equal(t, "(a + b).xy", m.Text)

	m, err = Member(Value("-p", sltype.KindFloat, 2), "yx")
	require.NoError(t, err)
	assert.Equal(t, "(-p).yx", m.Text)

	m, err = Member(Value("float2(1.0, 0.5)", sltype.KindFloat, 2), "yyx")
	require.NoError(t, err)
	assert.Equal(t, "float2(1.0, 0.5).yyx", m.Text)

	m, err = Member(Value("f(a) * g(b)", sltype.KindFloat, 4), "w")
	require.NoError(t, err)
	assert.Equal(t, "(f(a) * g(b)).w", m.Text)
}

func TestIsPrimary(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"v", true},
		{"p.pos", true},
		{"a[i].xy", true},
		{"f(a, b)", true},
		{"(a + b)", true},
		{"1.5", true},
		{"a + b", false},
		{"-a", false},
		{"f(a)+g(b)", false},
		{"c ? a : b", false},
		{"(a))", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isPrimary(tt.text), tt.text)
	}
}

func TestAssign(t *testing.T) {
	v := Var("v", sltype.KindBool, 3)
	rhs := Value("bool2(true, false)", sltype.KindBool, 2)

	xy, err := Member(v, "xy")
	require.NoError(t, err)
	st, err := Assign(xy, rhs)
	require.NoError(t, err)
	assert.Equal(t, "v.xy = bool2(true, false);", st)

	xx, err := Member(v, "xx")
	require.NoError(t, err)
	_, err = Assign(xx, rhs)
	assert.ErrorIs(t, err, swizzle.ErrNotAssignable)

	xxy, err := Member(v, "xxy")
	require.NoError(t, err)
	x, err := Member(xxy, "x")
	require.NoError(t, err)
	_, err = Assign(x, Value("true", sltype.KindBool, 1))
	assert.ErrorIs(t, err, swizzle.ErrNotAssignable)

	c, err := Index(xx, "0")
	require.NoError(t, err)
	_, err = Assign(c, Value("true", sltype.KindBool, 1))
	assert.ErrorIs(t, err, swizzle.ErrNotAssignable)

	_, err = Assign(Value("f()", sltype.KindBool, 2), rhs)
	assert.ErrorIs(t, err, ErrNotLValue)

	st, err = Assign(v, Value("false", sltype.KindBool, 1))
	require.NoError(t, err)
	assert.Equal(t, "v = false;", st)

	_, err = Assign(v, rhs)
	assert.ErrorIs(t, err, ErrSize)
}

func TestIndex(t *testing.T) {
	v := Var("v", sltype.KindFloat, 4)
	c, err := Index(v, "i")
	require.NoError(t, err)
	assert.Equal(t, "v[i]", c.Text)
	assert.Equal(t, 1, c.Size)
	assert.True(t, c.LValue)

	_, err = Index(Var("s", sltype.KindFloat, 1), "0")
	assert.ErrorIs(t, err, ErrSize)

	c, err = Index(Value("a + b", sltype.KindFloat, 3), "i")
	require.NoError(t, err)
	assert.Equal(t, "(a + b)[i]", c.Text)
	assert.False(t, c.LValue)
}

func TestIdent(t *testing.T) {
	assert.Equal(t, "color", Ident("color"))
	assert.Equal(t, "_float3", Ident("float3"))
	assert.Equal(t, "_in", Ident("in"))
	assert.Equal(t, "_in", Var("in", sltype.KindBool, 2).Text)
}
