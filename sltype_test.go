// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sltype

import (
	"reflect"
	"testing"
	"unsafe"

	"cogentcore.org/core/math32"
	"cogentcore.org/sltype/slbool"
	"cogentcore.org/sltype/swizzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	T = slbool.True
	F = slbool.False
)

func TestLayout(t *testing.T) {
	assert.Equal(t, uintptr(8), unsafe.Sizeof(Bool2{}))
	assert.Equal(t, uintptr(12), unsafe.Sizeof(Bool3{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(Bool4{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(Float4{}))
	assert.Equal(t, uintptr(12), unsafe.Sizeof(Uint3{}))
	assert.Equal(t, uintptr(4), unsafe.Alignof(Bool3{}))
	assert.Equal(t, uintptr(4), unsafe.Offsetof(Int4{}.Y))
	assert.Equal(t, uintptr(12), unsafe.Offsetof(Int4{}.W))
}

func TestConstruct(t *testing.T) {
	assert.Equal(t, Bool2{T, F}, Vec2(T, F))
	assert.Equal(t, Bool3{T, F, T}, Vec3(T, F, T))
	assert.Equal(t, Bool4{F, F, T, T}, Vec4(F, F, T, T))

	assert.Equal(t, Bool3{F, T, T}, Vector3FromVector2(Vec2(F, T), T))
	assert.Equal(t, Bool3{T, F, T}, Vector3FromScalarVector2(T, Vec2(F, T)))
	assert.Equal(t, Int4{1, 2, 3, 4}, Vector4FromVector3(Vec3[int32](1, 2, 3), 4))
	assert.Equal(t, Int4{1, 2, 3, 4}, Vector4FromScalarVector3(1, Vec3[int32](2, 3, 4)))
	assert.Equal(t, Int4{1, 2, 3, 4}, Vector4FromVector2(Vec2[int32](1, 2), 3, 4))
	assert.Equal(t, Int4{1, 2, 3, 4}, Vector4FromScalarVector2(1, Vec2[int32](2, 3), 4))
	assert.Equal(t, Int4{1, 2, 3, 4}, Vector4FromVector2s(Vec2[int32](1, 2), Vec2[int32](3, 4)))

	assert.Equal(t, Bool2{T, F}, Bool2FromBools(true, false))
	assert.Equal(t, Bool3{F, T, F}, Bool3FromBools(false, true, false))
	assert.Equal(t, Bool4{T, T, F, T}, Bool4FromBools(true, true, false, true))
}

func TestBroadcast(t *testing.T) {
	assert.True(t, Vector2Scalar(T).All())
	assert.True(t, Vector3Scalar(T).All())
	assert.True(t, Vector4Scalar(T).All())
	assert.Equal(t, Bool3{T, T, T}, Vector3Scalar(T))
	assert.Equal(t, Float4{0.5, 0.5, 0.5, 0.5}, Vector4Scalar[float32](0.5))
	assert.False(t, Vector2Scalar(F).Any())
}

func TestDim(t *testing.T) {
	v := Vec3[int32](1, 2, 3)
	assert.Equal(t, int32(3), v.Dim(math32.Z))
	v.SetDim(math32.Y, 7)
	assert.Equal(t, Int3{1, 7, 3}, v)
	assert.Panics(t, func() { v.Dim(math32.W) })
	assert.Panics(t, func() { v.SetDim(math32.W, 1) })
	assert.Panics(t, func() { Vec2(T, F).Dim(math32.Z) })
	assert.NotPanics(t, func() { Vec4(T, F, T, F).Dim(math32.W) })

	s := make([]int32, 5)
	Vec4[int32](1, 2, 3, 4).ToSlice(s, 1)
	assert.Equal(t, []int32{0, 1, 2, 3, 4}, s)
	var v4 Int4
	v4.FromSlice(s, 1)
	assert.Equal(t, Int4{1, 2, 3, 4}, v4)
	assert.Equal(t, 2, Int2{}.Len())
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 4, v4.Len())
}

// components returns the components of a scalar or vector reflect value.
func components(v reflect.Value) []int32 {
	if v.Kind() == reflect.Int32 {
		return []int32{int32(v.Int())}
	}
	r := make([]int32, v.NumField())
	for i := range r {
		r[i] = int32(v.Field(i).Int())
	}
	return r
}

// checkAccessors calls every generated accessor of v through
// reflection, and checks the result against the swizzle table.
func checkAccessors(t *testing.T, v any, vals []int32) {
	n := len(vals)
	rv := reflect.ValueOf(v)
	pv := reflect.New(rv.Type())
	for _, s := range swizzle.ForArity(n).Entries() {
		if !s.Alphabet.IsUpper() {
			continue
		}
		want := make([]int32, s.Size)
		for i, ci := range s.Indices {
			want[i] = vals[ci]
		}
		var got reflect.Value
		if s.Size == 1 && s.Alphabet == swizzle.PositionUpper {
			got = rv.FieldByName(s.Name)
		} else {
			m := rv.MethodByName(s.MethodName())
			require.True(t, m.IsValid(), "missing %s on %s", s.MethodName(), rv.Type())
			got = m.Call(nil)[0]
		}
		assert.Equal(t, want, components(got), s.Name)

		if s.Size == 1 && s.Alphabet == swizzle.PositionUpper {
			continue
		}
		setter := pv.MethodByName("Set" + s.MethodName())
		assert.Equal(t, s.Assignable, setter.IsValid(), "Set%s on %s", s.MethodName(), rv.Type())
	}
}

func TestAccessors(t *testing.T) {
	checkAccessors(t, Vec2[int32](10, 20), []int32{10, 20})
	checkAccessors(t, Vec3[int32](10, 20, 30), []int32{10, 20, 30})
	checkAccessors(t, Vec4[int32](10, 20, 30, 40), []int32{10, 20, 30, 40})
	checkAccessors(t, Vec3(T, F, F), []int32{1, 0, 0})
}

func TestSwizzles(t *testing.T) {
	v := Vec3(T, F, F)
	assert.Equal(t, Bool3{F, F, T}, v.ZYX())
	assert.Equal(t, v.ZYX(), v.BGR())
	assert.Equal(t, v, v.XYZ())
	assert.Equal(t, v, v.RGB())
	assert.Equal(t, Bool4{T, T, F, F}, v.XXYZ())
	assert.Equal(t, F, v.G())

	i := Vec4[int32](1, 2, 3, 4)
	assert.Equal(t, i, i.XYZW())
	assert.Equal(t, Int4{4, 3, 2, 1}, i.WZYX())
	assert.Equal(t, Int2{3, 1}, i.ZX())
	assert.Equal(t, Int3{4, 4, 4}, i.AAA())
	assert.Equal(t, int32(4), i.A())

	i.SetZX(Vec2[int32](9, 8))
	assert.Equal(t, Int4{8, 2, 9, 4}, i)
	i.SetA(0)
	assert.Equal(t, int32(0), i.W)
	i.SetBGRA(Vec4[int32](1, 2, 3, 4))
	assert.Equal(t, Int4{3, 2, 1, 4}, i)

	b := Vec2(F, F)
	b.SetYX(Vec2(T, F))
	assert.Equal(t, Bool2{F, T}, b)
}

func TestRuntimeSwizzle(t *testing.T) {
	v := Vec4[int32](1, 2, 3, 4)
	for _, name := range []string{"zyx", "ZYX", "bgr", "BGR"} {
		c, err := v.Swizzle(name)
		require.NoError(t, err)
		assert.Equal(t, []int32{3, 2, 1}, c, name)
	}
	_, err := v.Swizzle("xg")
	assert.ErrorIs(t, err, swizzle.ErrMixedAlphabet)

	require.NoError(t, v.SetSwizzle("wx", 0, 9))
	assert.Equal(t, Int4{9, 2, 3, 0}, v)
	assert.ErrorIs(t, v.SetSwizzle("xx", 1, 2), swizzle.ErrNotAssignable)
	assert.Error(t, v.SetSwizzle("xy", 1))

	v2 := Vec2(T, F)
	_, err = v2.Swizzle("z")
	assert.ErrorIs(t, err, swizzle.ErrOutOfRange)
	require.NoError(t, v2.SetSwizzle("g", T))
	assert.Equal(t, Bool2{T, T}, v2)

	v3 := Vec3(T, F, T)
	c, err := v3.Swizzle("rrr")
	require.NoError(t, err)
	assert.Equal(t, []slbool.Bool{T, T, T}, c)
	assert.ErrorIs(t, v3.SetSwizzle("RGR", F, F, F), swizzle.ErrNotAssignable)
}

func TestLogic(t *testing.T) {
	vals := []slbool.Bool{F, T}
	for _, ax := range vals {
		for _, ay := range vals {
			for _, bx := range vals {
				for _, by := range vals {
					a, b := Vec2(ax, ay), Vec2(bx, by)
					assert.Equal(t, Vec2(ax.And(bx), ay.And(by)), a.And(b))
					assert.Equal(t, Vec2(ax.Or(bx), ay.Or(by)), a.Or(b))
					assert.Equal(t, Vec2(ax.Xor(bx), ay.Xor(by)), a.Xor(b))
					assert.Equal(t, Vec2(ax.Not(), ay.Not()), a.Not())
					assert.Equal(t, Bool2FromBools(ax == bx, ay == by), a.Equal(b))
					assert.Equal(t, Bool2FromBools(ax != bx, ay != by), a.NotEqual(b))
				}
			}
		}
	}

	a, b := Vec3(T, T, F), Vec3(T, F, F)
	assert.Equal(t, Bool3{T, F, F}, a.And(b))
	assert.Equal(t, Bool3{T, T, F}, a.Or(b))
	assert.Equal(t, Bool3{F, T, F}, a.Xor(b))
	assert.Equal(t, Bool3{F, F, T}, a.Not())
	assert.Equal(t, Bool3{T, F, T}, a.Equal(b))
	assert.Equal(t, Bool3{F, T, F}, a.NotEqual(b))

	c, d := Vec4(T, F, T, F), Vec4(T, T, F, F)
	assert.Equal(t, Bool4{T, F, F, F}, c.And(d))
	assert.Equal(t, Bool4{T, T, T, F}, c.Or(d))
	assert.Equal(t, Bool4{F, T, T, F}, c.Xor(d))
	assert.Equal(t, Bool4{F, T, F, T}, c.Not())
	assert.Equal(t, Bool4{T, F, F, T}, c.Equal(d))
	assert.True(t, c.Any())
	assert.False(t, c.All())
}

func TestNonCanonicalBool(t *testing.T) {
	seven := slbool.Bool(7)
	a, b := Vec2(seven, F), Vec2(T, F)
	assert.Equal(t, Bool2{F, F}, a.Xor(b))
	assert.Equal(t, Bool2{T, T}, a.Equal(b))
	assert.Equal(t, Bool2{F, F}, a.NotEqual(b))

	var c Bool3
	c.FromSlice([]slbool.Bool{-1, 0, 2}, 0)
	assert.Equal(t, Bool3{T, T, T}, c.Equal(Vec3(T, F, T)))
	assert.Equal(t, Bool3{F, T, F}, c.Not())

	d := Vec4(seven, F, T, seven)
	assert.Equal(t, Bool4{T, T, T, T}, d.Equal(Vec4(T, F, T, T)))
	assert.Equal(t, Bool4{F, F, F, F}, d.NotEqual(Vector4Scalar(T).Xor(Vec4(F, T, F, F))))

	i := Vec2[int32](7, 1)
	assert.Equal(t, Bool2{F, T}, i.Equal(Vec2[int32](1, 1)))
}

func TestIntOps(t *testing.T) {
	a, b := Vec2[int32](6, -1), Vec2[int32](3, 5)
	assert.Equal(t, Int2{2, 5}, a.And(b))
	assert.Equal(t, Int2{7, -1}, a.Or(b))
	assert.Equal(t, Int2{5, -6}, a.Xor(b))
	assert.Equal(t, Bool2{F, F}, a.Not())
	assert.Equal(t, Bool2{T, F}, Vec2[int32](0, 3).Not())

	assert.Equal(t, Int2{9, 4}, a.Add(b))
	assert.Equal(t, Int2{3, -6}, a.Sub(b))
	assert.Equal(t, Int2{18, -5}, a.Mul(b))
	assert.Equal(t, Int2{2, 0}, a.Div(b))
	assert.Equal(t, Int2{-6, 1}, a.Negate())
	assert.Equal(t, Bool2{F, T}, a.Less(b))
	assert.Equal(t, Bool2{T, F}, a.Greater(b))
	assert.Equal(t, Bool2{T, T}, a.LessEqual(a))
	assert.Equal(t, Bool2{F, F}, a.GreaterEqual(Vec2[int32](7, 0)))

	u := Vec3[uint32](0xF0, 0x0F, 1)
	assert.Equal(t, Uint3{0xFF, 0x0F, 1}, u.Or(Vec3[uint32](0x0F, 0, 0)))
}

func TestFloatOps(t *testing.T) {
	a, b := Vec4[float32](1, 2, 3, 4), Vec4[float32](4, 3, 2, 1)
	assert.Equal(t, Float4{5, 5, 5, 5}, a.Add(b))
	assert.Equal(t, Float4{0.25, 2.0 / 3.0, 1.5, 4}, a.Div(b))
	assert.Equal(t, Bool4{T, T, F, F}, a.Less(b))
	assert.Equal(t, Bool4{F, F, F, F}, a.Equal(b))
	assert.Panics(t, func() { a.And(b) })
	assert.Panics(t, func() { a.Xor(b) })
	assert.Panics(t, func() { Vec2(T, F).Add(Vec2(T, T)) })
	assert.Panics(t, func() { Vec3(T, F, T).Negate() })
}

func TestConvert(t *testing.T) {
	f := Vec3[float32](0, 2.5, -1)
	assert.Equal(t, Bool3{F, T, T}, f.ToBool())
	assert.Equal(t, Int3{0, 2, -1}, f.ToInt())
	assert.Equal(t, Float3{1, 0, 1}, Vec3(T, F, T).ToFloat())
	assert.Equal(t, Uint2{1, 0}, Vec2(T, F).ToUint())
	assert.Equal(t, Bool4{T, F, T, T}, Vec4[int32](5, 0, -2, 1).ToBool())
	assert.Equal(t, Vec2[uint32](3, 4), Convert2[uint32](Vec2[int32](3, 4)))
}

func TestSelect(t *testing.T) {
	a, b := Vec4[int32](1, 2, 3, 4), Vec4[int32](5, 6, 7, 8)
	assert.Equal(t, Int4{1, 6, 3, 8}, Select4(Vec4(T, F, T, F), a, b))
	assert.Equal(t, Bool2{F, T}, Select2(Vec2(F, T), Vec2(T, T), Vec2(F, F)))
	assert.Equal(t, Float3{1, 0, 1}, Select3(Vec3(T, F, T), Vector3Scalar[float32](1), Float3{}))
}

func TestString(t *testing.T) {
	assert.Equal(t, "<true, false>", Vec2(T, F).String())
	assert.Equal(t, "<true, false, true>", Vec3(T, F, T).String())
	assert.Equal(t, "<false, false, true, true>", Vec4(F, F, T, T).String())
	assert.Equal(t, "<1, -2, 3>", Vec3[int32](1, -2, 3).String())
	assert.Equal(t, "<0.5, 1, 2, 3>", Vec4[float32](0.5, 1, 2, 3).String())
}

func TestKind(t *testing.T) {
	assert.Equal(t, KindBool, KindOf[slbool.Bool]())
	assert.Equal(t, KindInt, KindOf[int32]())
	assert.Equal(t, KindUint, KindOf[uint32]())
	assert.Equal(t, KindFloat, KindOf[float32]())
	assert.Equal(t, "Uint", KindUint.String())
}

func TestMath32(t *testing.T) {
	assert.Equal(t, Float2{1, 2}, Float2FromVector2(math32.Vec2(1, 2)))
	assert.Equal(t, math32.Vec2(1, 2), Float2ToVector2(Float2{1, 2}))
	assert.Equal(t, Float3{1, 2, 3}, Float3FromVector3(math32.Vec3(1, 2, 3)))
	assert.Equal(t, math32.Vec3(1, 2, 3), Float3ToVector3(Float3{1, 2, 3}))
	assert.Equal(t, Float4{1, 2, 3, 4}, Float4FromVector4(math32.Vec4(1, 2, 3, 4)))
	assert.Equal(t, math32.Vec4(1, 2, 3, 4), Float4ToVector4(Float4{1, 2, 3, 4}))
	assert.Equal(t, Int2{3, -4}, Int2FromVector2i(math32.Vector2i{X: 3, Y: -4}))
	assert.Equal(t, math32.Vector2i{X: 3, Y: -4}, Int2ToVector2i(Int2{3, -4}))
	assert.Equal(t, Int3{3, -4, 5}, Int3FromVector3i(math32.Vector3i{X: 3, Y: -4, Z: 5}))
	assert.Equal(t, math32.Vector3i{X: 3, Y: -4, Z: 5}, Int3ToVector3i(Int3{3, -4, 5}))
}
