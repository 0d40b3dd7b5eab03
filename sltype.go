// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sltype provides Go types that mirror the HLSL scalar and
// vector types (bool2, int3, float4, etc), so that shader-side code
// can be written and checked in Go, and laid out in parameter buffers
// exactly as the GPU sees it.
//
// Every vector type has the full HLSL swizzle surface: getters such as
// XY, ZYX and RGBA for any ordered selection of up to 4 components,
// with repeats, and setters such as SetXY only for selections without
// repeated components, so that assigning through v.xx is a compile
// error just as it is in HLSL. The [swizzle] package holds the name
// table behind these methods, for use by shader emitters.
//
// Operators are elementwise and follow HLSL: Equal returns a bool
// vector, not a single bool.
package sltype

//go:generate go run ./cmd/swizzlegen -output swizzlegen.go

import "cogentcore.org/sltype/slbool"

// Scalar is the constraint for vector element types.
// All of them are 4 bytes wide, as in HLSL buffers.
type Scalar interface {
	slbool.Bool | int32 | uint32 | float32
}

// Kind is the kind of a vector element type.
type Kind int32

const (
	// KindBool is the [slbool.Bool] element kind.
	KindBool Kind = iota

	// KindInt is the int32 element kind.
	KindInt

	// KindUint is the uint32 element kind.
	KindUint

	// KindFloat is the float32 element kind.
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindUint:
		return "Uint"
	case KindFloat:
		return "Float"
	}
	return "Kind(?)"
}

// KindOf returns the element kind of T.
func KindOf[T Scalar]() Kind {
	var z T
	switch any(z).(type) {
	case slbool.Bool:
		return KindBool
	case int32:
		return KindInt
	case uint32:
		return KindUint
	}
	return KindFloat
}

// Bool2 is the HLSL bool2 type.
type Bool2 = Vector2[slbool.Bool]

// Bool3 is the HLSL bool3 type.
type Bool3 = Vector3[slbool.Bool]

// Bool4 is the HLSL bool4 type.
type Bool4 = Vector4[slbool.Bool]

// Int2 is the HLSL int2 type.
type Int2 = Vector2[int32]

// Int3 is the HLSL int3 type.
type Int3 = Vector3[int32]

// Int4 is the HLSL int4 type.
type Int4 = Vector4[int32]

// Uint2 is the HLSL uint2 type.
type Uint2 = Vector2[uint32]

// Uint3 is the HLSL uint3 type.
type Uint3 = Vector3[uint32]

// Uint4 is the HLSL uint4 type.
type Uint4 = Vector4[uint32]

// Float2 is the HLSL float2 type.
type Float2 = Vector2[float32]

// Float3 is the HLSL float3 type.
type Float3 = Vector3[float32]

// Float4 is the HLSL float4 type.
type Float4 = Vector4[float32]
