// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sltype

import "cogentcore.org/core/math32"

// Conversions to and from the [math32] vector types,
// which share the float32 and int32 memory layouts.

// Float2FromVector2 returns a [Float2] from the given [math32.Vector2].
func Float2FromVector2(v math32.Vector2) Float2 {
	return Float2{v.X, v.Y}
}

// Float2ToVector2 returns a [math32.Vector2] from the given [Float2].
func Float2ToVector2(v Float2) math32.Vector2 {
	return math32.Vec2(v.X, v.Y)
}

// Float3FromVector3 returns a [Float3] from the given [math32.Vector3].
func Float3FromVector3(v math32.Vector3) Float3 {
	return Float3{v.X, v.Y, v.Z}
}

// Float3ToVector3 returns a [math32.Vector3] from the given [Float3].
func Float3ToVector3(v Float3) math32.Vector3 {
	return math32.Vec3(v.X, v.Y, v.Z)
}

// Float4FromVector4 returns a [Float4] from the given [math32.Vector4].
func Float4FromVector4(v math32.Vector4) Float4 {
	return Float4{v.X, v.Y, v.Z, v.W}
}

// Float4ToVector4 returns a [math32.Vector4] from the given [Float4].
func Float4ToVector4(v Float4) math32.Vector4 {
	return math32.Vec4(v.X, v.Y, v.Z, v.W)
}

// Int2FromVector2i returns an [Int2] from the given [math32.Vector2i].
func Int2FromVector2i(v math32.Vector2i) Int2 {
	return Int2{v.X, v.Y}
}

// Int2ToVector2i returns a [math32.Vector2i] from the given [Int2].
func Int2ToVector2i(v Int2) math32.Vector2i {
	return math32.Vector2i{X: v.X, Y: v.Y}
}

// Int3FromVector3i returns an [Int3] from the given [math32.Vector3i].
func Int3FromVector3i(v math32.Vector3i) Int3 {
	return Int3{v.X, v.Y, v.Z}
}

// Int3ToVector3i returns a [math32.Vector3i] from the given [Int3].
func Int3ToVector3i(v Int3) math32.Vector3i {
	return math32.Vector3i{X: v.X, Y: v.Y, Z: v.Z}
}
