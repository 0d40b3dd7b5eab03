// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sltype

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/sltype/slbool"
	"cogentcore.org/sltype/swizzle"
)

// Vector3 is a 3 component vector of T, with the memory layout
// of the corresponding HLSL type.
type Vector3[T Scalar] struct {
	X T
	Y T
	Z T
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3[T Scalar](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

// Vector3Scalar returns a new [Vector3] with all components set to the given scalar value.
func Vector3Scalar[T Scalar](scalar T) Vector3[T] {
	return Vector3[T]{X: scalar, Y: scalar, Z: scalar}
}

// Vector3FromVector2 returns a new [Vector3] from the given [Vector2] and z component.
func Vector3FromVector2[T Scalar](v Vector2[T], z T) Vector3[T] {
	return Vector3[T]{X: v.X, Y: v.Y, Z: z}
}

// Vector3FromScalarVector2 returns a new [Vector3] from the given x component and [Vector2].
func Vector3FromScalarVector2[T Scalar](x T, v Vector2[T]) Vector3[T] {
	return Vector3[T]{X: x, Y: v.X, Z: v.Y}
}

// Bool3FromBools returns a new [Bool3] from the given Go bools.
func Bool3FromBools(x, y, z bool) Bool3 {
	return Bool3{slbool.FromBool(x), slbool.FromBool(y), slbool.FromBool(z)}
}

// Len returns the number of components, 3.
func (v Vector3[T]) Len() int { return 3 }

// Set sets this vector X, Y and Z components.
func (v *Vector3[T]) Set(x, y, z T) {
	v.X = x
	v.Y = y
	v.Z = z
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector3[T]) SetScalar(scalar T) {
	v.X = scalar
	v.Y = scalar
	v.Z = scalar
}

// SetDim sets this vector component value by dimension index.
func (v *Vector3[T]) SetDim(dim math32.Dims, value T) {
	switch dim {
	case math32.X:
		v.X = value
	case math32.Y:
		v.Y = value
	case math32.Z:
		v.Z = value
	default:
		panic("dim is out of range")
	}
}

// Dim returns this vector component. The dimension must be
// a constant index of the vector.
func (v Vector3[T]) Dim(dim math32.Dims) T {
	switch dim {
	case math32.X:
		return v.X
	case math32.Y:
		return v.Y
	case math32.Z:
		return v.Z
	default:
		panic("dim is out of range")
	}
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector3[T]) FromSlice(array []T, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
	v.Z = array[offset+2]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector3[T]) ToSlice(array []T, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
	array[offset+2] = v.Z
}

// String returns the vector as "<x, y, z>".
func (v Vector3[T]) String() string {
	return fmt.Sprintf("<%v, %v, %v>", v.X, v.Y, v.Z)
}

// Swizzle returns the components selected by the named swizzle,
// which may be spelled in any alphabet.
func (v Vector3[T]) Swizzle(name string) ([]T, error) {
	s, err := swizzle.ForArity(3).Lookup(name)
	if err != nil {
		return nil, err
	}
	r := make([]T, s.Size)
	for i, ci := range s.Indices {
		r[i] = v.Dim(math32.Dims(ci))
	}
	return r, nil
}

// SetSwizzle sets the components selected by the named swizzle
// to the given values. A swizzle that repeats a component is
// not assignable.
func (v *Vector3[T]) SetSwizzle(name string, vals ...T) error {
	s, err := swizzle.ForArity(3).CheckAssign(name)
	if err != nil {
		return err
	}
	if len(vals) != s.Size {
		return fmt.Errorf("sltype: swizzle %q takes %d values, not %d", name, s.Size, len(vals))
	}
	for i, ci := range s.Indices {
		v.SetDim(math32.Dims(ci), vals[i])
	}
	return nil
}

// Logical and bitwise operations:

// Not returns a bool vector that is true where this vector is zero,
// which is the logical negation of a bool vector.
func (v Vector3[T]) Not() Bool3 {
	return Bool3{truth(v.X).Not(), truth(v.Y).Not(), truth(v.Z).Not()}
}

// And returns the elementwise and of this vector and other.
// It panics for float vectors.
func (v Vector3[T]) And(other Vector3[T]) Vector3[T] {
	return Vector3[T]{and(v.X, other.X), and(v.Y, other.Y), and(v.Z, other.Z)}
}

// Or returns the elementwise or of this vector and other.
// It panics for float vectors.
func (v Vector3[T]) Or(other Vector3[T]) Vector3[T] {
	return Vector3[T]{or(v.X, other.X), or(v.Y, other.Y), or(v.Z, other.Z)}
}

// Xor returns the elementwise exclusive or of this vector and other.
// It panics for float vectors.
func (v Vector3[T]) Xor(other Vector3[T]) Vector3[T] {
	return Vector3[T]{xor(v.X, other.X), xor(v.Y, other.Y), xor(v.Z, other.Z)}
}

// Any returns whether any component is non-zero.
func (v Vector3[T]) Any() bool {
	return v.X != 0 || v.Y != 0 || v.Z != 0
}

// All returns whether all components are non-zero.
func (v Vector3[T]) All() bool {
	return v.X != 0 && v.Y != 0 && v.Z != 0
}

// Comparison operations, all returning a bool vector:

// Equal returns the elementwise equality of this vector and other.
func (v Vector3[T]) Equal(other Vector3[T]) Bool3 {
	return Bool3{slbool.FromBool(eq(v.X, other.X)), slbool.FromBool(eq(v.Y, other.Y)), slbool.FromBool(eq(v.Z, other.Z))}
}

// NotEqual returns the elementwise inequality of this vector and other.
func (v Vector3[T]) NotEqual(other Vector3[T]) Bool3 {
	return Bool3{slbool.FromBool(!eq(v.X, other.X)), slbool.FromBool(!eq(v.Y, other.Y)), slbool.FromBool(!eq(v.Z, other.Z))}
}

// Less returns the elementwise v < other.
func (v Vector3[T]) Less(other Vector3[T]) Bool3 {
	return Bool3{slbool.FromBool(v.X < other.X), slbool.FromBool(v.Y < other.Y), slbool.FromBool(v.Z < other.Z)}
}

// LessEqual returns the elementwise v <= other.
func (v Vector3[T]) LessEqual(other Vector3[T]) Bool3 {
	return Bool3{slbool.FromBool(v.X <= other.X), slbool.FromBool(v.Y <= other.Y), slbool.FromBool(v.Z <= other.Z)}
}

// Greater returns the elementwise v > other.
func (v Vector3[T]) Greater(other Vector3[T]) Bool3 {
	return Bool3{slbool.FromBool(v.X > other.X), slbool.FromBool(v.Y > other.Y), slbool.FromBool(v.Z > other.Z)}
}

// GreaterEqual returns the elementwise v >= other.
func (v Vector3[T]) GreaterEqual(other Vector3[T]) Bool3 {
	return Bool3{slbool.FromBool(v.X >= other.X), slbool.FromBool(v.Y >= other.Y), slbool.FromBool(v.Z >= other.Z)}
}

// Basic math operations, which panic for bool vectors:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	numeric[T]("+")
	return Vector3[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	numeric[T]("-")
	return Vector3[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector3[T]) Mul(other Vector3[T]) Vector3[T] {
	numeric[T]("*")
	return Vector3[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector.
func (v Vector3[T]) Div(other Vector3[T]) Vector3[T] {
	numeric[T]("/")
	return Vector3[T]{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// Negate returns the vector with each component negated.
func (v Vector3[T]) Negate() Vector3[T] {
	numeric[T]("-")
	return Vector3[T]{-v.X, -v.Y, -v.Z}
}

// Conversions, as HLSL casts:

// ToBool returns the vector as a bool vector, true where non-zero.
func (v Vector3[T]) ToBool() Bool3 { return Convert3[slbool.Bool](v) }

// ToInt returns the vector as an int vector.
func (v Vector3[T]) ToInt() Int3 { return Convert3[int32](v) }

// ToUint returns the vector as a uint vector.
func (v Vector3[T]) ToUint() Uint3 { return Convert3[uint32](v) }

// ToFloat returns the vector as a float vector.
func (v Vector3[T]) ToFloat() Float3 { return Convert3[float32](v) }

// Convert3 converts the vector to element type U.
func Convert3[U, T Scalar](v Vector3[T]) Vector3[U] {
	return Vector3[U]{convert[U](v.X), convert[U](v.Y), convert[U](v.Z)}
}

// Select3 returns a where cond is true and b elsewhere, per component.
func Select3[T Scalar](cond Bool3, a, b Vector3[T]) Vector3[T] {
	return Vector3[T]{choose(cond.X, a.X, b.X), choose(cond.Y, a.Y, b.Y), choose(cond.Z, a.Z, b.Z)}
}
