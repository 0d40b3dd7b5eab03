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

// Vector4 is a 4 component vector of T, with the memory layout
// of the corresponding HLSL type.
type Vector4[T Scalar] struct {
	X T
	Y T
	Z T
	W T
}

// Vec4 returns a new [Vector4] with the given x, y, z, and w components.
func Vec4[T Scalar](x, y, z, w T) Vector4[T] {
	return Vector4[T]{X: x, Y: y, Z: z, W: w}
}

// Vector4Scalar returns a new [Vector4] with all components set to the given scalar value.
func Vector4Scalar[T Scalar](scalar T) Vector4[T] {
	return Vector4[T]{X: scalar, Y: scalar, Z: scalar, W: scalar}
}

// Vector4FromVector3 returns a new [Vector4] from the given [Vector3] and w component.
func Vector4FromVector3[T Scalar](v Vector3[T], w T) Vector4[T] {
	return Vector4[T]{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// Vector4FromScalarVector3 returns a new [Vector4] from the given x component and [Vector3].
func Vector4FromScalarVector3[T Scalar](x T, v Vector3[T]) Vector4[T] {
	return Vector4[T]{X: x, Y: v.X, Z: v.Y, W: v.Z}
}

// Vector4FromVector2 returns a new [Vector4] from the given [Vector2] and z, w components.
func Vector4FromVector2[T Scalar](v Vector2[T], z, w T) Vector4[T] {
	return Vector4[T]{X: v.X, Y: v.Y, Z: z, W: w}
}

// Vector4FromScalarVector2 returns a new [Vector4] from the given x component,
// [Vector2] for y and z, and w component.
func Vector4FromScalarVector2[T Scalar](x T, v Vector2[T], w T) Vector4[T] {
	return Vector4[T]{X: x, Y: v.X, Z: v.Y, W: w}
}

// Vector4FromVector2s returns a new [Vector4] from the components of a and then b.
func Vector4FromVector2s[T Scalar](a, b Vector2[T]) Vector4[T] {
	return Vector4[T]{X: a.X, Y: a.Y, Z: b.X, W: b.Y}
}

// Bool4FromBools returns a new [Bool4] from the given Go bools.
func Bool4FromBools(x, y, z, w bool) Bool4 {
	return Bool4{slbool.FromBool(x), slbool.FromBool(y), slbool.FromBool(z), slbool.FromBool(w)}
}

// Len returns the number of components, 4.
func (v Vector4[T]) Len() int { return 4 }

// Set sets this vector X, Y, Z and W components.
func (v *Vector4[T]) Set(x, y, z, w T) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector4[T]) SetScalar(scalar T) {
	v.X = scalar
	v.Y = scalar
	v.Z = scalar
	v.W = scalar
}

// SetDim sets this vector component value by dimension index.
func (v *Vector4[T]) SetDim(dim math32.Dims, value T) {
	switch dim {
	case math32.X:
		v.X = value
	case math32.Y:
		v.Y = value
	case math32.Z:
		v.Z = value
	case math32.W:
		v.W = value
	default:
		panic("dim is out of range")
	}
}

// Dim returns this vector component. The dimension must be
// a constant index of the vector.
func (v Vector4[T]) Dim(dim math32.Dims) T {
	switch dim {
	case math32.X:
		return v.X
	case math32.Y:
		return v.Y
	case math32.Z:
		return v.Z
	case math32.W:
		return v.W
	default:
		panic("dim is out of range")
	}
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector4[T]) FromSlice(array []T, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
	v.Z = array[offset+2]
	v.W = array[offset+3]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector4[T]) ToSlice(array []T, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
	array[offset+2] = v.Z
	array[offset+3] = v.W
}

// String returns the vector as "<x, y, z, w>".
func (v Vector4[T]) String() string {
	return fmt.Sprintf("<%v, %v, %v, %v>", v.X, v.Y, v.Z, v.W)
}

// Swizzle returns the components selected by the named swizzle,
// which may be spelled in any alphabet.
func (v Vector4[T]) Swizzle(name string) ([]T, error) {
	s, err := swizzle.ForArity(4).Lookup(name)
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
func (v *Vector4[T]) SetSwizzle(name string, vals ...T) error {
	s, err := swizzle.ForArity(4).CheckAssign(name)
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
func (v Vector4[T]) Not() Bool4 {
	return Bool4{truth(v.X).Not(), truth(v.Y).Not(), truth(v.Z).Not(), truth(v.W).Not()}
}

// And returns the elementwise and of this vector and other.
// It panics for float vectors.
func (v Vector4[T]) And(other Vector4[T]) Vector4[T] {
	return Vector4[T]{and(v.X, other.X), and(v.Y, other.Y), and(v.Z, other.Z), and(v.W, other.W)}
}

// Or returns the elementwise or of this vector and other.
// It panics for float vectors.
func (v Vector4[T]) Or(other Vector4[T]) Vector4[T] {
	return Vector4[T]{or(v.X, other.X), or(v.Y, other.Y), or(v.Z, other.Z), or(v.W, other.W)}
}

// Xor returns the elementwise exclusive or of this vector and other.
// It panics for float vectors.
func (v Vector4[T]) Xor(other Vector4[T]) Vector4[T] {
	return Vector4[T]{xor(v.X, other.X), xor(v.Y, other.Y), xor(v.Z, other.Z), xor(v.W, other.W)}
}

// Any returns whether any component is non-zero.
func (v Vector4[T]) Any() bool {
	return v.X != 0 || v.Y != 0 || v.Z != 0 || v.W != 0
}

// All returns whether all components are non-zero.
func (v Vector4[T]) All() bool {
	return v.X != 0 && v.Y != 0 && v.Z != 0 && v.W != 0
}

// Comparison operations, all returning a bool vector:

// Equal returns the elementwise equality of this vector and other.
func (v Vector4[T]) Equal(other Vector4[T]) Bool4 {
	return Bool4{slbool.FromBool(eq(v.X, other.X)), slbool.FromBool(eq(v.Y, other.Y)), slbool.FromBool(eq(v.Z, other.Z)), slbool.FromBool(eq(v.W, other.W))}
}

// NotEqual returns the elementwise inequality of this vector and other.
func (v Vector4[T]) NotEqual(other Vector4[T]) Bool4 {
	return Bool4{slbool.FromBool(!eq(v.X, other.X)), slbool.FromBool(!eq(v.Y, other.Y)), slbool.FromBool(!eq(v.Z, other.Z)), slbool.FromBool(!eq(v.W, other.W))}
}

// Less returns the elementwise v < other.
func (v Vector4[T]) Less(other Vector4[T]) Bool4 {
	return Bool4{slbool.FromBool(v.X < other.X), slbool.FromBool(v.Y < other.Y), slbool.FromBool(v.Z < other.Z), slbool.FromBool(v.W < other.W)}
}

// LessEqual returns the elementwise v <= other.
func (v Vector4[T]) LessEqual(other Vector4[T]) Bool4 {
	return Bool4{slbool.FromBool(v.X <= other.X), slbool.FromBool(v.Y <= other.Y), slbool.FromBool(v.Z <= other.Z), slbool.FromBool(v.W <= other.W)}
}

// Greater returns the elementwise v > other.
func (v Vector4[T]) Greater(other Vector4[T]) Bool4 {
	return Bool4{slbool.FromBool(v.X > other.X), slbool.FromBool(v.Y > other.Y), slbool.FromBool(v.Z > other.Z), slbool.FromBool(v.W > other.W)}
}

// GreaterEqual returns the elementwise v >= other.
func (v Vector4[T]) GreaterEqual(other Vector4[T]) Bool4 {
	return Bool4{slbool.FromBool(v.X >= other.X), slbool.FromBool(v.Y >= other.Y), slbool.FromBool(v.Z >= other.Z), slbool.FromBool(v.W >= other.W)}
}

// Basic math operations, which panic for bool vectors:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector4[T]) Add(other Vector4[T]) Vector4[T] {
	numeric[T]("+")
	return Vector4[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector4[T]) Sub(other Vector4[T]) Vector4[T] {
	numeric[T]("-")
	return Vector4[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector4[T]) Mul(other Vector4[T]) Vector4[T] {
	numeric[T]("*")
	return Vector4[T]{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector.
func (v Vector4[T]) Div(other Vector4[T]) Vector4[T] {
	numeric[T]("/")
	return Vector4[T]{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

// Negate returns the vector with each component negated.
func (v Vector4[T]) Negate() Vector4[T] {
	numeric[T]("-")
	return Vector4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

// Conversions, as HLSL casts:

// ToBool returns the vector as a bool vector, true where non-zero.
func (v Vector4[T]) ToBool() Bool4 { return Convert4[slbool.Bool](v) }

// ToInt returns the vector as an int vector.
func (v Vector4[T]) ToInt() Int4 { return Convert4[int32](v) }

// ToUint returns the vector as a uint vector.
func (v Vector4[T]) ToUint() Uint4 { return Convert4[uint32](v) }

// ToFloat returns the vector as a float vector.
func (v Vector4[T]) ToFloat() Float4 { return Convert4[float32](v) }

// Convert4 converts the vector to element type U.
func Convert4[U, T Scalar](v Vector4[T]) Vector4[U] {
	return Vector4[U]{convert[U](v.X), convert[U](v.Y), convert[U](v.Z), convert[U](v.W)}
}

// Select4 returns a where cond is true and b elsewhere, per component.
func Select4[T Scalar](cond Bool4, a, b Vector4[T]) Vector4[T] {
	return Vector4[T]{choose(cond.X, a.X, b.X), choose(cond.Y, a.Y, b.Y), choose(cond.Z, a.Z, b.Z), choose(cond.W, a.W, b.W)}
}
