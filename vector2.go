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

// Vector2 is a 2 component vector of T, with the memory layout
// of the corresponding HLSL type.
type Vector2[T Scalar] struct {
	X T
	Y T
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2[T Scalar](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar[T Scalar](scalar T) Vector2[T] {
	return Vector2[T]{X: scalar, Y: scalar}
}

// Bool2FromBools returns a new [Bool2] from the given Go bools.
func Bool2FromBools(x, y bool) Bool2 {
	return Bool2{slbool.FromBool(x), slbool.FromBool(y)}
}

// Len returns the number of components, 2.
func (v Vector2[T]) Len() int { return 2 }

// Set sets this vector X and Y components.
func (v *Vector2[T]) Set(x, y T) {
	v.X = x
	v.Y = y
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector2[T]) SetScalar(scalar T) {
	v.X = scalar
	v.Y = scalar
}

// SetDim sets this vector component value by dimension index.
func (v *Vector2[T]) SetDim(dim math32.Dims, value T) {
	switch dim {
	case math32.X:
		v.X = value
	case math32.Y:
		v.Y = value
	default:
		panic("dim is out of range")
	}
}

// Dim returns this vector component. The dimension must be
// a constant index of the vector: there is no host meaning
// for indexing with a value only known at shader run time.
func (v Vector2[T]) Dim(dim math32.Dims) T {
	switch dim {
	case math32.X:
		return v.X
	case math32.Y:
		return v.Y
	default:
		panic("dim is out of range")
	}
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector2[T]) FromSlice(array []T, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector2[T]) ToSlice(array []T, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
}

// String returns the vector as "<x, y>".
func (v Vector2[T]) String() string {
	return fmt.Sprintf("<%v, %v>", v.X, v.Y)
}

// Swizzle returns the components selected by the named swizzle,
// which may be spelled in any alphabet.
func (v Vector2[T]) Swizzle(name string) ([]T, error) {
	s, err := swizzle.ForArity(2).Lookup(name)
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
func (v *Vector2[T]) SetSwizzle(name string, vals ...T) error {
	s, err := swizzle.ForArity(2).CheckAssign(name)
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
func (v Vector2[T]) Not() Bool2 {
	return Bool2{truth(v.X).Not(), truth(v.Y).Not()}
}

// And returns the elementwise and of this vector and other.
// It panics for float vectors.
func (v Vector2[T]) And(other Vector2[T]) Vector2[T] {
	return Vector2[T]{and(v.X, other.X), and(v.Y, other.Y)}
}

// Or returns the elementwise or of this vector and other.
// It panics for float vectors.
func (v Vector2[T]) Or(other Vector2[T]) Vector2[T] {
	return Vector2[T]{or(v.X, other.X), or(v.Y, other.Y)}
}

// Xor returns the elementwise exclusive or of this vector and other.
// It panics for float vectors.
func (v Vector2[T]) Xor(other Vector2[T]) Vector2[T] {
	return Vector2[T]{xor(v.X, other.X), xor(v.Y, other.Y)}
}

// Any returns whether any component is non-zero.
func (v Vector2[T]) Any() bool {
	return v.X != 0 || v.Y != 0
}

// All returns whether all components are non-zero.
func (v Vector2[T]) All() bool {
	return v.X != 0 && v.Y != 0
}

// Comparison operations, all returning a bool vector:

// Equal returns the elementwise equality of this vector and other.
func (v Vector2[T]) Equal(other Vector2[T]) Bool2 {
	return Bool2{slbool.FromBool(eq(v.X, other.X)), slbool.FromBool(eq(v.Y, other.Y))}
}

// NotEqual returns the elementwise inequality of this vector and other.
func (v Vector2[T]) NotEqual(other Vector2[T]) Bool2 {
	return Bool2{slbool.FromBool(!eq(v.X, other.X)), slbool.FromBool(!eq(v.Y, other.Y))}
}

// Less returns the elementwise v < other.
func (v Vector2[T]) Less(other Vector2[T]) Bool2 {
	return Bool2{slbool.FromBool(v.X < other.X), slbool.FromBool(v.Y < other.Y)}
}

// LessEqual returns the elementwise v <= other.
func (v Vector2[T]) LessEqual(other Vector2[T]) Bool2 {
	return Bool2{slbool.FromBool(v.X <= other.X), slbool.FromBool(v.Y <= other.Y)}
}

// Greater returns the elementwise v > other.
func (v Vector2[T]) Greater(other Vector2[T]) Bool2 {
	return Bool2{slbool.FromBool(v.X > other.X), slbool.FromBool(v.Y > other.Y)}
}

// GreaterEqual returns the elementwise v >= other.
func (v Vector2[T]) GreaterEqual(other Vector2[T]) Bool2 {
	return Bool2{slbool.FromBool(v.X >= other.X), slbool.FromBool(v.Y >= other.Y)}
}

// Basic math operations, which panic for bool vectors:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector2[T]) Add(other Vector2[T]) Vector2[T] {
	numeric[T]("+")
	return Vector2[T]{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector2[T]) Sub(other Vector2[T]) Vector2[T] {
	numeric[T]("-")
	return Vector2[T]{v.X - other.X, v.Y - other.Y}
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector2[T]) Mul(other Vector2[T]) Vector2[T] {
	numeric[T]("*")
	return Vector2[T]{v.X * other.X, v.Y * other.Y}
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector.
func (v Vector2[T]) Div(other Vector2[T]) Vector2[T] {
	numeric[T]("/")
	return Vector2[T]{v.X / other.X, v.Y / other.Y}
}

// Negate returns the vector with each component negated.
func (v Vector2[T]) Negate() Vector2[T] {
	numeric[T]("-")
	return Vector2[T]{-v.X, -v.Y}
}

// Conversions, as HLSL casts:

// ToBool returns the vector as a bool vector, true where non-zero.
func (v Vector2[T]) ToBool() Bool2 { return Convert2[slbool.Bool](v) }

// ToInt returns the vector as an int vector.
func (v Vector2[T]) ToInt() Int2 { return Convert2[int32](v) }

// ToUint returns the vector as a uint vector.
func (v Vector2[T]) ToUint() Uint2 { return Convert2[uint32](v) }

// ToFloat returns the vector as a float vector.
func (v Vector2[T]) ToFloat() Float2 { return Convert2[float32](v) }

// Convert2 converts the vector to element type U.
func Convert2[U, T Scalar](v Vector2[T]) Vector2[U] {
	return Vector2[U]{convert[U](v.X), convert[U](v.Y)}
}

// Select2 returns a where cond is true and b elsewhere, per component.
func Select2[T Scalar](cond Bool2, a, b Vector2[T]) Vector2[T] {
	return Vector2[T]{choose(cond.X, a.X, b.X), choose(cond.Y, a.Y, b.Y)}
}
