// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sltype

import (
	"fmt"

	"cogentcore.org/sltype/slbool"
)

// Elementwise operations on single components, shared by all arities.

func truth[T Scalar](a T) slbool.Bool {
	return slbool.FromBool(a != 0)
}

func bit[T Scalar](a T) uint32 {
	if a != 0 {
		return 1
	}
	return 0
}

// bitwise applies f to a and b: logically for bool elements, and
// on the bit patterns for integer elements. HLSL has no bitwise
// operators on floats, so that panics.
func bitwise[T Scalar](a, b T, op string, f func(x, y uint32) uint32) T {
	switch KindOf[T]() {
	case KindBool:
		return T(f(bit(a), bit(b)))
	case KindFloat:
		panic(fmt.Sprintf("sltype: operator %s is undefined on float vectors", op))
	}
	return T(f(uint32(a), uint32(b)))
}

func and[T Scalar](a, b T) T {
	return bitwise(a, b, "&", func(x, y uint32) uint32 { return x & y })
}

func or[T Scalar](a, b T) T {
	return bitwise(a, b, "|", func(x, y uint32) uint32 { return x | y })
}

func xor[T Scalar](a, b T) T {
	return bitwise(a, b, "^", func(x, y uint32) uint32 { return x ^ y })
}

// numeric panics for arithmetic on bool elements, which must be
// converted to a numeric vector first.
func numeric[T Scalar](op string) {
	if KindOf[T]() == KindBool {
		panic(fmt.Sprintf("sltype: operator %s is undefined on bool vectors; convert with ToInt or ToFloat", op))
	}
}

// convert converts a component to another element type, as an HLSL cast does.
func convert[U, T Scalar](a T) U {
	if KindOf[U]() == KindBool {
		return U(bit(a))
	}
	return U(a)
}

func choose[T Scalar](c slbool.Bool, a, b T) T {
	if c.IsTrue() {
		return a
	}
	return b
}

// eq compares bool elements by truth, so any non-zero bool equals True.
func eq[T Scalar](a, b T) bool {
	if KindOf[T]() == KindBool {
		return (a != 0) == (b != 0)
	}
	return a == b
}
