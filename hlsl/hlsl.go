// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hlsl provides the HLSL spellings of the sltype types for a
// shader emitter: type names, literals, swizzle member accesses in the
// form HLSL accepts, and the assignability of those accesses.
package hlsl

import (
	"errors"
	"fmt"

	"cogentcore.org/sltype"
	nhlsl "github.com/gogpu/naga/hlsl"
	"github.com/gogpu/naga/ir"
)

var (
	// ErrSize is returned for a vector size outside [1, 4],
	// or operands of mismatched sizes.
	ErrSize = errors.New("hlsl: invalid vector size")

	// ErrNotLValue is returned for an assignment to an expression
	// that does not denote storage.
	ErrNotLValue = errors.New("hlsl: expression is not an lvalue")

	// ErrUnsupportedValue is returned for a value with no HLSL literal.
	ErrUnsupportedValue = errors.New("hlsl: unsupported value")
)

// ScalarType returns the naga IR scalar type for the given element kind.
func ScalarType(k sltype.Kind) ir.ScalarType {
	switch k {
	case sltype.KindBool:
		return ir.ScalarType{Kind: ir.ScalarBool, Width: 1}
	case sltype.KindInt:
		return ir.ScalarType{Kind: ir.ScalarSint, Width: 4}
	case sltype.KindUint:
		return ir.ScalarType{Kind: ir.ScalarUint, Width: 4}
	}
	return ir.ScalarType{Kind: ir.ScalarFloat, Width: 4}
}

// TypeName returns the HLSL type name for n components of the given
// element kind: the scalar name for n == 1, and eg: "bool3" otherwise.
func TypeName(k sltype.Kind, n int) (string, error) {
	st := ScalarType(k)
	switch {
	case n == 1:
		return nhlsl.ScalarToHLSL(st), nil
	case n >= 2 && n <= 4:
		return nhlsl.VectorToHLSL(ir.VectorType{Size: ir.VectorSize(n), Scalar: st}), nil
	}
	return "", fmt.Errorf("%w: %d", ErrSize, n)
}

// ScalarName returns the HLSL type name for element type T.
func ScalarName[T sltype.Scalar]() string {
	return nhlsl.ScalarToHLSL(ScalarType(sltype.KindOf[T]()))
}

// VectorName returns the HLSL type name for a vector of n components
// of element type T. It panics for n outside [2, 4].
func VectorName[T sltype.Scalar](n int) string {
	if n < 2 || n > 4 {
		panic(fmt.Sprintf("hlsl: vector size %d is out of range", n))
	}
	return nhlsl.VectorToHLSL(ir.VectorType{Size: ir.VectorSize(n), Scalar: ScalarType(sltype.KindOf[T]())})
}

// Ident returns a safe HLSL identifier for the given name,
// escaping HLSL reserved words.
func Ident(name string) string {
	return nhlsl.Escape(name)
}
