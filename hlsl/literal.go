// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hlsl

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"cogentcore.org/sltype"
	"cogentcore.org/sltype/slbool"
)

// Literal returns the HLSL literal for a value of one of the sltype
// scalar or vector types, eg: "bool3(true, false, true)" or "2u".
func Literal(v any) (string, error) {
	switch x := v.(type) {
	case slbool.Bool:
		return scalarLiteral(x)
	case int32:
		return scalarLiteral(x)
	case uint32:
		return scalarLiteral(x)
	case float32:
		return scalarLiteral(x)
	case sltype.Bool2:
		return vectorLiteral(x.X, x.Y)
	case sltype.Bool3:
		return vectorLiteral(x.X, x.Y, x.Z)
	case sltype.Bool4:
		return vectorLiteral(x.X, x.Y, x.Z, x.W)
	case sltype.Int2:
		return vectorLiteral(x.X, x.Y)
	case sltype.Int3:
		return vectorLiteral(x.X, x.Y, x.Z)
	case sltype.Int4:
		return vectorLiteral(x.X, x.Y, x.Z, x.W)
	case sltype.Uint2:
		return vectorLiteral(x.X, x.Y)
	case sltype.Uint3:
		return vectorLiteral(x.X, x.Y, x.Z)
	case sltype.Uint4:
		return vectorLiteral(x.X, x.Y, x.Z, x.W)
	case sltype.Float2:
		return vectorLiteral(x.X, x.Y)
	case sltype.Float3:
		return vectorLiteral(x.X, x.Y, x.Z)
	case sltype.Float4:
		return vectorLiteral(x.X, x.Y, x.Z, x.W)
	}
	return "", fmt.Errorf("%w: %T is not an sltype value", ErrUnsupportedValue, v)
}

func vectorLiteral[T sltype.Scalar](comps ...T) (string, error) {
	name, err := TypeName(sltype.KindOf[T](), len(comps))
	if err != nil {
		return "", err
	}
	parts := make([]string, len(comps))
	for i, c := range comps {
		if parts[i], err = scalarLiteral(c); err != nil {
			return "", err
		}
	}
	return name + "(" + strings.Join(parts, ", ") + ")", nil
}

func scalarLiteral[T sltype.Scalar](c T) (string, error) {
	switch x := any(c).(type) {
	case slbool.Bool:
		return x.String(), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(x), 10) + "u", nil
	case float32:
		f := float64(x)
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return "", fmt.Errorf("%w: float %v", ErrUnsupportedValue, x)
		}
		s := strconv.FormatFloat(f, 'g', -1, 32)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		return s, nil
	}
	return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, c)
}
