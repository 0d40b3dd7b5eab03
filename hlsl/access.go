// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hlsl

import (
	"fmt"
	"unicode"

	"cogentcore.org/sltype"
	"cogentcore.org/sltype/swizzle"
)

// Ref is an HLSL expression of scalar or vector type,
// as seen by an emitter writing member accesses and assignments.
type Ref struct {

	// Text is the HLSL source of the expression.
	Text string

	// Kind is the element kind.
	Kind sltype.Kind

	// Size is the number of components; 1 is a scalar.
	Size int

	// LValue is whether the expression denotes storage,
	// so that it can be assigned to.
	LValue bool

	// repeated is whether the expression is a swizzle of
	// storage that repeats a component.
	repeated bool
}

// Var returns a reference to the named variable, which is an lvalue.
func Var(name string, k sltype.Kind, size int) Ref {
	return Ref{Text: Ident(name), Kind: k, Size: size, LValue: true}
}

// Value returns a reference to the given expression text,
// which is not an lvalue. Member and Index put compound
// expressions in parentheses.
func Value(text string, k sltype.Kind, size int) Ref {
	return Ref{Text: text, Kind: k, Size: size}
}

// TypeName returns the HLSL type name of the expression.
func (r Ref) TypeName() (string, error) {
	return TypeName(r.Kind, r.Size)
}

func (r Ref) String() string {
	return r.Text
}

// table returns the swizzle table for the expression; scalars
// accept swizzles of their single component, as in HLSL.
func (r Ref) table() (*swizzle.Table, error) {
	t := swizzle.ForArity(r.Size)
	if t == nil {
		return nil, fmt.Errorf("%w: %d", ErrSize, r.Size)
	}
	return t, nil
}

// operand returns the text of r for use before a postfix member
// or index operator, in parentheses unless it is a primary expression.
func (r Ref) operand() string {
	if isPrimary(r.Text) {
		return r.Text
	}
	return "(" + r.Text + ")"
}

// isPrimary returns whether text is a name, a literal, or a chain of
// member accesses, calls and indexes on one, so that a postfix operator
// applies to all of it. Only bracketed text may hold other characters.
func isPrimary(text string) bool {
	if text == "" {
		return false
	}
	depth := 0
	for _, c := range text {
		switch {
		case c == '(' || c == '[':
			depth++
		case c == ')' || c == ']':
			depth--
			if depth < 0 {
				return false
			}
		case depth > 0:
		case c == '_' || c == '.' || unicode.IsLetter(c) || unicode.IsDigit(c):
		default:
			return false
		}
	}
	return depth == 0
}

// Member returns the swizzle access of r with the given name, which
// may be spelled in any alphabet. The HLSL text uses the lower-case
// spelling of the same alphabet. The result is an lvalue only if r is
// and the swizzle does not repeat a component.
func Member(r Ref, name string) (Ref, error) {
	t, err := r.table()
	if err != nil {
		return Ref{}, err
	}
	s, err := t.Lookup(name)
	if err != nil {
		return Ref{}, err
	}
	return Ref{Text: r.operand() + "." + s.Canonical(), Kind: r.Kind, Size: s.Size, LValue: r.LValue && s.Assignable, repeated: r.repeated || (r.LValue && !s.Assignable)}, nil
}

// Index returns the component of vector r at the given index expression,
// which may only be known when the shader runs. This has no meaning in
// Go code on the host, where only constant indexes are allowed.
func Index(r Ref, index string) (Ref, error) {
	if r.Size < 2 || r.Size > swizzle.MaxArity {
		return Ref{}, fmt.Errorf("%w: cannot index a value of size %d", ErrSize, r.Size)
	}
	return Ref{Text: r.operand() + "[" + index + "]", Kind: r.Kind, Size: 1, LValue: r.LValue, repeated: r.repeated}, nil
}

// Assign returns the HLSL assignment statement of rhs to lhs.
// Assigning through a swizzle that repeats a component returns
// [swizzle.ErrNotAssignable], and assigning to any other expression
// that is not storage returns [ErrNotLValue]. A scalar rhs is broadcast, as in HLSL.
func Assign(lhs, rhs Ref) (string, error) {
	if lhs.repeated {
		return "", fmt.Errorf("%w: %s", swizzle.ErrNotAssignable, lhs.Text)
	}
	if !lhs.LValue {
		return "", fmt.Errorf("%w: %s", ErrNotLValue, lhs.Text)
	}
	if rhs.Size != 1 && rhs.Size != lhs.Size {
		return "", fmt.Errorf("%w: cannot assign %d components to %d", ErrSize, rhs.Size, lhs.Size)
	}
	return lhs.Text + " = " + rhs.Text + ";", nil
}
