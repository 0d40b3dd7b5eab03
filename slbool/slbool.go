// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package slbool defines an HLSL friendly int32 Bool type.
The standard Go bool type is 1 byte wide, whereas bool
values in HLSL buffers occupy 4 bytes, so shader parameter
structs must use this type to match the GPU-side layout.
*/
package slbool

// Bool is an HLSL friendly int32 Bool type.
type Bool int32

const (
	// False is the [Bool] false value
	False Bool = 0
	// True is the [Bool] true value
	True Bool = 1
)

// Bool returns the Bool as a standard Go bool.
// Any non-zero value is true, as in HLSL.
func (b Bool) Bool() bool {
	return b != False
}

// IsTrue returns whether the bool is true
func (b Bool) IsTrue() bool {
	return b != False
}

// IsFalse returns whether the bool is false
func (b Bool) IsFalse() bool {
	return b == False
}

// SetBool sets the Bool from a standard Go bool
func (b *Bool) SetBool(bb bool) {
	*b = FromBool(bb)
}

// Not returns the logical negation of b.
func (b Bool) Not() Bool {
	return FromBool(b.IsFalse())
}

// And returns the logical and of b and o.
func (b Bool) And(o Bool) Bool {
	return FromBool(b.IsTrue() && o.IsTrue())
}

// Or returns the logical or of b and o.
func (b Bool) Or(o Bool) Bool {
	return FromBool(b.IsTrue() || o.IsTrue())
}

// Xor returns the logical exclusive or of b and o.
func (b Bool) Xor(o Bool) Bool {
	return FromBool(b.IsTrue() != o.IsTrue())
}

// String returns the bool as a string ("true"/"false")
func (b Bool) String() string {
	if b.IsTrue() {
		return "true"
	}
	return "false"
}

// FromString sets the bool from the given string
func (b *Bool) FromString(s string) {
	if s == "true" || s == "True" {
		b.SetBool(true)
	} else {
		b.SetBool(false)
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface
func (b Bool) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface
func (b *Bool) UnmarshalText(s []byte) error { b.FromString(string(s)); return nil }

// IsTrue returns whether the given bool is true
func IsTrue(b Bool) bool {
	return b != False
}

// IsFalse returns whether the given bool is false
func IsFalse(b Bool) bool {
	return b == False
}

// FromBool returns the given Go bool as a [Bool]
func FromBool(b bool) Bool {
	if b {
		return True
	}
	return False
}
