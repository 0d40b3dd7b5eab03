// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swizzle

import (
	"fmt"
	"strings"
)

// Alphabet is one of the spellings of the vector components.
// All alphabets name the same physical component order,
// so x, X, r and R all refer to component 0.
type Alphabet int32

const (
	// Position is the lower-case positional alphabet xyzw.
	Position Alphabet = iota

	// PositionUpper is the upper-case positional alphabet XYZW.
	PositionUpper

	// Color is the lower-case color alphabet rgba.
	Color

	// ColorUpper is the upper-case color alphabet RGBA.
	ColorUpper

	// AlphabetN is the number of alphabets.
	AlphabetN
)

var alphabetLetters = [AlphabetN]string{"xyzw", "XYZW", "rgba", "RGBA"}

var alphabetNames = [AlphabetN]string{"Position", "PositionUpper", "Color", "ColorUpper"}

// AlphabetValues returns all valid alphabets.
func AlphabetValues() []Alphabet {
	return []Alphabet{Position, PositionUpper, Color, ColorUpper}
}

// IsValid returns whether a is a defined alphabet.
func (a Alphabet) IsValid() bool {
	return a >= 0 && a < AlphabetN
}

// Letters returns the four component letters of the alphabet, in order.
func (a Alphabet) Letters() string {
	if !a.IsValid() {
		return ""
	}
	return alphabetLetters[a]
}

// Letter returns the letter for component index i.
func (a Alphabet) Letter(i int) byte {
	return alphabetLetters[a][i]
}

// IsUpper returns whether the alphabet is upper case.
func (a Alphabet) IsUpper() bool {
	return a == PositionUpper || a == ColorUpper
}

// Lower returns the lower-case alphabet of the same family.
func (a Alphabet) Lower() Alphabet {
	switch a {
	case PositionUpper:
		return Position
	case ColorUpper:
		return Color
	}
	return a
}

// Upper returns the upper-case alphabet of the same family.
func (a Alphabet) Upper() Alphabet {
	switch a {
	case Position:
		return PositionUpper
	case Color:
		return ColorUpper
	}
	return a
}

func (a Alphabet) String() string {
	if !a.IsValid() {
		return fmt.Sprintf("Alphabet(%d)", int32(a))
	}
	return alphabetNames[a]
}

// SetString sets the alphabet from its name or from its letters,
// so both "Color" and "rgba" give [Color].
func (a *Alphabet) SetString(s string) error {
	for i := range AlphabetN {
		if alphabetNames[i] == s || alphabetLetters[i] == s || strings.EqualFold(alphabetNames[i], s) {
			*a = i
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Alphabet", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (a Alphabet) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (a *Alphabet) UnmarshalText(text []byte) error { return a.SetString(string(text)) }

// alphabetOf returns the alphabet containing letter c.
// Letters are unique across alphabets, so there is at most one.
func alphabetOf(c byte) (Alphabet, bool) {
	for i := range AlphabetN {
		if strings.IndexByte(alphabetLetters[i], c) >= 0 {
			return i, true
		}
	}
	return 0, false
}
