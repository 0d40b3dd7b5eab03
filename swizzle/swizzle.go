// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swizzle provides the naming and permutation table for
// shader vector swizzles: for a vector of a given arity, every
// accessor name in every component alphabet maps to the ordered
// component indices it selects, and to whether it can be the
// target of an assignment.
package swizzle

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MinArity is the smallest vector arity.
	MinArity = 2

	// MaxArity is the largest vector arity.
	MaxArity = 4

	// MaxLen is the longest swizzle: the result is at most a 4 vector.
	MaxLen = 4
)

var (
	// ErrEmpty is returned for an empty swizzle name.
	ErrEmpty = errors.New("swizzle: empty name")

	// ErrTooLong is returned for a name with more than [MaxLen] components.
	ErrTooLong = errors.New("swizzle: more than 4 components")

	// ErrMixedAlphabet is returned for a name that mixes alphabets, such as "xg".
	ErrMixedAlphabet = errors.New("swizzle: mixed component alphabets")

	// ErrUnknownComponent is returned for a letter that is in no alphabet.
	ErrUnknownComponent = errors.New("swizzle: unknown component")

	// ErrOutOfRange is returned for a component past the end of the vector,
	// such as z on a 2 vector.
	ErrOutOfRange = errors.New("swizzle: component out of range")

	// ErrNotAssignable is returned when a swizzle that repeats a
	// component is used as an assignment target.
	ErrNotAssignable = errors.New("swizzle: repeated components are not assignable")
)

// Swizzle is one accessor on a vector of a given arity.
type Swizzle struct {

	// Name is the accessor name, such as "zyx" or "RG".
	Name string `json:"name" yaml:"name" toml:"name"`

	// Arity is the number of components of the source vector.
	Arity int `json:"arity" yaml:"arity" toml:"arity"`

	// Size is the number of components of the result; 1 is a scalar.
	Size int `json:"size" yaml:"size" toml:"size"`

	// Indices are the selected component indices, in result order.
	Indices []int `json:"indices" yaml:"indices,flow" toml:"indices"`

	// Alphabet is the alphabet the name is spelled in.
	Alphabet Alphabet `json:"alphabet" yaml:"alphabet" toml:"alphabet"`

	// Assignable is whether all indices are distinct, so that the
	// swizzle denotes storage and can be assigned to.
	Assignable bool `json:"assignable" yaml:"assignable" toml:"assignable"`
}

// New returns the swizzle selecting the given indices of a vector
// of the given arity, spelled in the given alphabet.
func New(arity int, a Alphabet, indices ...int) (Swizzle, error) {
	if arity < 1 || arity > MaxArity {
		return Swizzle{}, fmt.Errorf("swizzle: invalid vector arity %d", arity)
	}
	if !a.IsValid() {
		return Swizzle{}, fmt.Errorf("swizzle: invalid alphabet %v", a)
	}
	if len(indices) == 0 {
		return Swizzle{}, ErrEmpty
	}
	if len(indices) > MaxLen {
		return Swizzle{}, fmt.Errorf("%w: %v", ErrTooLong, indices)
	}
	var sb strings.Builder
	for _, i := range indices {
		if i < 0 || i >= arity {
			return Swizzle{}, fmt.Errorf("%w: index %d on a %d vector", ErrOutOfRange, i, arity)
		}
		sb.WriteByte(a.Letter(i))
	}
	idx := make([]int, len(indices))
	copy(idx, indices)
	return Swizzle{Name: sb.String(), Arity: arity, Size: len(idx), Indices: idx, Alphabet: a, Assignable: distinct(idx)}, nil
}

// Parse parses the given accessor name for a vector of the given arity.
func Parse(name string, arity int) (Swizzle, error) {
	if arity < 1 || arity > MaxArity {
		return Swizzle{}, fmt.Errorf("swizzle: invalid vector arity %d", arity)
	}
	if name == "" {
		return Swizzle{}, ErrEmpty
	}
	if len(name) > MaxLen {
		return Swizzle{}, fmt.Errorf("%w: %q", ErrTooLong, name)
	}
	a, ok := alphabetOf(name[0])
	if !ok {
		return Swizzle{}, fmt.Errorf("%w: %q in %q", ErrUnknownComponent, name[0], name)
	}
	letters := a.Letters()
	idx := make([]int, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		ci := strings.IndexByte(letters, c)
		if ci < 0 {
			if _, other := alphabetOf(c); other {
				return Swizzle{}, fmt.Errorf("%w: %q", ErrMixedAlphabet, name)
			}
			return Swizzle{}, fmt.Errorf("%w: %q in %q", ErrUnknownComponent, c, name)
		}
		if ci >= arity {
			return Swizzle{}, fmt.Errorf("%w: %q on a %d vector", ErrOutOfRange, name, arity)
		}
		idx[i] = ci
	}
	return Swizzle{Name: name, Arity: arity, Size: len(idx), Indices: idx, Alphabet: a, Assignable: distinct(idx)}, nil
}

// MustParse is like [Parse] but panics on an error.
func MustParse(name string, arity int) Swizzle {
	s, err := Parse(name, arity)
	if err != nil {
		panic(err)
	}
	return s
}

// In returns the same swizzle spelled in the given alphabet.
func (s Swizzle) In(a Alphabet) Swizzle {
	b := make([]byte, len(s.Indices))
	for i, ci := range s.Indices {
		b[i] = a.Letter(ci)
	}
	s.Name = string(b)
	s.Alphabet = a
	return s
}

// Canonical returns the lower-case spelling in the same alphabet
// family, which is the spelling HLSL accepts.
func (s Swizzle) Canonical() string {
	return s.In(s.Alphabet.Lower()).Name
}

// MethodName returns the name of the Go accessor method for the swizzle.
// Positional length 1 swizzles are struct fields rather than methods.
func (s Swizzle) MethodName() string {
	return s.In(s.Alphabet.Upper()).Name
}

// SetterName returns the name of the Go setter method for the swizzle,
// or "" if the swizzle is not assignable.
func (s Swizzle) SetterName() string {
	if !s.Assignable {
		return ""
	}
	return "Set" + s.MethodName()
}

// Same returns whether s and o select the same indices from
// vectors of the same arity, regardless of spelling.
func (s Swizzle) Same(o Swizzle) bool {
	if s.Arity != o.Arity || len(s.Indices) != len(o.Indices) {
		return false
	}
	for i := range s.Indices {
		if s.Indices[i] != o.Indices[i] {
			return false
		}
	}
	return true
}

func (s Swizzle) String() string {
	return s.Name
}

// Enumerate returns every swizzle of a vector of the given arity with
// a length in [minLen, maxLen], spelled in the given alphabet. Swizzles
// are ordered by length, then lexicographically by index.
func Enumerate(arity int, a Alphabet, minLen, maxLen int) []Swizzle {
	minLen = max(minLen, 1)
	maxLen = min(maxLen, MaxLen)
	var all []Swizzle
	for n := minLen; n <= maxLen; n++ {
		idx := make([]int, n)
		for {
			s, err := New(arity, a, idx...)
			if err != nil {
				panic(err)
			}
			all = append(all, s)
			if !next(idx, arity) {
				break
			}
		}
	}
	return all
}

// next advances idx to the next tuple in lexicographic order,
// returning false once all tuples have been visited.
func next(idx []int, arity int) bool {
	for i := len(idx) - 1; i >= 0; i-- {
		idx[i]++
		if idx[i] < arity {
			return true
		}
		idx[i] = 0
	}
	return false
}

func distinct(idx []int) bool {
	var seen [MaxArity]bool
	for _, i := range idx {
		if seen[i] {
			return false
		}
		seen[i] = true
	}
	return true
}
