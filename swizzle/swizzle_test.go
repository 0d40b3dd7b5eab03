// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swizzle

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		arity      int
		indices    []int
		alphabet   Alphabet
		assignable bool
	}{
		{"x", 2, []int{0}, Position, true},
		{"zyx", 3, []int{2, 1, 0}, Position, true},
		{"XXYY", 2, []int{0, 0, 1, 1}, PositionUpper, false},
		{"bgr", 3, []int{2, 1, 0}, Color, true},
		{"AR", 4, []int{3, 0}, ColorUpper, true},
		{"wzyx", 4, []int{3, 2, 1, 0}, Position, true},
		{"aaaa", 4, []int{3, 3, 3, 3}, Color, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(tt.name, tt.arity)
			require.NoError(t, err)
			assert.Equal(t, tt.indices, s.Indices)
			assert.Equal(t, tt.alphabet, s.Alphabet)
			assert.Equal(t, tt.assignable, s.Assignable)
			assert.Equal(t, len(tt.indices), s.Size)
			assert.Equal(t, tt.arity, s.Arity)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		arity int
		err   error
	}{
		{"", 4, ErrEmpty},
		{"xyzwx", 4, ErrTooLong},
		{"xg", 4, ErrMixedAlphabet},
		{"rY", 4, ErrMixedAlphabet},
		{"xq", 4, ErrUnknownComponent},
		{"s", 4, ErrUnknownComponent},
		{"xyz", 2, ErrOutOfRange},
		{"a", 3, ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.name, tt.arity)
			assert.ErrorIs(t, err, tt.err)
		})
	}
	_, err := Parse("x", 5)
	assert.Error(t, err)
	assert.Panics(t, func() { MustParse("xg", 4) })
}

func TestAlphabetEquivalence(t *testing.T) {
	xyz := MustParse("xyz", 3)
	for _, name := range []string{"XYZ", "rgb", "RGB"} {
		s := MustParse(name, 3)
		assert.True(t, xyz.Same(s), name)
		assert.Equal(t, xyz.Indices, s.Indices, name)
	}
	assert.False(t, xyz.Same(MustParse("zyx", 3)))
	assert.False(t, xyz.Same(MustParse("xyz", 4)))

	assert.Equal(t, "bgr", MustParse("ZYX", 3).In(Color).Name)
	assert.Equal(t, "rgba", MustParse("RGBA", 4).Canonical())
	assert.Equal(t, "xy", MustParse("XY", 2).Canonical())
	assert.Equal(t, "BGR", MustParse("bgr", 3).MethodName())
	assert.Equal(t, "SetYX", MustParse("yx", 2).SetterName())
	assert.Equal(t, "", MustParse("xx", 2).SetterName())
}

func TestEnumerate(t *testing.T) {
	for arity := MinArity; arity <= MaxArity; arity++ {
		want := 0
		p := 1
		for n := 1; n <= MaxLen; n++ {
			p *= arity
			want += p
		}
		all := Enumerate(arity, Position, 1, MaxLen)
		assert.Len(t, all, want)

		names := map[string]bool{}
		for _, s := range all {
			assert.False(t, names[s.Name], "duplicate %s", s.Name)
			names[s.Name] = true
			ps := MustParse(s.Name, arity)
			assert.Equal(t, s, ps)
		}
	}

	two := Enumerate(2, ColorUpper, 2, 2)
	var names []string
	for _, s := range two {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"RR", "RG", "GR", "GG"}, names)
}

func TestAssignableCounts(t *testing.T) {
	// number of distinct-index tuples of length 2..4
	want := map[int]int{2: 2, 3: 6 + 6, 4: 12 + 24 + 24}
	for arity, n := range want {
		count := 0
		for _, s := range Enumerate(arity, Position, 2, MaxLen) {
			if s.Assignable {
				count++
			}
		}
		assert.Equal(t, n, count, "arity %d", arity)
	}
}

func TestTable(t *testing.T) {
	assert.Nil(t, ForArity(0))
	require.NotNil(t, ForArity(1))
	assert.Same(t, ForArity(1), ForArity(1))
	assert.Equal(t, 4*4, ForArity(1).Len())
	s1, err := ForArity(1).Lookup("rrr")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, s1.Indices)
	assert.Nil(t, ForArity(5))

	t4 := ForArity(4)
	require.NotNil(t, t4)
	assert.Equal(t, 4*(4+16+64+256), t4.Len())

	s, err := t4.Lookup("gbr")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, s.Indices)

	_, err = t4.Lookup("xg")
	assert.ErrorIs(t, err, ErrMixedAlphabet)

	_, err = t4.CheckAssign("xy")
	assert.NoError(t, err)
	_, err = t4.CheckAssign("xx")
	assert.ErrorIs(t, err, ErrNotAssignable)

	_, err = ForArity(2).Lookup("z")
	assert.ErrorIs(t, err, ErrOutOfRange)

	ents := t4.Entries()
	ents[0].Name = "changed"
	assert.Equal(t, "x", t4.Entries()[0].Name)
}

func TestAlphabet(t *testing.T) {
	var a Alphabet
	require.NoError(t, a.SetString("rgba"))
	assert.Equal(t, Color, a)
	require.NoError(t, a.SetString("PositionUpper"))
	assert.Equal(t, PositionUpper, a)
	assert.Error(t, a.SetString("hsv"))
	assert.Equal(t, "ColorUpper", ColorUpper.String())
	assert.Equal(t, Color, ColorUpper.Lower())
	assert.Equal(t, PositionUpper, Position.Upper())
	assert.True(t, ColorUpper.IsUpper())
	assert.Equal(t, "", Alphabet(9).Letters())
}

func TestExport(t *testing.T) {
	tbl := ForArity(2)

	var buf bytes.Buffer
	require.NoError(t, tbl.WriteJSON(&buf))
	var jd Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &jd))
	require.Len(t, jd.Tables, 1)
	assert.Equal(t, 2, jd.Tables[0].Arity)
	assert.Equal(t, tbl.Entries(), jd.Tables[0].Swizzles)

	buf.Reset()
	require.NoError(t, tbl.WriteYAML(&buf))
	assert.Contains(t, buf.String(), "alphabet: ColorUpper")
	var yd Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &yd))
	assert.Equal(t, tbl.Entries(), yd.Tables[0].Swizzles)

	buf.Reset()
	require.NoError(t, tbl.WriteTOML(&buf))
	var td Document
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &td))
	assert.Equal(t, tbl.Entries(), td.Tables[0].Swizzles)

	f, err := FormatFromFilename("table.YML")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)
	_, err = FormatFromFilename("table.txt")
	assert.Error(t, err)
	assert.Error(t, NewDocument(tbl).Write(&buf, Format("xml")))
}
