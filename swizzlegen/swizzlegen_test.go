// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swizzlegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/sltype/swizzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMethods(t *testing.T) {
	m := Getter(swizzle.MustParse("zyx", 3))
	assert.Equal(t, Method{Recv: "v Vector3[T]", Name: "ZYX", Result: "Vector3[T]", Body: "return Vector3[T]{v.Z, v.Y, v.X}"}, m)

	m = Getter(swizzle.MustParse("a", 4))
	assert.Equal(t, Method{Recv: "v Vector4[T]", Name: "A", Result: "T", Body: "return v.W"}, m)

	m = Setter(swizzle.MustParse("bg", 3))
	assert.Equal(t, Method{Recv: "v *Vector3[T]", Name: "SetBG", Param: "o Vector2[T]", Body: "v.Z, v.Y = o.X, o.Y"}, m)

	m = Setter(swizzle.MustParse("G", 2))
	assert.Equal(t, Method{Recv: "v *Vector2[T]", Name: "SetG", Param: "x T", Body: "v.Y = x"}, m)
}

func TestArityGroups(t *testing.T) {
	gs := ArityGroups(2)
	require.Len(t, gs, 4)
	assert.Len(t, gs[0].Methods, 4+8+16)
	assert.Len(t, gs[1].Methods, 2+4+8+16)
	assert.Len(t, gs[2].Methods, 2)
	assert.Len(t, gs[3].Methods, 2+2)
	assert.Equal(t, "Vector2 getters in the XYZW alphabet.", gs[0].Comment)

	gs = ArityGroups(4)
	assert.Len(t, gs[2].Methods, 12+24+24)
	assert.Len(t, gs[3].Methods, 4+12+24+24)
	for _, m := range gs[2].Methods {
		s := swizzle.MustParse(m.Name[len("Set"):], 4)
		assert.True(t, s.Assignable, m.Name)
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	c := &Config{Dir: dir, Output: "swizzlegen.go", Package: "sltype", Table: "swizzles.yaml"}
	require.NoError(t, Generate(c))

	src, err := os.ReadFile(filepath.Join(dir, c.Output))
	require.NoError(t, err)

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, c.Output, src, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "sltype", f.Name.Name)
	assert.True(t, ast.IsGenerated(f))

	nfunc := 0
	for _, d := range f.Decls {
		if _, ok := d.(*ast.FuncDecl); ok {
			nfunc++
		}
	}
	want := 0
	for n := swizzle.MinArity; n <= swizzle.MaxArity; n++ {
		for _, g := range ArityGroups(n) {
			want += len(g.Methods)
		}
	}
	assert.Equal(t, want, nfunc)
	assert.Contains(t, string(src), "func (v *Vector4[T]) SetXYZW(o Vector4[T]) { v.X, v.Y, v.Z, v.W = o.X, o.Y, o.Z, o.W }\n")
	assert.NotContains(t, string(src), "SetXX(")

	committed, err := os.ReadFile(filepath.Join("..", "swizzlegen.go"))
	require.NoError(t, err)
	assert.Equal(t, string(committed), string(src), "generated accessors are out of date; run go generate")

	tb, err := os.ReadFile(filepath.Join(dir, c.Table))
	require.NoError(t, err)
	var doc swizzle.Document
	require.NoError(t, yaml.Unmarshal(tb, &doc))
	require.Len(t, doc.Tables, 3)
	assert.Equal(t, 2, doc.Tables[0].Arity)
	assert.Equal(t, swizzle.ForArity(4).Len(), len(doc.Tables[2].Swizzles))
}

func TestGenerateErrors(t *testing.T) {
	dir := t.TempDir()
	c := &Config{Dir: dir, Output: "out.go", Table: "table.txt"}
	assert.Error(t, Generate(c))

	c = &Config{Dir: filepath.Join(dir, "missing"), Output: "out.go"}
	assert.Error(t, Generate(c))
}
