// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swizzlegen generates the swizzle accessor methods of the
// shader vector types, and exports the swizzle table for use by
// shader emitters.
package swizzlegen

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/sltype/swizzle"
	"golang.org/x/tools/imports"
)

// Method is one generated accessor method.
type Method struct {
	Recv   string // receiver, eg: "v Vector3[T]"
	Name   string // method name, eg: "ZYX"
	Param  string // parameter list, if any
	Result string // result type, if any
	Body   string // single statement body
}

// Group is a commented run of methods in the generated file.
type Group struct {
	Comment string
	Methods []Method
}

// File is the data for the generated file template.
type File struct {
	Package string
	Groups  []Group
}

// FileTmpl is the template for the generated file.
var FileTmpl = template.Must(template.New("File").Parse(
	`// Code generated by "swizzlegen"; DO NOT EDIT.

package {{.Package}}
{{range .Groups}}
// {{.Comment}}

{{range .Methods}}func ({{.Recv}}) {{.Name}}({{.Param}}){{if .Result}} {{.Result}}{{end}} { {{.Body}} }
{{end}}{{end}}`))

// Generator holds the state of the generator.
type Generator struct {
	Config *Config      // The configuration information
	Buf    bytes.Buffer // The accumulated output.
	File   File         // The template data
}

// NewGenerator returns a new generator with the given configuration information.
func NewGenerator(c *Config) *Generator {
	return &Generator{Config: c}
}

// Generate generates the swizzle accessors and, if [Config.Table]
// is set, exports the swizzle table, according to the given config info.
func Generate(c *Config) error {
	g := NewGenerator(c)
	src, err := g.Generate()
	if err != nil {
		return fmt.Errorf("swizzlegen: error generating code: %w", err)
	}
	fn := filepath.Join(c.Dir, c.Output)
	if err := os.WriteFile(fn, src, 0666); err != nil {
		return fmt.Errorf("swizzlegen: error writing code: %w", err)
	}
	slog.Info("swizzlegen: wrote accessors", "file", fn, "bytes", len(src))
	if c.Table == "" {
		return nil
	}
	tfn := filepath.Join(c.Dir, c.Table)
	if err := WriteTable(tfn); err != nil {
		return fmt.Errorf("swizzlegen: error writing table: %w", err)
	}
	slog.Info("swizzlegen: wrote table", "file", tfn)
	return nil
}

// Generate builds the groups, executes the template and
// formats the result.
func (g *Generator) Generate() ([]byte, error) {
	pkg := g.Config.Package
	if pkg == "" {
		pkg = "sltype"
	}
	g.File = File{Package: pkg, Groups: Groups()}
	g.Buf.Reset()
	if err := FileTmpl.Execute(&g.Buf, &g.File); err != nil {
		return nil, fmt.Errorf("programmer error: internal error: error executing template: %w", err)
	}
	opts := &imports.Options{Comments: true, TabIndent: true, TabWidth: 8, FormatOnly: true}
	return imports.Process(g.Config.Output, g.Buf.Bytes(), opts)
}

// Groups returns all generated method groups, for every arity.
func Groups() []Group {
	var gs []Group
	for n := swizzle.MinArity; n <= swizzle.MaxArity; n++ {
		gs = append(gs, ArityGroups(n)...)
	}
	return gs
}

// ArityGroups returns the method groups for the vector of the given arity:
// getters and then setters, each in the XYZW and then the RGBA alphabet.
// Positional length 1 swizzles are the struct fields, so only the
// color alphabet has length 1 methods.
func ArityGroups(n int) []Group {
	typ := TypeName(n)
	var gs []Group
	for _, a := range []swizzle.Alphabet{swizzle.PositionUpper, swizzle.ColorUpper} {
		g := Group{Comment: fmt.Sprintf("%s getters in the %s alphabet.", typeBase(n), a.Letters())}
		for _, s := range swizzle.Enumerate(n, a, minLen(a), swizzle.MaxLen) {
			g.Methods = append(g.Methods, Getter(s))
		}
		logx.PrintlnDebug("swizzlegen:", typ, a, "getters:", len(g.Methods))
		gs = append(gs, g)
	}
	for _, a := range []swizzle.Alphabet{swizzle.PositionUpper, swizzle.ColorUpper} {
		g := Group{Comment: fmt.Sprintf("%s setters in the %s alphabet; swizzles that repeat a component have none.", typeBase(n), a.Letters())}
		for _, s := range swizzle.Enumerate(n, a, minLen(a), swizzle.MaxLen) {
			if s.Assignable {
				g.Methods = append(g.Methods, Setter(s))
			}
		}
		logx.PrintlnDebug("swizzlegen:", typ, a, "setters:", len(g.Methods))
		gs = append(gs, g)
	}
	return gs
}

func minLen(a swizzle.Alphabet) int {
	if a == swizzle.ColorUpper {
		return 1
	}
	return 2
}

// TypeName returns the generic type for a result of n components,
// which is T for a scalar.
func TypeName(n int) string {
	if n == 1 {
		return "T"
	}
	return typeBase(n) + "[T]"
}

func typeBase(n int) string {
	return fmt.Sprintf("Vector%d", n)
}

// field returns the struct field for component index i.
func field(i int) string {
	return swizzle.PositionUpper.Letters()[i : i+1]
}

// Getter returns the getter method for the given swizzle.
func Getter(s swizzle.Swizzle) Method {
	m := Method{Recv: "v " + TypeName(s.Arity), Name: s.MethodName(), Result: TypeName(s.Size)}
	if s.Size == 1 {
		m.Body = "return v." + field(s.Indices[0])
		return m
	}
	parts := make([]string, s.Size)
	for i, ci := range s.Indices {
		parts[i] = "v." + field(ci)
	}
	m.Body = fmt.Sprintf("return %s{%s}", m.Result, strings.Join(parts, ", "))
	return m
}

// Setter returns the setter method for the given swizzle,
// which must be assignable.
func Setter(s swizzle.Swizzle) Method {
	m := Method{Recv: "v *" + TypeName(s.Arity), Name: s.SetterName()}
	if s.Size == 1 {
		m.Param = "x T"
		m.Body = "v." + field(s.Indices[0]) + " = x"
		return m
	}
	lhs := make([]string, s.Size)
	rhs := make([]string, s.Size)
	for i, ci := range s.Indices {
		lhs[i] = "v." + field(ci)
		rhs[i] = "o." + field(i)
	}
	m.Param = "o " + TypeName(s.Size)
	m.Body = strings.Join(lhs, ", ") + " = " + strings.Join(rhs, ", ")
	return m
}

// WriteTable exports the swizzle tables for all arities to the
// given file, in the format given by its extension.
func WriteTable(fname string) error {
	f, err := swizzle.FormatFromFilename(fname)
	if err != nil {
		return err
	}
	var ts []*swizzle.Table
	for n := swizzle.MinArity; n <= swizzle.MaxArity; n++ {
		ts = append(ts, swizzle.ForArity(n))
	}
	var buf bytes.Buffer
	if err := swizzle.NewDocument(ts...).Write(&buf, f); err != nil {
		return err
	}
	return os.WriteFile(fname, buf.Bytes(), 0666)
}
