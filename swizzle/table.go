// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swizzle

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Table holds every swizzle of one vector arity, in all alphabets.
// It is the queryable surface a shader emitter uses to map an
// accessor name to component indices without deriving them itself.
type Table struct {

	// Arity is the vector arity the table is for.
	Arity int

	entries []Swizzle
	byName  map[string]int
}

var tables [MaxArity + 1]*Table

func init() {
	for n := 1; n <= MaxArity; n++ {
		tables[n] = NewTable(n)
	}
}

// ForArity returns the shared table for the given arity, which must
// be in [1, MaxArity]; arity 1 is the table of scalar swizzles, such
// as s.xxx. The table must not be modified.
func ForArity(arity int) *Table {
	if arity < 1 || arity > MaxArity {
		return nil
	}
	return tables[arity]
}

// NewTable builds the table for the given arity. Entries are ordered
// by alphabet, then by length, then lexicographically by index.
func NewTable(arity int) *Table {
	t := &Table{Arity: arity, byName: map[string]int{}}
	for _, a := range AlphabetValues() {
		for _, s := range Enumerate(arity, a, 1, MaxLen) {
			t.byName[s.Name] = len(t.entries)
			t.entries = append(t.entries, s)
		}
	}
	return t
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of all the entries in the table.
func (t *Table) Entries() []Swizzle {
	return slices.Clone(t.entries)
}

// Lookup returns the swizzle with the given name. For an invalid
// name, the error says why it is invalid.
func (t *Table) Lookup(name string) (Swizzle, error) {
	if i, ok := t.byName[name]; ok {
		return t.entries[i], nil
	}
	_, err := Parse(name, t.Arity)
	if err == nil {
		err = fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	return Swizzle{}, err
}

// CheckAssign returns the swizzle with the given name if it can be
// the target of an assignment, and [ErrNotAssignable] if it repeats
// a component.
func (t *Table) CheckAssign(name string) (Swizzle, error) {
	s, err := t.Lookup(name)
	if err != nil {
		return s, err
	}
	if !s.Assignable {
		return s, fmt.Errorf("%w: %q", ErrNotAssignable, name)
	}
	return s, nil
}

// Format is a table export format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// FormatFromFilename returns the export format for the extension of
// the given file name.
func FormatFromFilename(fname string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fname), "."))
	switch ext {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return "", fmt.Errorf("swizzle: no table format for file %q", fname)
}

// Document is the exported form of one or more tables.
type Document struct {
	Tables []TableDoc `json:"tables" yaml:"tables" toml:"tables"`
}

// TableDoc is the exported form of a [Table].
type TableDoc struct {
	Arity    int       `json:"arity" yaml:"arity" toml:"arity"`
	Swizzles []Swizzle `json:"swizzles" yaml:"swizzles" toml:"swizzles"`
}

// NewDocument returns the export document for the given tables.
func NewDocument(ts ...*Table) *Document {
	d := &Document{}
	for _, t := range ts {
		d.Tables = append(d.Tables, TableDoc{Arity: t.Arity, Swizzles: t.entries})
	}
	return d
}

// Write writes the document to w in the given format.
func (d *Document) Write(w io.Writer, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "\t")
		return enc.Encode(d)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(d)
	}
	return fmt.Errorf("swizzle: unknown table format %q", f)
}

// WriteJSON writes the table to w as JSON.
func (t *Table) WriteJSON(w io.Writer) error { return NewDocument(t).Write(w, JSON) }

// WriteYAML writes the table to w as YAML.
func (t *Table) WriteYAML(w io.Writer) error { return NewDocument(t).Write(w, YAML) }

// WriteTOML writes the table to w as TOML.
func (t *Table) WriteTOML(w io.Writer) error { return NewDocument(t).Write(w, TOML) }
