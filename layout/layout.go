// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout checks that Go structs built from the sltype types
// have the same memory layout as the HLSL constant buffer packing of
// the same fields, so that they can be uploaded to the GPU as is.
//
// The HLSL rules are: every element is 4 bytes; a scalar or vector
// cannot cross a 16 byte boundary; structs and array elements start
// on a 16 byte boundary, and so does whatever follows a struct.
// In addition, every struct must have a size that is a multiple of 16.
package layout

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"cogentcore.org/sltype"
)

// Register is the size of an HLSL constant buffer register, in bytes.
const Register = 16

var vectorPkg = reflect.TypeFor[sltype.Bool2]().PkgPath()

// Check checks the struct type of v, which may also be a pointer
// to a struct, returning all of the layout problems found, joined.
func Check(v any) error {
	t := reflect.TypeOf(v)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return fmt.Errorf("layout: %v is not a struct type", t)
	}
	var errs []error
	checkStruct(t, t.Name(), &errs)
	return errors.Join(errs...)
}

// Size returns the HLSL packed size of the given struct type,
// and any layout problems found in it.
func Size(t reflect.Type) (int, error) {
	if t.Kind() != reflect.Struct {
		return 0, fmt.Errorf("layout: %v is not a struct type", t)
	}
	var errs []error
	n := checkStruct(t, t.Name(), &errs)
	return n, errors.Join(errs...)
}

// class is the packing class of a field type.
type class int

const (
	leaf class = iota
	aggregate
	invalid
)

// IsVector returns whether t is one of the sltype vector types.
func IsVector(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.PkgPath() == vectorPkg && strings.HasPrefix(t.Name(), "Vector")
}

func classify(t reflect.Type) class {
	switch t.Kind() {
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return leaf
	case reflect.Array:
		return aggregate
	case reflect.Struct:
		if IsVector(t) {
			return leaf
		}
		return aggregate
	}
	return invalid
}

func roundUp(n, to int) int {
	return (n + to - 1) / to * to
}

// checkStruct checks the fields of struct type t, appending problems
// to errs, and returns its HLSL packed size.
func checkStruct(t reflect.Type, path string, errs *[]error) int {
	off := 0
	after := false // previous field was a struct
	for i := range t.NumField() {
		f := t.Field(i)
		fp := path + "." + f.Name
		size := int(f.Type.Size())
		cl := classify(f.Type)
		switch cl {
		case invalid:
			*errs = append(*errs, fmt.Errorf("%s: type %v has no 4 byte HLSL equivalent", fp, f.Type))
		case aggregate:
			size = checkAggregate(f.Type, fp, errs)
		}
		if cl == aggregate || after || (off%Register)+size > Register {
			off = roundUp(off, Register)
		}
		if int(f.Offset) != off {
			*errs = append(*errs, fmt.Errorf("%s: offset %d in Go is %d in HLSL; add padding before it", fp, f.Offset, off))
			off = int(f.Offset)
		}
		off += size
		after = cl == aggregate && f.Type.Kind() == reflect.Struct
	}
	if int(t.Size())%Register != 0 {
		*errs = append(*errs, fmt.Errorf("%s: size %d is not a multiple of %d; add padding at the end", path, t.Size(), Register))
	}
	return off
}

func checkAggregate(t reflect.Type, path string, errs *[]error) int {
	if t.Kind() == reflect.Struct {
		return checkStruct(t, path, errs)
	}
	et := t.Elem()
	ep := path + "[]"
	switch classify(et) {
	case invalid:
		*errs = append(*errs, fmt.Errorf("%s: type %v has no 4 byte HLSL equivalent", ep, et))
	case aggregate:
		checkAggregate(et, ep, errs)
	}
	if int(et.Size())%Register != 0 {
		*errs = append(*errs, fmt.Errorf("%s: element size %d is not a multiple of %d, as HLSL array elements are", ep, et.Size(), Register))
	}
	return int(t.Size())
}
