// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swizzlegen

// Config contains the configuration information
// used by swizzlegen
type Config struct {

	// the source directory of the vector package to generate the accessors in
	Dir string `default:"."`

	// the output file location relative to Dir
	Output string `default:"swizzlegen.go"`

	// the package name of the generated file
	Package string `default:"sltype"`

	// if specified, a file relative to Dir to which the swizzle table
	// for all vector arities is exported, in the format given by its
	// extension (.json, .yaml, .yml or .toml)
	Table string
}
