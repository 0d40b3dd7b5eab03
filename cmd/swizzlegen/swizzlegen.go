// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command swizzlegen generates the swizzle accessor methods of
// the sltype vector types, and optionally exports the swizzle table.
package main

import (
	"cogentcore.org/core/cli"
	"cogentcore.org/sltype/swizzlegen"
)

func main() {
	opts := cli.DefaultOptions("swizzlegen", "Swizzlegen generates the swizzle accessor methods of shader vector types.")
	cli.Run(opts, &swizzlegen.Config{}, swizzlegen.Generate)
}
