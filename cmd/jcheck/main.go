// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jcheck parses JSON files and reports whether they are valid.
//
// Usage:
//
//	jcheck [flags] [file ...]
//
// With no file arguments, or with the argument "-", jcheck reads standard
// input. For each valid input, jcheck prints the value in minimal form, or
// pretty-printed with --indent. Use --path to print only the value found by
// following a dotted path of object keys and array offsets, for example
// --path list.0.name.
//
// The following environment variables provide defaults:
//
//	JCHECK_DEBUG       enable debug logging (e.g. JCHECK_DEBUG=1)
//	JCHECK_MAX_DEPTH   maximum nesting depth of arrays and objects
package main

import (
	"context"

	"github.com/spf13/cobra"
)

func main() {
	cobra.CheckErr(newCLI().ExecuteContext(context.Background()))
}
