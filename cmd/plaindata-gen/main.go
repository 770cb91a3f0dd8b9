// Package main provides the CLI entrypoint for plaindata-gen.
//
// plaindata-gen is a Go codegen tool that:
//   - Reads a YAML manifest naming struct types and the capabilities they want
//   - Parses the Go packages (AST + go/types) holding those types
//   - Picks an equality, ordering and hashing strategy per field
//   - Generates Equal, Compare, Hash, String, Replace and friends
//   - Checks in CI that generated code is up to date
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), Root())
}
