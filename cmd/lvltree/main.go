// Package main is the entry point for the lvltree CLI.
//
// Build-time version info is injected via
// -ldflags "-X main.version=...".
package main

import (
	"github.com/katalvlaran/lvltree/internal/cli"
)

var version = "dev"

func main() {
	cli.Version = version
	cli.Main()
}
