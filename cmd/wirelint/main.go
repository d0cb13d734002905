// Package main runs the wirelint analyzer as a standalone vet tool.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/gork-labs/azwire/internal/wirelint"
)

func main() {
	singlechecker.Main(wirelint.Analyzer)
}
