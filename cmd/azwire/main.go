// Package main provides the azwire command-line tool.
package main

import (
	"os"

	"github.com/gork-labs/azwire/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
