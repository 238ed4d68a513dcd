// Command tourneyplan is the command-line entry point for the
// tournament schedule planner.
package main

import (
	"os"

	"github.com/tourneyplan/tourneyplan/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
