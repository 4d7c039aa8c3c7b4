// Package main is the entry point for the catalogctl CLI tool.
package main

import (
	"os"

	"github.com/mugiliam/hatchcatalogctl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
