// Package main is the entry point for the adshare CLI.
package main

import (
	"os"

	"adshare/cmd/cli/cmd"
	"adshare/internal/logging"
)

func main() {
	defer logging.Sync()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
