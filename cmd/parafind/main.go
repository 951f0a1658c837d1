package main

import (
	"fmt"
	"os"

	"github.com/tsawler/parafind/internal/cli"
)

// Version information
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	rootCmd := cli.NewRootCommand(Version, Commit, BuildDate)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "parafind:", err)
		os.Exit(1)
	}
}
