// Package main is the entry point for the bouwlca CLI.
package main

import (
	"os"

	"github.com/mvandervelde/bouwlca/internal/cli"
	"github.com/mvandervelde/bouwlca/pkg/version"
)

func main() {
	if err := run(); err != nil {
		// Cobra already printed the error; the exit code is ours.
		os.Exit(1)
	}
}

// run builds and executes the root command.
func run() error {
	rootCmd := cli.NewRootCmd(version.GetVersion())
	return rootCmd.Execute()
}
