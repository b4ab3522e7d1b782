package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	rootCmd := newRootCommand()
	rootCmd.Version = version
	rootCmd.AddCommand(newExportCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
