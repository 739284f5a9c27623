package main

import (
	"fmt"
	"os"

	"github.com/cw-tokenfactory/tfgov/cmd/tfgov"
)

func main() {
	rootCmd := tfgov.BuildTfgovCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
