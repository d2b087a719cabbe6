// Package main holds the command line interface for fixturefs. The package itself is mainly concerned with
// configuring the necessary options before passing control to the library packages, which hold the logic
// itself.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
