package main

import (
	"fmt"
	"os"

	"github.com/gallery-tools/exhibit-atlas/pkg/terminal"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
