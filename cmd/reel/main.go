package main

import (
	"fmt"
	"os"

	"github.com/Makepad-fr/reel/internal/cli"
)

func main() {
	// Hand everything after the program name to the CLI runner.
	code := cli.Run(os.Args[1:], os.Stdout)
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
