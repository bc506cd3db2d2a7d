package main

import (
	"errors"
	"os"

	"github.com/alantheprice/termline/cmd"
	"github.com/alantheprice/termline/pkg/console"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Ctrl+C inside a prompt: the line is already erased and raw mode released.
		if errors.Is(err, console.ErrInterrupt) {
			os.Exit(130)
		}
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
