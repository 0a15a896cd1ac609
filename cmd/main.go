package main

import (
	"fmt"
	"os"

	"github.com/rony4d/tsec-chaincfg/cmd/tsec/launcher"
)

func main() {

	// Gather the full list of command-line arguments
	arguments := os.Args

	// Call into the launcher and capture any resulting error

	err := launcher.Launch(arguments)

	if err != nil {

		// Report the issue so the user sees it
		fmt.Fprintln(os.Stderr, "Error:", err)

		// Exit with a non-zero status code to indicate failure
		os.Exit(1)
	}

}
