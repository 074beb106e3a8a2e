// Package main implements the scry command line tool, which reviews
// spaced repetition flashcards kept in a JSON deck file and imports new
// cards from markdown notes.
package main

import (
	"fmt"
	"os"
	"time"
)

func main() {
	cmd := newRootCmd(time.Now)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
