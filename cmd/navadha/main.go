// Command navadha is a thin CLI front-end over the numerology engine: it
// parses names and dates, calls the library, and prints results as text or
// JSON. All calculation lives in the library packages.
package main

import (
	"fmt"
	"os"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "navadha:", err)
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}
