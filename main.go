package main

import (
	"fmt"
	"os"

	"github.com/temirov/gitree/internal/cli"
)

// main is the entry point for the gitree command.
func main() {
	if applicationExecutionError := cli.Execute(); applicationExecutionError != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", applicationExecutionError)
		os.Exit(1)
	}
}
