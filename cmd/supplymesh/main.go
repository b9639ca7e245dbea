// Supplymesh CLI - supply chain network simulation command-line interface.
package main

import (
	"os"

	"github.com/hupe1980/supplymesh/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
