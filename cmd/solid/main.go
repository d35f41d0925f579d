package main

import (
	"os"

	"github.com/katalvlaran/solid/cmd/solid/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
