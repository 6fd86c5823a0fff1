package main

import (
	"os"

	"github.com/uzbekdev1/SimpleAccounting/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
