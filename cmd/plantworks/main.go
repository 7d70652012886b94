package main

import (
	"os"

	"github.com/plantworks/plantworks/cmd/plantworks/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
