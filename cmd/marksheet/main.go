package main

import (
	"os"

	"github.com/marksheet-io/marksheet/cmd/marksheet/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
