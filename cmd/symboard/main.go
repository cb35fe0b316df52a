package main

import (
	"os"

	"github.com/jask/symboard/cmd/symboard/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
