package main

import (
	"os"

	"github.com/cwbudde/elf-lang/cmd/elf/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
