package main

import (
	"os"

	"github.com/DNS451/gray-level-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
