package main

import (
	"os"

	"github.com/katalvlaran/lowindex/cmd/lowindex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
