package main

import (
	"os"

	"github.com/Arking-xx/College-Thesis/cmd/kengen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
