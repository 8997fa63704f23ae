package main

import (
	"os"

	"github.com/rishi-212005/portfolio-server/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
