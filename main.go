package main

import (
	"os"

	"github.com/decker502/neuralfx/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
