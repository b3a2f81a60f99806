package main

import (
	"os"

	"github.com/seima-scanner/seima-cli/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
