package main

import (
	"os"

	"github.com/aiptu/mynotes/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
