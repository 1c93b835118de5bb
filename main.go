package main

import (
	"os"

	"github.com/beanbocchi/courier/internal"
	"github.com/beanbocchi/courier/internal/cli"
)

func main() {
	internal.SetupLogger()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
