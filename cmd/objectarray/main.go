package main

import (
	"os"

	"github.com/cybergodev/objectarray/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
