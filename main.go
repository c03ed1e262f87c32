package main

import (
	"os"

	"github.com/skmehra/nudgelab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
