package main

import (
	"os"

	"github.com/go-arbor/arbor/cmd/arbor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
