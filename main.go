package main

import (
	"os"

	"github.com/emtprep/emtdrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
