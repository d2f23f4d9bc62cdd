package main

import (
	"os"

	"github.com/nmalhotra/drill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
