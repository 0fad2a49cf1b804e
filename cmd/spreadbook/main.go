package main

import (
	"os"

	"github.com/spreadkit/spreadbook/cmd/spreadbook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
