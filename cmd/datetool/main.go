package main

import (
	"os"

	"github.com/msto63/datetool/cmd/datetool/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
