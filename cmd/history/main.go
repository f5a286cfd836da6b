package main

import (
	"os"

	"bourse/cmd/history/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
