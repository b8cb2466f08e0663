package main

import (
	"os"

	"github.com/upendrajamana/PerfectFitAI07/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
