package main

import (
	"os"

	"github.com/heritage-alg/heritage/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
