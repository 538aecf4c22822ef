package main

import (
	"os"

	"github.com/campusnexus/nexus/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
