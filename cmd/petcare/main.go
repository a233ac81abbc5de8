package main

import (
	"os"

	"github.com/BruksfildServices01/pet-scheduler/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
