package main

import (
	"os"

	"github.com/simonhull/heron/internal/commands"
	"github.com/simonhull/heron/internal/output"
)

func main() {
	rootCmd := commands.RootCmd()

	if err := rootCmd.Execute(); err != nil {
		if !commands.IsReported(err) {
			output.Error(err.Error())
		}
		os.Exit(1)
	}
}
