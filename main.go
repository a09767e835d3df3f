package main

import (
	"os"

	"github.com/emmapowers/ssh-colors/cmd"
	"github.com/emmapowers/ssh-colors/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
