package main

import (
	"os"

	"github.com/idilsaglam/todolist/internal/cli"
)

func main() {
	// Hand everything after the program name to the CLI.
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
