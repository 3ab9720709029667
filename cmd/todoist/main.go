package main

import (
	"os"

	"github.com/joe-butler-23/todoist-cli/internal/cmd"
)

func main() {
	err := cmd.Execute(os.Args[1:])
	os.Exit(cmd.ExitCode(err))
}
