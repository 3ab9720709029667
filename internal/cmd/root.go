// Package cmd declares the CLI command tree and dispatch.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

type RootFlags struct {
	JSON    bool `help:"Output JSON to stdout (the default)"`
	Plain   bool `help:"Output TSV tables instead of JSON (list commands)"`
	Verbose bool `help:"Enable verbose logging"`
}

type CLI struct {
	RootFlags `embed:""`

	Version     kong.VersionFlag `help:"Print version and exit"`
	VersionCmd  VersionCmd       `cmd:"" name:"version" help:"Print version"`
	List        ListCmd          `cmd:"" help:"List active tasks"`
	Create      CreateCmd        `cmd:"" help:"Create a task"`
	CreateBatch CreateBatchCmd   `cmd:"" name:"create-batch" help:"Create tasks from a JSON file"`
	Update      UpdateCmd        `cmd:"" help:"Update a task's labels or description"`
	Delete      DeleteCmd        `cmd:"" help:"Delete a task"`
	Complete    CompleteCmd      `cmd:"" help:"Mark a task as completed"`
	Projects    ProjectsCmd      `cmd:"" help:"List projects"`
	Auth        AuthCmd          `cmd:"" help:"Manage the stored API token"`
	Config      ConfigCmd        `cmd:"" help:"Manage configuration"`
	Completion  CompletionCmd    `cmd:"" help:"Generate shell completions"`
}

type exitPanic struct{ code int }

func Execute(args []string) (err error) {
	parser, err := newParser()
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			if ep, ok := r.(exitPanic); ok {
				if ep.code == 0 {
					err = nil

					return
				}

				err = &ExitError{Code: ep.code, Err: errors.New("exited")}

				return
			}

			panic(r)
		}
	}()

	kctx, err := parser.Parse(args)
	if err != nil {
		parsedErr := wrapParseError(err)
		_, _ = fmt.Fprintln(os.Stderr, parsedErr)

		return parsedErr
	}

	err = kctx.Run()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		return err
	}

	return nil
}

func wrapParseError(err error) error {
	if err == nil {
		return nil
	}

	var parseErr *kong.ParseError
	if errors.As(err, &parseErr) {
		return &ExitError{Code: 2, Err: parseErr}
	}

	return err
}

func newParser() (*kong.Kong, error) {
	vars := kong.Vars{
		"version": VersionString(),
	}

	cli := &CLI{}
	parser, err := kong.New(
		cli,
		kong.Name("todoist"),
		kong.Description("Todoist CLI - manage tasks from the command line"),
		kong.Vars(vars),
		kong.Writers(os.Stdout, os.Stderr),
		kong.Exit(func(code int) { panic(exitPanic{code: code}) }),
		kong.Bind(&cli.RootFlags),
		kong.Help(helpPrinter),
		kong.ConfigureHelp(helpOptions()),
	)
	if err != nil {
		return nil, err
	}

	return parser, nil
}
