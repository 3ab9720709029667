package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joe-butler-23/todoist-cli/internal/batch"
	"github.com/joe-butler-23/todoist-cli/internal/config"
	"github.com/joe-butler-23/todoist-cli/internal/errfmt"
	"github.com/joe-butler-23/todoist-cli/internal/output"
)

type CreateBatchCmd struct {
	Project string `required:"" help:"Project ID for every task in the batch"`
	File    string `required:"" help:"JSON file containing an array of tasks"`
}

func (c *CreateBatchCmd) Run(flags *RootFlags) error {
	ctx := context.Background()

	// Validate the file before any request so malformed input causes no
	// partial side effects.
	path, err := config.ExpandPath(c.File)
	if err != nil {
		return err
	}

	items, err := batch.Load(path)
	if err != nil {
		return err
	}

	client, err := getClient()
	if err != nil {
		return err
	}

	created, err := client.CreateTasks(ctx, batch.Requests(c.Project, items))
	if err != nil {
		fmt.Fprint(os.Stderr, errfmt.Format(err))

		return err
	}

	return output.WriteJSON(os.Stdout, created)
}
