package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joe-butler-23/todoist-cli/internal/errfmt"
	"github.com/joe-butler-23/todoist-cli/internal/output"
)

type ProjectsCmd struct{}

func (c *ProjectsCmd) Run(flags *RootFlags) error {
	ctx := context.Background()

	client, err := getClient()
	if err != nil {
		return err
	}

	mode, err := resolveOutputMode(flags)
	if err != nil {
		return err
	}

	projects, err := client.ListProjects(ctx)
	if err != nil {
		fmt.Fprint(os.Stderr, errfmt.Format(err))

		return err
	}

	if !mode.Plain {
		return output.WriteJSON(os.Stdout, projects)
	}

	if len(projects) == 0 {
		fmt.Fprintln(os.Stdout, "No projects found.")

		return nil
	}

	tbl := output.NewTableWriter(os.Stdout, true)
	tbl.AddRow("ID", "NAME", "COMMENTS")

	for _, project := range projects {
		tbl.AddRow(output.FormatProject(project)...)
	}

	return tbl.Flush()
}
