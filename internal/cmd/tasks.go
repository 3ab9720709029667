package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joe-butler-23/todoist-cli/internal/api"
	"github.com/joe-butler-23/todoist-cli/internal/errfmt"
	"github.com/joe-butler-23/todoist-cli/internal/output"
)

// splitLabels turns comma-joined flag text into a label list. An empty
// string means "explicitly no labels", not "unset"; unset is a nil flag.
func splitLabels(raw string) []string {
	if raw == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	labels := make([]string, 0, len(parts))

	for _, p := range parts {
		labels = append(labels, strings.TrimSpace(p))
	}

	return labels
}

type ListCmd struct {
	Project string `help:"Filter tasks by project ID"`
}

func (c *ListCmd) Run(flags *RootFlags) error {
	ctx := context.Background()

	client, err := getClient()
	if err != nil {
		return err
	}

	mode, err := resolveOutputMode(flags)
	if err != nil {
		return err
	}

	project, err := defaultProject(c.Project)
	if err != nil {
		return err
	}

	tasks, err := client.ListTasks(ctx, project)
	if err != nil {
		fmt.Fprint(os.Stderr, errfmt.Format(err))

		return err
	}

	if !mode.Plain {
		return output.WriteJSON(os.Stdout, tasks)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(os.Stdout, "No tasks found.")

		return nil
	}

	tbl := output.NewTableWriter(os.Stdout, true)
	tbl.AddRow("ID", "PROJECT", "CONTENT", "LABELS", "DUE")

	for _, task := range tasks {
		tbl.AddRow(output.FormatTask(task)...)
	}

	return tbl.Flush()
}

type CreateCmd struct {
	Content     string  `required:"" help:"Task content"`
	Project     string  `help:"Project ID"`
	Labels      *string `help:"Comma-separated labels"`
	Description *string `help:"Task description"`
}

func (c *CreateCmd) Run(flags *RootFlags) error {
	ctx := context.Background()

	client, err := getClient()
	if err != nil {
		return err
	}

	project, err := defaultProject(c.Project)
	if err != nil {
		return err
	}

	req := api.CreateTaskRequest{
		Content:     c.Content,
		ProjectID:   project,
		Description: c.Description,
	}

	if c.Labels != nil {
		labels := splitLabels(*c.Labels)
		req.Labels = &labels
	}

	task, err := client.CreateTask(ctx, req)
	if err != nil {
		fmt.Fprint(os.Stderr, errfmt.Format(err))

		return err
	}

	return output.WriteJSON(os.Stdout, task)
}

type UpdateCmd struct {
	ID          string  `name:"id" required:"" help:"Task ID"`
	Labels      *string `help:"Comma-separated labels"`
	Description *string `help:"Task description"`
}

func (c *UpdateCmd) Run(flags *RootFlags) error {
	ctx := context.Background()

	client, err := getClient()
	if err != nil {
		return err
	}

	req := api.UpdateTaskRequest{
		Description: c.Description,
	}

	if c.Labels != nil {
		labels := splitLabels(*c.Labels)
		req.Labels = &labels
	}

	task, err := client.UpdateTask(ctx, c.ID, req)
	if err != nil {
		fmt.Fprint(os.Stderr, errfmt.Format(err))

		return err
	}

	return output.WriteJSON(os.Stdout, task)
}

type DeleteCmd struct {
	ID string `name:"id" required:"" help:"Task ID"`
}

func (c *DeleteCmd) Run(flags *RootFlags) error {
	ctx := context.Background()

	client, err := getClient()
	if err != nil {
		return err
	}

	if err := client.DeleteTask(ctx, c.ID); err != nil {
		fmt.Fprint(os.Stderr, errfmt.Format(err))

		return err
	}

	fmt.Fprintf(os.Stdout, "Deleted %s\n", c.ID)

	return nil
}

type CompleteCmd struct {
	ID string `name:"id" required:"" help:"Task ID"`
}

func (c *CompleteCmd) Run(flags *RootFlags) error {
	ctx := context.Background()

	client, err := getClient()
	if err != nil {
		return err
	}

	if err := client.CloseTask(ctx, c.ID); err != nil {
		fmt.Fprint(os.Stderr, errfmt.Format(err))

		return err
	}

	fmt.Fprintf(os.Stdout, "Completed %s\n", c.ID)

	return nil
}
