package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/joe-butler-23/todoist-cli/internal/api"
)

// Table provides simple table output using tabwriter.
type Table struct {
	w *tabwriter.Writer
}

type TableWriter interface {
	AddRow(cols ...string)
	Flush() error
}

type PlainTable struct {
	w io.Writer
}

func (t *PlainTable) AddRow(cols ...string) {
	fmt.Fprintln(t.w, strings.Join(cols, "\t"))
}

func (t *PlainTable) Flush() error {
	return nil
}

func NewTable(out io.Writer) *Table {
	return &Table{
		w: tabwriter.NewWriter(out, 0, 0, 2, ' ', 0),
	}
}

func NewPlainTable(out io.Writer) *PlainTable {
	return &PlainTable{w: out}
}

func NewTableWriter(out io.Writer, plain bool) TableWriter {
	if plain {
		return NewPlainTable(out)
	}

	return NewTable(out)
}

func (t *Table) AddRow(cols ...string) {
	fmt.Fprintln(t.w, strings.Join(cols, "\t"))
}

func (t *Table) Flush() error {
	if err := t.w.Flush(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}

	return nil
}

// FormatTask formats a task for table output.
func FormatTask(task api.Task) []string {
	due := "-"
	if task.Due != nil {
		due = task.Due.Date
	}

	content := task.Content
	if len(content) > 50 {
		content = content[:47] + "..."
	}

	return []string{
		task.ID,
		task.ProjectID,
		content,
		strings.Join(task.Labels, ","),
		due,
	}
}

// FormatProject formats a project for table output.
func FormatProject(project api.Project) []string {
	name := project.Name
	if project.IsInboxProject {
		name += " (inbox)"
	}

	return []string{
		project.ID,
		name,
		strconv.Itoa(project.CommentCount),
	}
}
