// Package batch loads task-creation payloads from JSON files.
package batch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/joe-butler-23/todoist-cli/internal/api"
)

// ErrNotArray is returned when the batch file does not contain a
// top-level JSON array.
var ErrNotArray = errors.New("batch payload must be a JSON array")

// Item is one task-creation request in a batch file. The owning project
// is supplied once for the whole batch, not per item. Labels and
// Description stay nil when the key is absent, so unset fields are
// omitted from the create request.
type Item struct {
	Content     string    `json:"content"`
	Labels      *[]string `json:"labels,omitempty"`
	Description *string   `json:"description,omitempty"`
}

// Load reads a batch file and validates its shape before any request is
// issued. Any top-level JSON value other than an array is rejected.
func Load(path string) ([]Item, error) {
	b, err := os.ReadFile(path) //nolint:gosec // user-supplied batch file
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse batch file %s: %w", path, err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("%s: %w", path, ErrNotArray)
	}

	var items []Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("parse batch file %s: %w", path, err)
	}

	return items, nil
}

// Requests converts batch items into create-task requests for the given
// project, preserving input order.
func Requests(projectID string, items []Item) []api.CreateTaskRequest {
	reqs := make([]api.CreateTaskRequest, 0, len(items))

	for _, item := range items {
		reqs = append(reqs, api.CreateTaskRequest{
			Content:     item.Content,
			ProjectID:   projectID,
			Labels:      item.Labels,
			Description: item.Description,
		})
	}

	return reqs
}
