// Package output handles JSON and table rendering for the CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Mode selects the output format. JSON is the default; Plain switches
// list commands to tab-separated tables.
type Mode struct {
	JSON  bool
	Plain bool
}

func FromEnv() Mode {
	return Mode{
		JSON:  envBool("TODOIST_JSON"),
		Plain: envBool("TODOIST_PLAIN"),
	}
}

// WriteJSON pretty-prints v to w with two-space indentation.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

func envBool(key string) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	switch v {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}
