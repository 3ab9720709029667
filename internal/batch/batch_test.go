package batch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeBatchFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write batch file: %v", err)
	}

	return path
}

func TestLoadPreservesOrder(t *testing.T) {
	path := writeBatchFile(t, `[{"content":"A"},{"content":"B","labels":["x"]},{"content":"C","description":"d"}]`)

	items, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	if items[0].Content != "A" || items[1].Content != "B" || items[2].Content != "C" {
		t.Fatalf("order not preserved: %#v", items)
	}

	if items[0].Labels != nil || items[0].Description != nil {
		t.Fatalf("expected unset optional fields to stay nil: %#v", items[0])
	}

	if items[1].Labels == nil || len(*items[1].Labels) != 1 || (*items[1].Labels)[0] != "x" {
		t.Fatalf("unexpected labels: %#v", items[1].Labels)
	}

	if items[2].Description == nil || *items[2].Description != "d" {
		t.Fatalf("unexpected description: %#v", items[2].Description)
	}
}

func TestLoadRejectsNonArray(t *testing.T) {
	for _, content := range []string{`{"content":"A"}`, `"A"`, `42`, `true`, `null`} {
		path := writeBatchFile(t, content)

		if _, err := Load(path); !errors.Is(err, ErrNotArray) {
			t.Fatalf("content %s: expected ErrNotArray, got %v", content, err)
		}
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := writeBatchFile(t, `[{"content":`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRequestsAttachProject(t *testing.T) {
	labels := []string{"a"}
	items := []Item{
		{Content: "A"},
		{Content: "B", Labels: &labels},
	}

	reqs := Requests("proj1", items)

	if len(reqs) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(reqs))
	}

	for i, req := range reqs {
		if req.ProjectID != "proj1" {
			t.Fatalf("request %d: expected project proj1, got %q", i, req.ProjectID)
		}
	}

	if reqs[0].Labels != nil {
		t.Fatalf("expected nil labels on first request")
	}

	if reqs[1].Labels == nil || (*reqs[1].Labels)[0] != "a" {
		t.Fatalf("unexpected labels: %#v", reqs[1].Labels)
	}
}
