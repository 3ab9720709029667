package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/joe-butler-23/todoist-cli/internal/api"
	"github.com/joe-butler-23/todoist-cli/internal/auth"
)

func TestExitCodeMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, api.ExitSuccess},
		{"plain", errors.New("boom"), api.ExitError},
		{"exit error", &ExitError{Code: 2, Err: errors.New("usage")}, api.ExitUsage},
		{"unauthorized", &api.APIError{StatusCode: http.StatusUnauthorized}, api.ExitAuth},
		{"not found", &api.APIError{StatusCode: http.StatusNotFound}, api.ExitNotFound},
		{"rate limited", &api.APIError{StatusCode: http.StatusTooManyRequests}, api.ExitRateLimit},
		{"server error", &api.APIError{StatusCode: http.StatusInternalServerError}, api.ExitError},
		{"wrapped api error", fmt.Errorf("batch item 2: %w", &api.APIError{StatusCode: http.StatusBadRequest}), api.ExitError},
		{"auth error", &api.AuthError{Err: errors.New("bad token")}, api.ExitAuth},
		{"no token", auth.ErrNoToken, api.ExitAuth},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExitCode(tc.err); got != tc.want {
				t.Fatalf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestDeleteCmdIssuesDelete(t *testing.T) {
	withTempConfig(t)

	srvDone := false

	srv := newRecordingServer(t, func(method, path string) {
		if method != http.MethodDelete || path != "/tasks/t1" {
			t.Errorf("unexpected request: %s %s", method, path)
		}

		srvDone = true
	})
	defer srv.Close()

	withTestClient(t, srv)

	cmd := DeleteCmd{ID: "t1"}
	if err := cmd.Run(&RootFlags{}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !srvDone {
		t.Fatal("expected a request to the server")
	}
}

func TestCompleteCmdPostsClose(t *testing.T) {
	withTempConfig(t)

	var got string

	srv := newRecordingServer(t, func(method, path string) {
		got = method + " " + path
	})
	defer srv.Close()

	withTestClient(t, srv)

	cmd := CompleteCmd{ID: "t1"}
	if err := cmd.Run(&RootFlags{}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got != "POST /tasks/t1/close" {
		t.Fatalf("unexpected request: %s", got)
	}
}
