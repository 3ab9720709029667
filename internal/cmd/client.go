package cmd

import (
	"github.com/joe-butler-23/todoist-cli/internal/api"
	"github.com/joe-butler-23/todoist-cli/internal/auth"
)

// newClient is a seam so tests can point commands at an httptest server.
var newClient = func() (*api.Client, error) {
	ts, err := auth.TokenSource()
	if err != nil {
		return nil, err
	}

	return api.NewClient(ts), nil
}

func getClient() (*api.Client, error) {
	return newClient()
}
