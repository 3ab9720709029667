package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
)

// EnvToken is the environment variable holding the API token.
const EnvToken = "TODOIST_TOKEN" //nolint:gosec // env var name

// ErrNoToken is returned when no credential source yields a token.
var ErrNoToken = errors.New("no API token found: set " + EnvToken +
	", provide /run/secrets/todoist_token, or run 'todoist auth login'")

// secretsDir is the directory checked for secret files. Overridable in tests.
var secretsDir = "/run/secrets"

// secretFileNames are checked in order under secretsDir.
var secretFileNames = []string{"todoist_token", "TODOIST_TOKEN"}

// Source identifies where a token was resolved from.
type Source string

const (
	SourceEnv     Source = "environment"
	SourceSecret  Source = "secret file"
	SourceKeyring Source = "keyring"
)

// Resolved is a successfully resolved credential.
type Resolved struct {
	Token  string
	Source Source
	Path   string // set for SourceSecret
}

// keyringToken is a seam so Resolve can be tested without a real keyring.
var keyringToken = func() (string, error) {
	store, err := OpenDefault()
	if err != nil {
		return "", err
	}

	return store.GetToken()
}

// Resolve obtains the API token. Resolution order: environment variable,
// secret files, keyring. It never terminates the process; converting
// failure into an exit is the CLI entry point's job.
func Resolve() (Resolved, error) {
	if tok := strings.TrimSpace(os.Getenv(EnvToken)); tok != "" {
		return Resolved{Token: tok, Source: SourceEnv}, nil
	}

	for _, name := range secretFileNames {
		path := filepath.Join(secretsDir, name)

		b, err := os.ReadFile(path) //nolint:gosec // fixed secrets path
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}

			return Resolved{}, fmt.Errorf("read secret file %s: %w", path, err)
		}

		if tok := strings.TrimSpace(string(b)); tok != "" {
			return Resolved{Token: tok, Source: SourceSecret, Path: path}, nil
		}
	}

	if tok, err := keyringToken(); err == nil && strings.TrimSpace(tok) != "" {
		return Resolved{Token: strings.TrimSpace(tok), Source: SourceKeyring}, nil
	}

	return Resolved{}, ErrNoToken
}

// TokenSource resolves the credential once and wraps it as a static
// oauth2.TokenSource for the API client.
func TokenSource() (oauth2.TokenSource, error) {
	resolved, err := Resolve()
	if err != nil {
		return nil, err
	}

	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: resolved.Token}), nil
}
