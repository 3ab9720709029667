package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/joe-butler-23/todoist-cli/internal/auth"
)

type AuthCmd struct {
	Login  AuthLoginCmd  `cmd:"" help:"Store an API token in the keyring"`
	Logout AuthLogoutCmd `cmd:"" help:"Remove the stored API token"`
	Status AuthStatusCmd `cmd:"" help:"Show which credential source is in use"`
}

type AuthLoginCmd struct {
	Token string `help:"API token (prompted when omitted)"`
}

func (c *AuthLoginCmd) Run() error {
	token := strings.TrimSpace(c.Token)

	if token == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("no TTY for token prompt; pass --token")
		}

		fmt.Fprint(os.Stderr, "API token: ")

		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)

		if err != nil {
			return fmt.Errorf("read token: %w", err)
		}

		token = strings.TrimSpace(string(raw))
	}

	if token == "" {
		return errors.New("empty token")
	}

	store, err := auth.OpenDefault()
	if err != nil {
		return err
	}

	if err := store.SetToken(token); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "Token stored.")

	return nil
}

type AuthLogoutCmd struct{}

func (c *AuthLogoutCmd) Run() error {
	store, err := auth.OpenDefault()
	if err != nil {
		return err
	}

	if err := store.DeleteToken(); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "Token removed.")

	return nil
}

type AuthStatusCmd struct{}

func (c *AuthStatusCmd) Run() error {
	resolved, err := auth.Resolve()
	if err != nil {
		if errors.Is(err, auth.ErrNoToken) {
			fmt.Fprintln(os.Stdout, "Not authenticated.")

			return err
		}

		return err
	}

	switch resolved.Source {
	case auth.SourceSecret:
		fmt.Fprintf(os.Stdout, "Token source: %s (%s)\n", resolved.Source, resolved.Path)
	default:
		fmt.Fprintf(os.Stdout, "Token source: %s\n", resolved.Source)
	}

	return nil
}
