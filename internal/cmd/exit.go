package cmd

import (
	"errors"

	"github.com/joe-butler-23/todoist-cli/internal/api"
	"github.com/joe-butler-23/todoist-cli/internal/auth"
)

type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}

	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

// ExitCode maps an error from Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return api.ExitSuccess
	}

	var ee *ExitError
	if errors.As(err, &ee) && ee != nil {
		if ee.Code < 0 {
			return api.ExitError
		}

		return ee.Code
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ExitCode()
	}

	var authErr *api.AuthError
	if errors.As(err, &authErr) {
		return api.ExitAuth
	}

	if errors.Is(err, auth.ErrNoToken) {
		return api.ExitAuth
	}

	return api.ExitError
}
