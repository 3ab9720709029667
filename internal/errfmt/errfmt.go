// Package errfmt turns API errors into readable stderr diagnostics.
package errfmt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joe-butler-23/todoist-cli/internal/api"
	"github.com/joe-butler-23/todoist-cli/internal/auth"
)

// Format formats an error into a user-friendly message with actionable suggestions.
func Format(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return formatAPIError(apiErr)
	}

	var authErr *api.AuthError
	if errors.As(err, &authErr) {
		return formatAuthError(authErr)
	}

	if errors.Is(err, auth.ErrNoToken) {
		return formatNoTokenError()
	}

	return fmt.Sprintf("Error: %v", err)
}

func formatAPIError(err *api.APIError) string {
	var sb strings.Builder

	switch err.StatusCode {
	case 401:
		sb.WriteString("Error: Not authenticated (401)\n\n")
		sb.WriteString("  The API token was rejected.\n")
		sb.WriteString("  Set " + auth.EnvToken + " or run 'todoist auth login' with a valid token.\n")

	case 403:
		sb.WriteString("Error: Access denied (403)\n\n")
		sb.WriteString("  You don't have permission to perform this action.\n")

	case 404:
		sb.WriteString("Error: Not found (404)\n\n")

		if err.Details != "" {
			sb.WriteString("  " + err.Details + "\n\n")
		}

		sb.WriteString("  The task or project doesn't exist or you don't have access.\n")

	case 429:
		sb.WriteString("Error: Rate limit exceeded (429)\n\n")
		sb.WriteString("  You've hit Todoist's API rate limit. Wait a moment and retry.\n")

	default:
		sb.WriteString(fmt.Sprintf("Error: %s (%d)\n", err.Message, err.StatusCode))

		if err.Details != "" {
			sb.WriteString("\n  " + err.Details + "\n")
		}
	}

	return sb.String()
}

func formatAuthError(err *api.AuthError) string {
	var sb strings.Builder

	sb.WriteString("Error: Authentication failed\n\n")
	sb.WriteString(fmt.Sprintf("  %v\n\n", err.Err))
	sb.WriteString("  Set " + auth.EnvToken + " or run 'todoist auth login'.\n")

	return sb.String()
}

func formatNoTokenError() string {
	var sb strings.Builder

	sb.WriteString("Error: No API token found\n\n")
	sb.WriteString("  Checked " + auth.EnvToken + ", /run/secrets/todoist_token,\n")
	sb.WriteString("  /run/secrets/TODOIST_TOKEN and the keyring.\n\n")
	sb.WriteString("  Get a token from Todoist settings, then either export\n")
	sb.WriteString("  " + auth.EnvToken + "=<token> or run 'todoist auth login'.\n")

	return sb.String()
}
