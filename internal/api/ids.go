package api

import (
	"errors"
	"strings"
)

var errInvalidID = errors.New("invalid task ID")

// SanitizeID validates that an ID is safe to embed in a URL path.
// It rejects IDs containing path separators, traversal sequences or
// control characters.
func SanitizeID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", errInvalidID
	}

	if strings.Contains(id, "..") {
		return "", errInvalidID
	}

	for _, r := range id {
		switch {
		case r == '/' || r == '\\' || r == '?' || r == '#':
			return "", errInvalidID
		case r <= ' ' || r == 0x7f:
			return "", errInvalidID
		}
	}

	return id, nil
}
