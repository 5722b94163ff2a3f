// Package routing provides pure helpers for parsing GUID API request paths.
package routing

import (
	"errors"
	"strings"
)

// ErrNotGUIDPath is returned for paths that are not rooted at /guid.
var ErrNotGUIDPath = errors.New("path is not under /guid")

// ExtractGUID parses an API path of the form "/guid" or "/guid/<id>" and
// returns the id segment. A bare "/guid" (or a trailing slash with no id)
// returns an empty id. Paths rooted elsewhere, or nested deeper than one
// segment below /guid, are rejected rather than silently misparsed.
func ExtractGUID(path string) (string, error) {
	if !strings.HasPrefix(path, "/") {
		return "", ErrNotGUIDPath
	}

	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if segments[0] != "guid" {
		return "", ErrNotGUIDPath
	}

	switch len(segments) {
	case 1:
		return "", nil
	case 2:
		return segments[1], nil
	default:
		return "", ErrNotGUIDPath
	}
}
