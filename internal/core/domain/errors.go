package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Transport error taxonomy. The api client maps every HTTP outcome onto
// exactly one of these so that stores and callers never inspect status codes.
var (
	// ErrNetwork means no response reached the server at all. Distinct from
	// the 4xx/5xx errors because it signals a connectivity problem, not a
	// server-logic problem.
	ErrNetwork = errors.New("network error: no response from server")

	// ErrUnauthorized is returned on HTTP 401. The transport also deletes the
	// stored token as a side effect so the next action forces a re-login.
	ErrUnauthorized = errors.New("unauthorized: please login again")

	// ErrNotFound is returned on HTTP 404.
	ErrNotFound = errors.New("resource not found")
)

// ValidationError carries server-supplied (or client pre-flight) field errors
// for an HTTP 400.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ServerError covers 5xx and any other unexpected status, keeping the
// server-provided message when one was present.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error (status %d)", e.Status)
}

var ErrInvalidTransition = errors.New("invalid status transition")
