package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound: the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateKey: a unique constraint (url, email, username, or a
	// (user, target) favorite pair) was violated.
	ErrDuplicateKey = errors.New("duplicate key")
)

// ValidationError reports the required fields missing from a create
// request. Absent fields are rejected before anything touches the store.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}
