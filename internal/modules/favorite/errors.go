package favorite

import (
	"errors"
	"fmt"
)

// The three NotFound cases are distinct on purpose: the client gets told
// whether the user, the target, or the link itself is missing, instead of
// a bare foreign-key failure.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrTargetNotFound   = errors.New("target not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

// DuplicateError reports a favorite pair that already exists, carrying
// the target's name for the client-facing message. It comes from the
// pre-insert existence check; a pair that races past that check is caught
// by the unique index instead and surfaces as domain.ErrDuplicateKey.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s is already in user's favorites", e.Name)
}
