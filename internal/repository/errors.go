package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested course or lesson id has no
// record. It is distinct from store failures so callers can render a
// not-found state instead of a generic error.
var ErrNotFound = errors.New("not found")

// MissingIndexError signals that a compound equality+ordering query hit
// the store without its composite index declared. This is a deployment
// error, not a data error; the remediation URL tells the operator what
// to run.
type MissingIndexError struct {
	Query       string
	Remediation string
	Err         error
}

func (e *MissingIndexError) Error() string {
	return fmt.Sprintf("missing composite index for %s (see %s): %v", e.Query, e.Remediation, e.Err)
}

func (e *MissingIndexError) Unwrap() error { return e.Err }
