package repo

import "errors"

// ErrNotFound is returned when a lookup matches no row. Callers branch
// on it with errors.Is.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert or update violates a unique
// constraint (email, profile handle).
var ErrDuplicate = errors.New("duplicate")
