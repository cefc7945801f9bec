package domain

import "errors"

// ErrValidation marks user-input failures. Callers surface the message and
// perform no mutation; nothing built on it is fatal.
var ErrValidation = errors.New("validation failed")

// ErrNotFound marks lookups for entities that do not exist.
var ErrNotFound = errors.New("not found")
