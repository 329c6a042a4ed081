package models

import "errors"

// ErrConflict is returned by storage when a write violates a uniqueness constraint.
var ErrConflict = errors.New("conflict")
