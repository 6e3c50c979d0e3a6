package model

import "errors"

// ErrNotFound is returned when an operation references an unknown task or entry.
var ErrNotFound = errors.New("not found")
