package usecase

import "errors"

// ErrNotFound is returned by update/delete operations that matched no record.
var ErrNotFound = errors.New("not found")
