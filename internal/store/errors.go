package store

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("store: not found")
	errNameRequired = errors.New("store: category name is required")
)

// ValidationError marks caller-fixable input problems (missing or out-of-range
// fields). The HTTP layer maps it to 400.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("store: validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
