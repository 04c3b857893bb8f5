package models

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned when the dataset path does not resolve
	ErrFileNotFound = errors.New("dataset file not found")

	// ErrTypeCoercion marks a column whose cells cannot be used with a uniform type
	ErrTypeCoercion = errors.New("column holds mixed value types")
)

// MissingColumnError reports a column referenced but absent from the dataset header
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q not found in dataset", e.Column)
}
