package storage

import "fmt"

var (
	// ErrNotFound is returned by Load when no archive document exists yet at
	// the configured location.
	ErrNotFound = fmt.Errorf("archive document not found")
)
