package models

import "errors"

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrPermissionDenied is returned when the principal does not own the
	// record it is trying to mutate or read.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrValidation is returned for rejected input: an unknown booking
	// status, a rating outside 1..5, check-out before check-in.
	ErrValidation = errors.New("validation failed")
)
