package domain

import "errors"

// Domain errors can be checked with errors.Is.
var (
	// ErrHomeNotFound is returned when the directory holding the streak file
	// cannot be resolved. No operation can run without it.
	ErrHomeNotFound = errors.New("streak: home directory not found")

	// ErrNoProgress is returned when an update is requested but no exercise
	// looks done yet.
	ErrNoProgress = errors.New("streak: no exercise done yet")

	// ErrInvalidDate is returned by ParseDate for malformed input.
	ErrInvalidDate = errors.New("streak: invalid date")
)
