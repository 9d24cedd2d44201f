// Package common defines shared sentinel errors used across the
// clientnotes layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage errors.
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrStorageWrite       = errors.New("storage write failed")

	// Import errors.
	ErrInvalidFormat = errors.New("invalid import format")

	// Calendar export preconditions.
	ErrMissingFollowUp = errors.New("no follow-up scheduled")
	ErrInvalidDate     = errors.New("invalid follow-up date")

	// Lookup errors.
	ErrNotFound = errors.New("not found")
)
