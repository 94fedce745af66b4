package ports

import "errors"

// Shared repository errors. ErrConflict signals a lost optimistic-version
// race on player_stats; use cases treat it as retryable by the caller.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
