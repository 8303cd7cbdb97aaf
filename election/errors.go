// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "errors"

var (
	// ErrElectionNotFound is returned when the named election has no table
	// in the results database.
	ErrElectionNotFound = errors.New("election not found")

	// ErrInvalidSeatCount is returned when a PR allocation is asked to
	// distribute zero or fewer seats.
	ErrInvalidSeatCount = errors.New("total seats must be positive")

	// ErrNoVotes is returned when a PR allocation is asked to distribute
	// seats over a scope in which no votes were cast.
	ErrNoVotes = errors.New("no votes in scope")

	// ErrUnknownMethod is returned for an unrecognised PR method name.
	ErrUnknownMethod = errors.New("unknown allocation method")

	// ErrUnknownScope is returned for an unrecognised PR scope name.
	ErrUnknownScope = errors.New("unknown allocation scope")
)
