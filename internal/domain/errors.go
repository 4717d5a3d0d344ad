package domain

import "errors"

// Sentinel errors used across all layers.
var (
	// ErrMainDictMissing is returned by the store when no main dictionary
	// file could be opened from the configured probe list.
	ErrMainDictMissing = errors.New("main dictionary missing")

	// ErrClosed is returned by store operations after Close.
	ErrClosed = errors.New("store closed")

	// ErrInvalidArgument marks caller mistakes that are validated rather
	// than asserted (bad query or cursor bounds, bad phrase lengths).
	ErrInvalidArgument = errors.New("invalid argument")
)
