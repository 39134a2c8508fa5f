package domain

import "errors"

// Sentinel errors for cache operations
var (
	// ErrStoreUnavailable indicates the local store cannot be opened or used
	// (no storage configured, permissions, lock held elsewhere, failed migration).
	// Callers fall back to network-only mode.
	ErrStoreUnavailable = errors.New("offline store is unavailable")

	// ErrUpstreamFetchFailed indicates a content provider request failed
	// (network error, non-success status, unparseable body)
	ErrUpstreamFetchFailed = errors.New("upstream fetch failed")

	// ErrMalformedContent indicates a provider answered with content that
	// does not look like the requested text
	ErrMalformedContent = errors.New("malformed upstream content")

	// ErrUnknownNarrator indicates the narrator id is not in the catalog
	ErrUnknownNarrator = errors.New("unknown narrator")

	// ErrInvalidKey indicates a lookup key outside its valid range
	ErrInvalidKey = errors.New("invalid key")
)
