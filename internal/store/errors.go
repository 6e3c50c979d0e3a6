package store

import "errors"

var (
	// ErrStorageWrite wraps any failure to persist a snapshot.
	ErrStorageWrite = errors.New("storage write failed")

	// ErrStorageRead marks a slot the substrate failed to read. Unlike
	// ErrMalformedState the stored value may be fine, so it must not be
	// overwritten with the empty fallback.
	ErrStorageRead = errors.New("storage read failed")

	// ErrMalformedState marks a stored slot that could not be decoded.
	ErrMalformedState = errors.New("malformed stored state")

	// ErrQuotaExceeded is returned when a value is larger than the
	// configured per-value limit.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)
