package domain

import "errors"

// Domain errors represent business logic failures.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown URI scheme or index format.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrIndexLoad indicates the index document could not be fetched or parsed.
	// It never reaches query evaluation; the corpus simply stays empty.
	ErrIndexLoad = errors.New("index load failed")

	// ErrRetryThrottled indicates a reload was skipped because the previous
	// failure is too recent.
	ErrRetryThrottled = errors.New("index reload throttled")

	// ErrNoSource indicates no index source was configured.
	ErrNoSource = errors.New("no index source configured")
)
