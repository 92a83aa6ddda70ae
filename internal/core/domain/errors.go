package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotInitialized indicates the plugin has not been attached to a host.
	ErrNotInitialized = errors.New("plugin not initialized")

	// ErrMalformedSession indicates the persisted file list could not be decoded.
	// The whole list is discarded; no entries are recovered.
	ErrMalformedSession = errors.New("malformed session file list")

	// ErrAlreadyOpen indicates the host already has a document for the path.
	ErrAlreadyOpen = errors.New("database already open")
)
