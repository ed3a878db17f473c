package redaction

import "errors"

// Errors returned by [Executor.Apply]. The underlying store error is
// wrapped alongside, so callers can match both.
var (
	ErrCreatingSecureData   = errors.New("error creating secure data record")
	ErrRetrievingSecureData = errors.New("error retrieving secure data record")
	ErrUpdatingSecureData   = errors.New("error updating secure data record")
	ErrDeletingSecureData   = errors.New("error deleting secure data record")

	// ErrNoSecureDataInHand is returned when a plan asks for the vault
	// content without an operation that fetched it.
	ErrNoSecureDataInHand = errors.New("no secure data record was loaded")
)
