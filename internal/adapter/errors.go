package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("gateway internal error")

	// ErrIntegrityCheckFailed is returned when a signed response does not
	// match its HashSHA256 header.
	ErrIntegrityCheckFailed = errors.New("response integrity check failed")
)
