package service

import "errors"

var (
	ErrMissingParameter = errors.New("pipeline event is missing a parameter")
	ErrInvalidEvent     = errors.New("invalid pipeline event")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
