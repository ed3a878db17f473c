package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrInvalidStage       = errors.New("invalid pipeline stage")
	ErrEmptyMessageName   = errors.New("message name is required")
	ErrEmptyPrimaryEntity = errors.New("primary entity name is required")
	ErrEmptyLogicalName   = errors.New("entity logical name is required")
	ErrEntityNameMismatch = errors.New("entity does not match the primary entity of the event")
	ErrNilEntity          = errors.New("entity is nil")
	ErrMissingRecordID    = errors.New("record id is required")
)
