package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or an unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or issuer).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidRedactionConfigs indicates invalid redaction settings
	// (for example, identical mask and access-denied texts).
	ErrInvalidRedactionConfigs = errors.New("invalid redaction configuration")
)

// ErrInvalidClientConfigs indicates invalid gateway client settings
// (e.g., missing gateway address or a non-positive parallelism).
var ErrInvalidClientConfigs = errors.New("invalid client configuration")
