package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing token settings or an
	// unsupported default locale.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or unknown driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates that no listen address is set.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive worker interval or batch.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidRateLimitConfigs indicates non-positive rate limit values.
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
)
