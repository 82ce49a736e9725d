package server

import "errors"

var (
	// ErrNoTransports is returned by NewServer when neither an HTTP nor a
	// gRPC address is configured.
	ErrNoTransports = errors.New("no HTTP or gRPC address is configured")

	// ErrShutdownTimeout is wrapped around shutdown errors when in-flight
	// requests outlive the grace period.
	ErrShutdownTimeout = errors.New("graceful shutdown timed out")
)
