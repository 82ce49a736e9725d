// Package server runs the HTTP API, the gRPC health endpoint and the
// background workers under one lifecycle.
//
// Everything stops together: on SIGTERM, SIGINT or SIGQUIT, or when any of
// them fails, the transports are shut down with a bounded grace period and
// the workers' context is cancelled.
package server
