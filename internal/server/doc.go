// Package server wires and runs the application's HTTP listeners.
//
// It runs the API listener and, when configured, a separate metrics
// listener under one errgroup, and shuts all of them down gracefully when
// the run context is cancelled or a termination signal arrives.
package server
