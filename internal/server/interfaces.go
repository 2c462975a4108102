package server

import "context"

// Server defines the lifecycle contract of the listeners managed by this
// package.
type Server interface {
	// Run serves requests until ctx is cancelled or a listener fails, then
	// shuts every listener down. A clean shutdown returns nil.
	Run(ctx context.Context) error

	// RunServer is Run bound to SIGINT, SIGTERM and SIGQUIT.
	RunServer() error
}
