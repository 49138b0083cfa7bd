package server

import "context"

// Server is the inbound HTTP surface.
type Server interface {
	Listen(addr string) error
	Shutdown(ctx context.Context) error
}
