package model

import (
	"context"
	"net"
)

// SecurityLayer opens the listening socket for a server.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is a long-running network server with explicit lifecycle.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}

// Pinger checks that a backing resource is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
