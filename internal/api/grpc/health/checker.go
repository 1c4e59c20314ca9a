// Package health reports database reachability over the standard gRPC health protocol.
package health

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/users-server/internal/logger"
	"github.com/dtroode/users-server/internal/model"
)

// Service is the health service name reported alongside the overall "" entry.
const Service = "users"

const pingTimeout = 2 * time.Second

// Checker probes a Pinger and publishes the result to a gRPC health server.
type Checker struct {
	pinger   model.Pinger
	server   *health.Server
	interval time.Duration
	logger   *logger.Logger
}

// NewChecker creates a Checker. Status starts as NOT_SERVING until the first probe.
func NewChecker(pinger model.Pinger, interval time.Duration, logger *logger.Logger) *Checker {
	s := health.NewServer()
	s.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	s.SetServingStatus(Service, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Checker{
		pinger:   pinger,
		server:   s,
		interval: interval,
		logger:   logger,
	}
}

// Server returns the health server to register on a gRPC server.
func (c *Checker) Server() *health.Server {
	return c.server
}

// Check pings once and updates the published status.
func (c *Checker) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := c.pinger.Ping(ctx); err != nil {
		c.logger.Warn("database ping failed", "error", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	c.server.SetServingStatus("", status)
	c.server.SetServingStatus(Service, status)
	return status
}

// Run probes every interval until ctx is done, then marks everything NOT_SERVING.
func (c *Checker) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			c.server.Shutdown()
			return
		case <-ticker.C:
			c.Check(ctx)
		}
	}
}
