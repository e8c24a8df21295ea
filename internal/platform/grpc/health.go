// Package grpc provides client helpers for reaching the standup gRPC server.
package grpc

import (
	"context"
	"fmt"
	"time"

	gogrpc "google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// WaitForHealth polls the connection's health service until it reports
// SERVING for the named service or the context ends. Probe intervals back
// off from 200ms up to one second.
func WaitForHealth(ctx context.Context, conn *gogrpc.ClientConn, service string, logf func(string, ...any)) error {
	if conn == nil {
		return fmt.Errorf("gRPC connection is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client := grpc_health_v1.NewHealthClient(conn)
	interval := 200 * time.Millisecond
	for {
		probeCtx, cancel := context.WithTimeout(ctx, time.Second)
		resp, err := client.Check(probeCtx, &grpc_health_v1.HealthCheckRequest{Service: service})
		cancel()
		if err == nil && resp.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING {
			if logf != nil {
				logf("standup health is SERVING")
			}
			return nil
		}
		if logf != nil {
			if err != nil {
				logf("waiting for standup health: %v", err)
			} else {
				logf("waiting for standup health: status %s", resp.GetStatus())
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for standup health: %w", ctx.Err())
		case <-time.After(interval):
		}
		if interval < time.Second {
			interval = min(2*interval, time.Second)
		}
	}
}
