package grpc

import (
	"context"
	"fmt"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// ServiceName is the identifier the standup server registers with its gRPC
// health service.
const ServiceName = "standup.v1.StandupService"

// DialService opens a plaintext client connection to a standup endpoint and
// blocks until the standup health service reports SERVING. The connection
// carries the OTel stats handler so outbound calls propagate trace context.
func DialService(ctx context.Context, addr string, logf func(string, ...any)) (*gogrpc.ClientConn, error) {
	conn, err := gogrpc.NewClient(
		addr,
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
		gogrpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial standup service: %w", err)
	}
	if err := WaitForHealth(ctx, conn, ServiceName, logf); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}
