// Package standup parses standup service flags and launches the service.
package standup

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/turnwise/standup/internal/platform/cmd"
	platformgrpc "github.com/turnwise/standup/internal/platform/grpc"
	server "github.com/turnwise/standup/internal/services/standup/app"
)

const checkTimeout = 5 * time.Second

// Config holds standup command configuration.
type Config struct {
	Port  int `env:"STANDUP_PORT" envDefault:"8080"`
	Check bool
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The standup gRPC server port")
	fs.BoolVar(&cfg.Check, "check", false, "Probe the running service health and exit")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the standup gRPC API service, or probes a running instance when
// -check is set.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Check {
		return checkHealth(ctx, cfg.Port)
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceStandup, func(context.Context) error {
		return server.Run(ctx, cfg.Port)
	})
}

// checkHealth dials the local server and waits for its health service to
// report SERVING. A non-nil return means the probe failed within the timeout.
func checkHealth(ctx context.Context, port int) error {
	probeCtx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	conn, err := platformgrpc.DialService(probeCtx, fmt.Sprintf("127.0.0.1:%d", port), nil)
	if err != nil {
		return err
	}
	return conn.Close()
}
