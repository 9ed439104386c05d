package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/Holmfrior/Technopreneurship/internal/api"
	"github.com/Holmfrior/Technopreneurship/pkg/cache"
	"github.com/Holmfrior/Technopreneurship/pkg/parse"
	"github.com/Holmfrior/Technopreneurship/pkg/pipeline"
)

// shutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
const shutdownTimeout = 10 * time.Second

// healthProbeTimeout bounds the startup probe of the parsing service.
const healthProbeTimeout = 10 * time.Second

// serveCommand creates the serve command exposing the pipeline over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		server string
		listen string
		redis  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis pipeline as an HTTP API",
		Long: `Serve the analysis pipeline as an HTTP API.

Endpoints:
  POST /api/analyze   Compare two passages
  GET  /healthz       Liveness check

Parse responses are cached in Redis when a Redis address is configured,
otherwise on the local filesystem.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), server, listen, redis)
		},
	}

	cmd.Flags().StringVarP(&server, "server", "s", "", "parsing service URL (overrides config)")
	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (default from config, \":8080\")")
	cmd.Flags().StringVar(&redis, "redis", "", "redis address for shared caching (overrides config)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, server, listen, redisAddr string) error {
	server, err := c.resolveServer(server)
	if err != nil {
		return err
	}
	if listen == "" {
		listen = c.cfg.Serve.Listen
	}
	if redisAddr == "" {
		redisAddr = c.cfg.Serve.Redis
	}

	backend, err := c.newServeCache(ctx, redisAddr)
	if err != nil {
		return err
	}
	defer backend.Close()

	client := parse.NewClient(server, backend, c.cfg.Cache.TTLDuration())

	probeCtx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	if err := client.Health(probeCtx); err != nil {
		c.Logger.Warn("parsing service unreachable, serving anyway", "parser", server, "err", err)
	} else {
		c.Logger.Info("parsing service reachable", "parser", server)
	}
	cancel()

	runner := pipeline.NewRunner(client, c.Logger)
	handler := api.NewServer(runner, c.Logger, api.Config{
		Rate:  c.cfg.Serve.Rate,
		Burst: c.cfg.Serve.Burst,
	})

	srv := &http.Server{
		Addr:              listen,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("serving", "addr", listen, "parser", server)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// newServeCache picks the cache backend for serving: Redis when an
// address is configured, the file cache otherwise.
func (c *CLI) newServeCache(ctx context.Context, redisAddr string) (cache.Cache, error) {
	if redisAddr == "" {
		return c.newCache(false), nil
	}
	backend, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr})
	if err != nil {
		return nil, fmt.Errorf("connect redis %s: %w", redisAddr, err)
	}
	c.Logger.Info("using redis cache", "addr", redisAddr)
	return backend, nil
}
