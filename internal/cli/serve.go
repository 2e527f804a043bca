package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/rpgo/calckit/internal/api"
	"github.com/rpgo/calckit/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serveAddr      string
	serveRedis     string
	serveRateLimit int
	serveNoCache   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculators as a JSON HTTP API",
	Long: `Serve the calculators as POST-only JSON endpoints under /v1/.
Responses are cached in memory, or in Redis with --redis. Each client IP is
rate limited. SIGINT or SIGTERM shuts the server down gracefully.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from preferences)")
	serveCmd.Flags().StringVar(&serveRedis, "redis", "", "Redis address for the response cache")
	serveCmd.Flags().IntVar(&serveRateLimit, "rate-limit", 0, "Requests per client per window (default from preferences)")
	serveCmd.Flags().BoolVar(&serveNoCache, "no-cache", false, "Disable response caching")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := prefs.Server
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if serveRedis != "" {
		cfg.RedisAddr = serveRedis
	}
	if serveRateLimit > 0 {
		cfg.RateLimit = serveRateLimit
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cache, closeCache := newCache(ctx, cfg)
	defer closeCache()

	srv := newServer(cfg, cache)
	return srv.Run(ctx)
}

func newServer(cfg config.ServerConfig, cache api.CacheRepository) *api.Server {
	h := api.NewHandler(engine, nil, cache, logger)
	return api.NewServer(api.Config{
		Addr:       cfg.Addr,
		RateLimit:  cfg.RateLimit,
		RateWindow: cfg.RateWindow.Duration,
	}, h, logger)
}

// newCache prefers Redis when configured and reachable, else memory.
func newCache(ctx context.Context, cfg config.ServerConfig) (api.CacheRepository, func()) {
	if serveNoCache {
		return nil, func() {}
	}
	if cfg.RedisAddr == "" {
		return api.NewMemoryCache(), func() {}
	}

	rc := api.NewRedisCache(cfg.RedisAddr, api.DefaultCacheTTL)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rc.Ping(pingCtx); err != nil {
		logger.Warn("redis unavailable, using in-memory cache", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		_ = rc.Close()
		return api.NewMemoryCache(), func() {}
	}
	logger.Info("using redis cache", zap.String("addr", cfg.RedisAddr))
	return rc, func() {
		if err := rc.Close(); err != nil {
			logger.Warn("closing redis", zap.Error(err))
		}
	}
}
