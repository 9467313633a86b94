// Command server starts the HTTP sorting service.
//
// The service loads the stroke-code table and compound surname list once at
// startup and sorts name batches on demand via POST /api/v1/sort. Results
// are cached in Redis when it is available. Health probes are served at
// GET /health/live and GET /health/ready.
//
// Usage:
//
//	go run ./cmd/server [-config configs/development.yaml]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/muyun-chen/stroke-sort/internal/collation"
	"github.com/muyun-chen/stroke-sort/internal/collation/codetable"
	"github.com/muyun-chen/stroke-sort/internal/collation/surname"
	"github.com/muyun-chen/stroke-sort/internal/server/cache"
	"github.com/muyun-chen/stroke-sort/internal/server/handler"
	"github.com/muyun-chen/stroke-sort/internal/source"
	"github.com/muyun-chen/stroke-sort/pkg/config"
	"github.com/muyun-chen/stroke-sort/pkg/health"
	"github.com/muyun-chen/stroke-sort/pkg/logger"
	"github.com/muyun-chen/stroke-sort/pkg/metrics"
	"github.com/muyun-chen/stroke-sort/pkg/middleware"
	"github.com/muyun-chen/stroke-sort/pkg/postgres"
	pkgredis "github.com/muyun-chen/stroke-sort/pkg/redis"
)

const maxNamesPerRequest = 100000

func main() {
	configPath := flag.String("config", "configs/development.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("starting sort service", "port", cfg.Server.Port)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	collator, tableLen, setLen, err := buildCollator(ctx, cfg)
	if err != nil {
		slog.Error("failed to load collation tables", "error", err)
		os.Exit(1)
	}
	slog.Info("collation tables loaded", "code_table_records", tableLen, "compound_surnames", setLen)

	m := metrics.New()
	m.CodeTableSize.Set(float64(tableLen))
	m.CompoundSurnames.Set(float64(setLen))
	if cfg.Metrics.Enabled {
		shutdownMetrics := metrics.StartServer(cfg.Metrics.Port)
		defer shutdownMetrics(context.Background())
	}

	var resultCache *cache.ResultCache
	redisClient, err := pkgredis.NewClient(cfg.Redis)
	if err != nil {
		slog.Warn("redis unavailable, result caching disabled", "error", err)
	} else {
		defer redisClient.Close()
		resultCache = cache.New(redisClient, cfg.Redis)
		slog.Info("result cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.CacheTTL)
	}

	checker := health.NewChecker()
	checker.Register("code_table", func(ctx context.Context) health.ComponentHealth {
		if tableLen > 0 {
			return health.ComponentHealth{Status: health.StatusUp, Message: fmt.Sprintf("%d records", tableLen)}
		}
		return health.ComponentHealth{Status: health.StatusDegraded, Message: "empty table, all lookups use the default code"}
	})
	checker.Register("redis", func(ctx context.Context) health.ComponentHealth {
		if redisClient == nil {
			return health.ComponentHealth{Status: health.StatusDegraded, Message: "not configured"}
		}
		if err := redisClient.Ping(ctx); err != nil {
			return health.ComponentHealth{Status: health.StatusDegraded, Message: err.Error()}
		}
		return health.ComponentHealth{Status: health.StatusUp}
	})

	h := handler.New(collator, resultCache, m, maxNamesPerRequest)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/sort", h.Sort)
	mux.HandleFunc("GET /api/v1/cache/stats", h.CacheStats)
	mux.HandleFunc("GET /health/live", checker.LiveHandler())
	mux.HandleFunc("GET /health/ready", checker.ReadyHandler())

	var chain http.Handler = mux
	chain = middleware.Metrics(m)(chain)
	chain = middleware.Timeout(cfg.Server.WriteTimeout)(chain)
	chain = middleware.RequestID(chain)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      chain,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		slog.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	slog.Info("sort service listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
	slog.Info("sort service stopped")
}

// buildCollator loads the code table and surname set per the configured
// source and returns a ready Collator.
func buildCollator(ctx context.Context, cfg *config.Config) (*collation.Collator, int, int, error) {
	var records []codetable.Record
	var err error
	if cfg.Collation.TableSource == "postgres" {
		var db *postgres.Client
		db, err = postgres.New(cfg.Postgres)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("connecting to postgres: %w", err)
		}
		defer db.Close()
		records, err = source.LoadCodeTableFromPostgres(ctx, db)
	} else {
		records, err = source.LoadCodeTable(cfg.Collation.CodeTable)
	}
	if err != nil {
		return nil, 0, 0, err
	}

	surnames, err := source.LoadLines(cfg.Collation.Surnames, false)
	if err != nil {
		return nil, 0, 0, err
	}

	table := codetable.Build(records, cfg.Collation.DefaultCode)
	set := surname.NewSet(surnames)
	return collation.New(table, set), table.Len(), set.Len(), nil
}
