// Command worker consumes sort jobs from Kafka and publishes the sorted
// results.
//
// Each message on the sort-jobs topic carries a job ID and a list of names;
// the worker sorts them with the shared collator and publishes a SortResult
// to the results topic. Rejected jobs (for example, containing an empty
// name) still produce a result message carrying the error.
//
// Usage:
//
//	go run ./cmd/worker [-config configs/development.yaml]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muyun-chen/stroke-sort/internal/collation"
	"github.com/muyun-chen/stroke-sort/internal/collation/codetable"
	"github.com/muyun-chen/stroke-sort/internal/collation/surname"
	"github.com/muyun-chen/stroke-sort/internal/source"
	"github.com/muyun-chen/stroke-sort/internal/worker"
	"github.com/muyun-chen/stroke-sort/pkg/config"
	"github.com/muyun-chen/stroke-sort/pkg/kafka"
	"github.com/muyun-chen/stroke-sort/pkg/logger"
	"github.com/muyun-chen/stroke-sort/pkg/metrics"
	"github.com/muyun-chen/stroke-sort/pkg/postgres"
)

func main() {
	configPath := flag.String("config", "configs/development.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("starting sort worker",
		"brokers", cfg.Kafka.Brokers,
		"jobs_topic", cfg.Kafka.Topics.SortJobs,
		"results_topic", cfg.Kafka.Topics.SortResults,
	)

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

	producer := kafka.NewProducer(cfg.Kafka, cfg.Kafka.Topics.SortResults)
	defer producer.Close()

	w := worker.New(collator, producer, m)
	consumer := kafka.NewConsumer(cfg.Kafka, cfg.Kafka.Topics.SortJobs, w.Handle)

	if err := consumer.Start(ctx); err != nil {
		slog.Error("consumer error", "error", err)
		os.Exit(1)
	}
	slog.Info("sort worker stopped")
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
