// Command sorter runs the one-shot batch transform: it loads the stroke-code
// table, the compound surname list, and the candidate names, sorts the names
// in stroke order, and writes them to the output file.
//
// The run is all-or-nothing. Any load or validation failure aborts with a
// non-zero exit and no output file is written.
//
// Usage:
//
//	go run ./cmd/sorter [-config configs/development.yaml]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/muyun-chen/stroke-sort/internal/collation"
	"github.com/muyun-chen/stroke-sort/internal/collation/codetable"
	"github.com/muyun-chen/stroke-sort/internal/collation/surname"
	"github.com/muyun-chen/stroke-sort/internal/output"
	"github.com/muyun-chen/stroke-sort/internal/source"
	"github.com/muyun-chen/stroke-sort/pkg/config"
	"github.com/muyun-chen/stroke-sort/pkg/logger"
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

	if err := run(context.Background(), cfg); err != nil {
		slog.Error("sort run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	start := time.Now()
	slog.Info("starting batch sort",
		"table_source", cfg.Collation.TableSource,
		"names", cfg.Collation.Names,
		"output", cfg.Collation.Output,
	)

	inputs, err := loadInputs(ctx, cfg)
	if err != nil {
		return err
	}
	slog.Info("inputs loaded",
		"code_table_records", len(inputs.Records),
		"compound_surnames", len(inputs.Surnames),
		"names", len(inputs.Names),
	)

	table := codetable.Build(inputs.Records, cfg.Collation.DefaultCode)
	set := surname.NewSet(inputs.Surnames)
	collator := collation.New(table, set)

	if err := collator.Sort(inputs.Names); err != nil {
		return err
	}
	if err := output.WriteFile(cfg.Collation.Output, inputs.Names); err != nil {
		return err
	}

	slog.Info("batch sort complete",
		"names", len(inputs.Names),
		"output", cfg.Collation.Output,
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return nil
}

// loadInputs reads the three sources. In file mode the loads run
// concurrently; in postgres mode the code table comes from the stroke_codes
// table instead of the JSON file.
func loadInputs(ctx context.Context, cfg *config.Config) (*source.Inputs, error) {
	if cfg.Collation.TableSource != "postgres" {
		loader := &source.Loader{
			CodeTablePath: cfg.Collation.CodeTable,
			SurnamesPath:  cfg.Collation.Surnames,
			NamesPath:     cfg.Collation.Names,
		}
		return loader.LoadAll(ctx)
	}

	db, err := postgres.New(cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	defer db.Close()

	records, err := source.LoadCodeTableFromPostgres(ctx, db)
	if err != nil {
		return nil, err
	}
	surnames, err := source.LoadLines(cfg.Collation.Surnames, false)
	if err != nil {
		return nil, err
	}
	names, err := source.LoadLines(cfg.Collation.Names, true)
	if err != nil {
		return nil, err
	}
	return &source.Inputs{Records: records, Surnames: surnames, Names: names}, nil
}
