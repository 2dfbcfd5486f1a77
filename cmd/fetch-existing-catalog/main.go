// Command fetch-existing-catalog dumps the published catalog (categories,
// subcategories, topics and published questions with their primary answers)
// as JSON or YAML. The output can be fed back to sync-dev-to-prod-public-data.
//
// Flags:
//
//	--format  json or yaml (default json)
//	--out     output file (default stdout)
//
// Requires the same configuration as the server (DATABASE_DSN etc).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres"
	"github.com/heartmarshall/interviewprep-backend/internal/app"
	"github.com/heartmarshall/interviewprep-backend/internal/config"
	"github.com/heartmarshall/interviewprep-backend/internal/service/catalog"
)

func main() {
	format := flag.String("format", "json", "output format: json or yaml")
	out := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	if *format != "json" && *format != "yaml" {
		fmt.Fprintln(os.Stderr, "Usage: fetch-existing-catalog [--format=json|yaml] [--out=file]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	snap, err := app.NewServices(logger, pool, cfg).Catalog.Export(ctx)
	if err != nil {
		logger.Error("export catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			logger.Error("create output file", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := writeSnapshot(w, *format, snap); err != nil {
		logger.Error("write snapshot", slog.String("error", err.Error()))
		os.Exit(1)
	}

	categories, subcategories, topics, questions := snap.Counts()
	logger.Info("catalog exported",
		slog.Int("categories", categories),
		slog.Int("subcategories", subcategories),
		slog.Int("topics", topics),
		slog.Int("questions", questions))
}

func writeSnapshot(w io.Writer, format string, snap *catalog.Snapshot) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
