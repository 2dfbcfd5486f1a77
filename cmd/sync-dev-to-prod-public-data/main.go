// Command sync-dev-to-prod-public-data copies the published catalog from a
// source database into a target database, upserting rows by slug. Drafts are
// never copied and nothing is deleted on the target.
//
// Flags:
//
//	--target-dsn  target database DSN (required)
//	--source-dsn  source database DSN (default: database.dsn from config)
//	--from-file   read the snapshot from a fetch-existing-catalog dump instead
//	--dry-run     export and report counts without writing
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres"
	answerrepo "github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres/answer"
	catalogrepo "github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres/catalog"
	questionrepo "github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres/question"
	"github.com/heartmarshall/interviewprep-backend/internal/app"
	"github.com/heartmarshall/interviewprep-backend/internal/config"
	"github.com/heartmarshall/interviewprep-backend/internal/service/catalog"
)

func main() {
	targetDSN := flag.String("target-dsn", os.Getenv("TARGET_DATABASE_DSN"), "target database DSN")
	sourceDSN := flag.String("source-dsn", "", "source database DSN (default: database.dsn from config)")
	fromFile := flag.String("from-file", "", "snapshot file (JSON or YAML) to apply instead of reading the source")
	dryRun := flag.Bool("dry-run", false, "export and report counts without writing")
	flag.Parse()

	if *targetDSN == "" && !*dryRun {
		fmt.Fprintln(os.Stderr, "Usage: sync-dev-to-prod-public-data --target-dsn=postgres://... [--source-dsn=...] [--from-file=dump.yaml] [--dry-run]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	snap, err := loadSnapshot(ctx, logger, cfg.Database, *sourceDSN, *fromFile)
	if err != nil {
		logger.Error("load snapshot", slog.String("error", err.Error()))
		os.Exit(1)
	}

	categories, subcategories, topics, questions := snap.Counts()
	logger.Info("snapshot loaded",
		slog.Int("categories", categories),
		slog.Int("subcategories", subcategories),
		slog.Int("topics", topics),
		slog.Int("questions", questions))

	if *dryRun {
		return
	}
	if sameDSN(*targetDSN, *sourceDSN, cfg.Database.DSN, *fromFile) {
		logger.Error("target and source are the same database")
		os.Exit(1)
	}

	targetCfg := cfg.Database
	targetCfg.DSN = *targetDSN
	target, err := postgres.NewPool(ctx, targetCfg)
	if err != nil {
		logger.Error("connect to target", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer target.Close()

	syncer := catalog.NewSyncer(logger, catalogrepo.New(target), postgres.NewTxManager(target))
	res, err := syncer.Apply(ctx, snap)
	if err != nil {
		logger.Error("sync failed, target unchanged", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("sync complete",
		slog.Int("categories", res.Categories),
		slog.Int("subcategories", res.Subcategories),
		slog.Int("topics", res.Topics),
		slog.Int("questions", res.Questions),
		slog.Any("skipped", res.Skipped))
}

func loadSnapshot(ctx context.Context, logger *slog.Logger, dbCfg config.DatabaseConfig, sourceDSN, file string) (*catalog.Snapshot, error) {
	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		var snap catalog.Snapshot
		if strings.HasPrefix(strings.TrimSpace(string(raw)), "{") {
			err = json.Unmarshal(raw, &snap)
		} else {
			err = yaml.Unmarshal(raw, &snap)
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", file, err)
		}
		return &snap, nil
	}

	if sourceDSN != "" {
		dbCfg.DSN = sourceDSN
	}
	source, err := postgres.NewPool(ctx, dbCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to source: %w", err)
	}
	defer source.Close()

	svc := catalog.NewService(logger, catalogrepo.New(source), questionrepo.New(source), answerrepo.New(source))
	return svc.Export(ctx)
}

func sameDSN(target, source, configured, file string) bool {
	if file != "" {
		return false
	}
	if source == "" {
		source = configured
	}
	return strings.TrimSpace(target) == strings.TrimSpace(source)
}
