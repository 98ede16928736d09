// Command migrate brings the database schema in line with migrations/001_initial_schema.sql.
//
// The schema file is the desired state; atlas diffs it against the live database
// (using a throwaway dev database for normalisation) and applies the difference.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"court-reservation/internal/handler/middleware"
	"court-reservation/internal/pkg/config"
	"court-reservation/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	schema := flag.String("schema", "migrations/001_initial_schema.sql", "desired schema file")
	devURL := flag.String("dev-url", "docker://postgres/17/dev?search_path=public", "atlas dev database URL")
	dryRun := flag.Bool("dry-run", false, "print the plan without applying it")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := apply(ctx, logger, cfg.DB, *atlasBin, *schema, *devURL, *dryRun); err != nil {
		logger.Error("マイグレーションに失敗しました", "error", err.Error())
		os.Exit(1)
	}
}

func apply(ctx context.Context, logger *slog.Logger, db config.DBConfig, atlasBin, schema, devURL string, dryRun bool) error {
	abs, err := filepath.Abs(schema)
	if err != nil {
		return errs.Wrapf(err, "resolve schema path %s", schema)
	}
	if _, err := os.Stat(abs); err != nil {
		return errs.Wrapf(err, "schema file %s", abs)
	}

	client, err := atlasexec.NewClient(filepath.Dir(abs), atlasBin)
	if err != nil {
		return errs.Wrap(err, "init atlas client")
	}

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         db.BuildDSN(),
		To:          "file://" + filepath.Base(abs),
		DevURL:      devURL,
		DryRun:      dryRun,
		AutoApprove: true,
	})
	if err != nil {
		return errs.Wrap(err, "atlas schema apply")
	}

	if dryRun {
		logger.Info("pending schema changes", "count", len(res.Changes.Pending))
		for _, stmt := range res.Changes.Pending {
			logger.Info("pending", "sql", stmt)
		}
		return nil
	}

	logger.Info("schema applied",
		"database", db.DBName,
		"applied", len(res.Changes.Applied))
	return nil
}
