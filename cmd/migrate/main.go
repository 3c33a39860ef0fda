// Command migrate applies migrations/ to the Postgres database named by the DB_* variables.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/config"
)

func main() {
	var (
		dir     = flag.String("dir", "migrations", "directory holding the schema files")
		devURL  = flag.String("dev-url", "docker://postgres/17/dev?search_path=public", "scratch database atlas uses to plan changes")
		dryRun  = flag.Bool("dry-run", false, "print the planned statements without applying them")
		timeout = flag.Duration("timeout", 2*time.Minute, "overall timeout")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		logger.Error("failed to load database config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := apply(ctx, logger, dbCfg, *dir, *devURL, *dryRun); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func apply(ctx context.Context, logger *slog.Logger, dbCfg config.DBConfig, dir, devURL string, dryRun bool) error {
	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(dir)),
	)
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), "atlas")
	if err != nil {
		return err
	}

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         dbCfg.BuildDSN(),
		To:          "file://migrations",
		DevURL:      devURL,
		DryRun:      dryRun,
		AutoApprove: true,
	})
	if err != nil {
		return err
	}

	if dryRun {
		for _, stmt := range res.Changes.Pending {
			logger.Info("pending", "statement", stmt)
		}
		return nil
	}
	logger.Info("schema applied", "statements", len(res.Changes.Applied))
	return nil
}
