package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"marina-ops/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

// Applies pending SQL migrations from db/migrations through the atlas CLI.
// Run from the repository root with the same DB_* environment as the server.
func main() {
	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		slog.Error("failed to load database config", "error", err.Error())
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		slog.Error("failed to initialize atlas client", "error", err.Error())
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dbCfg.BuildDSN(),
		DirURL: "file://db/migrations",
	})
	if err != nil {
		slog.Error("migration failed", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("migrations applied",
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied))
}
