package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"tftstats/pkg/config"
	"tftstats/pkg/database"
	"tftstats/pkg/report"
)

// Run a single report pass over the match directory.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't initialize the configuration: %v", err)
	}

	if err := migrate(cfg); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Starting the %s report over %s", cfg.Report.Scope, cfg.Report.MatchDir)
	summary, err := report.RunPass(ctx, cfg)
	if err != nil {
		log.Fatalf("Report failed: %v", err)
	}

	log.Printf(
		"Report finished: %d files, %d parsed, %d skipped, %d champions, %d items",
		summary.Files, summary.Parsed, summary.Skipped, summary.Champions, summary.Items,
	)
}

// Run the migrations with a short lived connection.
func migrate(cfg *config.Config) error {
	db, err := database.NewConnection(cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer database.Close(db)

	rawDb, err := db.DB()
	if err != nil {
		return err
	}
	return database.RunMigrations(cfg, rawDb)
}
