package report

import (
	"context"
	"fmt"
	"log"
	"tftstats/pkg/cache"
	"tftstats/pkg/config"
	"tftstats/pkg/database"
	"tftstats/pkg/logger"
	"tftstats/pkg/redis"
	"tftstats/pkg/repositories"
	"time"
)

// RunPass opens the connections, runs a report and uploads the run log when a bucket is set.
func RunPass(ctx context.Context, cfg *config.Config) (*Summary, error) {
	runLogger, err := logger.New()
	if err != nil {
		return nil, fmt.Errorf("couldn't create the run logger: %w", err)
	}
	defer runLogger.Close()

	db, err := database.NewConnection(cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("couldn't get database connection: %w", err)
	}
	defer database.Close(db)

	deps := Deps{
		Repository: repositories.NewAggregateRepository(db),
		Logger:     runLogger,
	}

	// Redis is best effort, the api falls back to the database.
	redisClient, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		runLogger.Errorf("Running without redis: %v", err)
	} else {
		defer redisClient.Close()
		deps.Cache = cache.NewAggregateCache(redisClient, cfg.Redis.TTL)
	}

	startTime := time.Now()
	summary, runErr := Run(ctx, cfg.Report, deps)
	if runErr != nil {
		runLogger.Errorf("Report failed: %v", runErr)
	}
	runLogger.Infof("Report took %s with %d logged errors", time.Since(startTime), runLogger.Errors())
	runLogger.Separator()

	if cfg.Bucket.LogBucket != "" {
		objectKey := fmt.Sprintf("reports/%s/%s.log", cfg.Report.Scope, startTime.UTC().Format("2006-01-02T15-04-05"))
		if err := runLogger.Ship(ctx, logger.NewS3Uploader(cfg.Bucket), objectKey); err != nil {
			log.Printf("Couldn't upload the run log: %v", err)
		}
	}

	return summary, runErr
}
