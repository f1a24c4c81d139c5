package main

import (
	"context"
	"log"
	"tftstats/api/modules"
	"tftstats/api/routes"
	"tftstats/pkg/config"
	"tftstats/pkg/database"
	"tftstats/pkg/redis"
	"time"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't initialize the configuration: %v", err)
	}

	db, err := database.NewConnection(cfg.Database.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close(db)

	// Redis is optional, the aggregates are always on the database.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	redisClient, err := redis.NewClient(ctx, cfg.Redis)
	cancel()
	if err != nil {
		log.Printf("Running without redis: %v", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	// Create a module with all necessary handlers.
	module := modules.NewModule(&modules.ModuleDeps{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
	})
	defer module.MemCache.Close()

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.AggregateHandler,
	)

	// Start the server.
	if err := router.Run(cfg.Server.APIAddress); err != nil {
		log.Fatalf("Couldn't start the api: %v", err)
	}
}
