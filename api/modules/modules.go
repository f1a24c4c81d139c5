package modules

import (
	"tftstats/api/handlers"
	aggregateservice "tftstats/api/services/aggregate"
	"tftstats/pkg/cache"
	"tftstats/pkg/config"
	"tftstats/pkg/redis"
	"tftstats/pkg/repositories"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Module containing the necessary handlers.
type Module struct {
	Router           *gin.Engine
	AggregateHandler *handlers.AggregateHandler
	MemCache         *cache.MemCache
}

// ModuleDeps is the dependency list of the api, redis can be nil.
type ModuleDeps struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.RedisClient
}

// Create a new module with all the necessary handlers initialized.
func NewModule(deps *ModuleDeps) *Module {
	router := gin.Default()
	memCache := cache.NewMemCache(5 * time.Minute)

	// Without redis the service falls back to the database.
	var aggregateCache cache.AggregateCache
	if deps.Redis != nil {
		aggregateCache = cache.NewAggregateCache(deps.Redis, deps.Config.Redis.TTL)
	}

	// Initialize the services.
	aggregateService := aggregateservice.NewAggregateService(&aggregateservice.AggregateServiceDeps{
		MemCache:   memCache,
		Cache:      aggregateCache,
		Repository: repositories.NewAggregateRepository(deps.DB),
	})

	// Initialize the handlers.
	aggregateHandler := handlers.NewAggregateHandler(&handlers.AggregateHandlerDependencies{
		AggregateService: aggregateService,
	})

	return &Module{
		Router:           router,
		AggregateHandler: aggregateHandler,
		MemCache:         memCache,
	}
}
