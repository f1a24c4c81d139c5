package routes

import (
	"tftstats/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	Engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api/v1"),
		Engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.AggregateHandler:
			r.registerAggregateHandler(handler)
		}
	}
}

// Register the champion and item routes.
func (r *Router) registerAggregateHandler(handler *handlers.AggregateHandler) {
	champions := r.api.Group("/champions")
	{
		champions.GET("", handler.GetChampions)
		champions.GET("/:championId", handler.GetChampion)
	}

	items := r.api.Group("/items")
	{
		items.GET("", handler.GetItems)
		items.GET("/:itemId", handler.GetItem)
	}
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.Engine.Run(addr)
}
