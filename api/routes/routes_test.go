package routes

import (
	"testing"
	"tftstats/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *Router {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	return NewRouter(engine)
}

func TestNewRouter(t *testing.T) {
	router := setupTestRouter()

	assert.NotNil(t, router)
	assert.NotNil(t, router.Engine)
	assert.NotNil(t, router.api)
}

func TestSetupRoutes(t *testing.T) {
	router := setupTestRouter()

	router.SetupRoutes(&handlers.AggregateHandler{}, "ignored")

	var paths []string
	for _, route := range router.Engine.Routes() {
		paths = append(paths, route.Method+" "+route.Path)
	}
	assert.ElementsMatch(t, []string{
		"GET /api/v1/champions",
		"GET /api/v1/champions/:championId",
		"GET /api/v1/items",
		"GET /api/v1/items/:itemId",
	}, paths)
}
