package handlers

import (
	"errors"
	"net/http"
	"tftstats/api/filters"
	aggregateservice "tftstats/api/services/aggregate"
	"tftstats/pkg/repositories"

	"github.com/gin-gonic/gin"
)

// AggregateHandler is the handler for the champion and item endpoints.
type AggregateHandler struct {
	AggregateService *aggregateservice.AggregateService
}

type AggregateHandlerDependencies struct {
	AggregateService *aggregateservice.AggregateService
}

// NewAggregateHandler creates a new instance of the aggregate handler.
func NewAggregateHandler(deps *AggregateHandlerDependencies) *AggregateHandler {
	return &AggregateHandler{
		AggregateService: deps.AggregateService,
	}
}

// Helper to bind the scope query param.
func (h *AggregateHandler) bindQueryParams(c *gin.Context) (*filters.AggregateQueryParams, error) {
	var qp filters.AggregateQueryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		return nil, err
	}
	return &qp, nil
}

// GetChampion is the handler to return the aggregate of a champion.
func (h *AggregateHandler) GetChampion(c *gin.Context) {
	var pp filters.ChampionURIParams
	if err := c.ShouldBindUri(&pp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	qp, err := h.bindQueryParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter, err := filters.NewChampionFilter(&pp, qp)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.AggregateService.GetChampion(c, filter)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": data})
}

// GetItem is the handler to return the aggregate of a item.
func (h *AggregateHandler) GetItem(c *gin.Context) {
	var pp filters.ItemURIParams
	if err := c.ShouldBindUri(&pp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	qp, err := h.bindQueryParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter, err := filters.NewItemFilter(&pp, qp)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.AggregateService.GetItem(c, filter)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": data})
}

// GetChampions is the handler to return every champion aggregate of a scope.
func (h *AggregateHandler) GetChampions(c *gin.Context) {
	qp, err := h.bindQueryParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter, err := filters.NewScopeFilter(qp)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.AggregateService.GetChampions(c, filter)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": data})
}

// GetItems is the handler to return every item aggregate of a scope.
func (h *AggregateHandler) GetItems(c *gin.Context) {
	qp, err := h.bindQueryParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter, err := filters.NewScopeFilter(qp)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.AggregateService.GetItems(c, filter)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": data})
}

func statusFromError(err error) int {
	if errors.Is(err, repositories.ErrAggregateNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
