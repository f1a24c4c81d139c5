package filters

import (
	"tftstats/pkg/aggregator"
)

// URI params for the champion endpoints.
type ChampionURIParams struct {
	ChampionId string `uri:"championId" binding:"required"`
}

// URI params for the item endpoints.
type ItemURIParams struct {
	ItemId int `uri:"itemId" binding:"required,min=1"`
}

// Query params shared by the aggregate endpoints.
type AggregateQueryParams struct {
	Scope string `form:"scope"`
}

type ChampionFilter struct {
	ChampionId string
	Scope      aggregator.Scope
}

type ItemFilter struct {
	ItemId int
	Scope  aggregator.Scope
}

type ScopeFilter struct {
	Scope aggregator.Scope
}

// NewScopeFilter validates the scope, empty defaults to all.
func NewScopeFilter(qp *AggregateQueryParams) (*ScopeFilter, error) {
	scope, err := aggregator.ParseScope(qp.Scope)
	if err != nil {
		return nil, err
	}
	return &ScopeFilter{Scope: scope}, nil
}

func NewChampionFilter(pp *ChampionURIParams, qp *AggregateQueryParams) (*ChampionFilter, error) {
	sf, err := NewScopeFilter(qp)
	if err != nil {
		return nil, err
	}
	return &ChampionFilter{
		ChampionId: pp.ChampionId,
		Scope:      sf.Scope,
	}, nil
}

func NewItemFilter(pp *ItemURIParams, qp *AggregateQueryParams) (*ItemFilter, error) {
	sf, err := NewScopeFilter(qp)
	if err != nil {
		return nil, err
	}
	return &ItemFilter{
		ItemId: pp.ItemId,
		Scope:  sf.Scope,
	}, nil
}
