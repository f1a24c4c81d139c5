package testutil

import (
	"context"
	"testing"
	"tftstats/pkg/aggregator"
	"time"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(mock.TestingT) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// Redis mock implementation.
type MockRedisClient struct {
	mock.Mock
}

func (m *MockRedisClient) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

// Aggregate repository mock implementation.
type MockAggregateRepository struct {
	mock.Mock
}

func (m *MockAggregateRepository) SaveExport(ctx context.Context, export *aggregator.Export) error {
	args := m.Called(ctx, export)
	return args.Error(0)
}

func (m *MockAggregateRepository) GetChampions(ctx context.Context, scope aggregator.Scope) ([]map[string]any, error) {
	args := m.Called(ctx, scope)
	return args.Get(0).([]map[string]any), args.Error(1)
}

func (m *MockAggregateRepository) GetItems(ctx context.Context, scope aggregator.Scope) ([]map[string]any, error) {
	args := m.Called(ctx, scope)
	return args.Get(0).([]map[string]any), args.Error(1)
}

func (m *MockAggregateRepository) GetChampion(ctx context.Context, scope aggregator.Scope, championName string) (map[string]any, error) {
	args := m.Called(ctx, scope, championName)
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockAggregateRepository) GetItem(ctx context.Context, scope aggregator.Scope, itemID int) (map[string]any, error) {
	args := m.Called(ctx, scope, itemID)
	return args.Get(0).(map[string]any), args.Error(1)
}

// Aggregate cache mock implementation.
type MockAggregateCache struct {
	mock.Mock
}

func (m *MockAggregateCache) GetChampion(ctx context.Context, scope aggregator.Scope, championName string) (map[string]any, error) {
	args := m.Called(ctx, scope, championName)
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockAggregateCache) GetItem(ctx context.Context, scope aggregator.Scope, itemID int) (map[string]any, error) {
	args := m.Called(ctx, scope, itemID)
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockAggregateCache) SetChampion(ctx context.Context, scope aggregator.Scope, data map[string]any) error {
	args := m.Called(ctx, scope, data)
	return args.Error(0)
}

func (m *MockAggregateCache) SetItem(ctx context.Context, scope aggregator.Scope, data map[string]any) error {
	args := m.Called(ctx, scope, data)
	return args.Error(0)
}

func (m *MockAggregateCache) SetExport(ctx context.Context, export *aggregator.Export) error {
	args := m.Called(ctx, export)
	return args.Error(0)
}
