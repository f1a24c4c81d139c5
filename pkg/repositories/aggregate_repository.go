package repositories

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"tftstats/pkg/aggregator"
	"tftstats/pkg/database/models"
	"tftstats/pkg/messages"
	"time"

	json "github.com/goccy/go-json"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Rows written per insert statement.
const upsertBatchSize = 500

// ErrAggregateNotFound is returned when a scope has no row for the key.
var ErrAggregateNotFound = errors.New("aggregate not found")

// AggregateRepository is the public interface for the exported aggregates.
type AggregateRepository interface {
	SaveExport(ctx context.Context, export *aggregator.Export) error
	GetChampions(ctx context.Context, scope aggregator.Scope) ([]map[string]any, error)
	GetItems(ctx context.Context, scope aggregator.Scope) ([]map[string]any, error)
	GetChampion(ctx context.Context, scope aggregator.Scope, championName string) (map[string]any, error)
	GetItem(ctx context.Context, scope aggregator.Scope, itemID int) (map[string]any, error)
}

// Aggregate repository structure.
type aggregateRepository struct {
	db *gorm.DB
}

// NewAggregateRepository creates a aggregate repository.
func NewAggregateRepository(db *gorm.DB) AggregateRepository {
	return &aggregateRepository{db: db}
}

// SaveExport replaces the stored aggregates of the export scope in a single transaction.
// Keys are upserted, rows of the scope missing from the export are deleted.
func (ar *aggregateRepository) SaveExport(ctx context.Context, export *aggregator.Export) error {
	now := time.Now().UTC()
	scope := string(export.Scope)

	// Build the champion rows, sorted by name so the statements are stable.
	championRows := make([]models.ChampionAggregate, 0, len(export.Champions))
	for _, championName := range slices.Sorted(maps.Keys(export.Champions)) {
		data := export.Champions[championName]
		encoded, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf(messages.FailedToPersist+": %w", "champion", championName, err)
		}

		occurrence, _ := data["occurrence"].(int)
		championRows = append(championRows, models.ChampionAggregate{
			Scope:        scope,
			ChampionName: championName,
			Occurrence:   occurrence,
			Data:         datatypes.JSON(encoded),
			UpdatedAt:    now,
		})
	}

	itemRows := make([]models.ItemAggregate, 0, len(export.Items))
	for _, itemID := range slices.Sorted(maps.Keys(export.Items)) {
		encoded, err := json.Marshal(export.Items[itemID])
		if err != nil {
			return fmt.Errorf(messages.FailedToPersist+": %w", "item", strconv.Itoa(itemID), err)
		}

		itemRows = append(itemRows, models.ItemAggregate{
			Scope:     scope,
			ItemID:    itemID,
			Data:      datatypes.JSON(encoded),
			UpdatedAt: now,
		})
	}

	return ar.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stale := tx.Where("scope = ?", scope)
		if len(championRows) > 0 {
			stale = stale.Where("champion_name NOT IN ?", slices.Sorted(maps.Keys(export.Champions)))
		}
		if err := stale.Delete(&models.ChampionAggregate{}).Error; err != nil {
			return fmt.Errorf("failed to delete the stale champion aggregates: %w", err)
		}

		stale = tx.Where("scope = ?", scope)
		if len(itemRows) > 0 {
			stale = stale.Where("item_id NOT IN ?", slices.Sorted(maps.Keys(export.Items)))
		}
		if err := stale.Delete(&models.ItemAggregate{}).Error; err != nil {
			return fmt.Errorf("failed to delete the stale item aggregates: %w", err)
		}

		if len(championRows) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "scope"}, {Name: "champion_name"}},
				DoUpdates: clause.AssignmentColumns([]string{"occurrence", "data", "updated_at"}),
			}).CreateInBatches(&championRows, upsertBatchSize).Error
			if err != nil {
				return fmt.Errorf("failed to upsert the champion aggregates: %w", err)
			}
		}

		if len(itemRows) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "scope"}, {Name: "item_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
			}).CreateInBatches(&itemRows, upsertBatchSize).Error
			if err != nil {
				return fmt.Errorf("failed to upsert the item aggregates: %w", err)
			}
		}

		return nil
	})
}

// GetChampions gets every champion aggregate of the scope, most played first.
func (ar *aggregateRepository) GetChampions(ctx context.Context, scope aggregator.Scope) ([]map[string]any, error) {
	var rows []models.ChampionAggregate
	err := ar.db.WithContext(ctx).
		Where("scope = ?", string(scope)).
		Order("occurrence DESC, champion_name").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		data, err := decodeAggregate(row.Data)
		if err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}

// GetItems gets every item aggregate of the scope.
func (ar *aggregateRepository) GetItems(ctx context.Context, scope aggregator.Scope) ([]map[string]any, error) {
	var rows []models.ItemAggregate
	err := ar.db.WithContext(ctx).
		Where("scope = ?", string(scope)).
		Order("item_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		data, err := decodeAggregate(row.Data)
		if err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}

// GetChampion gets a single champion aggregate.
func (ar *aggregateRepository) GetChampion(ctx context.Context, scope aggregator.Scope, championName string) (map[string]any, error) {
	var row models.ChampionAggregate
	err := ar.db.WithContext(ctx).
		Where("scope = ? AND champion_name = ?", string(scope), championName).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: "+messages.AggregateNotFound, ErrAggregateNotFound, "champion", championName)
		}
		return nil, err
	}

	return decodeAggregate(row.Data)
}

// GetItem gets a single item aggregate.
func (ar *aggregateRepository) GetItem(ctx context.Context, scope aggregator.Scope, itemID int) (map[string]any, error) {
	var row models.ItemAggregate
	err := ar.db.WithContext(ctx).
		Where("scope = ? AND item_id = ?", string(scope), itemID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: "+messages.AggregateNotFound, ErrAggregateNotFound, "item", strconv.Itoa(itemID))
		}
		return nil, err
	}

	return decodeAggregate(row.Data)
}

// Decode a stored jsonb value back to the exported mapping.
func decodeAggregate(data datatypes.JSON) (map[string]any, error) {
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("couldn't decode the stored aggregate: %w", err)
	}
	return decoded, nil
}
