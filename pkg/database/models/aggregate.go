package models

import (
	"time"

	"gorm.io/datatypes"
)

// Database model for the exported champion aggregate of a scope.
type ChampionAggregate struct {
	Scope        string         `gorm:"primaryKey;type:varchar(10)"`
	ChampionName string         `gorm:"primaryKey;type:varchar(64)"`
	Occurrence   int            `gorm:"not null"`
	Data         datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt    time.Time
}

// Database model for the exported item aggregate of a scope.
type ItemAggregate struct {
	Scope     string         `gorm:"primaryKey;type:varchar(10)"`
	ItemID    int            `gorm:"primaryKey;autoIncrement:false"`
	Data      datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}
