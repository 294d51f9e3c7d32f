package model

import (
	"time"

	"gorm.io/gorm"
)

// Review is one review occurrence for a brewery as delivered by a source.
// ReviewedAt and ReviewerName come from the source and may be absent;
// gorm.Model.CreatedAt records ingestion time and is used only to break ties
// during deduplication (oldest row survives).
type Review struct {
	gorm.Model
	BreweryID    uint `gorm:"index"`
	ReviewerName *string
	ReviewedAt   *time.Time
	Text         *string
	Rating       *float64
	Language     string `gorm:"default:en"`
}
