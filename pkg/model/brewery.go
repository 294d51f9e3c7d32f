package model

import (
	"gorm.io/gorm"
)

// Brewery is one physical brewery in the directory. The amenity columns are
// pointers so that "never inferred" stays distinguishable from a confirmed
// false/no: enrichment only ever fills nil columns and never flips a set one.
type Brewery struct {
	gorm.Model
	Name    string `gorm:"uniqueIndex"`
	Slug    string `gorm:"uniqueIndex"`
	Website *string

	AllowsVisitors *bool
	OffersTours    *bool
	BeerToGo       *bool
	HasMerch       *bool
	DogFriendly    *bool
	OutdoorSeating *bool
	Food           *string // "in-house" or "food-trucks"
	OtherDrinks    *string // "yes" or "no"
	Parking        *string // "yes" or "no"

	Memberships []Membership
}

// Membership is one badge linking a brewery to an external organization,
// e.g. the state brewers guild.
type Membership struct {
	gorm.Model
	BreweryID uint `gorm:"index"`
	Name      string
	SourceURL *string
}

// BreweryTheme is the persisted aggregate of the theme scorer for one
// brewery and category. Rows are recomputed and upserted wholesale on every
// enrichment run; they are derived data, not merge-guarded fields.
type BreweryTheme struct {
	gorm.Model
	BreweryID  uint   `gorm:"uniqueIndex:idx_brewery_theme"`
	Category   string `gorm:"uniqueIndex:idx_brewery_theme"`
	Detected   bool
	Score      float64
	Keywords   string // comma-joined sample of matched keywords
	MatchCount int
}
