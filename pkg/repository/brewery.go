package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gchukura/marylandbrewery-sub000/pkg/model"
	"github.com/gchukura/marylandbrewery-sub000/pkg/themes"
)

var ErrBreweryNotFound = errors.New("brewery not found")

// ListBreweries returns every brewery with its memberships preloaded,
// ordered by name so batch runs always process entities in the same order.
func (r *Repository) ListBreweries(ctx context.Context) ([]model.Brewery, error) {
	var breweries []model.Brewery

	result := r.DB.WithContext(ctx).Preload("Memberships").Order("name").Find(&breweries)
	if result.Error != nil {
		return nil, result.Error
	}

	return breweries, nil
}

func (r *Repository) GetBrewery(ctx context.Context, breweryID uint) (*model.Brewery, error) {
	brewery := &model.Brewery{}

	result := r.DB.WithContext(ctx).Preload("Memberships").First(brewery, breweryID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBreweryNotFound
		}

		return nil, result.Error
	}

	return brewery, nil
}

// UpdateBreweryFields applies a partial column update. Columns absent from
// the map are left untouched, which is what lets the merge policy write only
// the fields it decided to fill.
func (r *Repository) UpdateBreweryFields(ctx context.Context, breweryID uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	result := r.DB.WithContext(ctx).Model(&model.Brewery{}).Where("id = ?", breweryID).Updates(fields)

	return result.Error
}

// SaveThemes upserts the scored theme rows for one brewery. Themes are
// derived aggregates and are replaced wholesale on every run.
func (r *Repository) SaveThemes(ctx context.Context, breweryID uint, results map[themes.Category]themes.Result) error {
	if len(results) == 0 {
		return nil
	}

	rows := make([]model.BreweryTheme, 0, len(results))

	for category, result := range results {
		rows = append(rows, model.BreweryTheme{
			BreweryID:  breweryID,
			Category:   string(category),
			Detected:   result.Detected,
			Score:      result.Score,
			Keywords:   strings.Join(result.Keywords, ","),
			MatchCount: result.MatchCount,
		})
	}

	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "brewery_id"}, {Name: "category"}},
		UpdateAll: true,
	}).Create(&rows)

	return result.Error
}

func (r *Repository) AddMembership(ctx context.Context, membership model.Membership) error {
	result := r.DB.WithContext(ctx).Create(&membership)

	return result.Error
}

func (r *Repository) DeleteMembership(ctx context.Context, membershipID uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.Membership{}, membershipID)

	return result.Error
}
