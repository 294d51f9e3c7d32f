package repository

import (
	"context"

	"github.com/gchukura/marylandbrewery-sub000/pkg/model"
)

// GetReviews returns the reviews of one brewery, optionally filtered to a
// single language tag. An empty language returns everything.
func (r *Repository) GetReviews(ctx context.Context, breweryID uint, language string) ([]model.Review, error) {
	var reviews []model.Review

	query := r.DB.WithContext(ctx).Where("brewery_id = ?", breweryID)
	if language != "" {
		query = query.Where("language = ?", language)
	}

	if result := query.Order("id").Find(&reviews); result.Error != nil {
		return nil, result.Error
	}

	return reviews, nil
}

// ListReviews returns every review row. The dedup guard needs the full set
// in one pass, so no pagination.
func (r *Repository) ListReviews(ctx context.Context) ([]model.Review, error) {
	var reviews []model.Review

	if result := r.DB.WithContext(ctx).Order("id").Find(&reviews); result.Error != nil {
		return nil, result.Error
	}

	return reviews, nil
}

func (r *Repository) DeleteReview(ctx context.Context, reviewID uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.Review{}, reviewID)

	return result.Error
}
