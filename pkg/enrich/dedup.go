package enrich

import (
	"context"

	"go.uber.org/zap"

	"github.com/gchukura/marylandbrewery-sub000/pkg/merge"
)

// RunDedup removes duplicate review rows in one pass over all reviews. Each
// failed delete is counted and logged; the rest of the cleanup proceeds.
func (r *Runner) RunDedup(ctx context.Context) (Summary, error) {
	summary := Summary{}

	reviews, err := r.source.ListReviews(ctx)
	if err != nil {
		return summary, err
	}

	summary.Processed = len(reviews)

	for _, doomed := range merge.DuplicateReviews(reviews) {
		if err := r.sink.DeleteReview(ctx, doomed.ID); err != nil {
			summary.Failed++

			r.logger.Error("failed to delete duplicate review",
				zap.Uint("review_id", doomed.ID),
				zap.Uint("brewery_id", doomed.BreweryID),
				zap.Error(err))

			continue
		}

		summary.Deleted++
	}

	r.logger.Info("review dedup finished",
		zap.Int("reviews", summary.Processed),
		zap.Int("deleted", summary.Deleted),
		zap.Int("failed", summary.Failed))

	return summary, nil
}
