// Package enrich drives the batch enrichment pipeline: pull breweries in a
// stable order, fetch their reviews, score themes, infer amenities, and
// persist whatever the merge policy allows. Processing is strictly
// sequential; one brewery's failure is logged and counted, never allowed to
// abort the batch. This is the only layer permitted to suppress-and-log.
package enrich

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gchukura/marylandbrewery-sub000/pkg/amenity"
	"github.com/gchukura/marylandbrewery-sub000/pkg/merge"
	"github.com/gchukura/marylandbrewery-sub000/pkg/model"
	"github.com/gchukura/marylandbrewery-sub000/pkg/themes"
)

// Status is the per-entity state of the runner.
type Status string

const (
	StatusPending  Status = "pending"
	StatusFetching Status = "fetching_source_data"
	StatusScoring  Status = "scoring"
	StatusMerging  Status = "merging"
	StatusUpdated  Status = "updated"
	StatusSkipped  Status = "skipped"
	StatusFailed   Status = "failed"
)

// Source is what the runner reads from the persistent store.
type Source interface {
	ListBreweries(ctx context.Context) ([]model.Brewery, error)
	GetReviews(ctx context.Context, breweryID uint, language string) ([]model.Review, error)
	ListReviews(ctx context.Context) ([]model.Review, error)
}

// Sink is what the runner writes through. Updates are partial: columns not
// present in the field map must be left untouched.
type Sink interface {
	UpdateBreweryFields(ctx context.Context, breweryID uint, fields map[string]interface{}) error
	SaveThemes(ctx context.Context, breweryID uint, results map[themes.Category]themes.Result) error
	AddMembership(ctx context.Context, membership model.Membership) error
	DeleteMembership(ctx context.Context, membershipID uint) error
	DeleteReview(ctx context.Context, reviewID uint) error
}

// Summary is the operator-facing outcome of one run. Nothing here is hidden:
// every entity lands in exactly one of updated/skipped/failed, and unmatched
// listings are counted separately from failures.
type Summary struct {
	Processed int
	Updated   int
	Skipped   int
	Failed    int
	Unmatched int
	Deleted   int
}

// Runner is constructed once per run and handed its collaborators
// explicitly. It keeps no global state and must not be shared across
// concurrent runs: the merge policy reads then writes without compare-and-
// swap, so overlapping runs are unsafe by design.
type Runner struct {
	source   Source
	sink     Sink
	rules    themes.RuleSet
	logger   *zap.Logger
	language string
	delay    time.Duration
}

func NewRunner(source Source, sink Sink, rules themes.RuleSet, logger *zap.Logger, language string, delay time.Duration) *Runner {
	return &Runner{
		source:   source,
		sink:     sink,
		rules:    rules,
		logger:   logger,
		language: language,
		delay:    delay,
	}
}

// Run enriches every brewery from its review text. The entity order is the
// stable order the source provides; a failed entity is skipped, not
// requeued.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	summary := Summary{}

	breweries, err := r.source.ListBreweries(ctx)
	if err != nil {
		return summary, err
	}

	for index := range breweries {
		brewery := &breweries[index]
		summary.Processed++

		status := r.enrichOne(ctx, brewery)
		switch status {
		case StatusUpdated:
			summary.Updated++
		case StatusFailed:
			summary.Failed++
		default:
			summary.Skipped++
		}

		r.logger.Info("processed brewery",
			zap.Uint("brewery_id", brewery.ID),
			zap.String("name", brewery.Name),
			zap.String("status", string(status)))

		if r.delay > 0 && index < len(breweries)-1 {
			time.Sleep(r.delay)
		}
	}

	r.logger.Info("enrichment run finished",
		zap.Int("processed", summary.Processed),
		zap.Int("updated", summary.Updated),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed))

	return summary, nil
}

func (r *Runner) enrichOne(ctx context.Context, brewery *model.Brewery) Status {
	logStep := func(status Status) {
		r.logger.Debug("brewery state", zap.Uint("brewery_id", brewery.ID), zap.String("status", string(status)))
	}

	logStep(StatusFetching)

	reviews, err := r.source.GetReviews(ctx, brewery.ID, r.language)
	if err != nil {
		r.logger.Error("failed to fetch reviews",
			zap.Uint("brewery_id", brewery.ID),
			zap.String("name", brewery.Name),
			zap.Error(err))

		return StatusSkipped
	}

	logStep(StatusScoring)

	blob := reviewBlob(reviews)
	results := themes.ScoreAll(blob, r.rules)
	inferred := amenity.Infer(blob)

	logStep(StatusMerging)

	patch := merge.AmenityPatch(brewery, inferred)

	if blob != "" {
		if err := r.sink.SaveThemes(ctx, brewery.ID, results); err != nil {
			r.logger.Error("failed to save themes",
				zap.Uint("brewery_id", brewery.ID),
				zap.Error(err))

			return StatusFailed
		}
	}

	if len(patch) == 0 {
		return StatusSkipped
	}

	if err := r.sink.UpdateBreweryFields(ctx, brewery.ID, patch); err != nil {
		r.logger.Error("failed to update amenity fields",
			zap.Uint("brewery_id", brewery.ID),
			zap.Any("fields", patch),
			zap.Error(err))

		return StatusFailed
	}

	return StatusUpdated
}

func reviewBlob(reviews []model.Review) string {
	texts := make([]string, 0, len(reviews))

	for index := range reviews {
		if reviews[index].Text != nil && strings.TrimSpace(*reviews[index].Text) != "" {
			texts = append(texts, *reviews[index].Text)
		}
	}

	return strings.Join(texts, " ")
}
