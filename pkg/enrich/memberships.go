package enrich

import (
	"context"

	"go.uber.org/zap"

	"github.com/gchukura/marylandbrewery-sub000/pkg/match"
	"github.com/gchukura/marylandbrewery-sub000/pkg/merge"
	"github.com/gchukura/marylandbrewery-sub000/pkg/model"
)

// ListingSource yields already-extracted directory listings; HTML parsing
// happens inside the integration, never here.
type ListingSource interface {
	FetchListings() ([]model.Listing, error)
}

type canonicalMembership struct {
	Name    string
	Aliases []string
}

// canonicalMemberships maps the flag tokens carried by scraped listings to
// the single canonical badge name and the stale spellings it replaces.
var canonicalMemberships = map[string]canonicalMembership{
	"mdguild": {
		Name:    "Brewers Association of Maryland",
		Aliases: []string{"maryland brewers", "brewers association", "md brewers guild"},
	},
}

// RunMemberships ingests one external directory: scrape, resolve each
// listing to a brewery, and reconcile membership badges through the merge
// policy. A listing that matches no brewery is a counted outcome, not a
// failure.
func (r *Runner) RunMemberships(ctx context.Context, listings ListingSource) (Summary, error) {
	summary := Summary{}

	scraped, err := listings.FetchListings()
	if err != nil {
		// Partial scrapes still carry usable listings; log and keep whatever
		// came back.
		r.logger.Error("listing scrape reported errors", zap.Int("listings", len(scraped)), zap.Error(err))
	}

	if len(scraped) == 0 {
		return summary, err
	}

	breweries, err := r.source.ListBreweries(ctx)
	if err != nil {
		return summary, err
	}

	for index := range scraped {
		listing := scraped[index]
		summary.Processed++

		result := match.Match(listing.Name, listing.Website, breweries)
		if !result.Matched() {
			summary.Unmatched++

			r.logger.Info("no brewery matched listing", zap.String("listing", listing.Name))

			continue
		}

		r.logger.Debug("matched listing",
			zap.String("listing", listing.Name),
			zap.String("brewery", result.Brewery.Name),
			zap.String("tier", string(result.Tier)))

		switch r.mergeFlags(ctx, result.Brewery, listing.Flags) {
		case StatusUpdated:
			summary.Updated++
		case StatusFailed:
			summary.Failed++
		default:
			summary.Skipped++
		}
	}

	r.logger.Info("membership run finished",
		zap.Int("processed", summary.Processed),
		zap.Int("updated", summary.Updated),
		zap.Int("skipped", summary.Skipped),
		zap.Int("unmatched", summary.Unmatched),
		zap.Int("failed", summary.Failed))

	return summary, nil
}

func (r *Runner) mergeFlags(ctx context.Context, brewery *model.Brewery, flags []string) Status {
	wrote := false

	for _, flag := range flags {
		canonical, known := canonicalMemberships[flag]
		if !known {
			r.logger.Warn("unknown membership flag", zap.String("flag", flag))

			continue
		}

		change := merge.ReconcileMembership(brewery.Memberships, canonical.Name, canonical.Aliases)
		if change.Empty() {
			continue
		}

		for _, stale := range change.Stale {
			if err := r.sink.DeleteMembership(ctx, stale.ID); err != nil {
				r.logger.Error("failed to delete stale membership",
					zap.Uint("brewery_id", brewery.ID),
					zap.Uint("membership_id", stale.ID),
					zap.Error(err))

				return StatusFailed
			}
		}

		if change.Append {
			membership := model.Membership{BreweryID: brewery.ID, Name: canonical.Name}
			if err := r.sink.AddMembership(ctx, membership); err != nil {
				r.logger.Error("failed to add membership",
					zap.Uint("brewery_id", brewery.ID),
					zap.String("membership", canonical.Name),
					zap.Error(err))

				return StatusFailed
			}
		}

		wrote = true
	}

	if wrote {
		return StatusUpdated
	}

	return StatusSkipped
}
