package merge

import (
	"sort"

	"github.com/gchukura/marylandbrewery-sub000/pkg/model"
	"github.com/gchukura/marylandbrewery-sub000/pkg/normalize"
)

type reviewKey struct {
	breweryID  uint
	reviewedAt int64
	reviewer   string
}

// DuplicateReviews finds, in a single pass over all reviews, the rows that
// violate the (brewery, reviewed-at, normalized reviewer) uniqueness rule and
// should be deleted. Within each duplicate group the row with the earliest
// ingestion time survives; equal ingestion times fall back to the lowest ID
// so the outcome is deterministic. Groups of size one are untouched.
func DuplicateReviews(reviews []model.Review) []model.Review {
	groups := make(map[reviewKey][]model.Review)

	for index := range reviews {
		review := reviews[index]

		var reviewedAt int64
		if review.ReviewedAt != nil {
			reviewedAt = review.ReviewedAt.Unix()
		}

		var reviewer string
		if review.ReviewerName != nil {
			reviewer = normalize.Text(*review.ReviewerName)
		}

		key := reviewKey{breweryID: review.BreweryID, reviewedAt: reviewedAt, reviewer: reviewer}
		groups[key] = append(groups[key], review)
	}

	var doomed []model.Review

	for _, group := range groups {
		if len(group) < 2 {
			continue
		}

		sort.Slice(group, func(left, right int) bool {
			if !group[left].CreatedAt.Equal(group[right].CreatedAt) {
				return group[left].CreatedAt.Before(group[right].CreatedAt)
			}

			return group[left].ID < group[right].ID
		})

		doomed = append(doomed, group[1:]...)
	}

	return doomed
}
