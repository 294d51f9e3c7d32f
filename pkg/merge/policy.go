// Package merge enforces the non-destructive write discipline: inferred or
// externally-sourced values only ever fill empty stored fields, never replace
// curated ones. Because every write is fill-only, repeated runs are
// idempotent by construction.
package merge

import (
	"go.openly.dev/pointy"

	"github.com/gchukura/marylandbrewery-sub000/pkg/amenity"
	"github.com/gchukura/marylandbrewery-sub000/pkg/model"
)

const (
	// Values used for the yes/no enum columns.
	EnumYes = "yes"
)

// AmenityPatch returns the partial column update allowed by the merge policy
// for one brewery: a candidate lands in the patch only when the stored value
// is empty (nil, or a placeholder false/"" left by an earlier migration) and
// the candidate carries a positive signal. An empty map means nothing to
// write.
func AmenityPatch(current *model.Brewery, inferred amenity.Inference) map[string]interface{} {
	patch := make(map[string]interface{})

	fillBool(patch, "allows_visitors", current.AllowsVisitors, inferred.AllowsVisitors)
	fillBool(patch, "offers_tours", current.OffersTours, inferred.OffersTours)
	fillBool(patch, "beer_to_go", current.BeerToGo, inferred.BeerToGo)
	fillBool(patch, "has_merch", current.HasMerch, inferred.HasMerch)
	fillBool(patch, "dog_friendly", current.DogFriendly, inferred.DogFriendly)
	fillBool(patch, "outdoor_seating", current.OutdoorSeating, inferred.OutdoorSeating)

	if inferred.Food != "" && emptyString(current.Food) {
		patch["food"] = string(inferred.Food)
	}

	if inferred.OtherDrinks && emptyString(current.OtherDrinks) {
		patch["other_drinks"] = EnumYes
	}

	if inferred.Parking && emptyString(current.Parking) {
		patch["parking"] = EnumYes
	}

	return patch
}

func fillBool(patch map[string]interface{}, column string, current *bool, candidate bool) {
	if candidate && (current == nil || !pointy.BoolValue(current, false)) {
		patch[column] = true
	}
}

func emptyString(current *string) bool {
	return current == nil || *current == ""
}
