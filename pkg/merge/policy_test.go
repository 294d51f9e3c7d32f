package merge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.openly.dev/pointy"

	"github.com/gchukura/marylandbrewery-sub000/pkg/amenity"
	"github.com/gchukura/marylandbrewery-sub000/pkg/merge"
	"github.com/gchukura/marylandbrewery-sub000/pkg/model"
)

func TestAmenityPatch_FillsEmptyFields(t *testing.T) {
	current := &model.Brewery{}
	inferred := amenity.Inference{
		AllowsVisitors: true,
		OutdoorSeating: true,
		Parking:        true,
		Food:           amenity.FoodTrucks,
	}

	patch := merge.AmenityPatch(current, inferred)

	assert.Equal(t, map[string]interface{}{
		"allows_visitors": true,
		"outdoor_seating": true,
		"parking":         "yes",
		"food":            "food-trucks",
	}, patch)
}

func TestAmenityPatch_NeverOverwritesTruthyValues(t *testing.T) {
	current := &model.Brewery{
		OffersTours: pointy.Bool(true),
		Food:        pointy.String("in-house"),
		Parking:     pointy.String("yes"),
	}
	inferred := amenity.Inference{Food: amenity.FoodTrucks, Parking: true}

	patch := merge.AmenityPatch(current, inferred)

	assert.Empty(t, patch)
}

func TestAmenityPatch_FalseCandidateNeverWrites(t *testing.T) {
	current := &model.Brewery{OffersTours: pointy.Bool(true)}

	patch := merge.AmenityPatch(current, amenity.Inference{OffersTours: false})

	assert.NotContains(t, patch, "offers_tours")
}

func TestAmenityPatch_IsIdempotent(t *testing.T) {
	current := &model.Brewery{}
	inferred := amenity.Inference{AllowsVisitors: true, BeerToGo: true, OtherDrinks: true}

	first := merge.AmenityPatch(current, inferred)
	assert.NotEmpty(t, first)

	// Apply the patch, then re-run: nothing further to write.
	current.AllowsVisitors = pointy.Bool(true)
	current.BeerToGo = pointy.Bool(true)
	current.OtherDrinks = pointy.String(merge.EnumYes)

	assert.Empty(t, merge.AmenityPatch(current, inferred))
}
