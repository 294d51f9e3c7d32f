package amenity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gchukura/marylandbrewery-sub000/pkg/amenity"
)

func TestInfer_EmptyTextYieldsNoSignals(t *testing.T) {
	assert.Equal(t, amenity.Inference{}, amenity.Infer(""))
	assert.Equal(t, amenity.Inference{}, amenity.Infer("   \t "))
}

func TestInfer_AnyTextImpliesVisitors(t *testing.T) {
	inference := amenity.Infer("nothing about amenities here at all")

	assert.True(t, inference.AllowsVisitors)
	assert.False(t, inference.OffersTours)
	assert.False(t, inference.BeerToGo)
	assert.Equal(t, amenity.Food(""), inference.Food)
}

func TestInfer_DetectsBooleanAmenities(t *testing.T) {
	inference := amenity.Infer(
		"Took the brewery tour, grabbed a crowler to go, and bought a shirt. " +
			"Dogs are welcome on the patio, plenty of parking, and they pour cider too.")

	assert.True(t, inference.OffersTours)
	assert.True(t, inference.BeerToGo)
	assert.True(t, inference.HasMerch)
	assert.True(t, inference.DogFriendly)
	assert.True(t, inference.OutdoorSeating)
	assert.True(t, inference.OtherDrinks)
	assert.True(t, inference.Parking)
}

func TestInfer_FoodTruckOnly(t *testing.T) {
	inference := amenity.Infer("Great spot, there was a taco truck out front.")

	assert.Equal(t, amenity.FoodTrucks, inference.Food)
}

func TestInfer_KitchenTakesPrecedenceOverTrucks(t *testing.T) {
	inference := amenity.Infer(
		"They have food trucks on weekends but the kitchen menu is excellent.")

	assert.Equal(t, amenity.FoodInHouse, inference.Food)
}

func TestInfer_NoFoodSignals(t *testing.T) {
	inference := amenity.Infer("Solid beers and a friendly crowd.")

	assert.Equal(t, amenity.Food(""), inference.Food)
}
