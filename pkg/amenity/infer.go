// Package amenity infers structured amenity facts about a brewery from its
// review text. It is the boolean cousin of the theme scorer: a field is set
// when any of its patterns matches, with no weighting.
package amenity

import (
	"regexp"

	"github.com/gchukura/marylandbrewery-sub000/pkg/normalize"
)

// Food is the categorical food amenity.
type Food string

const (
	FoodInHouse Food = "in-house"
	FoodTrucks  Food = "food-trucks"
)

// Inference holds the positive signals extracted from one brewery's reviews.
// Fields left false (or Food left empty) mean "no signal", never "confirmed
// absent" — the merge policy only ever fills empty stored values from these.
type Inference struct {
	AllowsVisitors bool
	OffersTours    bool
	BeerToGo       bool
	HasMerch       bool
	DogFriendly    bool
	OutdoorSeating bool
	OtherDrinks    bool
	Parking        bool
	Food           Food
}

func patterns(expressions ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(expressions))
	for index, expression := range expressions {
		compiled[index] = regexp.MustCompile(`\b(?:` + expression + `)\b`)
	}

	return compiled
}

var (
	tourPatterns = patterns(
		`tours?`,
		`tasting room tour`,
		`behind the scenes`,
	)
	beerToGoPatterns = patterns(
		`(?:beer|cans?|crowlers?|growlers?|bottles?|(?:four|six) packs?) to go`,
		`crowlers?`,
		`growlers? (?:fills?|filled)`,
		`take (?:home|away) (?:beer|cans?|bottles?)`,
		`carry ?out`,
	)
	merchPatterns = patterns(
		`merch(?:andise)?`,
		`(?:t ?shirts?|hats?|hoodies?|glassware|stickers?) (?:for sale|available)`,
		`bought a (?:shirt|hat|glass|hoodie)`,
		`gift shop`,
	)
	dogPatterns = patterns(
		`dog friendly`,
		`dogs? (?:are )?(?:welcome|allowed)`,
		`pet friendly`,
		`brought (?:my|our|the) dogs?`,
	)
	outdoorPatterns = patterns(
		`outdoor seating`,
		`(?:patio|beer garden|biergarten|deck|rooftop|outside tables?)`,
		`(?:sit|seating|tables?) outside`,
	)
	otherDrinkPatterns = patterns(
		`(?:wine|cider|seltzer|mead|cocktails?|spirits?|kombucha)s?`,
		`non alcoholic (?:options?|drinks?)`,
		`soft drinks?`,
	)
	parkingPatterns = patterns(
		`parking`,
		`(?:easy|plenty of|free|ample) parking`,
		`parking lot`,
	)
	kitchenPatterns = patterns(
		`(?:kitchen|menu)`,
		`(?:ordered|order) (?:food|lunch|dinner)`,
		`(?:their|the) (?:pizzas?|burgers?|wings|tacos?|sandwich(?:es)?)`,
		`food (?:is|was) (?:good|great|excellent|amazing)`,
		`brewpub`,
	)
	foodTruckPatterns = patterns(
		`food trucks?`,
		`(?:taco|pizza|bbq) truck`,
		`rotating trucks?`,
	)
)

func anyMatch(text string, rules []*regexp.Regexp) bool {
	for _, rule := range rules {
		if rule.MatchString(text) {
			return true
		}
	}

	return false
}

// Infer extracts amenity signals from the concatenated review text of one
// brewery. Empty text yields the zero Inference.
//
// AllowsVisitors is deliberately crude: any non-empty review text at all is
// taken as evidence that people visit. Downstream consumers depend on this
// permissiveness, so it must not be quietly tightened.
func Infer(text string) Inference {
	normalized := normalize.Text(text)
	if normalized == "" {
		return Inference{}
	}

	inference := Inference{
		AllowsVisitors: true,
		OffersTours:    anyMatch(normalized, tourPatterns),
		BeerToGo:       anyMatch(normalized, beerToGoPatterns),
		HasMerch:       anyMatch(normalized, merchPatterns),
		DogFriendly:    anyMatch(normalized, dogPatterns),
		OutdoorSeating: anyMatch(normalized, outdoorPatterns),
		OtherDrinks:    anyMatch(normalized, otherDrinkPatterns),
		Parking:        anyMatch(normalized, parkingPatterns),
	}

	// An in-house kitchen implies a superset of what a food truck offers, so
	// kitchen signals take precedence even when both are present.
	kitchen := anyMatch(normalized, kitchenPatterns)
	trucks := anyMatch(normalized, foodTruckPatterns)

	switch {
	case kitchen:
		inference.Food = FoodInHouse
	case trucks:
		inference.Food = FoodTrucks
	}

	return inference
}
