package themes

import "regexp"

// Category is a semantic bucket scored from review text.
type Category string

const (
	CategoryBeerQuality  Category = "beer_quality"
	CategoryFoodMenu     Category = "food_menu"
	CategoryServiceStaff Category = "service_staff"
	CategoryAtmosphere   Category = "atmosphere"
)

// Rule is one weighted pattern. Patterns are matched against normalized
// (lowercased, punctuation-stripped) text, so they are written in lowercase
// with plain spaces between words.
type Rule struct {
	Pattern *regexp.Regexp
	Weight  float64
}

// RuleSet maps each category to its ordered rules. The set is data, not
// logic: a new category needs only a new entry here.
type RuleSet map[Category][]Rule

func rule(pattern string, weight float64) Rule {
	return Rule{Pattern: regexp.MustCompile(`\b(?:` + pattern + `)\b`), Weight: weight}
}

// DefaultRuleSet returns the four categories the directory scores by default.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		CategoryBeerQuality: {
			rule(`(?:great|amazing|excellent|fantastic|solid) (?:beers?|brews?|ipas?|stouts?)`, 1.0),
			rule(`ipas?`, 0.8),
			rule(`(?:stouts?|lagers?|pilsners?|sours?|saisons?|porters?)`, 0.5),
			rule(`(?:selection|variety|rotating taps?)`, 0.6),
			rule(`on tap`, 0.6),
			rule(`flights?`, 0.5),
			rule(`craft beer`, 0.7),
			rule(`(?:hazy|juicy|crisp|well balanced)`, 0.4),
			rule(`(?:delicious|tasty) beer`, 0.8),
		},
		CategoryFoodMenu: {
			rule(`(?:kitchen|menu)`, 0.8),
			rule(`food trucks?`, 0.7),
			rule(`(?:pizzas?|burgers?|wings|tacos?|sandwich(?:es)?|pretzels?)`, 0.6),
			rule(`(?:good|great|tasty) food`, 1.0),
			rule(`food`, 0.4),
			rule(`snacks?`, 0.3),
		},
		CategoryServiceStaff: {
			rule(`(?:friendly|helpful|attentive|knowledgeable) (?:staff|service|bartenders?|servers?)`, 1.0),
			rule(`(?:staff|service)`, 0.6),
			rule(`(?:bartenders?|servers?|waitstaff)`, 0.7),
			rule(`(?:welcoming|accommodating)`, 0.5),
			rule(`owners?`, 0.3),
		},
		CategoryAtmosphere: {
			rule(`(?:atmosphere|ambiance|ambience|vibes?)`, 0.8),
			rule(`beer garden`, 0.8),
			rule(`(?:patio|deck|rooftop)`, 0.7),
			rule(`outdoor seating`, 0.7),
			rule(`(?:cozy|spacious|rustic|industrial)`, 0.5),
			rule(`(?:live music|trivia night|games?)`, 0.5),
			rule(`(?:views?|decor|lighting)`, 0.4),
		},
	}
}
