// Package match resolves externally-scraped directory listings to internal
// brewery records. Matching is tiered: a normalized-website hit wins over an
// exact-name hit, which wins over the fuzzy name heuristics. Callers get an
// explicit unmatched result and must not guess.
package match

import (
	"strings"

	"github.com/gchukura/marylandbrewery-sub000/pkg/model"
	"github.com/gchukura/marylandbrewery-sub000/pkg/normalize"
)

// Tier identifies which strategy produced a match.
type Tier string

const (
	TierWebsite Tier = "website"
	TierName    Tier = "name"
	TierFuzzy   Tier = "fuzzy"
	TierNone    Tier = "none"
)

// Result is the outcome of matching one listing against the candidate set.
// Brewery is nil when Tier is TierNone.
type Result struct {
	Brewery *model.Brewery
	Tier    Tier
}

// Matched reports whether a brewery was resolved.
func (r Result) Matched() bool {
	return r.Brewery != nil
}

// legalSuffixes are trailing legal-entity forms ignored by the fuzzy tier,
// longest first so that "brewing company" is stripped before "company".
var legalSuffixes = []string{
	"brewing company",
	"brewing co",
	"beer company",
	"beer co",
	"brewing",
	"breweries",
	"brewery",
	"brewworks",
	"brewhouse",
	"company",
	"beer",
	"llc",
	"inc",
	"co",
}

// Match resolves a listing to at most one brewery. Candidates are scanned in
// the order given; when several candidates satisfy the same tier the first
// one wins. Tiers are exhausted strictly in order, so a website hit on a
// later candidate still beats a name hit on an earlier one.
func Match(name string, website *string, candidates []model.Brewery) Result {
	if website != nil {
		if listingURL := normalize.URL(*website); listingURL != "" {
			for index := range candidates {
				candidate := &candidates[index]
				if candidate.Website != nil && normalize.URL(*candidate.Website) == listingURL {
					return Result{Brewery: candidate, Tier: TierWebsite}
				}
			}
		}
	}

	listingName := normalize.Text(name)
	if listingName == "" {
		return Result{Tier: TierNone}
	}

	for index := range candidates {
		candidate := &candidates[index]
		if normalize.Text(candidate.Name) == listingName {
			return Result{Brewery: candidate, Tier: TierName}
		}
	}

	for index := range candidates {
		candidate := &candidates[index]
		if fuzzyEqual(listingName, normalize.Text(candidate.Name)) {
			return Result{Brewery: candidate, Tier: TierFuzzy}
		}
	}

	return Result{Tier: TierNone}
}

func fuzzyEqual(left, right string) bool {
	if left == "" || right == "" {
		return false
	}

	if strings.Contains(left, right) || strings.Contains(right, left) {
		return true
	}

	strippedLeft := stripLegalSuffix(left)
	strippedRight := stripLegalSuffix(right)

	if strippedLeft != "" && strippedRight != "" {
		if strippedLeft == strippedRight ||
			strings.Contains(strippedLeft, strippedRight) ||
			strings.Contains(strippedRight, strippedLeft) {
			return true
		}
	}

	return sharedSignificantWords(left, right)
}

func stripLegalSuffix(name string) string {
	stripped := name

	for changed := true; changed; {
		changed = false

		for _, suffix := range legalSuffixes {
			if stripped == suffix {
				continue
			}

			if strings.HasSuffix(stripped, " "+suffix) {
				stripped = strings.TrimSpace(strings.TrimSuffix(stripped, " "+suffix))
				changed = true
			}
		}
	}

	return stripped
}

func sharedSignificantWords(left, right string) bool {
	leftWords := normalize.SignificantWords(left)
	rightWords := normalize.SignificantWords(right)

	if len(leftWords) == 0 || len(rightWords) == 0 {
		return false
	}

	required := min(2, min(len(leftWords), len(rightWords)))

	rightSet := make(map[string]bool, len(rightWords))
	for _, word := range rightWords {
		rightSet[word] = true
	}

	shared := 0
	counted := make(map[string]bool, len(leftWords))

	for _, word := range leftWords {
		if rightSet[word] && !counted[word] {
			counted[word] = true
			shared++

			if shared >= required {
				return true
			}
		}
	}

	return false
}
