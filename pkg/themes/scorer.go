// Package themes classifies free review text into theme categories with a
// deterministic, explainable weighted-pattern scorer. There is no learned
// model here: every detection can be traced back to a rule in the set.
package themes

import (
	"math"
	"strings"

	"github.com/gchukura/marylandbrewery-sub000/pkg/normalize"
)

const (
	maxKeywordsPerRule = 3
	maxKeywords        = 5

	// The normalization denominator floors at this word count so that very
	// short texts cannot produce outsized scores.
	minScoreWords = 10.0
	wordsPerUnit  = 100.0
)

// Result is the outcome of scoring one text against one category.
type Result struct {
	Detected   bool
	Score      float64
	Keywords   []string
	MatchCount int
}

// Score applies the rules of a single category to a text blob. The score is
// roughly length-invariant: total weighted matches are divided by
// max(10, words/100) and clamped to [0, 1], rounded to two decimals.
func Score(text string, rules []Rule) Result {
	normalized := normalize.Text(text)
	if normalized == "" {
		return Result{Keywords: []string{}}
	}

	var (
		totalScore float64
		matchCount int
	)

	keywords := make([]string, 0, maxKeywords)
	seen := make(map[string]bool)

	for _, rule := range rules {
		matches := rule.Pattern.FindAllString(normalized, -1)
		if len(matches) == 0 {
			continue
		}

		totalScore += float64(len(matches)) * rule.Weight
		matchCount += len(matches)

		for index, match := range matches {
			if index == maxKeywordsPerRule || len(keywords) == maxKeywords {
				break
			}

			if !seen[match] {
				seen[match] = true

				keywords = append(keywords, match)
			}
		}
	}

	wordCount := float64(len(strings.Fields(normalized)))
	normalizedScore := math.Min(1, totalScore/math.Max(minScoreWords, wordCount/wordsPerUnit))

	return Result{
		Detected:   matchCount > 0,
		Score:      math.Round(normalizedScore*100) / 100,
		Keywords:   keywords,
		MatchCount: matchCount,
	}
}

// ScoreAll scores a text against every category in the set. Empty text yields
// the zero result for every category.
func ScoreAll(text string, set RuleSet) map[Category]Result {
	results := make(map[Category]Result, len(set))

	if normalize.Text(text) == "" {
		for category := range set {
			results[category] = Result{Keywords: []string{}}
		}

		return results
	}

	for category, rules := range set {
		results[category] = Score(text, rules)
	}

	return results
}
