// Package stats computes summary figures over post collections.
package stats

import (
	"fmt"

	"github.com/gcbaptista/feedrank/model"
)

// HatefulSet is the set of categories counted as hateful.
type HatefulSet map[model.Category]struct{}

// NewHatefulSet builds a set from categories.
func NewHatefulSet(categories []model.Category) HatefulSet {
	set := make(HatefulSet, len(categories))
	for _, c := range categories {
		set[c] = struct{}{}
	}
	return set
}

// DefaultHatefulSet contains hate speech and sexist.
func DefaultHatefulSet() HatefulSet {
	return NewHatefulSet(model.DefaultHatefulCategories)
}

// Contains reports whether category is hateful.
func (s HatefulSet) Contains(category model.Category) bool {
	_, ok := s[category]
	return ok
}

// CountHateful returns how many posts carry a hateful category.
func CountHateful(posts []model.Post, hateful HatefulSet) int {
	n := 0
	for _, p := range posts {
		if hateful.Contains(p.Category) {
			n++
		}
	}
	return n
}

// HatefulPercentage returns the share of hateful posts in the range 0-100.
// An empty collection yields 0.
func HatefulPercentage(posts []model.Post, hateful HatefulSet) float64 {
	if len(posts) == 0 {
		return 0.0
	}
	return 100 * float64(CountHateful(posts, hateful)) / float64(len(posts))
}

// Summarize computes the statistics block for posts.
func Summarize(posts []model.Post, hateful HatefulSet) model.Statistics {
	return model.Statistics{
		Total:             len(posts),
		Hateful:           CountHateful(posts, hateful),
		HatefulPercentage: HatefulPercentage(posts, hateful),
	}
}

// FormatPercentage renders a percentage with two decimals, e.g. "40.00%".
func FormatPercentage(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}
