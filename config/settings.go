// Package config provides configuration structures for the feed reranker.
// It defines the category priority order, the hateful subset and the
// process-level settings loaded from file, environment and flags.
package config

import (
	"fmt"
	"strings"

	"github.com/gcbaptista/feedrank/model"
)

// DefaultPostCount is the number of snippets a feed is built from.
const DefaultPostCount = 5

// FeedSettings contains the options that shape a single feed interaction.
//
// IMPORTANT: PriorityOrder order matters! The reranker sorts posts by the
// index of their category in this list. Categories not listed sort after
// every listed one, keeping their relative order.
type FeedSettings struct {
	PostCount         int              `json:"post_count" mapstructure:"post_count"`                 // Number of texts a feed must carry (e.g., 5)
	PriorityOrder     []model.Category `json:"priority_order" mapstructure:"priority_order"`         // Categories in preferred display order, highest priority first
	HatefulCategories []model.Category `json:"hateful_categories" mapstructure:"hateful_categories"` // Categories counted toward the hateful percentage
}

// DefaultFeedSettings returns the settings the service ships with.
func DefaultFeedSettings() FeedSettings {
	return FeedSettings{
		PostCount:         DefaultPostCount,
		PriorityOrder:     append([]model.Category(nil), model.DefaultPriorityOrder...),
		HatefulCategories: append([]model.Category(nil), model.DefaultHatefulCategories...),
	}
}

// Validate checks the settings and returns a list of problems, empty when valid.
func (settings *FeedSettings) Validate() []string {
	var problems []string

	if settings.PostCount < 1 {
		problems = append(problems, fmt.Sprintf("post_count must be at least 1, got %d", settings.PostCount))
	}

	if len(settings.PriorityOrder) == 0 {
		problems = append(problems, "priority_order must list at least one category")
	}

	problems = append(problems, checkDuplicates("priority_order", settings.PriorityOrder)...)
	problems = append(problems, checkDuplicates("hateful_categories", settings.HatefulCategories)...)

	allCategories := make([]model.Category, 0, len(settings.PriorityOrder)+len(settings.HatefulCategories))
	allCategories = append(allCategories, settings.PriorityOrder...)
	allCategories = append(allCategories, settings.HatefulCategories...)
	for _, category := range allCategories {
		if strings.TrimSpace(string(category)) == "" {
			problems = append(problems, "Category name cannot be empty or whitespace-only")
		}
	}

	// A hateful category missing from the priority order would rank last
	// and is almost always a typo, so it is rejected.
	listed := make(map[model.Category]bool, len(settings.PriorityOrder))
	for _, category := range settings.PriorityOrder {
		listed[category] = true
	}
	for _, category := range settings.HatefulCategories {
		if category != "" && !listed[category] {
			problems = append(problems, "Category '"+string(category)+"' in hateful_categories is not in priority_order")
		}
	}

	return problems
}

// ApplyDefaults fills unset fields with the shipped defaults.
func (settings *FeedSettings) ApplyDefaults() {
	defaults := DefaultFeedSettings()
	if settings.PostCount == 0 {
		settings.PostCount = defaults.PostCount
	}
	if len(settings.PriorityOrder) == 0 {
		settings.PriorityOrder = defaults.PriorityOrder
	}
	if settings.HatefulCategories == nil {
		settings.HatefulCategories = defaults.HatefulCategories
	}
}

// checkDuplicates checks for duplicate values in a slice and returns error messages
func checkDuplicates(fieldName string, categories []model.Category) []string {
	var errors []string
	seen := make(map[model.Category]bool)

	for _, category := range categories {
		if seen[category] {
			errors = append(errors, "Duplicate category '"+string(category)+"' found in "+fieldName)
		}
		seen[category] = true
	}

	return errors
}
