// Package model defines the data types exchanged between the feed pipeline,
// the HTTP API and the CLI.
package model

// Category is a content-moderation label attached to a post.
type Category string

const (
	CategoryPositive      Category = "positive"
	CategoryHateSpeech    Category = "hate speech"
	CategorySexist        Category = "sexist"
	CategoryNotHateSpeech Category = "not hate speech"
	CategoryNonSexist     Category = "non-sexist"
)

// DefaultPriorityOrder is the canonical ranking of the known categories.
// Lower index sorts first.
var DefaultPriorityOrder = []Category{
	CategoryPositive,
	CategoryHateSpeech,
	CategorySexist,
	CategoryNotHateSpeech,
	CategoryNonSexist,
}

// DefaultHatefulCategories are the categories counted toward the hateful percentage.
var DefaultHatefulCategories = []Category{
	CategoryHateSpeech,
	CategorySexist,
}

// Post is a single text snippet with its assigned category.
type Post struct {
	Text     string   `json:"text"`
	Category Category `json:"category"`
}

// Categories returns the category of every post, in order.
func Categories(posts []Post) []Category {
	out := make([]Category, len(posts))
	for i, p := range posts {
		out[i] = p.Category
	}
	return out
}
