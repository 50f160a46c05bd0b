package rerank

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/gcbaptista/feedrank/internal/errors"
	"github.com/gcbaptista/feedrank/model"
)

func postsWith(categories ...model.Category) []model.Post {
	posts := make([]model.Post, len(categories))
	for i, c := range categories {
		posts[i] = model.Post{Text: fmt.Sprintf("post %d", i), Category: c}
	}
	return posts
}

func TestPriority_Rank(t *testing.T) {
	p := DefaultPriority()

	tests := []struct {
		category model.Category
		want     int
	}{
		{model.CategoryPositive, 0},
		{model.CategoryHateSpeech, 1},
		{model.CategorySexist, 2},
		{model.CategoryNotHateSpeech, 3},
		{model.CategoryNonSexist, 4},
		{"spam", 5},
		{"", 5},
		{"Positive", 5}, // lookup is exact
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, p.Rank(tt.category))
		})
	}
}

func TestNewPriority_RejectsDuplicates(t *testing.T) {
	_, err := NewPriority([]model.Category{"positive", "sexist", "positive"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrDuplicateCategory))

	var dup *apperrors.DuplicateCategoryError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, 0, dup.First)
	assert.Equal(t, 2, dup.Second)
}

func TestNewPriority_RejectsBlank(t *testing.T) {
	_, err := NewPriority([]model.Category{"positive", " "})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestPriority_OrderIsCopied(t *testing.T) {
	order := []model.Category{"a", "b"}
	p, err := NewPriority(order)
	require.NoError(t, err)

	order[0] = "z"
	assert.Equal(t, 0, p.Rank("a"))

	got := p.Order()
	got[1] = "z"
	assert.Equal(t, 1, p.Rank("b"))
	assert.Equal(t, 2, p.Len())
}

func TestRerank_Example(t *testing.T) {
	r := NewReranker(DefaultPriority())
	input := postsWith(
		model.CategoryPositive,
		model.CategorySexist,
		model.CategoryHateSpeech,
		model.CategoryNotHateSpeech,
		model.CategoryPositive,
	)

	got := r.Rerank(input)

	assert.Equal(t, []model.Category{
		model.CategoryPositive,
		model.CategoryPositive,
		model.CategoryHateSpeech,
		model.CategorySexist,
		model.CategoryNotHateSpeech,
	}, model.Categories(got))

	// Equal categories keep their input order
	assert.Equal(t, "post 0", got[0].Text)
	assert.Equal(t, "post 4", got[1].Text)
}

func TestRerank_DoesNotMutateInput(t *testing.T) {
	r := NewReranker(DefaultPriority())
	input := postsWith(model.CategoryNonSexist, model.CategoryPositive)
	before := slices.Clone(input)

	_ = r.Rerank(input)

	assert.Equal(t, before, input)
}

func TestRerank_UnknownCategoriesSortLast(t *testing.T) {
	r := NewReranker(DefaultPriority())

	for pos := 0; pos < 5; pos++ {
		categories := []model.Category{
			model.CategoryNonSexist,
			model.CategoryNotHateSpeech,
			model.CategorySexist,
			model.CategoryHateSpeech,
		}
		categories = slices.Insert(categories, pos, model.Category("spam"))

		got := r.Rerank(postsWith(categories...))
		assert.Equal(t, model.Category("spam"), got[len(got)-1].Category, "unknown inserted at %d", pos)
	}
}

func TestRerank_Empty(t *testing.T) {
	r := NewReranker(DefaultPriority())
	assert.Empty(t, r.Rerank(nil))
}

// TestRerank_AllCombinations checks ordering, stability and the permutation
// property over every 5-long sequence drawn from the known categories.
func TestRerank_AllCombinations(t *testing.T) {
	r := NewReranker(DefaultPriority())
	known := model.DefaultPriorityOrder
	n := len(known)

	total := 1
	for i := 0; i < 5; i++ {
		total *= n
	}

	for code := 0; code < total; code++ {
		categories := make([]model.Category, 5)
		c := code
		for i := range categories {
			categories[i] = known[c%n]
			c /= n
		}
		input := postsWith(categories...)

		got := r.Rerank(input)

		ranks := r.Ranks(got)
		if !slices.IsSorted(ranks) {
			t.Fatalf("ranks not non-decreasing for %v: %v", categories, ranks)
		}

		// Texts encode the input index; within a rank they must increase.
		for i := 1; i < len(got); i++ {
			if got[i-1].Category == got[i].Category && got[i-1].Text > got[i].Text {
				t.Fatalf("unstable order for %v: %v", categories, got)
			}
		}

		assert.ElementsMatch(t, input, got)
	}
}
