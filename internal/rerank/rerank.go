package rerank

import (
	"cmp"
	"slices"

	"github.com/gcbaptista/feedrank/model"
)

// Reranker sorts posts by category priority.
type Reranker struct {
	priority *Priority
}

// NewReranker creates a reranker backed by priority.
func NewReranker(priority *Priority) *Reranker {
	return &Reranker{priority: priority}
}

// Priority returns the table the reranker sorts by.
func (r *Reranker) Priority() *Priority {
	return r.priority
}

// Rerank returns a new slice with posts ordered by ascending category rank.
// Posts sharing a rank keep their input order. The input is not modified.
func (r *Reranker) Rerank(posts []model.Post) []model.Post {
	out := slices.Clone(posts)
	slices.SortStableFunc(out, func(a, b model.Post) int {
		return cmp.Compare(r.priority.Rank(a.Category), r.priority.Rank(b.Category))
	})
	return out
}

// Ranks returns the rank of each post's category, in input order.
func (r *Reranker) Ranks(posts []model.Post) []int {
	ranks := make([]int, len(posts))
	for i, p := range posts {
		ranks[i] = r.priority.Rank(p.Category)
	}
	return ranks
}
