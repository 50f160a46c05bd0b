package stats

import "github.com/gcbaptista/feedrank/model"

// Frequencies counts posts per category. Entries follow the order in which
// each category is first seen in posts.
func Frequencies(posts []model.Post) []model.CategoryCount {
	counts := make([]model.CategoryCount, 0)
	index := make(map[model.Category]int)

	for _, p := range posts {
		if i, seen := index[p.Category]; seen {
			counts[i].Count++
			continue
		}
		index[p.Category] = len(counts)
		counts = append(counts, model.CategoryCount{Category: p.Category, Count: 1})
	}

	for i := range counts {
		counts[i].Percentage = 100 * float64(counts[i].Count) / float64(len(posts))
	}
	return counts
}
