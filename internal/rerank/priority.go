// Package rerank orders posts by a fixed category priority.
package rerank

import (
	"strings"

	"github.com/gcbaptista/feedrank/internal/errors"
	"github.com/gcbaptista/feedrank/model"
)

// Priority is an immutable rank lookup built from an ordered category list.
type Priority struct {
	order []model.Category
	ranks map[model.Category]int
}

// NewPriority builds a lookup table from order, where order[i] gets rank i.
// Duplicate or blank categories are rejected so ranks stay unique and contiguous.
func NewPriority(order []model.Category) (*Priority, error) {
	p := &Priority{
		order: make([]model.Category, len(order)),
		ranks: make(map[model.Category]int, len(order)),
	}
	copy(p.order, order)

	for i, category := range order {
		if strings.TrimSpace(string(category)) == "" {
			return nil, errors.NewValidationError("priority_order", "category name cannot be empty")
		}
		if first, exists := p.ranks[category]; exists {
			return nil, errors.NewDuplicateCategoryError(string(category), first, i)
		}
		p.ranks[category] = i
	}
	return p, nil
}

// DefaultPriority returns the table for model.DefaultPriorityOrder.
func DefaultPriority() *Priority {
	p, err := NewPriority(model.DefaultPriorityOrder)
	if err != nil {
		panic(err) // the default order is a constant
	}
	return p
}

// Rank returns the priority rank of category. Unlisted categories rank
// after every listed one.
func (p *Priority) Rank(category model.Category) int {
	if rank, ok := p.ranks[category]; ok {
		return rank
	}
	return len(p.order)
}

// Order returns a copy of the categories in rank order.
func (p *Priority) Order() []model.Category {
	out := make([]model.Category, len(p.order))
	copy(out, p.order)
	return out
}

// Len is the number of listed categories, which is also the fallback rank.
func (p *Priority) Len() int {
	return len(p.order)
}
