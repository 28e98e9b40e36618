package snapshot

import (
	"github.com/amirasaad/networth/pkg/domain/category"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Line is one stored snapshot item joined to its line item and category.
type Line struct {
	CategoryID    uuid.UUID
	CategoryName  string
	CategoryType  category.Type
	CategoryColor string
	LineItemID    uuid.UUID
	LineItemName  string
	Value         decimal.Decimal
}

// LineValue is a line item's contribution inside a category group.
type LineValue struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// CategoryTotal groups a snapshot's values under one category.
type CategoryTotal struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Type      category.Type   `json:"type"`
	Color     string          `json:"color"`
	Total     decimal.Decimal `json:"total"`
	LineItems []LineValue     `json:"lineItems"`
}

// Breakdown groups lines by category id. Groups appear in the order their
// first line appears and lines keep their input order inside a group.
func Breakdown(lines []Line) []CategoryTotal {
	groups := make([]CategoryTotal, 0)
	index := make(map[uuid.UUID]int)
	for _, l := range lines {
		i, ok := index[l.CategoryID]
		if !ok {
			i = len(groups)
			index[l.CategoryID] = i
			groups = append(groups, CategoryTotal{
				ID:        l.CategoryID,
				Name:      l.CategoryName,
				Type:      l.CategoryType,
				Color:     l.CategoryColor,
				Total:     decimal.Zero,
				LineItems: make([]LineValue, 0, 1),
			})
		}
		g := &groups[i]
		g.Total = g.Total.Add(l.Value)
		g.LineItems = append(g.LineItems, LineValue{
			ID:    l.LineItemID,
			Name:  l.LineItemName,
			Value: l.Value,
		})
	}
	return groups
}
