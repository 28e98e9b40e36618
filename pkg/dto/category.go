package dto

import (
	"time"

	"github.com/google/uuid"
)

// CategoryCreate is the data needed to insert a category.
type CategoryCreate struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      string
	Color     string
	SortOrder int
}

// CategoryUpdate holds the mutable fields of a category. Type is not
// among them.
type CategoryUpdate struct {
	Name  *string
	Color *string
}

// CategoryRead is a category with its line items, oldest first.
type CategoryRead struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Color     string          `json:"color"`
	SortOrder int             `json:"sortOrder"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	LineItems []*LineItemRead `json:"lineItems"`
}

// CategoryRef is the compact category shape embedded in snapshot items.
type CategoryRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Type  string    `json:"type"`
	Color string    `json:"color"`
}
