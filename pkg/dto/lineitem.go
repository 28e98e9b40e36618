package dto

import (
	"time"

	"github.com/google/uuid"
)

// LineItemCreate is the data needed to insert a line item.
type LineItemCreate struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	Name       string
}

// LineItemUpdate holds the mutable fields of a line item.
type LineItemUpdate struct {
	Name *string
}

// LineItemRead represents a read-optimized view of a line item.
type LineItemRead struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"categoryId"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// LineItemOwner is a line item joined to the owner and type of its
// category.
type LineItemOwner struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	UserID       uuid.UUID
	CategoryType string
}
