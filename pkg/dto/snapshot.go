package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SnapshotCreate is the data needed to insert a snapshot row.
type SnapshotCreate struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Label       *string
	Note        *string
	Date        time.Time
	TotalAssets decimal.Decimal
	TotalLiabs  decimal.Decimal
	NetWorth    decimal.Decimal
	CreatedAt   time.Time
}

// SnapshotEntry is one submitted (line item, value) pair. The id is kept
// raw so that malformed ids can be rejected like foreign ones.
type SnapshotEntry struct {
	LineItemID string
	Value      decimal.Decimal
}

// SnapshotRequest is the input of snapshot creation.
type SnapshotRequest struct {
	Label *string
	Note  *string
	Date  string
	Items []SnapshotEntry
}

// SnapshotItemCreate is one item row of a snapshot being inserted.
// Position preserves the submission order.
type SnapshotItemCreate struct {
	ID         uuid.UUID
	SnapshotID uuid.UUID
	LineItemID uuid.UUID
	Position   int
	Value      decimal.Decimal
}

// SnapshotRead represents a stored snapshot without its items.
type SnapshotRead struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"userId"`
	Label       *string         `json:"label"`
	Note        *string         `json:"note"`
	Date        time.Time       `json:"date"`
	TotalAssets decimal.Decimal `json:"totalAssets"`
	TotalLiabs  decimal.Decimal `json:"totalLiabs"`
	NetWorth    decimal.Decimal `json:"netWorth"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ItemCount mirrors the relation count attached to list entries.
type ItemCount struct {
	Items int64 `json:"items"`
}

// SnapshotSummary is a list entry: the snapshot plus its item count.
type SnapshotSummary struct {
	SnapshotRead
	Count ItemCount `json:"_count"`
}

// LineItemWithCategory is a line item with its category inlined.
type LineItemWithCategory struct {
	ID         uuid.UUID   `json:"id"`
	CategoryID uuid.UUID   `json:"categoryId"`
	Name       string      `json:"name"`
	Category   CategoryRef `json:"category"`
}

// SnapshotItemRead is a stored item with its line item and category.
type SnapshotItemRead struct {
	ID         uuid.UUID            `json:"id"`
	SnapshotID uuid.UUID            `json:"snapshotId"`
	LineItemID uuid.UUID            `json:"lineItemId"`
	Value      decimal.Decimal      `json:"value"`
	LineItem   LineItemWithCategory `json:"lineItem"`
}

// SnapshotDetail is a snapshot with all of its items.
type SnapshotDetail struct {
	SnapshotRead
	Items []*SnapshotItemRead `json:"items"`
}
