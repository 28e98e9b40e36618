package lineitem

import (
	"time"

	"github.com/amirasaad/networth/infra/repository/snapshot"
	"github.com/google/uuid"
)

// LineItem represents a line item record in the database.
type LineItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"size:255;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	SnapshotItems []snapshot.SnapshotItem `gorm:"foreignKey:LineItemID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the LineItem model.
func (LineItem) TableName() string {
	return "line_items"
}
