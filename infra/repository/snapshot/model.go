package snapshot

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot represents a snapshot record in the database. Rows are never
// updated.
type Snapshot struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_snapshots_user_date,priority:1"`
	Label       *string         `gorm:"size:255"`
	Note        *string         `gorm:"type:text"`
	Date        time.Time       `gorm:"not null;index:idx_snapshots_user_date,priority:2"`
	TotalAssets decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	TotalLiabs  decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	NetWorth    decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	CreatedAt   time.Time
	Items       []SnapshotItem `gorm:"foreignKey:SnapshotID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Snapshot model.
func (Snapshot) TableName() string {
	return "snapshots"
}

// SnapshotItem is one recorded value of a snapshot.
type SnapshotItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SnapshotID uuid.UUID       `gorm:"type:uuid;not null;index"`
	LineItemID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position   int             `gorm:"not null"`
	Value      decimal.Decimal `gorm:"type:numeric(20,2);not null"`
}

// TableName specifies the table name for the SnapshotItem model.
func (SnapshotItem) TableName() string {
	return "snapshot_items"
}
