package category

import (
	"time"

	"github.com/amirasaad/networth/infra/repository/lineitem"
	"github.com/google/uuid"
)

// Category represents a category record in the database.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"size:255;not null"`
	Type      string    `gorm:"size:16;not null"`
	Color     string    `gorm:"size:16;not null"`
	SortOrder int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	LineItems []lineitem.LineItem `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Category model.
func (Category) TableName() string {
	return "categories"
}
