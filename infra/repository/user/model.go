package user

import (
	"time"

	"github.com/amirasaad/networth/infra/repository/category"
	"github.com/amirasaad/networth/infra/repository/snapshot"
	"github.com/google/uuid"
)

// User represents a user record in the database.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"size:255;not null"`
	Email      string    `gorm:"uniqueIndex;not null;size:255"`
	Image      string    `gorm:"type:text;not null"`
	Currency   string    `gorm:"size:3;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Categories []category.Category `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Snapshots  []snapshot.Snapshot `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}
