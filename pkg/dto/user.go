package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserCreate represents the data needed to create a new user.
type UserCreate struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email" validate:"required,email"`
	Image    string    `json:"image,omitempty"`
	Currency string    `json:"currency,omitempty"`
}

// UserUpdate represents the data that can be updated for a user.
type UserUpdate struct {
	Name     *string `json:"name,omitempty"`
	Image    *string `json:"image,omitempty"`
	Currency *string `json:"currency,omitempty"`
}

// UserRead represents a read-optimized view of a user.
type UserRead struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Image     string    `json:"image"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Settings is the user-adjustable configuration.
type Settings struct {
	Currency string `json:"currency"`
}
