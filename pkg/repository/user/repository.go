package user

import (
	"context"

	"github.com/amirasaad/networth/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for user data access operations.
// Lookups return (nil, nil) when no row matches.
type Repository interface {
	// Create inserts a new user record from a DTO.
	Create(ctx context.Context, create *dto.UserCreate) error

	// Update updates an existing user by its ID using a DTO.
	Update(ctx context.Context, id uuid.UUID, update *dto.UserUpdate) error

	// Get retrieves a user by its ID.
	Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (*dto.UserRead, error)

	// Delete deletes a user by its ID. Everything the user owns goes
	// with it.
	Delete(ctx context.Context, id uuid.UUID) error
}
