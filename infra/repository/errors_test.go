package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amirasaad/networth/pkg/domain"
	"github.com/amirasaad/networth/pkg/domain/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMapGormErrorToDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "nil error returns nil",
			input:    nil,
			expected: nil,
		},
		{
			name:     "duplicate key error maps to ErrAlreadyExists",
			input:    gorm.ErrDuplicatedKey,
			expected: domain.ErrAlreadyExists,
		},
		{
			name:     "record not found error maps to ErrNotFound",
			input:    gorm.ErrRecordNotFound,
			expected: domain.ErrNotFound,
		},
		{
			name:     "foreign key violation maps to ErrNotFound",
			input:    gorm.ErrForeignKeyViolated,
			expected: domain.ErrNotFound,
		},
		{
			name:     "wrapped duplicate key error maps correctly",
			input:    fmt.Errorf("insert user: %w", gorm.ErrDuplicatedKey),
			expected: domain.ErrAlreadyExists,
		},
		{
			name:     "joined record not found error maps correctly",
			input:    errors.Join(errors.New("outer error"), gorm.ErrRecordNotFound),
			expected: domain.ErrNotFound,
		},
		{
			name:     "domain errors pass through",
			input:    snapshot.ErrInvalidLineItems,
			expected: snapshot.ErrInvalidLineItems,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := MapGormErrorToDomain(tt.input)
			if tt.expected == nil {
				require.NoError(t, result)
				return
			}
			require.Error(t, result)
			assert.ErrorIs(t, result, tt.expected)
		})
	}
}

func TestMapGormErrorToDomain_UnmappedErrorReturnsOriginal(t *testing.T) {
	t.Parallel()
	orig := errors.New("connection reset")
	assert.Same(t, orig, MapGormErrorToDomain(orig))
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	require.NoError(t, WrapError(func() error { return nil }))
	assert.ErrorIs(t, WrapError(func() error { return gorm.ErrDuplicatedKey }), domain.ErrAlreadyExists)
	assert.EqualError(t, WrapError(func() error { return errors.New("custom error") }), "custom error")
}
