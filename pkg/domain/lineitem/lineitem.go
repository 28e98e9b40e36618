// Package lineitem defines the named holdings and debts that snapshots
// record values for.
package lineitem

import (
	"fmt"
	"strings"

	"github.com/amirasaad/networth/pkg/domain"
)

var (
	// ErrCategoryAndNameRequired is returned when creating without a
	// category id or name.
	ErrCategoryAndNameRequired = fmt.Errorf("%w: categoryId and name are required", domain.ErrValidation)
	// ErrCategoryNotFound is returned when the parent category does not
	// exist or belongs to someone else.
	ErrCategoryNotFound = fmt.Errorf("%w: category not found", domain.ErrNotFound)
	// ErrNameRequired is returned when a rename would leave the name blank.
	ErrNameRequired = fmt.Errorf("%w: name is required", domain.ErrValidation)
)

// NormalizeName trims name and rejects it when nothing is left.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	return name, nil
}
