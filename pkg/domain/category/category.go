// Package category defines the asset/liability grouping of line items.
package category

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/amirasaad/networth/pkg/domain"
)

// Type is the side of the balance sheet a category sits on. It is fixed
// at creation.
type Type string

const (
	Asset     Type = "ASSET"
	Liability Type = "LIABILITY"
)

// DefaultColor is used when no valid color was supplied.
const DefaultColor = "#0d9488"

var (
	// ErrNameAndTypeRequired is returned when creating without a name or type.
	ErrNameAndTypeRequired = fmt.Errorf("%w: name and type are required", domain.ErrValidation)
	// ErrInvalidType is returned for types other than ASSET and LIABILITY.
	ErrInvalidType = fmt.Errorf("%w: invalid type", domain.ErrValidation)
	// ErrNameRequired is returned when a rename would leave the name blank.
	ErrNameRequired = fmt.Errorf("%w: name is required", domain.ErrValidation)
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Valid reports whether t is a known type.
func (t Type) Valid() bool {
	return t == Asset || t == Liability
}

func (t Type) String() string { return string(t) }

// ParseType validates raw as a category type.
func ParseType(raw string) (Type, error) {
	t := Type(strings.TrimSpace(raw))
	if !t.Valid() {
		return "", ErrInvalidType
	}
	return t, nil
}

// NormalizeColor returns color when it is a #rgb or #rrggbb hex string and
// DefaultColor otherwise.
func NormalizeColor(color string) string {
	color = strings.TrimSpace(color)
	if hexColor.MatchString(color) {
		return color
	}
	return DefaultColor
}

// NormalizeName trims name and rejects it when nothing is left.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	return name, nil
}

// NextSortOrder returns the position for a new category given the
// current maximum, if any.
func NextSortOrder(max int, exists bool) int {
	if !exists {
		return 0
	}
	return max + 1
}
