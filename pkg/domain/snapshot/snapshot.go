// Package snapshot holds the pure rules of the snapshot ledger: input
// coercion, totals aggregation and the category breakdown projection.
// Nothing here touches storage.
package snapshot

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/networth/pkg/domain"
	"github.com/amirasaad/networth/pkg/domain/category"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ValuePlaces is the number of fractional digits stored for every value.
const ValuePlaces = 2

var (
	// ErrInvalidDate is returned when a supplied date cannot be parsed.
	ErrInvalidDate = fmt.Errorf("%w: invalid date", domain.ErrValidation)
	// ErrNoItems is returned when a snapshot is submitted without items.
	ErrNoItems = fmt.Errorf("%w: at least one item is required", domain.ErrValidation)
	// ErrInvalidLineItems is returned when any referenced line item is
	// missing or owned by another user. The two cases are not told apart.
	ErrInvalidLineItems = fmt.Errorf("%w: invalid line items", domain.ErrForbidden)
	// ErrValueOutOfRange is returned when a value or a total does not fit
	// the stored precision.
	ErrValueOutOfRange = fmt.Errorf("%w: value out of range", domain.ErrValidation)
)

// valueLimit bounds the magnitude of values and totals: numeric(20,2)
// keeps 18 integer digits.
var valueLimit = decimal.New(1, 18)

func inRange(d decimal.Decimal) bool {
	return d.Abs().LessThan(valueLimit)
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Entry is one submitted (line item, value) pair.
type Entry struct {
	LineItemID uuid.UUID
	Value      decimal.Decimal
}

// Totals are the derived figures stored on a snapshot.
type Totals struct {
	TotalAssets decimal.Decimal
	TotalLiabs  decimal.Decimal
	NetWorth    decimal.Decimal
}

// ParseDate resolves the optional snapshot date. Blank input means now.
// Dates without a zone are taken as UTC.
func ParseDate(raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.UTC(), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// CoerceValue turns a raw JSON value into a stored amount. Numbers and
// numeric strings are taken exactly; everything else is zero. The result
// is rounded half away from zero to ValuePlaces.
func CoerceValue(raw json.RawMessage) decimal.Decimal {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return decimal.Zero
	}
	switch s[0] {
	case '"':
		var str string
		if err := json.Unmarshal([]byte(s), &str); err != nil {
			return decimal.Zero
		}
		return parseAmount(str)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return parseAmount(s)
	default:
		return decimal.Zero
	}
}

func parseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d.Round(ValuePlaces)
}

// NewEntry validates one submitted item. A malformed id can never
// resolve to a line item so it fails the same way a foreign one does.
func NewEntry(rawID string, value decimal.Decimal) (Entry, error) {
	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return Entry{}, ErrInvalidLineItems
	}
	value = value.Round(ValuePlaces)
	if !inRange(value) {
		return Entry{}, ErrValueOutOfRange
	}
	return Entry{LineItemID: id, Value: value}, nil
}

// DistinctIDs returns each referenced line item once, in first-seen order.
func DistinctIDs(entries []Entry) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(entries))
	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.LineItemID]; ok {
			continue
		}
		seen[e.LineItemID] = struct{}{}
		ids = append(ids, e.LineItemID)
	}
	return ids
}

// Aggregate sums entries by the type of their line item's category.
// Every entry's line item must be present in types.
func Aggregate(entries []Entry, types map[uuid.UUID]category.Type) Totals {
	assets := decimal.Zero
	liabs := decimal.Zero
	for _, e := range entries {
		if types[e.LineItemID] == category.Asset {
			assets = assets.Add(e.Value)
		} else {
			liabs = liabs.Add(e.Value)
		}
	}
	return Totals{
		TotalAssets: assets,
		TotalLiabs:  liabs,
		NetWorth:    assets.Sub(liabs),
	}
}

// Validate reports ErrValueOutOfRange when a total cannot be stored.
func (t Totals) Validate() error {
	for _, d := range []decimal.Decimal{t.TotalAssets, t.TotalLiabs, t.NetWorth} {
		if !inRange(d) {
			return ErrValueOutOfRange
		}
	}
	return nil
}

// NormalizeText trims optional free text; blank becomes nil.
func NormalizeText(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// PercentChange is the change from prev to cur relative to |prev|, in
// percent with one fractional digit. A zero baseline reports 100 for a
// positive current value and 0 otherwise.
func PercentChange(cur, prev decimal.Decimal) decimal.Decimal {
	if prev.IsZero() {
		if cur.IsPositive() {
			return decimal.NewFromInt(100)
		}
		return decimal.Zero
	}
	return cur.Sub(prev).
		Div(prev.Abs()).
		Mul(decimal.NewFromInt(100)).
		Round(1)
}
