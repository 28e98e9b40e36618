// Package export writes every snapshot of a user as a flat table, one row
// per item followed by the snapshot's totals.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/networth/pkg/domain"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Format is an export file format.
type Format string

const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

// SheetName is the worksheet that holds the rows of an xlsx export.
const SheetName = "Snapshots"

const summaryType = "SUMMARY"

// ErrInvalidFormat is returned for formats other than csv and xlsx.
var ErrInvalidFormat = fmt.Errorf("%w: invalid format", domain.ErrValidation)

// Header is the first row of every export.
var Header = []string{
	"Snapshot Date",
	"Snapshot Label",
	"Snapshot Note",
	"Type",
	"Category",
	"Line Item",
	"Value",
}

// ParseFormat accepts csv and xlsx; empty means csv.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", CSV:
		return CSV, nil
	case XLSX:
		return XLSX, nil
	default:
		return "", ErrInvalidFormat
	}
}

// ContentType is the MIME type of f.
func (f Format) ContentType() string {
	if f == XLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// Filename names an export made at now.
func Filename(f Format, now time.Time) string {
	return fmt.Sprintf("networth-export-%s.%s", now.UTC().Format("2006-01-02"), f)
}

// Row is one line of an export.
type Row struct {
	Date     string
	Label    string
	Note     string
	Type     string
	Category string
	LineItem string
	Value    decimal.Decimal
}

func (r Row) strings() []string {
	return []string{r.Date, r.Label, r.Note, r.Type, r.Category, r.LineItem, r.Value.StringFixed(2)}
}

// Rows turns snapshots into one group of rows per snapshot: its items in
// stored order, then the Total Assets, Total Liabilities and Net Worth
// summary rows.
func Rows(snaps []*dto.SnapshotDetail) [][]Row {
	groups := make([][]Row, 0, len(snaps))
	for _, s := range snaps {
		base := Row{Date: s.CreatedAt.UTC().Format("2006-01-02")}
		if s.Label != nil {
			base.Label = *s.Label
		}
		if s.Note != nil {
			base.Note = *s.Note
		}
		group := make([]Row, 0, len(s.Items)+3)
		for _, it := range s.Items {
			r := base
			r.Type = it.LineItem.Category.Type
			r.Category = it.LineItem.Category.Name
			r.LineItem = it.LineItem.Name
			r.Value = it.Value
			group = append(group, r)
		}
		for _, sum := range []struct {
			name  string
			value decimal.Decimal
		}{
			{"Total Assets", s.TotalAssets},
			{"Total Liabilities", s.TotalLiabs},
			{"Net Worth", s.NetWorth},
		} {
			r := base
			r.Type = summaryType
			r.Category = sum.name
			r.Value = sum.value
			group = append(group, r)
		}
		groups = append(groups, group)
	}
	return groups
}

// WriteCSV writes the header and every group, each followed by a blank
// line.
func WriteCSV(w io.Writer, groups [][]Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, g := range groups {
		for _, r := range g {
			if err := cw.Write(r.strings()); err != nil {
				return err
			}
		}
		if err := cw.Write([]string{""}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the same table as WriteCSV to the Snapshots sheet of a
// new workbook. Values are numeric cells.
func WriteXLSX(w io.Writer, groups [][]Row) error {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	row := 2
	for _, g := range groups {
		for _, r := range g {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			s := r.strings()
			values := []any{s[0], s[1], s[2], s[3], s[4], s[5], r.Value.InexactFloat64()}
			if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
				return err
			}
			row++
		}
		row++
	}

	for col, width := range map[string]float64{"A": 14, "B": 20, "C": 30, "D": 12, "E": 20, "F": 20, "G": 14} {
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return err
		}
	}
	return f.Write(w)
}

// Service exports a user's snapshots.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates an export Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Export writes all of the user's snapshots, oldest first, to w.
func (s *Service) Export(ctx context.Context, userID uuid.UUID, format Format, w io.Writer) error {
	var snaps []*dto.SnapshotDetail
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.SnapshotRepository()
		if err != nil {
			return err
		}
		snaps, err = repo.ListDetailsByUser(ctx, userID)
		return err
	})
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	groups := Rows(snaps)
	s.logger.Info("exporting snapshots", "user_id", userID, "format", format, "snapshots", len(snaps))
	switch format {
	case XLSX:
		return WriteXLSX(w, groups)
	case CSV:
		return WriteCSV(w, groups)
	default:
		return ErrInvalidFormat
	}
}
