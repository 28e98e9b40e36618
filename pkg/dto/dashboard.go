package dto

import (
	"time"

	"github.com/amirasaad/networth/pkg/domain/snapshot"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NetWorthPoint is one entry of the net worth history.
type NetWorthPoint struct {
	ID          uuid.UUID       `json:"id"`
	Label       *string         `json:"label"`
	Date        time.Time       `json:"date"`
	TotalAssets decimal.Decimal `json:"totalAssets"`
	TotalLiabs  decimal.Decimal `json:"totalLiabs"`
	NetWorth    decimal.Decimal `json:"netWorth"`
}

// Dashboard is the per-user overview.
type Dashboard struct {
	Currency      string                   `json:"currency"`
	SnapshotCount int                      `json:"snapshotCount"`
	Latest        *SnapshotRead            `json:"latest"`
	Previous      *SnapshotRead            `json:"previous"`
	Change        decimal.Decimal          `json:"change"`
	ChangePercent *decimal.Decimal         `json:"changePercent"`
	History       []NetWorthPoint          `json:"history"`
	Breakdown     []snapshot.CategoryTotal `json:"breakdown"`
}
