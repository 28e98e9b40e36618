package snapshot

import (
	"encoding/json"

	"github.com/amirasaad/networth/pkg/domain/snapshot"
	"github.com/amirasaad/networth/pkg/dto"
)

// ItemInput is one submitted value. Value may be a JSON number or a
// numeric string; anything else counts as zero.
type ItemInput struct {
	LineItemID string          `json:"lineItemId"`
	Value      json.RawMessage `json:"value" swaggertype:"number"`
}

// CreateSnapshotInput is the body of POST /api/snapshots.
type CreateSnapshotInput struct {
	Label *string     `json:"label"`
	Note  *string     `json:"note"`
	Date  string      `json:"date" example:"2026-03-31"`
	Items []ItemInput `json:"items"`
}

func (in *CreateSnapshotInput) toRequest() *dto.SnapshotRequest {
	req := &dto.SnapshotRequest{
		Label: in.Label,
		Note:  in.Note,
		Date:  in.Date,
		Items: make([]dto.SnapshotEntry, len(in.Items)),
	}
	for i, it := range in.Items {
		req.Items[i] = dto.SnapshotEntry{
			LineItemID: it.LineItemID,
			Value:      snapshot.CoerceValue(it.Value),
		}
	}
	return req
}
