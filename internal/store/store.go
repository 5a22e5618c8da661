// Package store persists frame records extracted from previously submitted
// videos so the gallery can show them again without re-uploading the video.
package store

import (
	"context"
	"errors"
)

// FrameRecord is one cached frame reference. URL is kept server-relative;
// callers resolve it against the backend base at render time.
type FrameRecord struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	UniqueID string `json:"unique_id"`
}

// FrameStore is the persistence contract for cached frame records.
type FrameStore interface {
	// Add durably persists the record and returns the assigned id.
	Add(ctx context.Context, rec FrameRecord) (uint64, error)

	// ListAll returns every record in insertion order.
	ListAll(ctx context.Context) ([]FrameRecord, error)

	// DeleteByID removes a record. Deleting an absent id is not an error.
	DeleteByID(ctx context.Context, id uint64) error

	Close() error
}

// ErrUnavailable is returned when the underlying storage engine cannot be
// opened.
var ErrUnavailable = errors.New("frame store unavailable")
