// Package store fetches part records from the MASTER_FILE backing store,
// either through the Supabase REST interface or directly over Postgres.
package store

import (
	"context"
	"errors"

	"bigpicture_agent/pkg/models"
)

// ErrPartNotFound is returned when a syntactically valid part number matches
// no row. The pipeline converts it into a normal "not found" response.
var ErrPartNotFound = errors.New("part not found")

// PartStore is the record-fetcher boundary: exactly one read per analysis,
// no retry, no cache.
type PartStore interface {
	FetchPart(ctx context.Context, partNumber string) (models.PartRecord, error)
}
