// Package store persists listings and farmer profiles. The production
// implementation speaks to a Supabase Postgres instance through pgx; the
// in-memory implementation keeps the service demoable with zero external
// configuration.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"agrivoice-go/internal/types"
)

var ErrNotFound = errors.New("record not found")

// Service is the persistence surface consumed by the orchestrator and the
// HTTP handlers. Operations never retry internally; a failed call is
// reported to the caller.
type Service interface {
	StoreListing(ctx context.Context, rec types.ListingRecord) (types.ListingRecord, error)
	ListByMobile(ctx context.Context, mobile string) ([]types.ListingRecord, error)
	UpdateStatus(ctx context.Context, id string, status types.ProductStatus) error
	UpdateSuggestions(ctx context.Context, id string, imp types.ImprovementSuggestions) error
	ListUnsold(ctx context.Context, olderThanDays int) ([]types.ListingRecord, error)
	RegisterFarmer(ctx context.Context, f types.FarmerProfile) (types.FarmerProfile, error)
	FindFarmerByMobile(ctx context.Context, mobile string) (types.FarmerProfile, error)
	Available() bool
}

// MockListing assigns a deterministic demo identity to a listing that could
// not be persisted, so the pipeline still responds with a complete record.
func MockListing(rec types.ListingRecord) types.ListingRecord {
	now := time.Now().UTC()
	rec.ID = "demo-" + uuid.New().String()
	if rec.Status == "" {
		rec.Status = types.StatusPending
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
	return rec
}
