package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"agrivoice-go/internal/types"
)

// Memory is the zero-configuration fallback store. Concurrent pipeline runs
// share it, so every operation takes the lock.
type Memory struct {
	mu       sync.RWMutex
	listings map[string]types.ListingRecord
	farmers  map[string]types.FarmerProfile // keyed by mobile
}

func NewMemory() *Memory {
	return &Memory{
		listings: map[string]types.ListingRecord{},
		farmers:  map[string]types.FarmerProfile{},
	}
}

func (m *Memory) Available() bool { return false }

func (m *Memory) StoreListing(_ context.Context, rec types.ListingRecord) (types.ListingRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	rec.ID = uuid.New().String()
	if rec.Status == "" {
		rec.Status = types.StatusPending
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
	m.listings[rec.ID] = rec
	return rec, nil
}

func (m *Memory) ListByMobile(_ context.Context, mobile string) ([]types.ListingRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []types.ListingRecord
	for _, rec := range m.listings {
		if rec.FarmerMobile == mobile {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *Memory) UpdateStatus(_ context.Context, id string, status types.ProductStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.listings[id]
	if !ok {
		return ErrNotFound
	}
	rec.Status = status
	rec.UpdatedAt = time.Now().UTC()
	m.listings[id] = rec
	return nil
}

func (m *Memory) UpdateSuggestions(_ context.Context, id string, imp types.ImprovementSuggestions) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.listings[id]
	if !ok {
		return ErrNotFound
	}
	rec.Improvements = &imp
	rec.UpdatedAt = time.Now().UTC()
	m.listings[id] = rec
	return nil
}

func (m *Memory) ListUnsold(_ context.Context, olderThanDays int) ([]types.ListingRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cutoff := time.Now().UTC().AddDate(0, 0, -olderThanDays)
	var out []types.ListingRecord
	for _, rec := range m.listings {
		if rec.Status == types.StatusPending && rec.CreatedAt.Before(cutoff) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *Memory) RegisterFarmer(_ context.Context, f types.FarmerProfile) (types.FarmerProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	f.ID = uuid.New().String()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	m.farmers[strings.TrimSpace(f.Mobile)] = f
	return f, nil
}

func (m *Memory) FindFarmerByMobile(_ context.Context, mobile string) (types.FarmerProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.farmers[strings.TrimSpace(mobile)]
	if !ok {
		return types.FarmerProfile{}, ErrNotFound
	}
	return f, nil
}
