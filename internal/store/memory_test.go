package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrivoice-go/internal/types"
)

func testListing(mobile string) types.ListingRecord {
	return types.ListingRecord{
		FarmerMobile: mobile,
		ProductInfo:  types.ProductInfo{Product: "tomato", Quantity: "10 kg", Price: "₹40"},
		Suggestions:  types.Suggestions{Description: "fresh"},
		Transcript:   types.Transcript{Text: "10 kg tomatoes", Language: types.LangEnglish},
	}
}

func TestStoreListingRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	stored, err := m.StoreListing(ctx, testListing("9876543210"))
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, types.StatusPending, stored.Status)

	records, err := m.ListByMobile(ctx, "9876543210")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, stored.ID, records[0].ID)
}

func TestListByMobileNewestFirst(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	old := testListing("9876543210")
	old.CreatedAt = time.Now().UTC().Add(-48 * time.Hour)
	first, err := m.StoreListing(ctx, old)
	require.NoError(t, err)

	second, err := m.StoreListing(ctx, testListing("9876543210"))
	require.NoError(t, err)

	records, err := m.ListByMobile(ctx, "9876543210")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, second.ID, records[0].ID)
	assert.Equal(t, first.ID, records[1].ID)
}

func TestUpdateStatusIdempotent(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	stored, err := m.StoreListing(ctx, testListing("9876543210"))
	require.NoError(t, err)

	require.NoError(t, m.UpdateStatus(ctx, stored.ID, types.StatusSold))
	require.NoError(t, m.UpdateStatus(ctx, stored.ID, types.StatusSold))

	records, err := m.ListByMobile(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, types.StatusSold, records[0].Status)
}

func TestUpdateStatusUnknownID(t *testing.T) {
	m := NewMemory()
	err := m.UpdateStatus(context.Background(), "missing", types.StatusSold)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListUnsoldCutoff(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	stale := testListing("9876543210")
	stale.CreatedAt = time.Now().UTC().AddDate(0, 0, -8)
	staleStored, err := m.StoreListing(ctx, stale)
	require.NoError(t, err)

	recent := testListing("9876543210")
	recent.CreatedAt = time.Now().UTC().AddDate(0, 0, -3)
	_, err = m.StoreListing(ctx, recent)
	require.NoError(t, err)

	sold := testListing("9876543210")
	sold.CreatedAt = time.Now().UTC().AddDate(0, 0, -10)
	soldStored, err := m.StoreListing(ctx, sold)
	require.NoError(t, err)
	require.NoError(t, m.UpdateStatus(ctx, soldStored.ID, types.StatusSold))

	unsold, err := m.ListUnsold(ctx, 7)
	require.NoError(t, err)
	require.Len(t, unsold, 1)
	assert.Equal(t, staleStored.ID, unsold[0].ID)
}

func TestUpdateSuggestions(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	stored, err := m.StoreListing(ctx, testListing("9876543210"))
	require.NoError(t, err)

	imp := types.ImprovementSuggestions{PricingSuggestions: "lower price slightly"}
	require.NoError(t, m.UpdateSuggestions(ctx, stored.ID, imp))

	records, err := m.ListByMobile(ctx, "9876543210")
	require.NoError(t, err)
	require.NotNil(t, records[0].Improvements)
	assert.Equal(t, "lower price slightly", records[0].Improvements.PricingSuggestions)

	assert.ErrorIs(t, m.UpdateSuggestions(ctx, "missing", imp), ErrNotFound)
}

func TestFarmerRegisterAndFind(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	f, err := m.RegisterFarmer(ctx, types.FarmerProfile{Name: "Ravi", Mobile: "9876543210", Language: types.LangHindi})
	require.NoError(t, err)
	assert.NotEmpty(t, f.ID)

	found, err := m.FindFarmerByMobile(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, f.ID, found.ID)

	_, err = m.FindFarmerByMobile(ctx, "9000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMockListingAssignsIdentity(t *testing.T) {
	rec := MockListing(testListing("9876543210"))
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, types.StatusPending, rec.Status)
	assert.False(t, rec.CreatedAt.IsZero())
}
