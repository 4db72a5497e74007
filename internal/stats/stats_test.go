package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agrivoice-go/internal/types"
)

func TestAggregate(t *testing.T) {
	records := []types.ListingRecord{
		{Status: types.StatusSold},
		{Status: types.StatusSold},
		{Status: types.StatusPending},
		{Status: types.StatusExpired},
	}
	got := Aggregate(records)
	assert.Equal(t, 4, got.Total)
	assert.Equal(t, 2, got.Sold)
	assert.Equal(t, 1, got.Pending)
	assert.InDelta(t, 50.0, got.SoldPercentage, 1e-9)
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil)
	assert.Equal(t, 0, got.Total)
	assert.InDelta(t, 0.0, got.SoldPercentage, 1e-9)
}
