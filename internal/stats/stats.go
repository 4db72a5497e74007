package stats

import "agrivoice-go/internal/types"

// Aggregate folds a farmer's listings into the dashboard statistics block.
func Aggregate(records []types.ListingRecord) types.ListingStats {
	out := types.ListingStats{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case types.StatusSold:
			out.Sold++
		case types.StatusPending:
			out.Pending++
		}
	}
	if out.Total > 0 {
		out.SoldPercentage = float64(out.Sold) / float64(out.Total) * 100
	}
	return out
}
