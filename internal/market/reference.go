// Package market loads an optional commodity reference price sheet. When
// present it grounds suggestion prompts in real mandi rates; when absent the
// suggestion adapter falls back to its language templates alone.
package market

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// PriceBand is a min/max rate for one commodity, free-text to match the
// unit conventions of the source sheet (e.g. "₹30" per "kg").
type PriceBand struct {
	Commodity string `json:"commodity"`
	MinPrice  string `json:"min_price"`
	MaxPrice  string `json:"max_price"`
	Unit      string `json:"unit"`
}

// Reference is an in-memory commodity price lookup. The zero value is an
// empty reference and is safe to use.
type Reference struct {
	bands map[string]PriceBand
}

// Load reads the first sheet of an XLSX price reference. Column positions
// are detected from header names; rows without a commodity are skipped.
func Load(path string) (*Reference, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open reference sheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("reference sheet has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("reference sheet has no data rows")
	}

	commodityIdx, minIdx, maxIdx, unitIdx := -1, -1, -1, -1
	for i, h := range rows[0] {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case commodityIdx == -1 && (strings.Contains(l, "commodity") || strings.Contains(l, "product") || strings.Contains(l, "crop")):
			commodityIdx = i
		case minIdx == -1 && strings.Contains(l, "min"):
			minIdx = i
		case maxIdx == -1 && strings.Contains(l, "max"):
			maxIdx = i
		case unitIdx == -1 && strings.Contains(l, "unit"):
			unitIdx = i
		}
	}
	if commodityIdx == -1 {
		return nil, fmt.Errorf("no commodity column found")
	}

	ref := &Reference{bands: map[string]PriceBand{}}
	for i, r := range rows {
		if i == 0 {
			continue
		}
		band := PriceBand{}
		if commodityIdx < len(r) {
			band.Commodity = strings.TrimSpace(r[commodityIdx])
		}
		if band.Commodity == "" {
			continue
		}
		if minIdx >= 0 && minIdx < len(r) {
			band.MinPrice = strings.TrimSpace(r[minIdx])
		}
		if maxIdx >= 0 && maxIdx < len(r) {
			band.MaxPrice = strings.TrimSpace(r[maxIdx])
		}
		if unitIdx >= 0 && unitIdx < len(r) {
			band.Unit = strings.TrimSpace(r[unitIdx])
		}
		ref.bands[strings.ToLower(band.Commodity)] = band
	}
	return ref, nil
}

// Lookup matches a product name against the reference, tolerating partial
// matches in either direction ("tomato" vs "tomatoes").
func (r *Reference) Lookup(product string) (PriceBand, bool) {
	if r == nil || len(r.bands) == 0 {
		return PriceBand{}, false
	}
	key := strings.ToLower(strings.TrimSpace(product))
	if key == "" {
		return PriceBand{}, false
	}
	if band, ok := r.bands[key]; ok {
		return band, true
	}
	for name, band := range r.bands {
		if strings.Contains(key, name) || strings.Contains(name, key) {
			return band, true
		}
	}
	return PriceBand{}, false
}

// Size returns the number of commodities loaded.
func (r *Reference) Size() int {
	if r == nil {
		return 0
	}
	return len(r.bands)
}
