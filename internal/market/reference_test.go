package market

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeSheet(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}
	path := filepath.Join(t.TempDir(), "prices.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadAndLookup(t *testing.T) {
	path := writeSheet(t, [][]any{
		{"Commodity", "Min Price", "Max Price", "Unit"},
		{"Tomato", "₹30", "₹50", "kg"},
		{"Onion", "₹25", "₹35", "kg"},
		{"", "₹1", "₹2", "kg"}, // skipped: no commodity
	})

	ref, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, ref.Size())

	band, ok := ref.Lookup("tomato")
	require.True(t, ok)
	assert.Equal(t, "₹30", band.MinPrice)
	assert.Equal(t, "₹50", band.MaxPrice)
	assert.Equal(t, "kg", band.Unit)

	// partial match in either direction
	band, ok = ref.Lookup("tomatoes")
	require.True(t, ok)
	assert.Equal(t, "Tomato", band.Commodity)

	_, ok = ref.Lookup("mango")
	assert.False(t, ok)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.xlsx"))
	assert.Error(t, err)
}

func TestLoadNoCommodityColumn(t *testing.T) {
	path := writeSheet(t, [][]any{
		{"Foo", "Bar"},
		{"1", "2"},
	})
	_, err := Load(path)
	assert.Error(t, err)
}

func TestNilReferenceLookup(t *testing.T) {
	var ref *Reference
	_, ok := ref.Lookup("tomato")
	assert.False(t, ok)
	assert.Equal(t, 0, ref.Size())
}
