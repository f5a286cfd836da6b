package l1_service

import (
	"testing"
	"time"

	"bourse/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestPriceIndex_Lookup(t *testing.T) {
	points := []domain.PricePoint{
		{Symbol: "XYZ", Date: day(3), Close: decimal.NewFromInt(1100)},
		{Symbol: "XYZ", Date: day(1), Close: decimal.NewFromInt(1000)},
		{Symbol: "ABC", Date: day(5), Close: decimal.NewFromInt(50)},
	}
	current := map[string]decimal.Decimal{
		"ABC": decimal.NewFromInt(55),
		"NEW": decimal.NewFromInt(7),
	}
	idx := NewPriceIndex(points, current)

	t.Run("exact date", func(t *testing.T) {
		price, source := idx.Lookup("XYZ", day(3))
		require.Equal(t, "1100", price.String())
		require.Equal(t, PriceSource_History, source)
	})

	t.Run("gap carries the earlier close forward", func(t *testing.T) {
		require.Equal(t, "1000", idx.PriceOnOrBefore("XYZ", day(2)).String())
		require.Equal(t, "1100", idx.PriceOnOrBefore("XYZ", day(20)).String())
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		require.Equal(t, "1100", idx.PriceOnOrBefore("XYZ", time.Date(2024, 1, 3, 23, 59, 0, 0, time.UTC)).String())
		require.Equal(t, "1000", idx.PriceOnOrBefore("XYZ", time.Date(2024, 1, 2, 23, 59, 0, 0, time.UTC)).String())
	})

	t.Run("before first close falls back to current", func(t *testing.T) {
		price, source := idx.Lookup("ABC", day(2))
		require.Equal(t, "55", price.String())
		require.Equal(t, PriceSource_Current, source)
	})

	t.Run("before first close without current is zero", func(t *testing.T) {
		price, source := idx.Lookup("XYZ", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC))
		require.True(t, price.IsZero())
		require.Equal(t, PriceSource_None, source)
	})

	t.Run("current only symbol", func(t *testing.T) {
		require.Equal(t, "7", idx.PriceOnOrBefore("NEW", day(1)).String())
		require.True(t, idx.Known("NEW"))
	})

	t.Run("unknown symbol is zero", func(t *testing.T) {
		require.True(t, idx.PriceOnOrBefore("NOPE", day(1)).IsZero())
		require.False(t, idx.Known("NOPE"))
	})
}

func TestNewPriceIndex(t *testing.T) {
	t.Run("duplicate day keeps the last row", func(t *testing.T) {
		idx := NewPriceIndex([]domain.PricePoint{
			{Symbol: "XYZ", Date: day(1), Close: decimal.NewFromInt(1)},
			{Symbol: "XYZ", Date: time.Date(2024, 1, 1, 16, 0, 0, 0, time.UTC), Close: decimal.NewFromInt(2)},
			{Symbol: "XYZ", Date: day(2), Close: decimal.NewFromInt(3)},
		}, nil)

		require.Equal(t, 2, idx.NumPoints())
		require.Equal(t, "2", idx.PriceOnOrBefore("XYZ", day(1)).String())
	})

	t.Run("current map is copied", func(t *testing.T) {
		current := map[string]decimal.Decimal{"XYZ": decimal.NewFromInt(10)}
		idx := NewPriceIndex(nil, current)
		current["XYZ"] = decimal.NewFromInt(99)

		require.Equal(t, "10", idx.PriceOnOrBefore("XYZ", day(1)).String())
	})

	t.Run("empty index", func(t *testing.T) {
		idx := NewPriceIndex(nil, nil)
		require.Equal(t, 0, idx.NumPoints())
		require.True(t, idx.PriceOnOrBefore("XYZ", day(1)).IsZero())
	})
}
