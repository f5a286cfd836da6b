package l1_service

import (
	"sort"
	"time"

	"bourse/internal/domain"
	"bourse/internal/util"

	"github.com/shopspring/decimal"
)

// PriceSource says where a looked-up price came from.
type PriceSource string

const (
	PriceSource_History PriceSource = "HISTORY"
	PriceSource_Current PriceSource = "CURRENT"
	PriceSource_None    PriceSource = "NONE"
)

type datedPrice struct {
	date  time.Time
	price decimal.Decimal
}

// PriceIndex answers point-in-time close lookups for a fixed set of
// symbols. It is immutable once built and safe for concurrent reads.
type PriceIndex struct {
	prices  map[string][]datedPrice
	current map[string]decimal.Decimal
}

// NewPriceIndex groups points by symbol and sorts each group by date. When
// a symbol has more than one close for the same day, the one appearing
// last in points wins. current holds the live price used when no history
// exists at or before a queried day.
func NewPriceIndex(points []domain.PricePoint, current map[string]decimal.Decimal) *PriceIndex {
	grouped := map[string][]datedPrice{}
	for _, p := range points {
		grouped[p.Symbol] = append(grouped[p.Symbol], datedPrice{
			date:  util.StartOfDay(p.Date),
			price: p.Close,
		})
	}

	prices := make(map[string][]datedPrice, len(grouped))
	for symbol, series := range grouped {
		sort.SliceStable(series, func(i, j int) bool {
			return series[i].date.Before(series[j].date)
		})

		deduped := make([]datedPrice, 0, len(series))
		for _, dp := range series {
			if n := len(deduped); n > 0 && deduped[n-1].date.Equal(dp.date) {
				deduped[n-1] = dp
				continue
			}
			deduped = append(deduped, dp)
		}
		prices[symbol] = deduped
	}

	currentCopy := make(map[string]decimal.Decimal, len(current))
	for symbol, price := range current {
		currentCopy[symbol] = price
	}

	return &PriceIndex{
		prices:  prices,
		current: currentCopy,
	}
}

// PriceOnOrBefore returns the close on date, else the latest earlier close,
// else the current price, else zero.
func (idx *PriceIndex) PriceOnOrBefore(symbol string, date time.Time) decimal.Decimal {
	price, _ := idx.Lookup(symbol, date)
	return price
}

func (idx *PriceIndex) Lookup(symbol string, date time.Time) (decimal.Decimal, PriceSource) {
	day := util.StartOfDay(date)
	series := idx.prices[symbol]

	// first close strictly after day; the one before it is the answer
	i := sort.Search(len(series), func(i int) bool {
		return series[i].date.After(day)
	})
	if i > 0 {
		return series[i-1].price, PriceSource_History
	}

	if price, ok := idx.current[symbol]; ok {
		return price, PriceSource_Current
	}

	return decimal.Zero, PriceSource_None
}

// Known reports whether any price at all exists for symbol.
func (idx *PriceIndex) Known(symbol string) bool {
	if len(idx.prices[symbol]) > 0 {
		return true
	}
	_, ok := idx.current[symbol]
	return ok
}

// NumPoints is the number of distinct (symbol, day) closes held.
func (idx *PriceIndex) NumPoints() int {
	n := 0
	for _, series := range idx.prices {
		n += len(series)
	}
	return n
}
