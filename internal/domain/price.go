package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint is one day's closing price for one security.
type PricePoint struct {
	Symbol string
	Date   time.Time
	Close  decimal.Decimal
}
