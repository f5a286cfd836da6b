package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValuationPoint is the total portfolio value at the close of one day.
type ValuationPoint struct {
	Date  time.Time
	Value decimal.Decimal
}

// Snapshot is the full portfolio state at the close of one day.
type Snapshot struct {
	Date       time.Time
	Cash       decimal.Decimal
	Positions  map[string]int64
	TotalValue decimal.Decimal
}

type HistorySummary struct {
	StartDate       time.Time
	EndDate         time.Time
	StartValue      decimal.Decimal
	EndValue        decimal.Decimal
	High            decimal.Decimal
	Low             decimal.Decimal
	Change          decimal.Decimal
	ChangePercent   float64
	MaxDrawdown     float64
	AnnualizedStdev float64
	NumDays         int
}
