package domain

import (
	"time"

	"bourse/internal/util"

	"github.com/shopspring/decimal"
)

type ViolationKind string

const (
	ViolationKind_Oversold    ViolationKind = "OVERSOLD"
	ViolationKind_UnknownSide ViolationKind = "UNKNOWN_SIDE"
)

// ReplayViolation records a ledger entry that could not be applied as-is.
type ReplayViolation struct {
	Kind        ViolationKind
	Transaction Transaction
	// Shortfall is the quantity sold beyond what was held
	Shortfall int64
}

// LedgerReplayer walks a timestamp-sorted transaction list forward one
// calendar day at a time. Each transaction is applied exactly once; the
// cursor never moves backwards.
type LedgerReplayer struct {
	holdings     *Holdings
	transactions []Transaction
	cursor       int
	violations   []ReplayViolation
}

// NewLedgerReplayer expects transactions sorted ascending by timestamp and
// does not re-sort them.
func NewLedgerReplayer(initialCash decimal.Decimal, transactions []Transaction) *LedgerReplayer {
	return &LedgerReplayer{
		holdings:     NewHoldings(initialCash),
		transactions: transactions,
	}
}

// AdvanceTo applies every pending transaction timestamped at or before the
// end of day's UTC calendar day and returns how many were applied.
func (r *LedgerReplayer) AdvanceTo(day time.Time) int {
	endOfDay := util.EndOfDay(day)
	applied := 0
	for r.cursor < len(r.transactions) {
		t := r.transactions[r.cursor]
		if t.Timestamp.After(endOfDay) {
			break
		}
		r.apply(t)
		r.cursor++
		applied++
	}
	return applied
}

func (r *LedgerReplayer) apply(t Transaction) {
	switch t.Side {
	case Side_Buy:
		r.holdings.Cash = r.holdings.Cash.Sub(t.Amount())
		r.setPosition(t.Symbol, r.holdings.Positions[t.Symbol]+t.Quantity)
	case Side_Sell:
		r.holdings.Cash = r.holdings.Cash.Add(t.Amount())
		remaining := r.holdings.Positions[t.Symbol] - t.Quantity
		if remaining < 0 {
			r.violations = append(r.violations, ReplayViolation{
				Kind:        ViolationKind_Oversold,
				Transaction: t,
				Shortfall:   -remaining,
			})
		}
		r.setPosition(t.Symbol, remaining)
	default:
		r.violations = append(r.violations, ReplayViolation{
			Kind:        ViolationKind_UnknownSide,
			Transaction: t,
		})
	}
}

// setPosition drops the symbol once nothing is held so zero or negative
// quantities are never valued.
func (r *LedgerReplayer) setPosition(symbol string, quantity int64) {
	if quantity <= 0 {
		delete(r.holdings.Positions, symbol)
		return
	}
	r.holdings.Positions[symbol] = quantity
}

func (r *LedgerReplayer) Cash() decimal.Decimal {
	return r.holdings.Cash
}

// Positions returns a copy of the open positions.
func (r *LedgerReplayer) Positions() map[string]int64 {
	return r.holdings.DeepCopy().Positions
}

func (r *LedgerReplayer) TotalValue(priceOf func(symbol string) decimal.Decimal) decimal.Decimal {
	return r.holdings.TotalValue(priceOf)
}

func (r *LedgerReplayer) Snapshot(day time.Time, priceOf func(symbol string) decimal.Decimal) Snapshot {
	return Snapshot{
		Date:       util.StartOfDay(day),
		Cash:       r.holdings.Cash,
		Positions:  r.Positions(),
		TotalValue: r.holdings.TotalValue(priceOf),
	}
}

// Pending is the number of transactions not yet applied.
func (r *LedgerReplayer) Pending() int {
	return len(r.transactions) - r.cursor
}

func (r *LedgerReplayer) Violations() []ReplayViolation {
	return r.violations
}
