package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Side string

const (
	Side_Buy  Side = "BUY"
	Side_Sell Side = "SELL"
)

// Transaction is an executed trade from the portfolio ledger. Transactions
// are append-only and never mutated.
type Transaction struct {
	TransactionID uuid.UUID
	Symbol        string
	Side          Side
	Quantity      int64
	Price         decimal.Decimal
	Timestamp     time.Time
}

func (t Transaction) Amount() decimal.Decimal {
	return decimal.NewFromInt(t.Quantity).Mul(t.Price)
}

// SortTransactions orders transactions by timestamp, keeping ledger order
// for equal timestamps.
func SortTransactions(transactions []Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Timestamp.Before(transactions[j].Timestamp)
	})
}

func TransactionsSorted(transactions []Transaction) bool {
	return sort.SliceIsSorted(transactions, func(i, j int) bool {
		return transactions[i].Timestamp.Before(transactions[j].Timestamp)
	})
}

// TradedSymbols returns every distinct symbol in transactions, sorted.
func TradedSymbols(transactions []Transaction) []string {
	seen := map[string]struct{}{}
	symbols := []string{}
	for _, t := range transactions {
		if _, ok := seen[t.Symbol]; ok {
			continue
		}
		seen[t.Symbol] = struct{}{}
		symbols = append(symbols, t.Symbol)
	}
	sort.Strings(symbols)
	return symbols
}
