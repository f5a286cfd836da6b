package domain

import (
	"testing"
	"time"

	"bourse/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTransaction(side Side, symbol string, quantity int64, price int64, ts time.Time) Transaction {
	return Transaction{
		Symbol:    symbol,
		Side:      side,
		Quantity:  quantity,
		Price:     decimal.NewFromInt(price),
		Timestamp: ts,
	}
}

func fixedPrice(p int64) func(string) decimal.Decimal {
	return func(string) decimal.Decimal {
		return decimal.NewFromInt(p)
	}
}

func TestLedgerReplayer_AdvanceTo(t *testing.T) {
	day1 := util.NewDate(2024, 1, 1)

	t.Run("buy debits cash and opens position", func(t *testing.T) {
		r := NewLedgerReplayer(decimal.NewFromInt(1_000_000), []Transaction{
			newTransaction(Side_Buy, "XYZ", 10, 1000, day1.Add(10*time.Hour)),
		})

		applied := r.AdvanceTo(day1)

		require.Equal(t, 1, applied)
		require.True(t, decimal.NewFromInt(990_000).Equal(r.Cash()))
		require.Equal(t, map[string]int64{"XYZ": 10}, r.Positions())
		require.True(t, decimal.NewFromInt(1_000_000).Equal(r.TotalValue(fixedPrice(1000))))
	})

	t.Run("full liquidation removes position", func(t *testing.T) {
		r := NewLedgerReplayer(decimal.NewFromInt(1_000_000), []Transaction{
			newTransaction(Side_Buy, "XYZ", 10, 1000, day1.Add(time.Hour)),
			newTransaction(Side_Sell, "XYZ", 10, 1200, day1.AddDate(0, 0, 2).Add(time.Hour)),
		})

		r.AdvanceTo(day1)
		require.Contains(t, r.Positions(), "XYZ")

		r.AdvanceTo(day1.AddDate(0, 0, 2))
		require.NotContains(t, r.Positions(), "XYZ")
		require.True(t, decimal.NewFromInt(1_002_000).Equal(r.Cash()))

		priced := false
		value := r.TotalValue(func(string) decimal.Decimal {
			priced = true
			return decimal.NewFromInt(5000)
		})
		require.False(t, priced)
		require.True(t, r.Cash().Equal(value))
	})

	t.Run("transactions after the day stay pending", func(t *testing.T) {
		r := NewLedgerReplayer(decimal.NewFromInt(100), []Transaction{
			newTransaction(Side_Buy, "A", 1, 10, util.EndOfDay(day1)),
			newTransaction(Side_Buy, "A", 1, 10, day1.AddDate(0, 0, 1)),
		})

		require.Equal(t, 1, r.AdvanceTo(day1))
		require.Equal(t, 1, r.Pending())
		require.Equal(t, 0, r.AdvanceTo(day1))
		require.Equal(t, 1, r.AdvanceTo(day1.AddDate(0, 0, 1)))
		require.Equal(t, 0, r.Pending())
		require.True(t, decimal.NewFromInt(80).Equal(r.Cash()))
	})

	t.Run("applies each transaction once across days", func(t *testing.T) {
		r := NewLedgerReplayer(decimal.NewFromInt(1000), []Transaction{
			newTransaction(Side_Buy, "A", 2, 10, day1),
			newTransaction(Side_Buy, "B", 3, 10, day1.Add(time.Minute)),
		})

		total := 0
		util.EachDay(day1, day1.AddDate(0, 0, 5), func(d time.Time) bool {
			total += r.AdvanceTo(d)
			return true
		})
		require.Equal(t, 2, total)
		require.Equal(t, map[string]int64{"A": 2, "B": 3}, r.Positions())
		require.True(t, decimal.NewFromInt(950).Equal(r.Cash()))
	})

	t.Run("oversell clamps at zero", func(t *testing.T) {
		r := NewLedgerReplayer(decimal.NewFromInt(0), []Transaction{
			newTransaction(Side_Buy, "XYZ", 5, 10, day1),
			newTransaction(Side_Sell, "XYZ", 8, 10, day1.Add(time.Hour)),
			newTransaction(Side_Sell, "ABC", 1, 7, day1.Add(2*time.Hour)),
		})

		require.NotPanics(t, func() { r.AdvanceTo(day1) })

		require.Empty(t, r.Positions())
		require.True(t, decimal.NewFromInt(37).Equal(r.Cash()))
		require.Len(t, r.Violations(), 2)
		require.Equal(t, ViolationKind_Oversold, r.Violations()[0].Kind)
		require.Equal(t, int64(3), r.Violations()[0].Shortfall)
		require.Equal(t, "ABC", r.Violations()[1].Transaction.Symbol)
		require.Equal(t, int64(1), r.Violations()[1].Shortfall)
	})

	t.Run("unknown side is skipped", func(t *testing.T) {
		r := NewLedgerReplayer(decimal.NewFromInt(100), []Transaction{
			newTransaction(Side("DIVIDEND"), "XYZ", 5, 10, day1),
		})

		require.Equal(t, 1, r.AdvanceTo(day1))
		require.True(t, decimal.NewFromInt(100).Equal(r.Cash()))
		require.Empty(t, r.Positions())
		require.Len(t, r.Violations(), 1)
		require.Equal(t, ViolationKind_UnknownSide, r.Violations()[0].Kind)
	})
}

func TestLedgerReplayer_Snapshot(t *testing.T) {
	day1 := util.NewDate(2024, 1, 1)
	r := NewLedgerReplayer(decimal.NewFromInt(1000), []Transaction{
		newTransaction(Side_Buy, "A", 2, 100, day1.Add(time.Hour)),
	})
	r.AdvanceTo(day1)

	snapshot := r.Snapshot(day1.Add(15*time.Hour), fixedPrice(150))
	require.Equal(t, day1, snapshot.Date)
	require.True(t, decimal.NewFromInt(800).Equal(snapshot.Cash))
	require.True(t, decimal.NewFromInt(1100).Equal(snapshot.TotalValue))

	snapshot.Positions["A"] = 99
	require.Equal(t, int64(2), r.Positions()["A"])
}
