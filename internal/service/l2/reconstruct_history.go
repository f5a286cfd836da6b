package l2_service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"bourse/internal/domain"
	l1_service "bourse/internal/service/l1"
	"bourse/internal/util"

	"github.com/shopspring/decimal"
)

// PriceLookup is the read side of l1_service.PriceIndex.
type PriceLookup interface {
	Lookup(symbol string, date time.Time) (decimal.Decimal, l1_service.PriceSource)
}

type ReconstructHistoryInput struct {
	Portfolio domain.Portfolio
	// Transactions must be sorted ascending by timestamp
	Transactions     []domain.Transaction
	Prices           PriceLookup
	Through          time.Time
	IncludeSnapshots bool
}

type ReconstructHistoryResult struct {
	Points     []domain.ValuationPoint
	Snapshots  []domain.Snapshot
	Violations []domain.ReplayViolation
	// UnpricedSymbols were held on at least one day with no usable price
	// and contributed zero that day
	UnpricedSymbols []string
}

// ReconstructHistory replays the ledger against the calendar, one point per
// UTC day from the portfolio's creation day through the later of Through
// and the creation day. It does no I/O. ctx is checked once per day.
func ReconstructHistory(ctx context.Context, in ReconstructHistoryInput) (*ReconstructHistoryResult, error) {
	startDay := util.StartOfDay(in.Portfolio.CreatedAt)

	if len(in.Transactions) == 0 {
		result := &ReconstructHistoryResult{
			Points: []domain.ValuationPoint{
				{
					Date:  startDay,
					Value: in.Portfolio.InitialBalance,
				},
			},
			Violations:      []domain.ReplayViolation{},
			UnpricedSymbols: []string{},
		}
		if in.IncludeSnapshots {
			result.Snapshots = []domain.Snapshot{
				{
					Date:       startDay,
					Cash:       in.Portfolio.InitialBalance,
					Positions:  map[string]int64{},
					TotalValue: in.Portfolio.InitialBalance,
				},
			}
		}
		return result, nil
	}

	endDay := util.StartOfDay(in.Through)
	if endDay.Before(startDay) {
		endDay = startDay
	}

	numDays := util.DaysBetween(startDay, endDay)
	points := make([]domain.ValuationPoint, 0, numDays)
	var snapshots []domain.Snapshot
	if in.IncludeSnapshots {
		snapshots = make([]domain.Snapshot, 0, numDays)
	}

	replayer := domain.NewLedgerReplayer(in.Portfolio.InitialBalance, in.Transactions)
	unpriced := map[string]struct{}{}

	var ctxErr error
	util.EachDay(startDay, endDay, func(d time.Time) bool {
		if err := ctx.Err(); err != nil {
			ctxErr = err
			return false
		}

		replayer.AdvanceTo(d)

		priceOf := func(symbol string) decimal.Decimal {
			price, source := in.Prices.Lookup(symbol, d)
			if source == l1_service.PriceSource_None {
				unpriced[symbol] = struct{}{}
			}
			return price
		}

		if in.IncludeSnapshots {
			snapshot := replayer.Snapshot(d, priceOf)
			snapshots = append(snapshots, snapshot)
			points = append(points, domain.ValuationPoint{
				Date:  snapshot.Date,
				Value: snapshot.TotalValue,
			})
			return true
		}

		points = append(points, domain.ValuationPoint{
			Date:  d,
			Value: replayer.TotalValue(priceOf),
		})
		return true
	})
	if ctxErr != nil {
		return nil, fmt.Errorf("history reconstruction stopped after %d of %d days: %w", len(points), numDays, ctxErr)
	}

	unpricedSymbols := make([]string, 0, len(unpriced))
	for symbol := range unpriced {
		unpricedSymbols = append(unpricedSymbols, symbol)
	}
	sort.Strings(unpricedSymbols)

	violations := replayer.Violations()
	if violations == nil {
		violations = []domain.ReplayViolation{}
	}

	return &ReconstructHistoryResult{
		Points:          points,
		Snapshots:       snapshots,
		Violations:      violations,
		UnpricedSymbols: unpricedSymbols,
	}, nil
}
