package calculator

import (
	"fmt"
	"math"
	"sort"

	"bourse/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SummarizeHistory computes headline metrics over a daily valuation series.
// Volatility is the sample stdev of daily returns annualized over calendar
// days, and is left at 0 when there are fewer than 3 points.
func SummarizeHistory(points []domain.ValuationPoint) (*domain.HistorySummary, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("cannot summarize an empty history")
	}

	sorted := make([]domain.ValuationPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	first := sorted[0]
	last := sorted[len(sorted)-1]

	summary := &domain.HistorySummary{
		StartDate:  first.Date,
		EndDate:    last.Date,
		StartValue: first.Value,
		EndValue:   last.Value,
		High:       first.Value,
		Low:        first.Value,
		Change:     last.Value.Sub(first.Value),
		NumDays:    len(sorted),
	}
	if !first.Value.IsZero() {
		summary.ChangePercent = summary.Change.Div(first.Value).Mul(hundred).InexactFloat64()
	}

	for _, p := range sorted {
		if p.Value.GreaterThan(summary.High) {
			summary.High = p.Value
		}
		if p.Value.LessThan(summary.Low) {
			summary.Low = p.Value
		}
	}

	summary.MaxDrawdown = maxDrawdown(sorted)

	if len(sorted) >= 3 {
		returns := dailyReturns(sorted)
		if len(returns) >= 2 {
			stdev, err := stats.StandardDeviationSample(returns)
			if err != nil {
				return nil, fmt.Errorf("failed to calculate stdev of %d returns: %w", len(returns), err)
			}
			summary.AnnualizedStdev = stdev * math.Sqrt(365)
		}
	}

	return summary, nil
}

// maxDrawdown is the largest peak-to-trough decline as a percent of the
// peak. Non-positive peaks are ignored.
func maxDrawdown(points []domain.ValuationPoint) float64 {
	worst := decimal.Zero
	peak := points[0].Value
	for _, p := range points {
		if p.Value.GreaterThan(peak) {
			peak = p.Value
		}
		if !peak.IsPositive() {
			continue
		}
		drawdown := peak.Sub(p.Value).Div(peak).Mul(hundred)
		if drawdown.GreaterThan(worst) {
			worst = drawdown
		}
	}
	return worst.InexactFloat64()
}

// days valued at zero have no defined return and are skipped as a base
func dailyReturns(points []domain.ValuationPoint) []float64 {
	returns := []float64{}
	for i := 1; i < len(points); i++ {
		prev := points[i-1].Value
		if prev.IsZero() {
			continue
		}
		ret := points[i].Value.Sub(prev).Div(prev).InexactFloat64()
		returns = append(returns, ret)
	}
	return returns
}
