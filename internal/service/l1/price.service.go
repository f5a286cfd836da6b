package l1_service

import (
	"context"
	"fmt"
	"time"

	"bourse/internal/domain"
	"bourse/internal/logger"
	"bourse/internal/repository"
	"bourse/internal/util"
)

/**

behavior - when i ask for a price, it should figure out the price without db lookups.
everything needed for one reconstruction is loaded up front, and non-trading
days resolve to the most recent close before them

*/

type PriceService interface {
	LoadPriceIndex(ctx context.Context, symbols []string, start, end time.Time) (*PriceIndex, error)
}

type priceServiceHandler struct {
	StockHistoryRepository repository.StockHistoryRepository
	StockRepository        repository.StockRepository
	LookbackDays           int
}

func NewPriceService(
	stockHistoryRepository repository.StockHistoryRepository,
	stockRepository repository.StockRepository,
	lookbackDays int,
) PriceService {
	return &priceServiceHandler{
		StockHistoryRepository: stockHistoryRepository,
		StockRepository:        stockRepository,
		LookbackDays:           lookbackDays,
	}
}

// LoadPriceIndex reads every close for symbols between start (less the
// configured lookback) and end inclusive, plus their live prices.
func (h priceServiceHandler) LoadPriceIndex(ctx context.Context, symbols []string, start, end time.Time) (*PriceIndex, error) {
	if len(symbols) == 0 {
		return NewPriceIndex(nil, nil), nil
	}

	profile, endProfile := domain.GetProfile(ctx)
	defer endProfile()

	minDate := util.StartOfDay(start).AddDate(0, 0, -h.LookbackDays)
	maxDate := util.StartOfDay(end)

	_, endSpan := profile.StartNewSpan("stock history query")
	points, err := h.StockHistoryRepository.List(ctx, symbols, minDate, maxDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load price history: %w", err)
	}
	endSpan()

	_, endSpan = profile.StartNewSpan("current prices query")
	current, err := h.StockRepository.GetCurrentPrices(ctx, symbols)
	if err != nil {
		return nil, fmt.Errorf("failed to load current prices: %w", err)
	}
	endSpan()

	idx := NewPriceIndex(points, current)

	log := logger.FromContext(ctx)
	for _, symbol := range symbols {
		if !idx.Known(symbol) {
			log.Warnf("no price history or current price for %s between %s and %s", symbol, util.FormatDate(minDate), util.FormatDate(maxDate))
		}
	}

	return idx, nil
}
