package l1_service

import (
	"context"
	"errors"
	"testing"
	"time"

	"bourse/internal/domain"
	mock_repository "bourse/internal/repository/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_priceServiceHandler_LoadPriceIndex(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
	end := time.Date(2024, 1, 4, 22, 0, 0, 0, time.UTC)

	t.Run("loads history and current prices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stockHistoryRepository := mock_repository.NewMockStockHistoryRepository(ctrl)
		stockRepository := mock_repository.NewMockStockRepository(ctrl)

		h := priceServiceHandler{
			StockHistoryRepository: stockHistoryRepository,
			StockRepository:        stockRepository,
		}

		symbols := []string{"XYZ", "ABC"}
		stockHistoryRepository.EXPECT().
			List(gomock.Any(), symbols, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)).
			Return([]domain.PricePoint{
				{Symbol: "XYZ", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Close: decimal.NewFromInt(1000)},
				{Symbol: "XYZ", Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), Close: decimal.NewFromInt(1100)},
			}, nil)
		stockRepository.EXPECT().
			GetCurrentPrices(gomock.Any(), symbols).
			Return(map[string]decimal.Decimal{"ABC": decimal.NewFromInt(42)}, nil)

		idx, err := h.LoadPriceIndex(ctx, symbols, start, end)
		require.NoError(t, err)
		require.Equal(t, 2, idx.NumPoints())
		require.Equal(t, "1000", idx.PriceOnOrBefore("XYZ", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)).String())
		require.Equal(t, "42", idx.PriceOnOrBefore("ABC", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)).String())
	})

	t.Run("lookback widens the lower bound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stockHistoryRepository := mock_repository.NewMockStockHistoryRepository(ctrl)
		stockRepository := mock_repository.NewMockStockRepository(ctrl)

		h := NewPriceService(stockHistoryRepository, stockRepository, 7)

		stockHistoryRepository.EXPECT().
			List(gomock.Any(), []string{"XYZ"}, time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)).
			Return([]domain.PricePoint{}, nil)
		stockRepository.EXPECT().
			GetCurrentPrices(gomock.Any(), []string{"XYZ"}).
			Return(map[string]decimal.Decimal{}, nil)

		idx, err := h.LoadPriceIndex(ctx, []string{"XYZ"}, start, end)
		require.NoError(t, err)
		require.True(t, idx.PriceOnOrBefore("XYZ", start).IsZero())
	})

	t.Run("no symbols skips the stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := priceServiceHandler{
			StockHistoryRepository: mock_repository.NewMockStockHistoryRepository(ctrl),
			StockRepository:        mock_repository.NewMockStockRepository(ctrl),
		}

		idx, err := h.LoadPriceIndex(ctx, nil, start, end)
		require.NoError(t, err)
		require.Equal(t, 0, idx.NumPoints())
	})

	t.Run("store failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		stockHistoryRepository := mock_repository.NewMockStockHistoryRepository(ctrl)
		h := priceServiceHandler{
			StockHistoryRepository: stockHistoryRepository,
			StockRepository:        mock_repository.NewMockStockRepository(ctrl),
		}

		dbErr := errors.New("connection refused")
		stockHistoryRepository.EXPECT().
			List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, dbErr)

		_, err := h.LoadPriceIndex(ctx, []string{"XYZ"}, start, end)
		require.ErrorIs(t, err, dbErr)
	})
}
