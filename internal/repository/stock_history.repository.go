package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bourse/internal/db/models/postgres/public/model"
	"bourse/internal/db/models/postgres/public/table"
	"bourse/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
)

//go:generate mockgen -source=stock_history.repository.go -destination=mocks/mock_stock_history.repository.go

// StockHistoryRepository reads persisted daily closes.
type StockHistoryRepository interface {
	// List returns closes for symbols with start <= date <= end, ordered by
	// symbol then date.
	List(ctx context.Context, symbols []string, start, end time.Time) ([]domain.PricePoint, error)
}

type stockHistoryRepositoryHandler struct {
	Db *sql.DB
}

func NewStockHistoryRepository(db *sql.DB) StockHistoryRepository {
	return stockHistoryRepositoryHandler{Db: db}
}

func (h stockHistoryRepositoryHandler) List(ctx context.Context, symbols []string, start, end time.Time) ([]domain.PricePoint, error) {
	if len(symbols) == 0 {
		return []domain.PricePoint{}, nil
	}

	symbolExpressions := []postgres.Expression{}
	for _, s := range symbols {
		symbolExpressions = append(symbolExpressions, postgres.String(s))
	}

	query := table.StockHistory.
		SELECT(
			table.StockHistory.StockTicker,
			table.StockHistory.Date,
			table.StockHistory.Close,
		).
		WHERE(
			postgres.AND(
				table.StockHistory.StockTicker.IN(symbolExpressions...),
				table.StockHistory.Date.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		).
		ORDER_BY(
			table.StockHistory.StockTicker.ASC(),
			table.StockHistory.Date.ASC(),
		)

	result := []model.StockHistory{}
	err := query.QueryContext(ctx, h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock history for %d symbols between %s and %s: %w", len(symbols), start.Format(time.DateOnly), end.Format(time.DateOnly), err)
	}

	out := make([]domain.PricePoint, 0, len(result))
	for _, r := range result {
		out = append(out, domain.PricePoint{
			Symbol: r.StockTicker,
			Date:   r.Date,
			Close:  r.Close,
		})
	}

	return out, nil
}
