package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bourse/internal/db/models/postgres/public/model"
	"bourse/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=stock.repository.go -destination=mocks/mock_stock.repository.go

type StockRepository interface {
	// GetCurrentPrices returns the latest live price per symbol. Symbols
	// without a known price are absent from the map.
	GetCurrentPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error)
}

type stockRepositoryHandler struct {
	Db *sql.DB
}

func NewStockRepository(db *sql.DB) StockRepository {
	return stockRepositoryHandler{Db: db}
}

func (h stockRepositoryHandler) GetCurrentPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{}
	if len(symbols) == 0 {
		return out, nil
	}

	symbolExpressions := []postgres.Expression{}
	for _, s := range symbols {
		symbolExpressions = append(symbolExpressions, postgres.String(s))
	}

	query := table.Stock.
		SELECT(table.Stock.Symbol, table.Stock.CurrentPrice).
		WHERE(
			postgres.AND(
				table.Stock.Symbol.IN(symbolExpressions...),
				table.Stock.CurrentPrice.IS_NOT_NULL(),
			),
		)

	result := []model.Stock{}
	err := query.QueryContext(ctx, h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get current prices: %w", err)
	}

	for _, r := range result {
		if r.CurrentPrice != nil {
			out[r.Symbol] = *r.CurrentPrice
		}
	}

	return out, nil
}
