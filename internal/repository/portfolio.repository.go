package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bourse/internal/db/models/postgres/public/model"
	"bourse/internal/db/models/postgres/public/table"
	"bourse/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

//go:generate mockgen -source=portfolio.repository.go -destination=mocks/mock_portfolio.repository.go

// PortfolioRepository reads the authoritative portfolio ledger. It never
// writes.
type PortfolioRepository interface {
	GetByUser(ctx context.Context, userID uuid.UUID, walletType domain.WalletType) (*domain.Portfolio, error)
	ListTransactions(ctx context.Context, portfolioID uuid.UUID) ([]domain.Transaction, error)
}

type portfolioRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioRepository(db *sql.DB) PortfolioRepository {
	return portfolioRepositoryHandler{Db: db}
}

func (h portfolioRepositoryHandler) GetByUser(ctx context.Context, userID uuid.UUID, walletType domain.WalletType) (*domain.Portfolio, error) {
	query := table.Portfolio.
		SELECT(table.Portfolio.AllColumns).
		WHERE(
			postgres.AND(
				table.Portfolio.UserID.EQ(postgres.UUID(userID)),
				table.Portfolio.WalletType.EQ(postgres.NewEnumValue(walletType.String())),
			),
		).
		ORDER_BY(table.Portfolio.CreatedAt.ASC()).
		LIMIT(1)

	result := model.Portfolio{}
	err := query.QueryContext(ctx, h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("no %s portfolio for user %s: %w", walletType, userID.String(), ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s portfolio for user %s: %w", walletType, userID.String(), err)
	}

	return portfolioFromModel(result), nil
}

func (h portfolioRepositoryHandler) ListTransactions(ctx context.Context, portfolioID uuid.UUID) ([]domain.Transaction, error) {
	query := table.PortfolioTransaction.
		SELECT(table.PortfolioTransaction.AllColumns).
		WHERE(table.PortfolioTransaction.PortfolioID.EQ(postgres.UUID(portfolioID))).
		ORDER_BY(table.PortfolioTransaction.CreatedAt.ASC())

	result := []model.PortfolioTransaction{}
	err := query.QueryContext(ctx, h.Db, &result)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to list transactions for portfolio %s: %w", portfolioID.String(), err)
	}

	out := make([]domain.Transaction, 0, len(result))
	for _, m := range result {
		out = append(out, transactionFromModel(m))
	}

	return out, nil
}

func portfolioFromModel(m model.Portfolio) *domain.Portfolio {
	return &domain.Portfolio{
		PortfolioID:    m.PortfolioID,
		UserID:         m.UserID,
		WalletType:     domain.WalletType(m.WalletType),
		InitialBalance: m.InitialBalance,
		CreatedAt:      m.CreatedAt,
	}
}

func transactionFromModel(m model.PortfolioTransaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Symbol:        m.StockTicker,
		Side:          domain.Side(m.Type),
		Quantity:      m.Quantity,
		Price:         m.PricePerShare,
		Timestamp:     m.CreatedAt,
	}
}
