package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bourse/internal/domain"
	"bourse/internal/util"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PortfoliosFile   = "portfolios.csv"
	TransactionsFile = "transactions.csv"
	StockHistoryFile = "stock_history.csv"
	StocksFile       = "stocks.csv"
)

type portfolioRow struct {
	PortfolioID    string `csv:"portfolio_id"`
	UserID         string `csv:"user_id"`
	WalletType     string `csv:"wallet_type"`
	InitialBalance string `csv:"initial_balance"`
	CreatedAt      string `csv:"created_at"`
}

type transactionRow struct {
	TransactionID string `csv:"transaction_id"`
	PortfolioID   string `csv:"portfolio_id"`
	StockTicker   string `csv:"stock_ticker"`
	Type          string `csv:"type"`
	Quantity      int64  `csv:"quantity"`
	PricePerShare string `csv:"price_per_share"`
	CreatedAt     string `csv:"created_at"`
}

type stockHistoryRow struct {
	StockTicker string `csv:"stock_ticker"`
	Date        string `csv:"date"`
	Close       string `csv:"close"`
}

type stockRow struct {
	Symbol       string `csv:"symbol"`
	CurrentPrice string `csv:"current_price"`
}

// CsvStore serves the ledger and price reads from a directory of CSV
// exports. It is loaded once and read-only afterwards.
type CsvStore struct {
	portfolios   []domain.Portfolio
	transactions map[uuid.UUID][]domain.Transaction
	history      []domain.PricePoint
	current      map[string]decimal.Decimal
}

// NewCsvStore reads portfolios.csv, transactions.csv and stock_history.csv
// from dir. stocks.csv is optional.
func NewCsvStore(dir string) (*CsvStore, error) {
	store := &CsvStore{
		transactions: map[uuid.UUID][]domain.Transaction{},
		current:      map[string]decimal.Decimal{},
	}

	portfolioRows := []portfolioRow{}
	if err := readCsv(filepath.Join(dir, PortfoliosFile), &portfolioRows); err != nil {
		return nil, err
	}
	for i, row := range portfolioRows {
		p, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", PortfoliosFile, i+2, err)
		}
		store.portfolios = append(store.portfolios, *p)
	}

	transactionRows := []transactionRow{}
	if err := readCsv(filepath.Join(dir, TransactionsFile), &transactionRows); err != nil {
		return nil, err
	}
	for i, row := range transactionRows {
		portfolioID, t, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", TransactionsFile, i+2, err)
		}
		store.transactions[portfolioID] = append(store.transactions[portfolioID], *t)
	}
	for id := range store.transactions {
		domain.SortTransactions(store.transactions[id])
	}

	historyRows := []stockHistoryRow{}
	if err := readCsv(filepath.Join(dir, StockHistoryFile), &historyRows); err != nil {
		return nil, err
	}
	for i, row := range historyRows {
		date, err := util.ParseDate(row.Date)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", StockHistoryFile, i+2, err)
		}
		closePrice, err := decimal.NewFromString(row.Close)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: invalid close %q: %w", StockHistoryFile, i+2, row.Close, err)
		}
		store.history = append(store.history, domain.PricePoint{
			Symbol: row.StockTicker,
			Date:   date,
			Close:  closePrice,
		})
	}

	stockRows := []stockRow{}
	err := readCsv(filepath.Join(dir, StocksFile), &stockRows)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	for i, row := range stockRows {
		if strings.TrimSpace(row.CurrentPrice) == "" {
			continue
		}
		price, err := decimal.NewFromString(row.CurrentPrice)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: invalid current price %q: %w", StocksFile, i+2, row.CurrentPrice, err)
		}
		store.current[row.Symbol] = price
	}

	return store, nil
}

func readCsv(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.UnmarshalFile(f, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func (r portfolioRow) toDomain() (*domain.Portfolio, error) {
	portfolioID, err := uuid.Parse(r.PortfolioID)
	if err != nil {
		return nil, fmt.Errorf("invalid portfolio_id %q: %w", r.PortfolioID, err)
	}
	userID, err := uuid.Parse(r.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id %q: %w", r.UserID, err)
	}
	walletType, err := domain.ParseWalletType(r.WalletType)
	if err != nil {
		return nil, err
	}
	balance, err := decimal.NewFromString(r.InitialBalance)
	if err != nil {
		return nil, fmt.Errorf("invalid initial_balance %q: %w", r.InitialBalance, err)
	}
	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at %q: %w", r.CreatedAt, err)
	}

	return &domain.Portfolio{
		PortfolioID:    portfolioID,
		UserID:         userID,
		WalletType:     walletType,
		InitialBalance: balance,
		CreatedAt:      createdAt,
	}, nil
}

func (r transactionRow) toDomain() (uuid.UUID, *domain.Transaction, error) {
	transactionID, err := uuid.Parse(r.TransactionID)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("invalid transaction_id %q: %w", r.TransactionID, err)
	}
	portfolioID, err := uuid.Parse(r.PortfolioID)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("invalid portfolio_id %q: %w", r.PortfolioID, err)
	}
	price, err := decimal.NewFromString(r.PricePerShare)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("invalid price_per_share %q: %w", r.PricePerShare, err)
	}
	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("invalid created_at %q: %w", r.CreatedAt, err)
	}

	return portfolioID, &domain.Transaction{
		TransactionID: transactionID,
		Symbol:        r.StockTicker,
		Side:          domain.Side(strings.ToUpper(strings.TrimSpace(r.Type))),
		Quantity:      r.Quantity,
		Price:         price,
		Timestamp:     createdAt,
	}, nil
}

func (s *CsvStore) GetByUser(ctx context.Context, userID uuid.UUID, walletType domain.WalletType) (*domain.Portfolio, error) {
	var found *domain.Portfolio
	for i := range s.portfolios {
		p := s.portfolios[i]
		if p.UserID != userID || p.WalletType != walletType {
			continue
		}
		if found == nil || p.CreatedAt.Before(found.CreatedAt) {
			found = &p
		}
	}
	if found == nil {
		return nil, fmt.Errorf("no %s portfolio for user %s: %w", walletType, userID.String(), ErrNotFound)
	}
	return found, nil
}

func (s *CsvStore) ListTransactions(ctx context.Context, portfolioID uuid.UUID) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, len(s.transactions[portfolioID]))
	copy(out, s.transactions[portfolioID])
	return out, nil
}

func (s *CsvStore) List(ctx context.Context, symbols []string, start, end time.Time) ([]domain.PricePoint, error) {
	wanted := map[string]struct{}{}
	for _, symbol := range symbols {
		wanted[symbol] = struct{}{}
	}

	startDate := util.StartOfDay(start)
	endDate := util.StartOfDay(end)

	out := []domain.PricePoint{}
	for _, p := range s.history {
		if _, ok := wanted[p.Symbol]; !ok {
			continue
		}
		if p.Date.Before(startDate) || p.Date.After(endDate) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *CsvStore) GetCurrentPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{}
	for _, symbol := range symbols {
		if price, ok := s.current[symbol]; ok {
			out[symbol] = price
		}
	}
	return out, nil
}
