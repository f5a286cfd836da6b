package l2_service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bourse/internal/calculator"
	"bourse/internal/domain"
	"bourse/internal/logger"
	"bourse/internal/repository"
	l1_service "bourse/internal/service/l1"
	"bourse/internal/util"

	"github.com/google/uuid"
)

type PortfolioHistoryService interface {
	// ComputeValuationHistory returns one point per day from the wallet's
	// creation through today. A missing wallet yields an empty series.
	ComputeValuationHistory(ctx context.Context, userID uuid.UUID, walletType domain.WalletType) ([]domain.ValuationPoint, error)
	// ComputeHistorySummary returns nil when the wallet has no history.
	ComputeHistorySummary(ctx context.Context, userID uuid.UUID, walletType domain.WalletType) (*domain.HistorySummary, error)
	// ComputeSnapshots is the detailed variant used by tooling.
	ComputeSnapshots(ctx context.Context, userID uuid.UUID, walletType domain.WalletType) ([]domain.Snapshot, error)
}

type portfolioHistoryServiceHandler struct {
	PortfolioRepository repository.PortfolioRepository
	PriceService        l1_service.PriceService
	Now                 func() time.Time
	cache               *historyCache
}

func NewPortfolioHistoryService(
	portfolioRepository repository.PortfolioRepository,
	priceService l1_service.PriceService,
	cacheEnabled bool,
) PortfolioHistoryService {
	h := &portfolioHistoryServiceHandler{
		PortfolioRepository: portfolioRepository,
		PriceService:        priceService,
		Now:                 time.Now,
	}
	if cacheEnabled {
		h.cache = newHistoryCache()
	}
	return h
}

// NewPortfolioHistoryServiceAsOf pins "today" to a fixed day.
func NewPortfolioHistoryServiceAsOf(
	portfolioRepository repository.PortfolioRepository,
	priceService l1_service.PriceService,
	today time.Time,
) PortfolioHistoryService {
	return &portfolioHistoryServiceHandler{
		PortfolioRepository: portfolioRepository,
		PriceService:        priceService,
		Now: func() time.Time {
			return today
		},
	}
}

func (h portfolioHistoryServiceHandler) today() time.Time {
	return util.StartOfDay(h.Now())
}

type ledger struct {
	portfolio    domain.Portfolio
	transactions []domain.Transaction
}

// loadLedger resolves the wallet and its sorted transactions. A nil ledger
// with a nil error means the wallet does not exist.
func (h portfolioHistoryServiceHandler) loadLedger(ctx context.Context, userID uuid.UUID, walletType domain.WalletType) (*ledger, error) {
	profile, endProfile := domain.GetProfile(ctx)
	defer endProfile()
	log := logger.FromContext(ctx)

	_, endSpan := profile.StartNewSpan("load portfolio")
	portfolio, err := h.PortfolioRepository.GetByUser(ctx, userID, walletType)
	endSpan()
	if errors.Is(err, repository.ErrNotFound) {
		log.Infof("no %s portfolio for user %s", walletType, userID.String())
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}
	if portfolio.WalletType != walletType {
		log.Warnf("portfolio %s is a %s wallet, requested %s", portfolio.PortfolioID.String(), portfolio.WalletType, walletType)
		return nil, nil
	}

	_, endSpan = profile.StartNewSpan("load transactions")
	transactions, err := h.PortfolioRepository.ListTransactions(ctx, portfolio.PortfolioID)
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	if !domain.TransactionsSorted(transactions) {
		log.Warnf("transactions for portfolio %s arrived out of order, sorting", portfolio.PortfolioID.String())
		sorted := make([]domain.Transaction, len(transactions))
		copy(sorted, transactions)
		domain.SortTransactions(sorted)
		transactions = sorted
	}

	return &ledger{
		portfolio:    *portfolio,
		transactions: transactions,
	}, nil
}

func (h portfolioHistoryServiceHandler) reconstruct(ctx context.Context, l ledger, today time.Time, includeSnapshots bool) (*ReconstructHistoryResult, error) {
	profile, endProfile := domain.GetProfile(ctx)
	defer endProfile()

	var prices PriceLookup = l1_service.NewPriceIndex(nil, nil)
	if len(l.transactions) > 0 {
		span, endSpan := profile.StartNewSpan("load prices")
		subProfile, endSubProfile := span.NewSubProfile()
		idx, err := h.PriceService.LoadPriceIndex(
			domain.WithProfile(ctx, subProfile),
			domain.TradedSymbols(l.transactions),
			l.portfolio.CreatedAt,
			today,
		)
		endSubProfile()
		endSpan()
		if err != nil {
			return nil, fmt.Errorf("failed to load prices: %w", err)
		}
		prices = idx
	}

	_, endSpan := profile.StartNewSpan("replay")
	result, err := ReconstructHistory(ctx, ReconstructHistoryInput{
		Portfolio:        l.portfolio,
		Transactions:     l.transactions,
		Prices:           prices,
		Through:          today,
		IncludeSnapshots: includeSnapshots,
	})
	endSpan()
	if err != nil {
		return nil, err
	}

	logDiagnostics(ctx, l.portfolio.PortfolioID, result)

	return result, nil
}

func logDiagnostics(ctx context.Context, portfolioID uuid.UUID, result *ReconstructHistoryResult) {
	log := logger.FromContext(ctx)
	for _, v := range result.Violations {
		switch v.Kind {
		case domain.ViolationKind_Oversold:
			log.Warnw(
				"sell exceeds held quantity, position clamped to zero",
				"portfolioID", portfolioID.String(),
				"transactionID", v.Transaction.TransactionID.String(),
				"symbol", v.Transaction.Symbol,
				"shortfall", v.Shortfall,
			)
		default:
			log.Warnw(
				"transaction skipped during replay",
				"portfolioID", portfolioID.String(),
				"transactionID", v.Transaction.TransactionID.String(),
				"symbol", v.Transaction.Symbol,
				"side", string(v.Transaction.Side),
				"kind", string(v.Kind),
			)
		}
	}
	for _, symbol := range result.UnpricedSymbols {
		log.Warnw(
			"held security has no price, valued at zero",
			"portfolioID", portfolioID.String(),
			"symbol", symbol,
		)
	}
}

func (h portfolioHistoryServiceHandler) ComputeValuationHistory(ctx context.Context, userID uuid.UUID, walletType domain.WalletType) ([]domain.ValuationPoint, error) {
	l, err := h.loadLedger(ctx, userID, walletType)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return []domain.ValuationPoint{}, nil
	}

	today := h.today()

	var key historyCacheKey
	if h.cache != nil {
		key = newHistoryCacheKey(l.portfolio.PortfolioID, l.transactions, today)
		if points, ok := h.cache.get(key); ok {
			return points, nil
		}
	}

	result, err := h.reconstruct(ctx, *l, today, false)
	if err != nil {
		return nil, err
	}

	if h.cache != nil {
		h.cache.set(key, result.Points)
	}

	return result.Points, nil
}

func (h portfolioHistoryServiceHandler) ComputeSnapshots(ctx context.Context, userID uuid.UUID, walletType domain.WalletType) ([]domain.Snapshot, error) {
	l, err := h.loadLedger(ctx, userID, walletType)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return []domain.Snapshot{}, nil
	}

	result, err := h.reconstruct(ctx, *l, h.today(), true)
	if err != nil {
		return nil, err
	}

	return result.Snapshots, nil
}

func (h portfolioHistoryServiceHandler) ComputeHistorySummary(ctx context.Context, userID uuid.UUID, walletType domain.WalletType) (*domain.HistorySummary, error) {
	points, err := h.ComputeValuationHistory(ctx, userID, walletType)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, nil
	}

	summary, err := calculator.SummarizeHistory(points)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize history: %w", err)
	}

	return summary, nil
}
