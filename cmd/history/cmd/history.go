package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"

	"bourse/internal/domain"
	"bourse/internal/logger"
	"bourse/internal/repository"
	l1_service "bourse/internal/service/l1"
	l2_service "bourse/internal/service/l2"
	"bourse/internal/util"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the daily valuation history of a portfolio",
	Long: `Replay a wallet's transactions day by day and print its total value for
every calendar day from creation through today.

Examples:
  bourse history --user 6f1d3c8e-2a55-4c43-9a0e-0d1c2f3b4a51
  bourse history --user <uuid> --wallet concours --source csv --data-dir ./export
  bourse history --user <uuid> --source csv --data-dir ./export --detailed --format csv
  bourse history --user <uuid> --summary --today 2024-06-30`,
	RunE: runHistory,
}

type historyOptions struct {
	user         string
	wallet       string
	source       string
	dataDir      string
	format       string
	detailed     bool
	summary      bool
	today        string
	lookbackDays int
}

var historyOpts historyOptions

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVarP(&historyOpts.user, "user", "u", "", "user id owning the portfolio (required)")
	historyCmd.Flags().StringVarP(&historyOpts.wallet, "wallet", "w", "SANDBOX", "wallet type: SANDBOX or CONCOURS")
	historyCmd.Flags().StringVarP(&historyOpts.source, "source", "s", "postgres", "where to read the ledger and prices: postgres or csv")
	historyCmd.Flags().StringVarP(&historyOpts.dataDir, "data-dir", "d", ".", "directory of CSV exports when --source=csv")
	historyCmd.Flags().StringVarP(&historyOpts.format, "format", "f", "json", "output format: json or csv")
	historyCmd.Flags().BoolVar(&historyOpts.detailed, "detailed", false, "print cash and positions for every day")
	historyCmd.Flags().BoolVar(&historyOpts.summary, "summary", false, "print summary metrics instead of the series")
	historyCmd.Flags().StringVar(&historyOpts.today, "today", "", "last day of the series as YYYY-MM-DD (default: current UTC day)")
	historyCmd.Flags().IntVar(&historyOpts.lookbackDays, "lookback-days", 0, "days of prices to load before creation when --source=csv")
	_ = historyCmd.MarkFlagRequired("user")
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := logger.WithLogger(context.Background(), logger.New())
	return executeHistory(ctx, historyOpts, cmd.OutOrStdout())
}

func executeHistory(ctx context.Context, opts historyOptions, out io.Writer) error {
	userID, err := uuid.Parse(opts.user)
	if err != nil {
		return fmt.Errorf("invalid --user: %w", err)
	}
	walletType, err := parseWalletFlag(opts.wallet)
	if err != nil {
		return err
	}
	format := strings.ToLower(opts.format)
	if format != "json" && format != "csv" {
		return fmt.Errorf("unknown --format %q", opts.format)
	}

	var today *time.Time
	if opts.today != "" {
		t, err := util.ParseDate(opts.today)
		if err != nil {
			return fmt.Errorf("invalid --today: %w", err)
		}
		today = util.TimePointer(t)
	}

	svc, closeFn, err := newHistoryService(opts, today)
	if err != nil {
		return err
	}
	defer closeFn()

	switch {
	case opts.summary:
		summary, err := svc.ComputeHistorySummary(ctx, userID, walletType)
		if err != nil {
			return err
		}
		if summary == nil {
			return fmt.Errorf("no %s portfolio history for user %s", walletType, userID.String())
		}
		return writeSummary(out, format, *summary)
	case opts.detailed:
		snapshots, err := svc.ComputeSnapshots(ctx, userID, walletType)
		if err != nil {
			return err
		}
		return writeSnapshots(out, format, snapshots)
	default:
		points, err := svc.ComputeValuationHistory(ctx, userID, walletType)
		if err != nil {
			return err
		}
		return writePoints(out, format, points)
	}
}

func parseWalletFlag(s string) (domain.WalletType, error) {
	walletType, err := domain.ParseWalletType(s)
	if err != nil {
		return "", fmt.Errorf("invalid --wallet: %w", err)
	}
	return walletType, nil
}

type ledgerStore interface {
	repository.PortfolioRepository
	repository.StockHistoryRepository
	repository.StockRepository
}

func newHistoryService(opts historyOptions, today *time.Time) (l2_service.PortfolioHistoryService, func(), error) {
	var (
		store        ledgerStore
		lookbackDays = opts.lookbackDays
		closeFn      = func() {}
	)

	switch strings.ToLower(opts.source) {
	case "csv":
		csvStore, err := repository.NewCsvStore(opts.dataDir)
		if err != nil {
			return nil, nil, err
		}
		store = csvStore
	case "postgres":
		secrets, err := util.LoadSecrets()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load secrets: %w", err)
		}
		dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to db: %w", err)
		}
		closeFn = func() {
			if err := dbConn.Close(); err != nil {
				logger.Error(err)
			}
		}
		store = postgresStore{
			PortfolioRepository:    repository.NewPortfolioRepository(dbConn),
			StockHistoryRepository: repository.NewStockHistoryRepository(dbConn),
			StockRepository:        repository.NewStockRepository(dbConn),
		}
		lookbackDays = secrets.History.PriceLookbackDays
	default:
		return nil, nil, fmt.Errorf("unknown --source %q", opts.source)
	}

	priceService := l1_service.NewPriceService(store, store, lookbackDays)
	if today != nil {
		return l2_service.NewPortfolioHistoryServiceAsOf(store, priceService, *today), closeFn, nil
	}
	return l2_service.NewPortfolioHistoryService(store, priceService, false), closeFn, nil
}

type postgresStore struct {
	repository.PortfolioRepository
	repository.StockHistoryRepository
	repository.StockRepository
}
