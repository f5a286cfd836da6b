package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"bourse/api"
	"bourse/internal/logger"
	"bourse/internal/repository"
	l1_service "bourse/internal/service/l1"
	l2_service "bourse/internal/service/l2"
	"bourse/internal/util"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	if handler.Db == nil {
		return
	}
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

// NewPostgresHistoryService wires the history service over postgres-backed
// repositories.
func NewPostgresHistoryService(dbConn *sql.DB, config util.HistoryConfig) l2_service.PortfolioHistoryService {
	portfolioRepository := repository.NewPortfolioRepository(dbConn)
	stockHistoryRepository := repository.NewStockHistoryRepository(dbConn)
	stockRepository := repository.NewStockRepository(dbConn)

	priceService := l1_service.NewPriceService(
		stockHistoryRepository,
		stockRepository,
		config.PriceLookbackDays,
	)

	return l2_service.NewPortfolioHistoryService(
		portfolioRepository,
		priceService,
		config.CacheEnabled,
	)
}

func InitializeDependencies() (*api.ApiHandler, *util.Secrets, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	logger.Info("history config: priceLookbackDays=%d cacheEnabled=%t", secrets.History.PriceLookbackDays, secrets.History.CacheEnabled)

	apiHandler := &api.ApiHandler{
		Db:                      dbConn,
		PortfolioHistoryService: NewPostgresHistoryService(dbConn, secrets.History),
		JwtDecodeToken:          secrets.JwtDecodeToken,
	}

	return apiHandler, secrets, nil
}
