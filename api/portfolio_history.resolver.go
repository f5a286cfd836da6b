package api

import (
	"encoding/json"
	"net/http"

	"bourse/internal/domain"
	"bourse/internal/util"

	"github.com/gin-gonic/gin"
)

// money is emitted as an exact JSON number
type portfolioHistoryPoint struct {
	Date  string      `json:"date"`
	Value json.Number `json:"value"`
}

func (m ApiHandler) getPortfolioHistory(c *gin.Context) {
	userAccountID, err := userAccountIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusUnauthorized)
		return
	}

	walletType, err := domain.ParseWalletType(c.Query("walletType"))
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	points, err := m.PortfolioHistoryService.ComputeValuationHistory(c.Request.Context(), userAccountID, walletType)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]portfolioHistoryPoint, 0, len(points))
	for _, p := range points {
		out = append(out, portfolioHistoryPoint{
			Date:  util.FormatDate(p.Date),
			Value: json.Number(p.Value.String()),
		})
	}

	c.JSON(200, out)
}

type portfolioHistorySummaryResponse struct {
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	StartValue      json.Number `json:"startValue"`
	EndValue        json.Number `json:"endValue"`
	High            json.Number `json:"high"`
	Low             json.Number `json:"low"`
	Change          json.Number `json:"change"`
	ChangePercent   float64     `json:"changePercent"`
	MaxDrawdown     float64     `json:"maxDrawdown"`
	AnnualizedStdev float64     `json:"annualizedStdev"`
	NumDays         int         `json:"numDays"`
}

func (m ApiHandler) getPortfolioHistorySummary(c *gin.Context) {
	userAccountID, err := userAccountIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusUnauthorized)
		return
	}

	walletType, err := domain.ParseWalletType(c.Query("walletType"))
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	summary, err := m.PortfolioHistoryService.ComputeHistorySummary(c.Request.Context(), userAccountID, walletType)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if summary == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error": "no " + walletType.String() + " portfolio history",
		})
		return
	}

	c.JSON(200, portfolioHistorySummaryResponse{
		StartDate:       util.FormatDate(summary.StartDate),
		EndDate:         util.FormatDate(summary.EndDate),
		StartValue:      json.Number(summary.StartValue.String()),
		EndValue:        json.Number(summary.EndValue.String()),
		High:            json.Number(summary.High.String()),
		Low:             json.Number(summary.Low.String()),
		Change:          json.Number(summary.Change.String()),
		ChangePercent:   summary.ChangePercent,
		MaxDrawdown:     summary.MaxDrawdown,
		AnnualizedStdev: summary.AnnualizedStdev,
		NumDays:         summary.NumDays,
	})
}
