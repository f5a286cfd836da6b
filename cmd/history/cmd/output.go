package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"bourse/internal/domain"
	"bourse/internal/util"

	"github.com/gocarina/gocsv"
)

type pointRow struct {
	Date  string `csv:"date" json:"date"`
	Value string `csv:"value" json:"value"`
}

type snapshotRow struct {
	Date       string           `csv:"date" json:"date"`
	Cash       string           `csv:"cash" json:"cash"`
	Positions  string           `csv:"positions" json:"-"`
	Holdings   map[string]int64 `csv:"-" json:"positions"`
	TotalValue string           `csv:"total_value" json:"totalValue"`
}

type summaryRow struct {
	StartDate       string  `csv:"start_date" json:"startDate"`
	EndDate         string  `csv:"end_date" json:"endDate"`
	StartValue      string  `csv:"start_value" json:"startValue"`
	EndValue        string  `csv:"end_value" json:"endValue"`
	High            string  `csv:"high" json:"high"`
	Low             string  `csv:"low" json:"low"`
	Change          string  `csv:"change" json:"change"`
	ChangePercent   float64 `csv:"change_percent" json:"changePercent"`
	MaxDrawdown     float64 `csv:"max_drawdown" json:"maxDrawdown"`
	AnnualizedStdev float64 `csv:"annualized_stdev" json:"annualizedStdev"`
	NumDays         int     `csv:"num_days" json:"numDays"`
}

func writeRows(out io.Writer, format string, rows interface{}) error {
	if format == "csv" {
		return gocsv.Marshal(rows, out)
	}
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}

func writePoints(out io.Writer, format string, points []domain.ValuationPoint) error {
	rows := make([]pointRow, 0, len(points))
	for _, p := range points {
		rows = append(rows, pointRow{
			Date:  util.FormatDate(p.Date),
			Value: p.Value.String(),
		})
	}
	return writeRows(out, format, rows)
}

func writeSnapshots(out io.Writer, format string, snapshots []domain.Snapshot) error {
	rows := make([]snapshotRow, 0, len(snapshots))
	for _, s := range snapshots {
		holdings := domain.Holdings{Positions: s.Positions}
		positions := []string{}
		for _, symbol := range holdings.HeldSymbols() {
			positions = append(positions, fmt.Sprintf("%s:%d", symbol, s.Positions[symbol]))
		}
		rows = append(rows, snapshotRow{
			Date:       util.FormatDate(s.Date),
			Cash:       s.Cash.String(),
			Positions:  strings.Join(positions, ";"),
			Holdings:   s.Positions,
			TotalValue: s.TotalValue.String(),
		})
	}
	return writeRows(out, format, rows)
}

func writeSummary(out io.Writer, format string, s domain.HistorySummary) error {
	row := summaryRow{
		StartDate:       util.FormatDate(s.StartDate),
		EndDate:         util.FormatDate(s.EndDate),
		StartValue:      s.StartValue.String(),
		EndValue:        s.EndValue.String(),
		High:            s.High.String(),
		Low:             s.Low.String(),
		Change:          s.Change.String(),
		ChangePercent:   s.ChangePercent,
		MaxDrawdown:     s.MaxDrawdown,
		AnnualizedStdev: s.AnnualizedStdev,
		NumDays:         s.NumDays,
	}
	if format == "csv" {
		return writeRows(out, format, []summaryRow{row})
	}
	return writeRows(out, format, row)
}
