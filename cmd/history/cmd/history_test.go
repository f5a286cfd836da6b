package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"bourse/internal/repository"

	"github.com/stretchr/testify/require"
)

const (
	testUserID      = "6f1d3c8e-2a55-4c43-9a0e-0d1c2f3b4a51"
	testPortfolioID = "0b7c9a61-8d7e-4c3f-b1f2-5e6d7c8b9a01"
)

func writeExport(t *testing.T) string {
	dir := t.TempDir()
	files := map[string]string{
		repository.PortfoliosFile: "portfolio_id,user_id,wallet_type,initial_balance,created_at\n" +
			testPortfolioID + "," + testUserID + ",SANDBOX,1000000,2024-01-01T09:00:00Z\n",
		repository.TransactionsFile: "transaction_id,portfolio_id,stock_ticker,type,quantity,price_per_share,created_at\n" +
			"2f0c1e7a-1111-4c3f-b1f2-5e6d7c8b9a02," + testPortfolioID + ",XYZ,BUY,10,1000,2024-01-01T14:00:00Z\n",
		repository.StockHistoryFile: "stock_ticker,date,close\n" +
			"XYZ,2024-01-01,1000\n" +
			"XYZ,2024-01-03,1100\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func csvOptions(dir string) historyOptions {
	return historyOptions{
		user:    testUserID,
		wallet:  "sandbox",
		source:  "csv",
		dataDir: dir,
		format:  "json",
		today:   "2024-01-04",
	}
}

func TestExecuteHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("json series", func(t *testing.T) {
		out := &bytes.Buffer{}
		err := executeHistory(ctx, csvOptions(writeExport(t)), out)
		require.NoError(t, err)

		rows := []pointRow{}
		require.NoError(t, json.Unmarshal(out.Bytes(), &rows))
		require.Equal(t, []pointRow{
			{Date: "2024-01-01", Value: "1000000"},
			{Date: "2024-01-02", Value: "1000000"},
			{Date: "2024-01-03", Value: "1001000"},
			{Date: "2024-01-04", Value: "1001000"},
		}, rows)
	})

	t.Run("csv series", func(t *testing.T) {
		opts := csvOptions(writeExport(t))
		opts.format = "CSV"

		out := &bytes.Buffer{}
		require.NoError(t, executeHistory(ctx, opts, out))
		require.Equal(
			t,
			"date,value\n2024-01-01,1000000\n2024-01-02,1000000\n2024-01-03,1001000\n2024-01-04,1001000\n",
			out.String(),
		)
	})

	t.Run("detailed csv", func(t *testing.T) {
		opts := csvOptions(writeExport(t))
		opts.format = "csv"
		opts.detailed = true

		out := &bytes.Buffer{}
		require.NoError(t, executeHistory(ctx, opts, out))
		require.Equal(
			t,
			"date,cash,positions,total_value\n"+
				"2024-01-01,990000,XYZ:10,1000000\n"+
				"2024-01-02,990000,XYZ:10,1000000\n"+
				"2024-01-03,990000,XYZ:10,1001000\n"+
				"2024-01-04,990000,XYZ:10,1001000\n",
			out.String(),
		)
	})

	t.Run("summary", func(t *testing.T) {
		opts := csvOptions(writeExport(t))
		opts.summary = true

		out := &bytes.Buffer{}
		require.NoError(t, executeHistory(ctx, opts, out))

		row := summaryRow{}
		require.NoError(t, json.Unmarshal(out.Bytes(), &row))
		require.Equal(t, "1000000", row.StartValue)
		require.Equal(t, "1001000", row.EndValue)
		require.Equal(t, "1000", row.Change)
		require.Equal(t, 4, row.NumDays)
	})

	t.Run("missing wallet prints an empty series", func(t *testing.T) {
		opts := csvOptions(writeExport(t))
		opts.wallet = "concours"

		out := &bytes.Buffer{}
		require.NoError(t, executeHistory(ctx, opts, out))
		require.JSONEq(t, `[]`, out.String())
	})

	t.Run("summary of a missing wallet errors", func(t *testing.T) {
		opts := csvOptions(writeExport(t))
		opts.wallet = "concours"
		opts.summary = true

		require.Error(t, executeHistory(ctx, opts, &bytes.Buffer{}))
	})

	t.Run("bad flags", func(t *testing.T) {
		dir := writeExport(t)
		for name, mutate := range map[string]func(o *historyOptions){
			"user":   func(o *historyOptions) { o.user = "nope" },
			"wallet": func(o *historyOptions) { o.wallet = "margin" },
			"format": func(o *historyOptions) { o.format = "xml" },
			"today":  func(o *historyOptions) { o.today = "01/04/2024" },
			"source": func(o *historyOptions) { o.source = "sqlite" },
		} {
			opts := csvOptions(dir)
			mutate(&opts)
			require.Error(t, executeHistory(ctx, opts, &bytes.Buffer{}), name)
		}
	})
}
