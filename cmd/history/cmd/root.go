package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bourse",
	Short: "Portfolio valuation tooling for the bourse simulator",
	Long: `bourse reconstructs the daily value of simulated portfolios from their
transaction ledger and stored closing prices.

The ledger and prices can be read from postgres or from a directory of CSV
exports (portfolios.csv, transactions.csv, stock_history.csv, stocks.csv).`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
