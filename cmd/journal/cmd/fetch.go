package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/config"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download trade history into the record store",
	Long: `Download one page of futures trade history from Bitunix and replace the
record store with it. An empty page leaves the store untouched.

Requires BITUNIX_API_KEY and BITUNIX_SECRET_KEY (environment or .env).

Examples:
  journal fetch --symbol BTCUSDT
  journal fetch --symbol ETHUSDT --limit 100 --start 2024-01-01 --end 2024-02-01`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

var (
	fetchSymbol string
	fetchSkip   int
	fetchLimit  int
	fetchStart  string
	fetchEnd    string
)

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVarP(&fetchSymbol, "symbol", "s", "", "symbol, e.g. BTCUSDT (prompted when empty)")
	fetchCmd.Flags().IntVar(&fetchSkip, "skip", 0, "records to skip")
	fetchCmd.Flags().IntVar(&fetchLimit, "limit", 0, "page size, 1-100 (default from config)")
	fetchCmd.Flags().StringVar(&fetchStart, "start", "", "start time: epoch ms, RFC3339 or YYYY-MM-DD")
	fetchCmd.Flags().StringVar(&fetchEnd, "end", "", "end time: epoch ms, RFC3339 or YYYY-MM-DD")
}

func runFetch(cmd *cobra.Command, args []string) error {
	creds, err := loadCredentials()
	if err != nil {
		return fmt.Errorf("load credentials: %w", err)
	}

	var apiCreds config.APICredentials
	switch c := creds.(type) {
	case config.APICredentials:
		apiCreds = c
	case config.NoCredentials:
		return fmt.Errorf("fetch needs BITUNIX_API_KEY and BITUNIX_SECRET_KEY")
	}

	start, err := parseTimeFlag(fetchStart)
	if err != nil {
		return fmt.Errorf("--start: %w", err)
	}
	end, err := parseTimeFlag(fetchEnd)
	if err != nil {
		return fmt.Errorf("--end: %w", err)
	}
	if start != nil && end != nil && !start.Before(*end) {
		return fmt.Errorf("--start must be before --end")
	}

	symbol := fetchSymbol
	if symbol == "" {
		symbol, err = promptSymbol(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}

	limit := fetchLimit
	if limit == 0 {
		limit = cfg.API.Limit
	}

	n, err := fetchTrades(cmd.Context(), apiCreds, historyRequest(symbol, fetchSkip, limit, start, end))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Fetched %d trades into %s\n", n, cfg.Store.Path)
	return nil
}
