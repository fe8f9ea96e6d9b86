package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/config"
)

var rootCmd = &cobra.Command{
	Use:   "journal",
	Short: "A personal trading journal for Bitunix futures",
	Long: `Journal keeps a local copy of your Bitunix futures trade history and
summarises it.

Run without a subcommand it will:
  - ask for a symbol and download recent trades, when BITUNIX_API_KEY and
    BITUNIX_SECRET_KEY are set (a .env file is read too)
  - otherwise run offline against the existing record store
  - print net P/L, fees, win rate and best/worst trade
  - print a table of trades ordered by time
  - render a bar chart of every non-zero realized P/L`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runJournal,
}

var (
	cfgFile   string
	logLevel  string
	logFormat string

	cfg = config.Default()
	log = logrus.New()

	// swapped in tests
	loadCredentials = config.LoadCredentials
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON, optional)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text|json (overrides config)")
}

// setup loads the configuration and configures logging for every command.
func setup(cmd *cobra.Command, args []string) error {
	if cfgFile != "" {
		c, err := config.LoadFromFile(cfgFile)
		if err != nil {
			return err
		}
		cfg = c
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	return configureLogger(log, cfg.Log, cmd.ErrOrStderr())
}

func runJournal(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	creds, err := loadCredentials()
	if err != nil {
		return fmt.Errorf("load credentials: %w", err)
	}

	switch c := creds.(type) {
	case config.APICredentials:
		symbol, err := promptSymbol(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if _, err := fetchTrades(ctx, c, historyRequest(symbol, 0, cfg.API.Limit, nil, nil)); err != nil {
			return err
		}
	case config.NoCredentials:
		log.Info("API keys not found, running in offline mode")
	}

	return runReport(ctx, cmd.OutOrStdout(), reportOptions{
		Recent:    cfg.Report.RecentTrades,
		ChartPath: cfg.Report.ChartPath,
	})
}
