package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarise the record store",
	Long: `Print the journal summary and the trades table from the record store
and render the P/L chart. Never touches the network.

Examples:
  journal report
  journal report --day 2024-01-15
  journal report --month 2024-01 --chart jan.png`,
	Args: cobra.NoArgs,
	RunE: runReportCmd,
}

var (
	reportDay     string
	reportMonth   string
	reportRecent  int
	reportChart   string
	reportNoChart bool
)

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportDay, "day", "", "only trades on this day (YYYY-MM-DD, UTC)")
	reportCmd.Flags().StringVar(&reportMonth, "month", "", "only trades in this month (YYYY-MM, UTC)")
	reportCmd.Flags().IntVarP(&reportRecent, "recent", "n", 0, "rows in the trades table (default from config)")
	reportCmd.Flags().StringVar(&reportChart, "chart", "", "chart output path (default from config)")
	reportCmd.Flags().BoolVar(&reportNoChart, "no-chart", false, "skip rendering the chart")
}

func runReportCmd(cmd *cobra.Command, args []string) error {
	if reportDay != "" {
		if _, err := time.Parse(time.DateOnly, reportDay); err != nil {
			return fmt.Errorf("--day: %w", err)
		}
	}
	if reportMonth != "" {
		if _, err := time.Parse("2006-01", reportMonth); err != nil {
			return fmt.Errorf("--month: %w", err)
		}
	}

	opts := reportOptions{
		Day:       reportDay,
		Month:     reportMonth,
		Recent:    cfg.Report.RecentTrades,
		ChartPath: cfg.Report.ChartPath,
	}
	if reportRecent > 0 {
		opts.Recent = reportRecent
	}
	if reportChart != "" {
		opts.ChartPath = reportChart
	}
	if reportNoChart {
		opts.ChartPath = ""
	}

	return runReport(cmd.Context(), cmd.OutOrStdout(), opts)
}
