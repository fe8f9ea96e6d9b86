package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the record store as Org-mode",
	Long: `Write the journal summary and one Org heading per trade, with Thesis,
Execution and Review sections left for your notes.

Examples:
  journal export
  journal export --out journal.org --day 2024-01-15`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportOut string
	exportDay string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().StringVar(&exportDay, "day", "", "only trades on this day (YYYY-MM-DD, UTC)")
}

func runExport(cmd *cobra.Command, args []string) error {
	trades, err := loadTrades(cmd.Context())
	if err != nil {
		return err
	}
	if exportDay != "" {
		trades = journal.Filter(trades, journal.OnDay(exportDay))
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	return writeOrg(w, exportDay, trades)
}

func writeOrg(w io.Writer, title string, trades []journal.TradeRecord) error {
	head, err := journal.FormatSummaryOrg(journal.SummaryOrg{
		Title:   title,
		Created: time.Now(),
		Summary: journal.Aggregate(trades),
	})
	if err != nil {
		return fmt.Errorf("format summary: %w", err)
	}

	// Trades sit one level below the summary heading.
	if _, err := io.WriteString(w, head+"\n"+journal.FormatTradesOrg(journal.RecentTrades(trades, len(trades)))); err != nil {
		return err
	}
	return nil
}
