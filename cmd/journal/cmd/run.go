package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rustyeddy/tradejournal/bitunix"
	"github.com/rustyeddy/tradejournal/chart"
	"github.com/rustyeddy/tradejournal/config"
	"github.com/rustyeddy/tradejournal/journal"
)

// promptSymbol asks for the trading symbol on out and reads one line from in.
func promptSymbol(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter your desired symbol: ")

	sc := bufio.NewScanner(in)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("read symbol: %w", err)
		}
		return "", fmt.Errorf("read symbol: no input")
	}

	symbol := strings.ToUpper(strings.TrimSpace(sc.Text()))
	if symbol == "" {
		return "", fmt.Errorf("symbol is required")
	}
	return symbol, nil
}

func historyRequest(symbol string, skip, limit int, start, end *time.Time) bitunix.HistoryTradesRequest {
	return bitunix.HistoryTradesRequest{
		Symbol:    symbol,
		Skip:      skip,
		Limit:     limit,
		StartTime: start,
		EndTime:   end,
	}
}

// fetchTrades downloads one page of trade history and, when the page is not
// empty, replaces the record store with it.
func fetchTrades(ctx context.Context, creds config.APICredentials, req bitunix.HistoryTradesRequest) (int, error) {
	timeout, err := cfg.API.ParseTimeout()
	if err != nil {
		return 0, fmt.Errorf("api timeout: %w", err)
	}

	client := bitunix.NewClient(bitunix.NewSigner(creds),
		bitunix.WithBaseURL(cfg.API.BaseURL),
		bitunix.WithTimeout(timeout),
		bitunix.WithLanguage(cfg.API.Language),
		bitunix.WithLogger(log),
	)

	trades, err := client.GetHistoryTrades(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("fetch trade history: %w", err)
	}

	fields := logrus.Fields{"symbol": req.Symbol, "trades": len(trades), "store": cfg.Store.Path}
	if len(trades) == 0 {
		log.WithFields(fields).Warn("no trades returned, keeping existing record store")
		return 0, nil
	}

	store, err := journal.OpenStore(cfg.Store)
	if err != nil {
		return 0, fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	if err := store.Save(ctx, trades); err != nil {
		return 0, fmt.Errorf("save trades: %w", err)
	}

	log.WithFields(fields).Info("record store updated from API")
	return len(trades), nil
}

type reportOptions struct {
	Day       string
	Month     string
	Recent    int
	ChartPath string
}

// runReport loads the record store and prints the summary and the recent
// trades table, then renders the chart if a path is set.
func runReport(ctx context.Context, w io.Writer, opts reportOptions) error {
	trades, err := loadTrades(ctx)
	if err != nil {
		return err
	}

	if opts.Day != "" {
		trades = journal.Filter(trades, journal.OnDay(opts.Day))
	}
	if opts.Month != "" {
		trades = journal.Filter(trades, journal.InMonth(opts.Month))
	}
	if opts.Recent <= 0 {
		opts.Recent = journal.DefaultRecentTrades
	}

	summary := journal.AggregateN(trades, opts.Recent)

	if err := journal.WriteSummary(w, summary); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n=== Recent %d Trades ===\n", len(summary.Recent))
	if err := journal.WriteRecentTrades(w, summary.Recent); err != nil {
		return err
	}

	if opts.ChartPath == "" {
		return nil
	}
	err = chart.RenderPnL(summary.Series, opts.ChartPath, chart.Options{Title: chartTitle(opts)})
	if errors.Is(err, chart.ErrEmptySeries) {
		log.Info("no realized P/L to chart")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nP/L chart written to %s\n", opts.ChartPath)
	return nil
}

func loadTrades(ctx context.Context) ([]journal.TradeRecord, error) {
	store, err := journal.OpenStore(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	trades, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load trades: %w", err)
	}
	log.WithFields(logrus.Fields{"store": cfg.Store.Path, "trades": len(trades)}).Debug("record store loaded")
	return trades, nil
}

func chartTitle(opts reportOptions) string {
	switch {
	case opts.Day != "":
		return "Realized P/L " + opts.Day
	case opts.Month != "":
		return "Realized P/L " + opts.Month
	default:
		return "Realized P/L"
	}
}

// parseTimeFlag accepts epoch milliseconds, RFC3339 or YYYY-MM-DD (UTC).
// An empty value means unset.
func parseTimeFlag(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		t := time.UnixMilli(ms).UTC()
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, fmt.Errorf("bad time %q: use epoch ms, RFC3339 or YYYY-MM-DD", s)
	}
	return &t, nil
}
