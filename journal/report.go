package journal

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency is the settlement currency of the futures account.
const Currency = "USDT"

// TableTimeLayout formats the Time column of the recent-trades table.
const TableTimeLayout = "2006-01-02 15:04"

var tableHeader = []string{"Time", "Symbol", "Side", "Price", "P&L (USDT)", "Fee"}

// right-aligned columns of the recent-trades table
var numericColumn = []bool{false, false, false, true, true, true}

var printer = message.NewPrinter(language.English)

// WriteSummary prints the key performance metrics block.
func WriteSummary(w io.Writer, s Summary) error {
	var b strings.Builder
	b.WriteString("=== trading journal summary ===\n")
	fmt.Fprintf(&b, "Total trades    : %d\n", s.TotalTrades)
	fmt.Fprintf(&b, "Net profit/loss : %s %s\n", signed(s.TotalProfit, 2), Currency)
	fmt.Fprintf(&b, "Total fees paid : %s %s\n", s.TotalFee.StringFixed(2), Currency)
	fmt.Fprintf(&b, "Win rate        : %s\n", winRateText(s))
	fmt.Fprintf(&b, "Best trade      : %s %s\n", signed(s.BestTrade, 2), Currency)
	fmt.Fprintf(&b, "Worst trade     : %s %s\n", signed(s.WorstTrade, 2), Currency)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteRecentTrades prints trades as a GitHub-flavoured markdown table.
func WriteRecentTrades(w io.Writer, trades []TradeRecord) error {
	rows := make([][]string, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, []string{
			t.Time().Format(TableTimeLayout),
			t.Symbol,
			string(t.Side),
			FormatPrice(t.Price),
			signed(t.RealizedPNL, 4),
			t.Fee.StringFixed(4),
		})
	}

	widths := make([]int, len(tableHeader))
	for i, h := range tableHeader {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, r := range rows {
		for i, c := range r {
			widths[i] = max(widths[i], utf8.RuneCountInString(c))
		}
	}

	var b strings.Builder
	writeRow(&b, tableHeader, widths)
	b.WriteString("|")
	for _, wd := range widths {
		b.WriteString(strings.Repeat("-", wd+2))
		b.WriteString("|")
	}
	b.WriteString("\n")
	for _, r := range rows {
		writeRow(&b, r, widths)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	b.WriteString("|")
	for i, c := range cells {
		pad := strings.Repeat(" ", widths[i]-utf8.RuneCountInString(c))
		b.WriteString(" ")
		if numericColumn[i] {
			b.WriteString(pad + c)
		} else {
			b.WriteString(c + pad)
		}
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

// winRateText is the win rate to one decimal, or n/a without trades.
func winRateText(s Summary) string {
	if s.TotalTrades == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", s.WinRate)
}

// FormatPrice renders a price with thousands separators and two decimals.
func FormatPrice(p decimal.Decimal) string {
	return printer.Sprintf("%.2f", p.InexactFloat64())
}

// signed renders d with a leading sign, "+" for zero and positive values.
func signed(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)
	if strings.HasPrefix(s, "-") {
		return s
	}
	return "+" + s
}
