package journal

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/shopspring/decimal"
)

// FormatTradeOrg renders a TradeRecord as an Org-mode block suitable for pasting into a journal.
// Structured facts go in a PROPERTIES drawer; the narrative headings are left for the trader.
func FormatTradeOrg(t TradeRecord) string {
	ref := shortID(t.TradeID)
	if ref == "" {
		ref = t.Time().Format(TableTimeLayout)
	}
	heading := fmt.Sprintf("** Trade: %s %s (%s)", t.Symbol, t.Side, ref)

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	if t.TradeID != "" {
		b.WriteString(fmt.Sprintf(":TRADE_ID: %s\n", t.TradeID))
	}
	b.WriteString(fmt.Sprintf(":SYMBOL: %s\n", t.Symbol))
	b.WriteString(fmt.Sprintf(":SIDE: %s\n", t.Side))
	b.WriteString(fmt.Sprintf(":TIME: %s\n", t.Time().Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf(":PRICE: %s\n", t.Price.String()))
	b.WriteString(fmt.Sprintf(":QTY: %s\n", t.Qty.String()))
	b.WriteString(fmt.Sprintf(":LEVERAGE: %d\n", t.Leverage))
	b.WriteString(fmt.Sprintf(":REALIZED_PNL: %s\n", t.RealizedPNL.StringFixed(4)))
	b.WriteString(fmt.Sprintf(":FEE: %s\n", t.Fee.StringFixed(4)))
	b.WriteString(fmt.Sprintf(":ORDER_TYPE: %s\n", t.OrderType))
	b.WriteString(fmt.Sprintf(":POSITION_MODE: %s\n", t.PositionMode))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Thesis\n- \n\n")
	b.WriteString("*** Execution\n- \n\n")
	b.WriteString("*** Review\n- \n")

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []TradeRecord) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}

// SummaryOrg is the data behind the Org-mode summary heading.
type SummaryOrg struct {
	Title   string
	Created time.Time
	Summary Summary
}

var summaryOrgFuncs = template.FuncMap{
	"fixed":  func(places int32, d decimal.Decimal) string { return d.StringFixed(places) },
	"rate":   func(s Summary) string { return winRateText(s) },
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
}

var summaryOrgTemplate = template.Must(template.New("summary").Funcs(summaryOrgFuncs).Parse(SummaryOrgTemplate))

// FormatSummaryOrg renders the summary metrics as an Org-mode heading.
func FormatSummaryOrg(v SummaryOrg) (string, error) {
	buf := new(bytes.Buffer)
	if err := summaryOrgTemplate.Execute(buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const SummaryOrgTemplate = `* JOURNAL: {{if .Title}}{{.Title}}{{else}}(all symbols){{end}}
:PROPERTIES:
:CREATED:     [{{(orTime .Created).Format "2006-01-02 Mon 15:04"}}]
:TRADES:      {{.Summary.TotalTrades}}
:WINS:        {{.Summary.Wins}}
:WIN_RATE:    {{rate .Summary}}
:NET_PNL:     {{fixed 2 .Summary.TotalProfit}}
:FEES:        {{fixed 2 .Summary.TotalFee}}
:BEST:        {{fixed 2 .Summary.BestTrade}}
:WORST:       {{fixed 2 .Summary.WorstTrade}}
:END:

** Performance Summary
| Metric          | Value |
|-----------------+-------|
| Trades          | {{.Summary.TotalTrades}} |
| Net P/L (USDT)  | {{fixed 2 .Summary.TotalProfit}} |
| Fees (USDT)     | {{fixed 2 .Summary.TotalFee}} |
| Win Rate        | {{rate .Summary}} |
| Best (USDT)     | {{fixed 2 .Summary.BestTrade}} |
| Worst (USDT)    | {{fixed 2 .Summary.WorstTrade}} |
`
