package journal

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultRecentTrades is how many trades the recent-trades view shows.
const DefaultRecentTrades = 10

// SeriesLabelLayout formats the x labels of the P&L series.
const SeriesLabelLayout = "2006-01-02 15:04:05"

// Summary holds the key performance metrics of a set of trades along with
// the recent-trades view and the P&L series used for charting.
type Summary struct {
	TotalTrades int
	Wins        int
	TotalProfit decimal.Decimal
	TotalFee    decimal.Decimal
	// WinRate is a percentage in [0, 100]; zero when there are no trades.
	WinRate    float64
	BestTrade  decimal.Decimal
	WorstTrade decimal.Decimal

	Recent []TradeRecord
	Series Series
}

// Series is the non-zero realized P&L events as parallel label/value slices.
type Series struct {
	Labels []string
	Values []decimal.Decimal
}

// Len returns the number of points in the series.
func (s Series) Len() int {
	return len(s.Values)
}

// Floats returns the values as float64 for plotting.
func (s Series) Floats() []float64 {
	out := make([]float64, len(s.Values))
	for i, v := range s.Values {
		out[i] = v.InexactFloat64()
	}
	return out
}

// Aggregate computes the summary metrics over trades, the default-sized
// recent-trades view and the P&L series.
func Aggregate(trades []TradeRecord) Summary {
	return AggregateN(trades, DefaultRecentTrades)
}

// AggregateN is Aggregate with a custom recent-trades view size.
func AggregateN(trades []TradeRecord, recent int) Summary {
	s := Summary{
		TotalTrades: len(trades),
		TotalProfit: decimal.Zero,
		TotalFee:    decimal.Zero,
		BestTrade:   decimal.Zero,
		WorstTrade:  decimal.Zero,
	}

	for i, t := range trades {
		s.TotalProfit = s.TotalProfit.Add(t.RealizedPNL)
		s.TotalFee = s.TotalFee.Add(t.Fee)
		if t.RealizedPNL.IsPositive() {
			s.Wins++
		}
		if i == 0 || t.RealizedPNL.GreaterThan(s.BestTrade) {
			s.BestTrade = t.RealizedPNL
		}
		if i == 0 || t.RealizedPNL.LessThan(s.WorstTrade) {
			s.WorstTrade = t.RealizedPNL
		}
	}

	if s.TotalTrades > 0 {
		s.WinRate = 100 * float64(s.Wins) / float64(s.TotalTrades)
	}

	s.Recent = RecentTrades(trades, recent)
	s.Series = PnLSeries(trades)
	return s
}

// RecentTrades sorts a copy of trades ascending by CTime and returns the
// first n. Note this is the earliest n trades, not the latest.
func RecentTrades(trades []TradeRecord, n int) []TradeRecord {
	sorted := make([]TradeRecord, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CTime < sorted[j].CTime
	})
	if n < 0 {
		n = 0
	}
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// PnLSeries keeps trades with non-zero realized P&L, in their original order.
// Fee is not considered.
func PnLSeries(trades []TradeRecord) Series {
	var s Series
	for _, t := range trades {
		if t.RealizedPNL.IsZero() {
			continue
		}
		s.Labels = append(s.Labels, t.Time().Format(SeriesLabelLayout))
		s.Values = append(s.Values, t.RealizedPNL)
	}
	return s
}

// Filter returns the trades for which keep reports true.
func Filter(trades []TradeRecord, keep func(TradeRecord) bool) []TradeRecord {
	var out []TradeRecord
	for _, t := range trades {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// OnDay matches trades in the given YYYY-MM-DD bucket.
func OnDay(day string) func(TradeRecord) bool {
	return func(t TradeRecord) bool { return t.Day() == day }
}

// InMonth matches trades in the given YYYY-MM bucket.
func InMonth(month string) func(TradeRecord) bool {
	return func(t TradeRecord) bool { return t.Month() == month }
}
