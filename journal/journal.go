// journal/journal.go
package journal

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Side is the execution side of a trade.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// ParseSide normalises the exchange's side string. Unknown values pass
// through upper-cased.
func ParseSide(s string) Side {
	return Side(strings.ToUpper(strings.TrimSpace(s)))
}

// TradeRecord is one historical execution report.
type TradeRecord struct {
	TradeID      string
	CTime        int64 // milliseconds since epoch
	Symbol       string
	Side         Side
	Price        decimal.Decimal
	Qty          decimal.Decimal
	RealizedPNL  decimal.Decimal
	Fee          decimal.Decimal
	Leverage     int
	OrderType    string
	PositionMode string
}

// Time converts CTime to a UTC calendar time.
func (t TradeRecord) Time() time.Time {
	return time.UnixMilli(t.CTime).UTC()
}

// Day is the YYYY-MM-DD bucket of the trade.
func (t TradeRecord) Day() string {
	return t.Time().Format(time.DateOnly)
}

// Month is the YYYY-MM bucket of the trade.
func (t TradeRecord) Month() string {
	return t.Time().Format("2006-01")
}

// Store persists a snapshot of trade records. Save replaces whatever was
// stored before.
type Store interface {
	Save(ctx context.Context, trades []TradeRecord) error
	Load(ctx context.Context) ([]TradeRecord, error)
	Close() error
}
