package journal

import (
	"testing"

	"github.com/shopspring/decimal"
)

// baseTime is 2023-11-14 22:13:20 UTC in milliseconds.
const baseTime int64 = 1700000000000

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func trade(ctime int64, pnl, fee string) TradeRecord {
	return TradeRecord{
		TradeID:      "T",
		CTime:        ctime,
		Symbol:       "BTCUSDT",
		Side:         Buy,
		Price:        decimal.NewFromInt(30000),
		Qty:          decimal.NewFromInt(1),
		RealizedPNL:  ParseDecimalOrZero(pnl),
		Fee:          ParseDecimalOrZero(fee),
		Leverage:     10,
		OrderType:    "LIMIT",
		PositionMode: "ONE_WAY",
	}
}
