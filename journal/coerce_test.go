package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDecimalOrZero(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"10", "10"},
		{"-5.25", "-5.25"},
		{" 0.5 ", "0.5"},
		{"1e2", "100"},
		{"", "0"},
		{"abc", "0"},
		{"NaN", "0"},
		{"12abc", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseDecimalOrZero(tt.in)
			assert.True(t, got.Equal(dec(t, tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestParseIntOrZero(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, ParseIntOrZero("10"))
	assert.Equal(t, 20, ParseIntOrZero(" 20 "))
	assert.Equal(t, 10, ParseIntOrZero("10.0"))
	assert.Equal(t, 0, ParseIntOrZero(""))
	assert.Equal(t, 0, ParseIntOrZero("x"))
}

func TestParseCTime(t *testing.T) {
	t.Parallel()

	got, err := ParseCTime("1700000000000")
	assert.NoError(t, err)
	assert.Equal(t, baseTime, got)

	_, err = ParseCTime("")
	assert.Error(t, err)
	_, err = ParseCTime("yesterday")
	assert.Error(t, err)
}

func TestTradeRecordBuckets(t *testing.T) {
	t.Parallel()

	tr := trade(baseTime, "1", "0")
	assert.Equal(t, "2023-11-14 22:13:20", tr.Time().Format(SeriesLabelLayout))
	assert.Equal(t, "2023-11-14", tr.Day())
	assert.Equal(t, "2023-11", tr.Month())
}

func TestParseSide(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Buy, ParseSide("buy"))
	assert.Equal(t, Sell, ParseSide(" SELL "))
	assert.Equal(t, Side("HOLD"), ParseSide("hold"))
}
