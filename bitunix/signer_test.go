package bitunix

import (
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradejournal/config"
)

var hex64 = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params map[string]string
		want   string
	}{
		{"sorted by key", map[string]string{"b": "2", "a": "1"}, "a1b2"},
		{"empty", map[string]string{}, ""},
		{"nil", nil, ""},
		{"empty value", map[string]string{"a": "", "b": "x"}, "abx"},
		{
			"request params",
			map[string]string{"symbol": "BTCUSDT", "skip": "0", "limit": "50", "timestamp": "1700000000000"},
			"limit50skip0symbolBTCUSDTtimestamp1700000000000",
		},
		{"uppercase sorts first", map[string]string{"b": "1", "B": "2", "a": "3"}, "B2a3b1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Canonicalize(tt.params))
		})
	}
}

func TestCanonicalizeIgnoresInsertionOrder(t *testing.T) {
	t.Parallel()

	a := map[string]string{}
	a["z"] = "1"
	a["m"] = "2"
	a["a"] = "3"

	b := map[string]string{}
	b["a"] = "3"
	b["m"] = "2"
	b["z"] = "1"

	for i := 0; i < 20; i++ {
		assert.Equal(t, "a3m2z1", Canonicalize(a))
		assert.Equal(t, Canonicalize(a), Canonicalize(b))
	}
}

func TestCanonicalizeLength(t *testing.T) {
	t.Parallel()

	params := map[string]string{"alpha": "1", "b": "22", "cc": "", "delta": "4444"}
	want := 0
	for k, v := range params {
		want += len(k) + len(v)
	}
	assert.Len(t, Canonicalize(params), want)
}

func TestSign(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "b9d6f2602f0f75428af0648a64c260b7e32b53b57a959cc2172fdbccf8fa89af", Sign("test", "secret"))
	assert.Equal(t, "704aa8d0bfaaad91de1ace616f41fd5fd664ac459f762e8f05e858b5bcd06c36", Sign("", "secret"))
}

func TestSignShapeAndDeterminism(t *testing.T) {
	t.Parallel()

	inputs := []struct{ msg, secret string }{
		{"test", "s"},
		{"a much longer message with spaces and ünïcode", "another-secret"},
		{"x", ""},
	}

	for _, in := range inputs {
		got := Sign(in.msg, in.secret)
		assert.Regexp(t, hex64, got)
		assert.Equal(t, got, Sign(in.msg, in.secret))
	}
}

func TestSignAvalanche(t *testing.T) {
	t.Parallel()

	base := Sign("message", "secret")
	assert.NotEqual(t, base, Sign("messagf", "secret"))
	assert.NotEqual(t, base, Sign("Message", "secret"))
	assert.NotEqual(t, base, Sign("message", "secreu"))
	assert.NotEqual(t, base, Sign("message", "secret "))
}

func newTestSigner() *Signer {
	s := NewSigner(config.APICredentials{APIKey: "key", SecretKey: "secret"})
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }
	s.nonce = func() string { return "n0nce" }
	return s
}

func TestSignerSign(t *testing.T) {
	t.Parallel()

	s := newTestSigner()
	params := map[string]string{"symbol": "BTCUSDT", "skip": "0", "limit": "50"}

	req := s.Sign(params, "")

	assert.Equal(t, "n0nce", req.Nonce)
	assert.Equal(t, "1700000000000", req.Timestamp)
	assert.Equal(t, "ddfa63dde25baae2ca4a3b35a7ffb75144379c0bedfef9753f4ebdcbbf0646d6", req.Signature)
	assert.Equal(t, req.Signature, req.Params["sign"])
	assert.Equal(t, "1700000000000", req.Params["timestamp"])
	assert.Equal(t, "BTCUSDT", req.Params["symbol"])

	// caller's map untouched
	assert.Len(t, params, 3)
	assert.NotContains(t, params, "sign")
}

func TestSignerSignCoversOptionalParams(t *testing.T) {
	t.Parallel()

	s := newTestSigner()
	plain := s.Sign(map[string]string{"symbol": "BTCUSDT"}, "")
	ranged := s.Sign(map[string]string{"symbol": "BTCUSDT", "startTime": "1"}, "")
	withBody := s.Sign(map[string]string{"symbol": "BTCUSDT"}, `{"a":1}`)

	assert.NotEqual(t, plain.Signature, ranged.Signature)
	assert.NotEqual(t, plain.Signature, withBody.Signature)
}

func TestNewNonce(t *testing.T) {
	t.Parallel()

	a := newNonce()
	b := newNonce()

	require.Regexp(t, `^[0-9a-f]{32}$`, a)
	assert.NotEqual(t, a, b)
}

func TestSignerDefaults(t *testing.T) {
	t.Parallel()

	s := NewSigner(config.APICredentials{APIKey: "k", SecretKey: "s"})
	assert.Equal(t, "k", s.APIKey())

	before := time.Now().UnixMilli()
	req := s.Sign(nil, "")
	assert.Regexp(t, hex64, req.Signature)
	assert.Len(t, req.Nonce, 32)

	ts, err := strconv.ParseInt(req.Params["timestamp"], 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ts, before)
}
