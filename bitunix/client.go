package bitunix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rustyeddy/tradejournal/journal"
)

const (
	// BaseURL is the Bitunix futures API
	BaseURL = "https://fapi.bitunix.com"
	// HistoryTradesPath lists the account's past executions
	HistoryTradesPath = "/api/v1/futures/trade/get_history_trades"

	DefaultLanguage = "en-US"
	DefaultTimeout  = 30 * time.Second
	DefaultLimit    = 50
	MaxLimit        = 100
)

// Client talks to the private Bitunix futures endpoints.
type Client struct {
	baseURL    string
	language   string
	signer     *Signer
	httpClient *http.Client
	log        logrus.FieldLogger
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithTimeout bounds every request. Zero keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLanguage sets the language header.
func WithLanguage(lang string) Option {
	return func(c *Client) {
		if lang != "" {
			c.language = lang
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient creates a new Bitunix API client
func NewClient(signer *Signer, opts ...Option) *Client {
	c := &Client{
		baseURL:  BaseURL,
		language: DefaultLanguage,
		signer:   signer,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		log: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HistoryTradesRequest represents parameters for fetching past executions
type HistoryTradesRequest struct {
	Symbol    string     // Required: e.g. "BTCUSDT"
	Skip      int        // Records to skip (default 0)
	Limit     int        // Page size, 1..100 (default 50)
	StartTime *time.Time // Optional lower bound
	EndTime   *time.Time // Optional upper bound
}

// APIError is a response the exchange rejected with a non-zero code.
type APIError struct {
	Code int
	Msg  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bitunix error %d: %s", e.Code, e.Msg)
}

// scalar accepts a JSON string or a bare number/bool and keeps its text.
// Bitunix is not consistent about quoting numeric fields.
type scalar string

func (s *scalar) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = scalar(str)
		return nil
	}
	*s = scalar(b)
	return nil
}

// apiTrade is one entry of data.tradeList
type apiTrade struct {
	TradeID      scalar `json:"tradeId"`
	CTime        scalar `json:"ctime"`
	Symbol       scalar `json:"symbol"`
	Side         scalar `json:"side"`
	Price        scalar `json:"price"`
	Qty          scalar `json:"qty"`
	RealizedPNL  scalar `json:"realizedPNL"`
	Fee          scalar `json:"fee"`
	Leverage     scalar `json:"leverage"`
	OrderType    scalar `json:"orderType"`
	PositionMode scalar `json:"positionMode"`
}

// historyTradesResponse represents the API response envelope
type historyTradesResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		TradeList []apiTrade `json:"tradeList"`
	} `json:"data"`
}

// GetHistoryTrades fetches one page of past executions for a symbol.
func (c *Client) GetHistoryTrades(ctx context.Context, req HistoryTradesRequest) ([]journal.TradeRecord, error) {
	if req.Symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}
	if req.Limit == 0 {
		req.Limit = DefaultLimit
	}
	if req.Limit < 0 || req.Limit > MaxLimit {
		return nil, fmt.Errorf("limit must be between 1 and %d", MaxLimit)
	}
	if req.Skip < 0 {
		return nil, fmt.Errorf("skip cannot be negative")
	}

	params := map[string]string{
		"symbol": req.Symbol,
		"skip":   strconv.Itoa(req.Skip),
		"limit":  strconv.Itoa(req.Limit),
	}
	if req.StartTime != nil {
		params["startTime"] = strconv.FormatInt(req.StartTime.UnixMilli(), 10)
	}
	if req.EndTime != nil {
		params["endTime"] = strconv.FormatInt(req.EndTime.UnixMilli(), 10)
	}

	// GET carries no body
	signed := c.signer.Sign(params, "")

	query := url.Values{}
	for k, v := range signed.Params {
		query.Set(k, v)
	}
	apiURL := c.baseURL + HistoryTradesPath + "?" + query.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("api-key", c.signer.APIKey())
	httpReq.Header.Set("nonce", signed.Nonce)
	httpReq.Header.Set("timestamp", signed.Timestamp)
	httpReq.Header.Set("sign", signed.Signature)
	httpReq.Header.Set("language", c.language)
	httpReq.Header.Set("Content-Type", "application/json")

	log := c.log.WithFields(logrus.Fields{
		"symbol": req.Symbol,
		"skip":   req.Skip,
		"limit":  req.Limit,
	})
	log.Debug("requesting trade history")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var apiResp historyTradesResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if apiResp.Code != 0 {
		return nil, &APIError{Code: apiResp.Code, Msg: apiResp.Msg}
	}

	trades := make([]journal.TradeRecord, 0, len(apiResp.Data.TradeList))
	for i, at := range apiResp.Data.TradeList {
		tr, err := at.record()
		if err != nil {
			return nil, fmt.Errorf("trade %d: %w", i, err)
		}
		trades = append(trades, tr)
	}

	log.WithField("trades", len(trades)).Debug("received trade history")
	return trades, nil
}

func (at apiTrade) record() (journal.TradeRecord, error) {
	ctime, err := journal.ParseCTime(string(at.CTime))
	if err != nil {
		return journal.TradeRecord{}, fmt.Errorf("parse ctime %q: %w", at.CTime, err)
	}

	return journal.TradeRecord{
		TradeID:      string(at.TradeID),
		CTime:        ctime,
		Symbol:       string(at.Symbol),
		Side:         journal.ParseSide(string(at.Side)),
		Price:        journal.ParseDecimalOrZero(string(at.Price)),
		Qty:          journal.ParseDecimalOrZero(string(at.Qty)),
		RealizedPNL:  journal.ParseDecimalOrZero(string(at.RealizedPNL)),
		Fee:          journal.ParseDecimalOrZero(string(at.Fee)),
		Leverage:     journal.ParseIntOrZero(string(at.Leverage)),
		OrderType:    string(at.OrderType),
		PositionMode: string(at.PositionMode),
	}, nil
}
