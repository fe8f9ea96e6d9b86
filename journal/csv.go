// journal/csv.go
package journal

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVHeader is the column layout written by CSVStore.
var CSVHeader = []string{
	"tradeId", "ctime", "symbol", "side", "price", "qty",
	"realizedPNL", "fee", "leverage", "orderType", "positionMode",
}

var requiredColumns = []string{"ctime", "realizedPNL", "fee"}

// CSVStore keeps the trade snapshot in a flat file with a header row.
type CSVStore struct {
	path string
}

func NewCSV(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Path returns the file backing the store.
func (s *CSVStore) Path() string {
	return s.path
}

// Save truncates the file and writes trades in order.
func (s *CSVStore) Save(ctx context.Context, trades []TradeRecord) error {
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, trades); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads every row of the file.
func (s *CSVStore) Load(ctx context.Context) ([]TradeRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	trades, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return trades, nil
}

func (s *CSVStore) Close() error {
	return nil
}

// WriteCSV writes the header followed by one row per trade.
func WriteCSV(w io.Writer, trades []TradeRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, t := range trades {
		err := cw.Write([]string{
			t.TradeID,
			strconv.FormatInt(t.CTime, 10),
			t.Symbol,
			string(t.Side),
			t.Price.String(),
			t.Qty.String(),
			t.RealizedPNL.String(),
			t.Fee.String(),
			strconv.Itoa(t.Leverage),
			t.OrderType,
			t.PositionMode,
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a header-led trade file. Columns are matched by name, so
// order does not matter and unknown columns are ignored. ctime, realizedPNL
// and fee must be present; a row with a non-integer ctime fails the read.
func ReadCSV(r io.Reader) ([]TradeRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, err
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("missing column %q", c)
		}
	}

	var out []TradeRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		get := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		ctime, err := ParseCTime(get("ctime"))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad ctime %q", line, get("ctime"))
		}

		out = append(out, TradeRecord{
			TradeID:      get("tradeId"),
			CTime:        ctime,
			Symbol:       get("symbol"),
			Side:         ParseSide(get("side")),
			Price:        ParseDecimalOrZero(get("price")),
			Qty:          ParseDecimalOrZero(get("qty")),
			RealizedPNL:  ParseDecimalOrZero(get("realizedPNL")),
			Fee:          ParseDecimalOrZero(get("fee")),
			Leverage:     ParseIntOrZero(get("leverage")),
			OrderType:    get("orderType"),
			PositionMode: get("positionMode"),
		})
	}
	return out, nil
}
