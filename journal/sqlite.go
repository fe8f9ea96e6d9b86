package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/tradejournal/pkg/id"
)

// SQLiteStore keeps the trade snapshot in a SQLite database. Like the CSV
// store it holds exactly one snapshot at a time.
type SQLiteStore struct {
	db *sql.DB
}

// Snapshot describes the stored batch of trades.
type Snapshot struct {
	ID      string
	Created time.Time
	Trades  int
}

func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

// Save replaces the stored snapshot with trades in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, trades []TradeRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM trades`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshots`); err != nil {
		return err
	}

	snapID := id.New()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO snapshots (snapshot_id, created, trades)
		VALUES (?, ?, ?)`,
		snapID, time.Now().UTC(), len(trades),
	)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO trades
		(snapshot_id, trade_id, ctime, symbol, side, price, qty, realized_pnl, fee, leverage, order_type, position_mode)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range trades {
		_, err := stmt.ExecContext(ctx,
			snapID, t.TradeID, t.CTime, t.Symbol, string(t.Side),
			t.Price.String(), t.Qty.String(), t.RealizedPNL.String(), t.Fee.String(),
			t.Leverage, t.OrderType, t.PositionMode,
		)
		if err != nil {
			return fmt.Errorf("insert trade %q: %w", t.TradeID, err)
		}
	}

	return tx.Commit()
}

// Load returns the stored trades in the order they were saved.
func (s *SQLiteStore) Load(ctx context.Context) ([]TradeRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT trade_id, ctime, symbol, side, price, qty, realized_pnl, fee, leverage, order_type, position_mode
		FROM trades
		ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		var (
			rec                        TradeRecord
			side, price, qty, pnl, fee string
		)
		if err := rows.Scan(
			&rec.TradeID,
			&rec.CTime,
			&rec.Symbol,
			&side,
			&price,
			&qty,
			&pnl,
			&fee,
			&rec.Leverage,
			&rec.OrderType,
			&rec.PositionMode,
		); err != nil {
			return nil, err
		}
		rec.Side = Side(side)
		rec.Price = ParseDecimalOrZero(price)
		rec.Qty = ParseDecimalOrZero(qty)
		rec.RealizedPNL = ParseDecimalOrZero(pnl)
		rec.Fee = ParseDecimalOrZero(fee)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// LatestSnapshot returns the stored snapshot, or sql.ErrNoRows when nothing
// has been saved yet.
func (s *SQLiteStore) LatestSnapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	row := s.db.QueryRowContext(ctx, `
		SELECT snapshot_id, created, trades
		FROM snapshots
		ORDER BY created DESC
		LIMIT 1`)
	err := row.Scan(&snap.ID, &snap.Created, &snap.Trades)
	return snap, err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
