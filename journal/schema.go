// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	snapshot_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	trades INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	snapshot_id TEXT NOT NULL REFERENCES snapshots(snapshot_id),
	trade_id TEXT NOT NULL,
	ctime INTEGER NOT NULL,
	symbol TEXT NOT NULL,
	side TEXT NOT NULL,
	price TEXT NOT NULL,
	qty TEXT NOT NULL,
	realized_pnl TEXT NOT NULL,
	fee TEXT NOT NULL,
	leverage INTEGER NOT NULL,
	order_type TEXT NOT NULL,
	position_mode TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_ctime ON trades(ctime);
`
