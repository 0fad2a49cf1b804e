// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	ts DATETIME NOT NULL,
	exchange TEXT NOT NULL,
	structure TEXT NOT NULL,
	original_structure TEXT NOT NULL,
	side TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	price REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_structure ON trades(structure);

CREATE TABLE IF NOT EXISTS structure_costs (
	name TEXT PRIMARY KEY,
	legs INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`
