package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/spreadkit/spreadbook/config"
	"github.com/spreadkit/spreadbook/trade"
)

// SQLite is the journal implementation backing the CLI.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) SaveTrade(t trade.Trade) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(id, ts, exchange, structure, original_structure, side, quantity, price)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Timestamp, t.Exchange, t.Structure, t.OriginalStructure,
		string(t.Side), t.Quantity, t.Price,
	)
	return err
}

// SaveTrades inserts a parsed batch in one transaction so a failure leaves
// the log untouched.
func (j *SQLite) SaveTrades(trades []trade.Trade) error {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}
	for _, t := range trades {
		if _, err := tx.Exec(`
			INSERT INTO trades
			(id, ts, exchange, structure, original_structure, side, quantity, price)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.Timestamp, t.Exchange, t.Structure, t.OriginalStructure,
			string(t.Side), t.Quantity, t.Price,
		); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// ListTrades returns the full trade log in insertion order. IDs are ULIDs, so
// ordering by id reproduces the order the fills were logged in — which is
// what the FIFO matcher must see.
func (j *SQLite) ListTrades() ([]trade.Trade, error) {
	rows, err := j.db.Query(`
		SELECT id, ts, exchange, structure, original_structure, side, quantity, price
		FROM trades
		ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []trade.Trade
	for rows.Next() {
		var t trade.Trade
		var side string
		if err := rows.Scan(
			&t.ID,
			&t.Timestamp,
			&t.Exchange,
			&t.Structure,
			&t.OriginalStructure,
			&side,
			&t.Quantity,
			&t.Price,
		); err != nil {
			return nil, err
		}
		t.Side = trade.Side(side)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (j *SQLite) DeleteTrade(id string) error {
	res, err := j.db.Exec(`DELETE FROM trades WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trade %q not found", id)
	}
	return nil
}

func (j *SQLite) SaveCost(name string, legs int) error {
	_, err := j.db.Exec(`
		INSERT INTO structure_costs (name, legs) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET legs = excluded.legs`,
		name, legs,
	)
	return err
}

func (j *SQLite) DeleteCost(name string) error {
	_, err := j.db.Exec(`DELETE FROM structure_costs WHERE name = ?`, name)
	return err
}

func (j *SQLite) ListCosts() (map[string]int, error) {
	rows, err := j.db.Query(`SELECT name, legs FROM structure_costs`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var name string
		var legs int
		if err := rows.Scan(&name, &legs); err != nil {
			return nil, err
		}
		out[name] = legs
	}
	return out, rows.Err()
}

const pricingKey = "pricing"

// SavePricing stores the trading constants as an opaque JSON blob in the
// settings table.
func (j *SQLite) SavePricing(p config.Pricing) error {
	blob, err := json.Marshal(p)
	if err != nil {
		return err
	}
	_, err = j.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		pricingKey, string(blob),
	)
	return err
}

// LoadPricing returns the stored constants; ok is false when none were saved.
func (j *SQLite) LoadPricing() (config.Pricing, bool, error) {
	var blob string
	err := j.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, pricingKey).Scan(&blob)
	if err == sql.ErrNoRows {
		return config.Pricing{}, false, nil
	}
	if err != nil {
		return config.Pricing{}, false, err
	}

	var p config.Pricing
	if err := json.Unmarshal([]byte(blob), &p); err != nil {
		return config.Pricing{}, false, fmt.Errorf("decode pricing blob: %w", err)
	}
	return p, true, nil
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
