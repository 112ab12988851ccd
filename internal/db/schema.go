package db

import "database/sql"

func Migrate(d *sql.DB) error {
	stmts := []string{`
	CREATE TABLE IF NOT EXISTS players (
		id TEXT PRIMARY KEY,
		telegram_id TEXT UNIQUE NOT NULL,
		username TEXT,
		balance INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	);`, `
	CREATE TABLE IF NOT EXISTS game_history (
		id TEXT PRIMARY KEY,
		player_id TEXT NOT NULL,
		game TEXT NOT NULL,
		bet INTEGER NOT NULL,
		payout INTEGER NOT NULL,
		detail TEXT,
		created_at INTEGER NOT NULL
	);`, `
	CREATE INDEX IF NOT EXISTS idx_history_player
	ON game_history(player_id, created_at DESC);`, `
	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		player_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		amount INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);`, `
	CREATE TABLE IF NOT EXISTS withdraw_requests (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_id TEXT NOT NULL,
		amount INTEGER NOT NULL,
		address TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at INTEGER NOT NULL,
		decided_at INTEGER
	);`}

	for _, stmt := range stmts {
		if _, err := d.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
