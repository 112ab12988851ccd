package wallet

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type SQLRecorder struct {
	db *sql.DB
}

func NewSQLRecorder(db *sql.DB) *SQLRecorder {
	return &SQLRecorder{db: db}
}

func (r *SQLRecorder) Append(ctx context.Context, tx Transaction) (string, error) {
	id := uuid.New().String()
	created := tx.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO transactions(id, player_id, kind, amount, created_at)
	VALUES (?, ?, ?, ?, ?)
	`, id, tx.PlayerID, tx.Kind, tx.Amount, created.Unix())
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *SQLRecorder) List(ctx context.Context, playerID string, limit int) ([]Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, player_id, kind, amount, created_at
	FROM transactions WHERE player_id = ?
	ORDER BY created_at DESC, rowid DESC LIMIT ?
	`, playerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Transaction
	for rows.Next() {
		var tx Transaction
		var created int64
		if err := rows.Scan(&tx.ID, &tx.PlayerID, &tx.Kind, &tx.Amount, &created); err != nil {
			return nil, err
		}
		tx.CreatedAt = time.Unix(created, 0)
		out = append(out, tx)
	}
	return out, rows.Err()
}
