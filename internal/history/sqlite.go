package history

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// SQLRepo appends records to the game_history table.
type SQLRepo struct {
	db *sql.DB
}

func NewSQLRepo(db *sql.DB) *SQLRepo {
	return &SQLRepo{db: db}
}

func (r *SQLRepo) Append(ctx context.Context, rec Record) (string, error) {
	id := uuid.New().String()
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO game_history(id, player_id, game, bet, payout, detail, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, rec.PlayerID, rec.Game, rec.Bet, rec.Payout, string(rec.Detail), created.Unix())
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *SQLRepo) List(ctx context.Context, playerID string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, player_id, game, bet, payout, detail, created_at
	FROM game_history WHERE player_id = ?
	ORDER BY created_at DESC, rowid DESC LIMIT ?
	`, playerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var detail string
		var created int64
		if err := rows.Scan(&rec.ID, &rec.PlayerID, &rec.Game, &rec.Bet, &rec.Payout, &detail, &created); err != nil {
			return nil, err
		}
		rec.Detail = []byte(detail)
		rec.CreatedAt = time.Unix(created, 0)
		out = append(out, rec)
	}
	return out, rows.Err()
}
