package player

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// SQLRepo backs the ledger with the shared sqlite database.
type SQLRepo struct {
	db *sql.DB
}

func NewSQLRepo(db *sql.DB) *SQLRepo {
	return &SQLRepo{db: db}
}

func (r *SQLRepo) Get(ctx context.Context, telegramID string) (*Player, error) {
	var p Player
	var created int64
	err := r.db.QueryRowContext(ctx, `
	SELECT id, telegram_id, username, balance, created_at
	FROM players WHERE telegram_id = ?
	`, telegramID).Scan(&p.ID, &p.TelegramID, &p.Username, &p.Balance, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.CreatedAt = time.Unix(created, 0)
	return &p, nil
}

func (r *SQLRepo) Create(ctx context.Context, telegramID, username string) (*Player, error) {
	if existing, err := r.Get(ctx, telegramID); err == nil {
		return existing, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	p := &Player{
		ID:         uuid.New().String(),
		TelegramID: telegramID,
		Username:   username,
		Balance:    StartingBalance,
		CreatedAt:  time.Now(),
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO players(id, telegram_id, username, balance, created_at)
	VALUES (?, ?, ?, ?, ?)
	`, p.ID, p.TelegramID, p.Username, p.Balance, p.CreatedAt.Unix())
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Adjust applies the delta in one statement so the balance check and the
// write cannot interleave with another round.
func (r *SQLRepo) Adjust(ctx context.Context, telegramID string, delta int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
	UPDATE players SET balance = balance + ?
	WHERE telegram_id = ? AND balance + ? >= 0
	`, delta, telegramID, delta)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		p, err := r.Get(ctx, telegramID)
		if err != nil {
			return 0, err
		}
		return p.Balance, ErrInsufficientFunds
	}
	p, err := r.Get(ctx, telegramID)
	if err != nil {
		return 0, err
	}
	return p.Balance, nil
}
