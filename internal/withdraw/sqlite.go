package withdraw

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type SQLRepo struct {
	db *sql.DB
}

func NewSQLRepo(db *sql.DB) *SQLRepo {
	return &SQLRepo{db: db}
}

func (r *SQLRepo) Create(ctx context.Context, req Request) (int64, error) {
	created := req.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	res, err := r.db.ExecContext(ctx, `
	INSERT INTO withdraw_requests(player_id, amount, address, status, created_at)
	VALUES (?, ?, ?, 'pending', ?)
	`, req.PlayerID, req.Amount, req.Address, created.Unix())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLRepo) Get(ctx context.Context, id int64) (*Request, error) {
	var req Request
	var created int64
	var decided sql.NullInt64
	err := r.db.QueryRowContext(ctx, `
	SELECT id, player_id, amount, address, status, created_at, decided_at
	FROM withdraw_requests WHERE id = ?
	`, id).Scan(&req.ID, &req.PlayerID, &req.Amount, &req.Address, &req.Status, &created, &decided)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	req.CreatedAt = time.Unix(created, 0)
	if decided.Valid {
		t := time.Unix(decided.Int64, 0)
		req.DecidedAt = &t
	}
	return &req, nil
}

// Decide flips status in one guarded statement; RowsAffected tells a missing
// request apart from an already decided one.
func (r *SQLRepo) Decide(ctx context.Context, id int64, status string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
	UPDATE withdraw_requests SET status = ?, decided_at = ?
	WHERE id = ? AND status = 'pending'
	`, status, at.Unix(), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.Get(ctx, id); err != nil {
			return err
		}
		return ErrNotPending
	}
	return nil
}

func (r *SQLRepo) Pending(ctx context.Context) ([]Request, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, player_id, amount, address, status, created_at, decided_at
	FROM withdraw_requests WHERE status = 'pending' ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Request
	for rows.Next() {
		var req Request
		var created int64
		var decided sql.NullInt64
		if err := rows.Scan(&req.ID, &req.PlayerID, &req.Amount, &req.Address, &req.Status, &created, &decided); err != nil {
			return nil, err
		}
		req.CreatedAt = time.Unix(created, 0)
		out = append(out, req)
	}
	return out, rows.Err()
}
