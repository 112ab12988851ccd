package withdraw

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrNotFound      = errors.New("withdraw request not found")
	ErrNotPending    = errors.New("withdraw request already decided")
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Request struct {
	ID        int64      `json:"id"`
	PlayerID  string     `json:"player_id"`
	Amount    int64      `json:"amount"`
	Address   string     `json:"address"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`
}

// Repo persists the withdraw queue. Decide flips a pending request to its
// final status and must fail on anything already decided, so a request can
// never be approved and rejected both.
type Repo interface {
	Create(ctx context.Context, req Request) (int64, error)
	Get(ctx context.Context, id int64) (*Request, error)
	Decide(ctx context.Context, id int64, status string, at time.Time) error
	Pending(ctx context.Context) ([]Request, error)
}
