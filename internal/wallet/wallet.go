package wallet

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidAmount = errors.New("amount must be positive")

const (
	KindDeposit  = "deposit"
	KindWithdraw = "withdraw"
)

type Transaction struct {
	ID        string    `json:"id"`
	PlayerID  string    `json:"player_id"`
	Kind      string    `json:"kind"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// Recorder persists the transaction trail for deposits and withdrawals.
type Recorder interface {
	Append(ctx context.Context, tx Transaction) (string, error)
	List(ctx context.Context, playerID string, limit int) ([]Transaction, error)
}
