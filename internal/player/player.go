package player

import (
	"context"
	"errors"
	"time"
)

// StartingBalance is granted to every newly created player.
const StartingBalance int64 = 1000

var (
	ErrNotFound          = errors.New("player not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Player is a ledger account keyed by the chat-client id.
type Player struct {
	ID         string    `json:"id"`
	TelegramID string    `json:"telegram_id"`
	Username   string    `json:"username,omitempty"`
	Balance    int64     `json:"balance"`
	CreatedAt  time.Time `json:"created_at"`
}

// Repo is the player ledger. Adjust is the single balance mutation point: an
// atomic read-modify-write that fails with ErrInsufficientFunds when the
// delta would drive the balance negative.
type Repo interface {
	Get(ctx context.Context, telegramID string) (*Player, error)
	Create(ctx context.Context, telegramID, username string) (*Player, error)
	Adjust(ctx context.Context, telegramID string, delta int64) (int64, error)
}
