package history

import (
	"context"
	"encoding/json"
	"time"
)

// Record is one append-only round result. Detail carries the game-specific
// outcome as JSON; records are never updated or deleted.
type Record struct {
	ID        string          `json:"id"`
	PlayerID  string          `json:"player_id"`
	Game      string          `json:"game"`
	Bet       int64           `json:"bet"`
	Payout    int64           `json:"payout"`
	Detail    json.RawMessage `json:"detail,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Repo is the history log.
type Repo interface {
	Append(ctx context.Context, rec Record) (string, error)
	List(ctx context.Context, playerID string, limit int) ([]Record, error)
}
