package leaderboard

import "context"

type Entry struct {
	PlayerID string `json:"player_id"`
	Profit   int64  `json:"profit"`
}

// Store ranks players by cumulative profit (payout minus bet, so most
// entries trend negative over time).
type Store interface {
	Record(ctx context.Context, playerID string, profit int64) error
	Top(ctx context.Context, n int) ([]Entry, error)
}
