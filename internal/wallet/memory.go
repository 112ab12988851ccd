package wallet

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type MemoryRecorder struct {
	mu  sync.Mutex
	txs []Transaction
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

func (r *MemoryRecorder) Append(_ context.Context, tx Transaction) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx.ID = uuid.New().String()
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}
	r.txs = append(r.txs, tx)
	return tx.ID, nil
}

func (r *MemoryRecorder) List(_ context.Context, playerID string, limit int) ([]Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Transaction
	for i := len(r.txs) - 1; i >= 0 && len(out) < limit; i-- {
		if r.txs[i].PlayerID == playerID {
			out = append(out, r.txs[i])
		}
	}
	return out, nil
}
