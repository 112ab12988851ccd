package player

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepo is the in-process ledger. Good enough for tests and for the
// single-instance deployments this platform targets.
type MemoryRepo struct {
	mu      sync.Mutex
	players map[string]*Player // keyed by telegram id
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{players: make(map[string]*Player)}
}

func (r *MemoryRepo) Get(_ context.Context, telegramID string) (*Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[telegramID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *MemoryRepo) Create(_ context.Context, telegramID, username string) (*Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.players[telegramID]; ok {
		cp := *p
		return &cp, nil
	}
	p := &Player{
		ID:         uuid.New().String(),
		TelegramID: telegramID,
		Username:   username,
		Balance:    StartingBalance,
		CreatedAt:  time.Now(),
	}
	r.players[telegramID] = p
	cp := *p
	return &cp, nil
}

func (r *MemoryRepo) Adjust(_ context.Context, telegramID string, delta int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[telegramID]
	if !ok {
		return 0, ErrNotFound
	}
	next := p.Balance + delta
	if next < 0 {
		return p.Balance, ErrInsufficientFunds
	}
	p.Balance = next
	return next, nil
}
