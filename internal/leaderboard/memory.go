package leaderboard

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is the single-process fallback when redis is not configured.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]int64)}
}

func (s *MemoryStore) Record(_ context.Context, playerID string, profit int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[playerID] += profit
	return nil
}

func (s *MemoryStore) Top(_ context.Context, n int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]Entry, 0, len(s.data))
	for id, profit := range s.data {
		entries = append(entries, Entry{PlayerID: id, Profit: profit})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Profit != entries[j].Profit {
			return entries[i].Profit > entries[j].Profit
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}
