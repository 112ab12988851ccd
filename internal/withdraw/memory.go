package withdraw

import (
	"context"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu   sync.Mutex
	next int64
	reqs map[int64]*Request
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{reqs: make(map[int64]*Request)}
}

func (r *MemoryRepo) Create(_ context.Context, req Request) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	req.ID = r.next
	req.Status = StatusPending
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	r.reqs[req.ID] = &req
	return req.ID, nil
}

func (r *MemoryRepo) Get(_ context.Context, id int64) (*Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.reqs[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *req
	return &cp, nil
}

func (r *MemoryRepo) Decide(_ context.Context, id int64, status string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.reqs[id]
	if !ok {
		return ErrNotFound
	}
	if req.Status != StatusPending {
		return ErrNotPending
	}
	req.Status = status
	req.DecidedAt = &at
	return nil
}

func (r *MemoryRepo) Pending(_ context.Context) ([]Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Request
	for _, req := range r.reqs {
		if req.Status == StatusPending {
			out = append(out, *req)
		}
	}
	return out, nil
}
