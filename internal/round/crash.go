package round

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"tg-casino/internal/games"
)

// CrashSnapshot is the client view of a crash round. The crash point is only
// disclosed once the round is terminal.
type CrashSnapshot struct {
	RoundID    string  `json:"round_id"`
	Multiplier float64 `json:"multiplier"`
	Status     string  `json:"status"` // "flying", "cashed_out", "crashed"
	Terminal   bool    `json:"terminal"`
	Payout     int64   `json:"payout"`
	Balance    int64   `json:"balance,omitempty"`
	CrashPoint float64 `json:"crash_point,omitempty"`
}

type crashRound struct {
	svc        *Service
	key        sessionKey
	id         string
	bet        int64
	crashPoint float64

	mu       sync.Mutex
	armed    bool
	resolved bool
	started  time.Time
	done     chan struct{}
}

func (r *crashRound) ready() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.armed
}

func (r *crashRound) idleSince() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.started
}

// forceResolve is a no-op: the ticker terminates every crash round on its own
// once the multiplier reaches the crash point.
func (r *crashRound) forceResolve(context.Context) {}

// StartCrash debits the stake, draws the hidden crash point and starts the
// server-owned 100ms ticker. The multiplier is derived from the round clock,
// never from client rendering.
func (s *Service) StartCrash(ctx context.Context, playerID string, bet int64) (*CrashSnapshot, error) {
	if err := s.checkBet(games.KindCrash, bet); err != nil {
		return nil, err
	}
	key := sessionKey{playerID: playerID, game: games.KindCrash}
	r := &crashRound{
		svc:        s,
		key:        key,
		id:         uuid.New().String(),
		bet:        bet,
		crashPoint: games.DrawCrashPoint(s.src),
		done:       make(chan struct{}),
	}
	if err := s.registerSession(ctx, key, bet, r); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.started = s.now()
	r.armed = true
	r.mu.Unlock()

	go r.run()

	return &CrashSnapshot{RoundID: r.id, Multiplier: 1.0, Status: "flying"}, nil
}

// CrashCashOut locks in the multiplier at the instant of the request. A
// request racing the crash tick loses: terminal state is checked first, and a
// multiplier at or past the crash point resolves the round as crashed.
func (s *Service) CrashCashOut(ctx context.Context, playerID string) (*CrashSnapshot, error) {
	r, err := s.crashSession(playerID)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	if r.resolved {
		r.mu.Unlock()
		return nil, ErrRoundResolved
	}
	mult := games.CrashMultiplierAt(s.now().Sub(r.started))
	if mult >= r.crashPoint {
		return r.finish(ctx, 0, r.crashPoint, "crashed"), nil
	}
	return r.finish(ctx, games.CrashPayout(r.bet, mult), mult, "cashed_out"), nil
}

// CrashStatus reports the live multiplier for polling clients.
func (s *Service) CrashStatus(ctx context.Context, playerID string) (*CrashSnapshot, error) {
	r, err := s.crashSession(playerID)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	if r.resolved {
		r.mu.Unlock()
		return nil, ErrRoundResolved
	}
	mult := games.CrashMultiplierAt(s.now().Sub(r.started))
	if mult >= r.crashPoint {
		return r.finish(ctx, 0, r.crashPoint, "crashed"), nil
	}
	defer r.mu.Unlock()
	return &CrashSnapshot{RoundID: r.id, Multiplier: mult, Status: "flying"}, nil
}

func (s *Service) crashSession(playerID string) (*crashRound, error) {
	sess, ok := s.lookupSession(sessionKey{playerID: playerID, game: games.KindCrash})
	if !ok {
		return nil, ErrRoundNotFound
	}
	r, ok := sess.(*crashRound)
	if !ok {
		return nil, ErrRoundNotFound
	}
	r.mu.Lock()
	armed := r.armed
	r.mu.Unlock()
	if !armed {
		return nil, ErrRoundNotFound
	}
	return r, nil
}

// run drives the round clock. The tick that reaches the crash point marks the
// round resolved under the round mutex, so a cash-out arriving later is
// rejected rather than paid.
func (r *crashRound) run() {
	ticker := time.NewTicker(games.CrashTickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-r.done:
			return
		case <-ticker.C:
			if r.tick() {
				return
			}
		}
	}
}

func (r *crashRound) tick() bool {
	r.mu.Lock()
	if r.resolved {
		r.mu.Unlock()
		return true
	}
	mult := games.CrashMultiplierAt(r.svc.now().Sub(r.started))
	if mult >= r.crashPoint {
		r.finish(context.Background(), 0, r.crashPoint, "crashed")
		return true
	}
	r.mu.Unlock()

	if r.svc.hub != nil {
		r.svc.hub.BroadcastJSON(map[string]interface{}{
			"type":       "crash_tick",
			"round_id":   r.id,
			"multiplier": mult,
		})
	}
	return false
}

// finish settles the round. Caller holds r.mu; finish releases it.
func (r *crashRound) finish(ctx context.Context, payout int64, at float64, status string) *CrashSnapshot {
	r.resolved = true
	close(r.done)
	detail := games.CrashDetail{
		CrashPoint: r.crashPoint,
		Status:     status,
	}
	if status == "cashed_out" {
		detail.CashedOutAt = at
	}
	st := &CrashSnapshot{
		RoundID:    r.id,
		Multiplier: at,
		Status:     status,
		Terminal:   true,
		Payout:     payout,
		CrashPoint: r.crashPoint,
	}
	r.mu.Unlock()

	r.svc.dropSession(r.key)
	st.Balance = r.svc.settleSession(ctx, r.key, r.bet, payout, detail)

	if r.svc.hub != nil {
		r.svc.hub.BroadcastJSON(map[string]interface{}{
			"type":        "crash_settled",
			"round_id":    r.id,
			"status":      status,
			"crash_point": r.crashPoint,
			"payout":      payout,
		})
	}
	return st
}
