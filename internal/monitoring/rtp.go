package monitoring

import "sync"

// RTPTracker accumulates wagered and paid-out totals per game. It observes
// only: payouts always come from the fixed game tables and are never scaled
// by the measured return.
type RTPTracker struct {
	mu     sync.Mutex
	bet    map[string]int64
	payout map[string]int64
}

func NewRTPTracker() *RTPTracker {
	return &RTPTracker{
		bet:    make(map[string]int64),
		payout: make(map[string]int64),
	}
}

func (t *RTPTracker) Record(game string, bet, payout int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.bet[game] += bet
	t.payout[game] += payout
}

// RTP reports payout/bet for one game, or 0 before any round settles.
func (t *RTPTracker) RTP(game string) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.bet[game] == 0 {
		return 0
	}
	return float64(t.payout[game]) / float64(t.bet[game])
}

// Snapshot reports the measured return per game for the admin endpoint.
func (t *RTPTracker) Snapshot() map[string]float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]float64, len(t.bet))
	for game, bet := range t.bet {
		if bet == 0 {
			continue
		}
		out[game] = float64(t.payout[game]) / float64(bet)
	}
	return out
}
