package round

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweeper force-resolves rounds whose player walked away: a disconnected chat
// client leaves mines and blackjack sessions hanging forever otherwise.
type Sweeper struct {
	Svc     *Service
	Every   time.Duration
	MaxIdle time.Duration
	Log     *zap.Logger
}

func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.Every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Svc.SweepExpired(ctx, s.MaxIdle); n > 0 {
				s.Log.Info("swept expired rounds", zap.Int("count", n))
			}
		}
	}
}
