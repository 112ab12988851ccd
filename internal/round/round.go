package round

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tg-casino/internal/event"
	"tg-casino/internal/games"
	"tg-casino/internal/history"
	"tg-casino/internal/player"
	"tg-casino/internal/rng"
	"tg-casino/internal/ws"
)

var (
	ErrInvalidBet      = errors.New("invalid bet amount")
	ErrRoundActive     = errors.New("a round of this game is already active")
	ErrRoundNotFound   = errors.New("no active round")
	ErrRoundResolved   = errors.New("round already resolved")
	ErrInvalidDecision = errors.New("invalid decision")
)

// Limits bound the stake a single round may put at risk.
type Limits struct {
	Min int64
	Max int64
}

func defaultLimits() map[games.Kind]Limits {
	l := make(map[games.Kind]Limits, len(games.Kinds()))
	for _, k := range games.Kinds() {
		l[k] = Limits{Min: 1, Max: 10000}
	}
	// riskier multiplier games carry a tighter cap
	l[games.KindCrash] = Limits{Min: 1, Max: 5000}
	l[games.KindMines] = Limits{Min: 1, Max: 5000}
	return l
}

type sessionKey struct {
	playerID string
	game     games.Kind
}

// session is any multi-request round held by the registry.
type session interface {
	// ready reports whether the round finished starting. The slot is
	// reserved before the stake debit, so the sweeper must leave a round
	// alone until its start completes.
	ready() bool
	idleSince() time.Time
	// forceResolve settles an abandoned round; implementations must be safe
	// to call concurrently with player decisions.
	forceResolve(ctx context.Context)
}

// Service is the round orchestrator: it owns the debit -> resolve -> credit ->
// log sequence for every game and the single-active-round invariant per
// (player, game) pair. Resolvers never touch the ledger themselves.
type Service struct {
	ledger player.Repo
	hist   history.Repo
	bus    *event.Bus
	hub    *ws.Hub
	src    rng.Source
	seeds  *rng.SeedManager
	log    *zap.Logger
	limits map[games.Kind]Limits
	now    func() time.Time

	mu       sync.Mutex
	sessions map[sessionKey]session
}

func New(ledger player.Repo, hist history.Repo, bus *event.Bus, hub *ws.Hub, src rng.Source, log *zap.Logger) *Service {
	return &Service{
		ledger:   ledger,
		hist:     hist,
		bus:      bus,
		hub:      hub,
		src:      src,
		log:      log,
		limits:   defaultLimits(),
		now:      time.Now,
		sessions: make(map[sessionKey]session),
	}
}

// SetSeedManager attaches a provably-fair seed commitment that is rotated
// lazily and echoed on round results.
func (s *Service) SetSeedManager(m *rng.SeedManager) { s.seeds = m }

// Commitment returns the current server-seed hash, if fairness seeds are on.
func (s *Service) Commitment() string {
	if s.seeds == nil {
		return ""
	}
	return s.seeds.Commitment()
}

func (s *Service) checkBet(kind games.Kind, bet int64) error {
	lim, ok := s.limits[kind]
	if !ok {
		return ErrInvalidBet
	}
	if bet < lim.Min || bet > lim.Max {
		return ErrInvalidBet
	}
	return nil
}

// Result is the response for a single-shot round.
type Result struct {
	RoundID        string      `json:"round_id"`
	Game           games.Kind  `json:"game"`
	Bet            int64       `json:"bet"`
	Payout         int64       `json:"payout"`
	Balance        int64       `json:"balance"`
	Detail         interface{} `json:"detail"`
	ServerSeedHash string      `json:"server_seed_hash,omitempty"`
}

// play runs one complete single-shot round: validate, debit, resolve, credit,
// log. The net balance effect is exactly payout - bet.
func (s *Service) play(ctx context.Context, playerID string, kind games.Kind, bet int64,
	resolve func(rng.Source) (int64, interface{})) (*Result, error) {

	if err := s.checkBet(kind, bet); err != nil {
		return nil, err
	}
	balance, err := s.ledger.Adjust(ctx, playerID, -bet)
	if err != nil {
		return nil, err
	}
	if s.seeds != nil {
		s.seeds.MaybeRotate()
	}

	payout, detail := resolve(s.src)

	balance, err = s.creditPayout(ctx, playerID, kind, bet, payout, balance)
	if err != nil {
		return nil, err
	}
	s.record(ctx, playerID, kind, bet, payout, detail)

	return &Result{
		RoundID:        uuid.New().String(),
		Game:           kind,
		Bet:            bet,
		Payout:         payout,
		Balance:        balance,
		Detail:         detail,
		ServerSeedHash: s.Commitment(),
	}, nil
}

// creditPayout applies the win. A failed credit is retried once; if it still
// fails the debited stake is refunded so a fault can never strand the
// player's funds between debit and credit.
func (s *Service) creditPayout(ctx context.Context, playerID string, kind games.Kind,
	bet, payout, debitedBalance int64) (int64, error) {

	if payout == 0 {
		return debitedBalance, nil
	}
	balance, err := s.ledger.Adjust(ctx, playerID, payout)
	if err == nil {
		return balance, nil
	}
	s.log.Warn("payout credit failed, retrying",
		zap.String("player", playerID), zap.String("game", string(kind)), zap.Error(err))
	if balance, err = s.ledger.Adjust(ctx, playerID, payout); err == nil {
		return balance, nil
	}
	if _, refundErr := s.ledger.Adjust(ctx, playerID, bet); refundErr != nil {
		s.log.Error("refund after failed credit also failed",
			zap.String("player", playerID), zap.Int64("bet", bet), zap.Error(refundErr))
	}
	return 0, err
}

// record appends the history entry and publishes the settled event. History
// failures are logged, never surfaced: the balance is already correct.
func (s *Service) record(ctx context.Context, playerID string, kind games.Kind,
	bet, payout int64, detail interface{}) {

	raw, err := json.Marshal(detail)
	if err != nil {
		s.log.Error("marshal round detail", zap.Error(err))
		raw = nil
	}
	if _, err := s.hist.Append(ctx, history.Record{
		PlayerID: playerID,
		Game:     string(kind),
		Bet:      bet,
		Payout:   payout,
		Detail:   raw,
	}); err != nil {
		s.log.Error("append history", zap.String("player", playerID), zap.Error(err))
	}
	if s.bus != nil {
		s.bus.Publish(event.EventRoundSettled, &event.RoundSettled{
			PlayerID: playerID,
			Game:     string(kind),
			Bet:      bet,
			Payout:   payout,
		})
	}
}

// registerSession reserves the (player, game) slot and debits the stake.
// The slot is released again if the debit fails.
func (s *Service) registerSession(ctx context.Context, key sessionKey, bet int64, sess session) error {
	s.mu.Lock()
	if _, exists := s.sessions[key]; exists {
		s.mu.Unlock()
		return ErrRoundActive
	}
	s.sessions[key] = sess
	s.mu.Unlock()

	if _, err := s.ledger.Adjust(ctx, key.playerID, -bet); err != nil {
		s.dropSession(key)
		return err
	}
	return nil
}

func (s *Service) lookupSession(key sessionKey) (session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[key]
	return sess, ok
}

func (s *Service) dropSession(key sessionKey) {
	s.mu.Lock()
	delete(s.sessions, key)
	s.mu.Unlock()
}

// settleSession credits and logs a finished session round. Callers must have
// marked the session terminal and must drop it from the registry themselves.
func (s *Service) settleSession(ctx context.Context, key sessionKey, bet, payout int64, detail interface{}) int64 {
	balance, err := s.creditPayout(ctx, key.playerID, key.game, bet, payout, 0)
	if err != nil {
		s.log.Error("session settle failed", zap.String("player", key.playerID), zap.Error(err))
	}
	if payout == 0 {
		if p, err := s.ledger.Get(ctx, key.playerID); err == nil {
			balance = p.Balance
		}
	}
	s.record(ctx, key.playerID, key.game, bet, payout, detail)
	return balance
}

// SweepExpired force-resolves sessions idle for longer than maxIdle. Mines
// rounds cash out at their accumulated multiplier, blackjack rounds stand.
// Crash rounds terminate on their own clock and are left alone.
func (s *Service) SweepExpired(ctx context.Context, maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	stale := make([]session, 0)
	for key, sess := range s.sessions {
		if key.game == games.KindCrash {
			continue
		}
		if !sess.ready() {
			continue
		}
		if sess.idleSince().Before(cutoff) {
			stale = append(stale, sess)
		}
	}
	s.mu.Unlock()

	for _, sess := range stale {
		sess.forceResolve(ctx)
	}
	return len(stale)
}

// ActiveRounds reports the number of live sessions, for monitoring.
func (s *Service) ActiveRounds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
