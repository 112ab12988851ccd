package round

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"tg-casino/internal/games"
)

// BlackjackState is the client view of a blackjack round. The dealer's hole
// card stays hidden until the round is terminal.
type BlackjackState struct {
	RoundID     string                `json:"round_id"`
	PlayerCards []games.Card          `json:"player_cards"`
	DealerCards []games.Card          `json:"dealer_cards"`
	PlayerScore int                   `json:"player_score"`
	DealerScore int                   `json:"dealer_score"`
	Status      games.BlackjackStatus `json:"status"`
	Terminal    bool                  `json:"terminal"`
	Payout      int64                 `json:"payout"`
	Balance     int64                 `json:"balance,omitempty"`
}

type blackjackRound struct {
	svc *Service
	key sessionKey
	id  string
	bet int64

	mu       sync.Mutex
	armed    bool
	resolved bool
	deck     *games.Deck
	player   []games.Card
	dealer   []games.Card
	lastMove time.Time
}

func (r *blackjackRound) ready() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.armed
}

func (r *blackjackRound) idleSince() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastMove
}

// forceResolve stands an abandoned hand.
func (r *blackjackRound) forceResolve(ctx context.Context) {
	r.stand(ctx)
}

// StartBlackjack debits the stake and deals. A dealt 21 resolves immediately:
// natural pays 2.5x, a dealer natural turns it into a push.
func (s *Service) StartBlackjack(ctx context.Context, playerID string, bet int64) (*BlackjackState, error) {
	if err := s.checkBet(games.KindBlackjack, bet); err != nil {
		return nil, err
	}
	key := sessionKey{playerID: playerID, game: games.KindBlackjack}
	r := &blackjackRound{
		svc: s,
		key: key,
		id:  uuid.New().String(),
		bet: bet,
	}
	// deal before the round is visible to the registry or the sweeper
	r.deck = games.NewDeck(s.src)
	r.player = []games.Card{r.deck.Draw(), r.deck.Draw()}
	r.dealer = []games.Card{r.deck.Draw(), r.deck.Draw()}
	r.lastMove = s.now()

	if err := s.registerSession(ctx, key, bet, r); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.armed = true

	if games.HandValue(r.player) == 21 {
		payout, status := games.SettleNatural(bet, games.HandValue(r.dealer))
		return r.finish(ctx, payout, status), nil
	}
	defer r.mu.Unlock()
	return r.state(), nil
}

// BlackjackHit draws one card. A bust loses the stake immediately.
func (s *Service) BlackjackHit(ctx context.Context, playerID string) (*BlackjackState, error) {
	r, err := s.blackjackSession(playerID)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	if r.resolved {
		r.mu.Unlock()
		return nil, ErrRoundResolved
	}
	r.player = append(r.player, r.deck.Draw())
	r.lastMove = s.now()

	if games.HandValue(r.player) > 21 {
		return r.finish(ctx, 0, games.BlackjackBust), nil
	}
	defer r.mu.Unlock()
	return r.state(), nil
}

// BlackjackStand lets the dealer play out and settles the comparison.
func (s *Service) BlackjackStand(ctx context.Context, playerID string) (*BlackjackState, error) {
	r, err := s.blackjackSession(playerID)
	if err != nil {
		return nil, err
	}
	st := r.stand(ctx)
	if st == nil {
		return nil, ErrRoundResolved
	}
	return st, nil
}

func (r *blackjackRound) stand(ctx context.Context) *BlackjackState {
	r.mu.Lock()
	if r.resolved {
		r.mu.Unlock()
		return nil
	}
	r.dealer = games.DealerPlay(r.deck, r.dealer)
	payout, status := games.SettleStand(r.bet, games.HandValue(r.player), games.HandValue(r.dealer))
	return r.finish(ctx, payout, status)
}

// BlackjackStatus reports the in-progress view, so a reconnecting client can
// resume its hand.
func (s *Service) BlackjackStatus(playerID string) (*BlackjackState, error) {
	r, err := s.blackjackSession(playerID)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.resolved {
		return nil, ErrRoundResolved
	}
	return r.state(), nil
}

func (s *Service) blackjackSession(playerID string) (*blackjackRound, error) {
	sess, ok := s.lookupSession(sessionKey{playerID: playerID, game: games.KindBlackjack})
	if !ok {
		return nil, ErrRoundNotFound
	}
	r, ok := sess.(*blackjackRound)
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

// finish settles the round. Caller holds r.mu; finish releases it.
func (r *blackjackRound) finish(ctx context.Context, payout int64, status games.BlackjackStatus) *BlackjackState {
	r.resolved = true
	detail := games.BlackjackDetail{
		PlayerCards: r.player,
		DealerCards: r.dealer,
		PlayerScore: games.HandValue(r.player),
		DealerScore: games.HandValue(r.dealer),
		Status:      status,
	}
	st := r.state()
	st.Status = status
	st.Terminal = true
	st.Payout = payout
	st.DealerCards = r.dealer
	st.DealerScore = detail.DealerScore
	r.mu.Unlock()

	r.svc.dropSession(r.key)
	st.Balance = r.svc.settleSession(ctx, r.key, r.bet, payout, detail)
	return st
}

// state renders the in-progress view. Caller holds r.mu.
func (r *blackjackRound) state() *BlackjackState {
	st := &BlackjackState{
		RoundID:     r.id,
		PlayerCards: append([]games.Card(nil), r.player...),
		PlayerScore: games.HandValue(r.player),
		Status:      games.BlackjackActive,
	}
	if !r.resolved && len(r.dealer) > 0 {
		// only the up-card until the player stands
		st.DealerCards = []games.Card{r.dealer[0]}
		st.DealerScore = r.dealer[0].Value()
	}
	return st
}
