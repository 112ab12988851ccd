package round

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"tg-casino/internal/games"
)

// MinesState is the client view of a mines round. Mine positions are only
// disclosed once the round is terminal.
type MinesState struct {
	RoundID         string  `json:"round_id"`
	GridSize        int     `json:"grid_size"`
	MineCount       int     `json:"mine_count"`
	Revealed        []int   `json:"revealed"`
	Multiplier      float64 `json:"multiplier"`
	PotentialPayout int64   `json:"potential_payout"`
	Status          string  `json:"status"`
	Terminal        bool    `json:"terminal"`
	Payout          int64   `json:"payout"`
	Balance         int64   `json:"balance,omitempty"`
	MinePositions   []int   `json:"mine_positions,omitempty"`
}

type minesRound struct {
	svc       *Service
	key       sessionKey
	id        string
	bet       int64
	mineCount int

	mu       sync.Mutex
	armed    bool
	resolved bool
	mines    map[int]bool
	revealed map[int]bool
	lastMove time.Time
}

func (r *minesRound) ready() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.armed
}

func (r *minesRound) idleSince() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastMove
}

// forceResolve cashes an abandoned round out at its accumulated multiplier;
// with nothing revealed that is exactly the stake back.
func (r *minesRound) forceResolve(ctx context.Context) {
	r.mu.Lock()
	if r.resolved {
		r.mu.Unlock()
		return
	}
	mult := games.MinesMultiplier(len(r.revealed), games.MinesGridSize, r.mineCount)
	r.finish(ctx, games.MinesPayout(r.bet, mult), "expired")
}

// StartMines debits the stake and lays the minefield. mineCount 0 selects the
// canonical 5-mine board.
func (s *Service) StartMines(ctx context.Context, playerID string, bet int64, mineCount int) (*MinesState, error) {
	if mineCount == 0 {
		mineCount = games.MinesDefaultMineCount
	}
	if mineCount < 1 || mineCount >= games.MinesGridSize {
		return nil, ErrInvalidDecision
	}
	if err := s.checkBet(games.KindMines, bet); err != nil {
		return nil, err
	}

	key := sessionKey{playerID: playerID, game: games.KindMines}
	r := &minesRound{
		svc:       s,
		key:       key,
		id:        uuid.New().String(),
		bet:       bet,
		mineCount: mineCount,
	}
	// lay the field before the round is visible to the registry or the sweeper
	r.mines = make(map[int]bool, mineCount)
	for _, m := range games.PlaceMines(games.MinesGridSize, mineCount, s.src) {
		r.mines[m] = true
	}
	r.revealed = make(map[int]bool)
	r.lastMove = s.now()

	if err := s.registerSession(ctx, key, bet, r); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.armed = true
	defer r.mu.Unlock()
	return r.state(), nil
}

// MinesStatus reports the in-progress view, so a reconnecting client can
// resume its board.
func (s *Service) MinesStatus(playerID string) (*MinesState, error) {
	r, err := s.minesSession(playerID)
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

// MinesReveal uncovers one cell. A mine ends the round with payout 0; the
// last safe cell auto-wins at the reached multiplier.
func (s *Service) MinesReveal(ctx context.Context, playerID string, cell int) (*MinesState, error) {
	r, err := s.minesSession(playerID)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	if r.resolved {
		r.mu.Unlock()
		return nil, ErrRoundResolved
	}
	if cell < 0 || cell >= games.MinesGridSize || r.revealed[cell] {
		r.mu.Unlock()
		return nil, ErrInvalidDecision
	}
	r.lastMove = s.now()

	if r.mines[cell] {
		r.revealed[cell] = true
		return r.finish(ctx, 0, "lost"), nil
	}

	r.revealed[cell] = true
	safe := games.MinesGridSize - r.mineCount
	mult := games.MinesMultiplier(len(r.revealed), games.MinesGridSize, r.mineCount)
	if len(r.revealed) == safe {
		return r.finish(ctx, games.MinesPayout(r.bet, mult), "won"), nil
	}
	defer r.mu.Unlock()
	return r.state(), nil
}

// MinesCashOut locks in the current multiplier. Cashing out before any safe
// reveal is rejected.
func (s *Service) MinesCashOut(ctx context.Context, playerID string) (*MinesState, error) {
	r, err := s.minesSession(playerID)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	if r.resolved {
		r.mu.Unlock()
		return nil, ErrRoundResolved
	}
	if len(r.revealed) == 0 {
		r.mu.Unlock()
		return nil, ErrInvalidDecision
	}
	mult := games.MinesMultiplier(len(r.revealed), games.MinesGridSize, r.mineCount)
	return r.finish(ctx, games.MinesPayout(r.bet, mult), "cashed_out"), nil
}

func (s *Service) minesSession(playerID string) (*minesRound, error) {
	sess, ok := s.lookupSession(sessionKey{playerID: playerID, game: games.KindMines})
	if !ok {
		return nil, ErrRoundNotFound
	}
	r, ok := sess.(*minesRound)
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
func (r *minesRound) finish(ctx context.Context, payout int64, status string) *MinesState {
	r.resolved = true
	detail := games.MinesDetail{
		GridSize:      games.MinesGridSize,
		MineCount:     r.mineCount,
		MinePositions: sortedKeys(r.mines),
		Revealed:      sortedKeys(r.revealed),
		Multiplier:    games.MinesMultiplier(countSafe(r.revealed, r.mines), games.MinesGridSize, r.mineCount),
		Status:        status,
	}
	st := r.state()
	st.Status = status
	st.Terminal = true
	st.Payout = payout
	st.MinePositions = detail.MinePositions
	r.mu.Unlock()

	r.svc.dropSession(r.key)
	st.Balance = r.svc.settleSession(ctx, r.key, r.bet, payout, detail)
	return st
}

// state renders the in-progress view. Caller holds r.mu.
func (r *minesRound) state() *MinesState {
	safeRevealed := countSafe(r.revealed, r.mines)
	mult := games.MinesMultiplier(safeRevealed, games.MinesGridSize, r.mineCount)
	return &MinesState{
		RoundID:         r.id,
		GridSize:        games.MinesGridSize,
		MineCount:       r.mineCount,
		Revealed:        sortedKeys(r.revealed),
		Multiplier:      mult,
		PotentialPayout: games.MinesPayout(r.bet, mult),
		Status:          "active",
	}
}

func countSafe(revealed, mines map[int]bool) int {
	n := 0
	for cell := range revealed {
		if !mines[cell] {
			n++
		}
	}
	return n
}

func sortedKeys(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
