package round

import (
	"context"

	"tg-casino/internal/games"
	"tg-casino/internal/rng"
)

// PlayCoinflip runs one coin flip round.
func (s *Service) PlayCoinflip(ctx context.Context, playerID string, bet int64, choice games.CoinSide) (*Result, error) {
	if !choice.Valid() {
		return nil, ErrInvalidDecision
	}
	return s.play(ctx, playerID, games.KindCoinflip, bet, func(src rng.Source) (int64, interface{}) {
		payout, detail := games.FlipCoin(bet, choice, src)
		return payout, detail
	})
}

// PlayPenalty runs one penalty kick round.
func (s *Service) PlayPenalty(ctx context.Context, playerID string, bet int64, shot games.Direction) (*Result, error) {
	if !shot.Valid() {
		return nil, ErrInvalidDecision
	}
	return s.play(ctx, playerID, games.KindPenalty, bet, func(src rng.Source) (int64, interface{}) {
		payout, detail := games.ShootPenalty(bet, shot, src)
		return payout, detail
	})
}

// PlaySlots runs one slots spin.
func (s *Service) PlaySlots(ctx context.Context, playerID string, bet int64) (*Result, error) {
	return s.play(ctx, playerID, games.KindSlots, bet, func(src rng.Source) (int64, interface{}) {
		payout, detail := games.SpinSlots(bet, src)
		return payout, detail
	})
}

// PlayRoulette settles any mix of simultaneous bets against a single spin.
// The round stake is the sum of the bet amounts and is validated as one bet.
func (s *Service) PlayRoulette(ctx context.Context, playerID string, bets []games.RouletteBet) (*Result, error) {
	if len(bets) == 0 {
		return nil, ErrInvalidDecision
	}
	var total int64
	for _, b := range bets {
		if !b.Valid() {
			return nil, ErrInvalidBet
		}
		total += b.Amount
	}
	return s.play(ctx, playerID, games.KindRoulette, total, func(src rng.Source) (int64, interface{}) {
		winning := games.SpinWheel(src)
		payout, detail := games.ResolveRoulette(bets, winning)
		return payout, detail
	})
}
