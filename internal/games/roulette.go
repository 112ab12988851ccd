package games

import "tg-casino/internal/rng"

type RouletteBetType string

const (
	BetNumber RouletteBetType = "number"
	BetColor  RouletteBetType = "color"
	BetEven   RouletteBetType = "even"
	BetOdd    RouletteBetType = "odd"
	BetLow    RouletteBetType = "low"
	BetHigh   RouletteBetType = "high"
)

// RouletteBet is one of possibly several simultaneous bets on a single spin.
// Number is only read for straight bets, Color only for color bets.
type RouletteBet struct {
	Type   RouletteBetType `json:"type"`
	Number int             `json:"number,omitempty"`
	Color  string          `json:"color,omitempty"`
	Amount int64           `json:"amount"`
}

func (b RouletteBet) Valid() bool {
	if b.Amount <= 0 {
		return false
	}
	switch b.Type {
	case BetNumber:
		return b.Number >= 0 && b.Number <= 36
	case BetColor:
		return b.Color == "red" || b.Color == "black"
	case BetEven, BetOdd, BetLow, BetHigh:
		return true
	}
	return false
}

// European wheel: fixed partition of 1-36. Zero is green and voids every
// outside bet.
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// PocketColor reports "green", "red" or "black" for a pocket.
func PocketColor(n int) string {
	if n == 0 {
		return "green"
	}
	if redNumbers[n] {
		return "red"
	}
	return "black"
}

// SpinWheel draws the winning pocket, 0-36.
func SpinWheel(src rng.Source) int { return src.IntN(37) }

// BetPayout returns the total payout for one bet given the winning pocket:
// a straight hit pays 35x the stake, every outside bet 2x, zero loses all
// outside bets.
func BetPayout(b RouletteBet, winning int) int64 {
	switch b.Type {
	case BetNumber:
		if b.Number == winning {
			return b.Amount * 35
		}
	case BetColor:
		if winning != 0 && PocketColor(winning) == b.Color {
			return b.Amount * 2
		}
	case BetEven:
		if winning != 0 && winning%2 == 0 {
			return b.Amount * 2
		}
	case BetOdd:
		if winning%2 == 1 {
			return b.Amount * 2
		}
	case BetLow:
		if winning >= 1 && winning <= 18 {
			return b.Amount * 2
		}
	case BetHigh:
		if winning >= 19 && winning <= 36 {
			return b.Amount * 2
		}
	}
	return 0
}

// RouletteBetResult pairs a submitted bet with its individual payout.
type RouletteBetResult struct {
	RouletteBet
	Payout int64 `json:"payout"`
}

// RouletteDetail is the outcome record for one spin.
type RouletteDetail struct {
	WinningNumber int                 `json:"winning_number"`
	Color         string              `json:"color"`
	Bets          []RouletteBetResult `json:"bets"`
	TotalPayout   int64               `json:"total_payout"`
}

// ResolveRoulette settles every bet against one winning pocket. The round
// payout is the sum of per-bet payouts.
func ResolveRoulette(bets []RouletteBet, winning int) (int64, RouletteDetail) {
	d := RouletteDetail{
		WinningNumber: winning,
		Color:         PocketColor(winning),
		Bets:          make([]RouletteBetResult, 0, len(bets)),
	}
	for _, b := range bets {
		p := BetPayout(b, winning)
		d.Bets = append(d.Bets, RouletteBetResult{RouletteBet: b, Payout: p})
		d.TotalPayout += p
	}
	return d.TotalPayout, d
}
