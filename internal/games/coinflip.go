package games

import "tg-casino/internal/rng"

type CoinSide string

const (
	Heads CoinSide = "heads"
	Tails CoinSide = "tails"
)

func (s CoinSide) Valid() bool { return s == Heads || s == Tails }

// CoinflipDetail is the outcome record for a single flip.
type CoinflipDetail struct {
	Choice CoinSide `json:"choice"`
	Result CoinSide `json:"result"`
	Win    bool     `json:"win"`
}

// FlipCoin resolves one coin flip. A correct call pays 2x the stake.
func FlipCoin(bet int64, choice CoinSide, src rng.Source) (int64, CoinflipDetail) {
	result := Heads
	if src.Float64() >= 0.5 {
		result = Tails
	}
	d := CoinflipDetail{Choice: choice, Result: result, Win: choice == result}
	if d.Win {
		return bet * 2, d
	}
	return 0, d
}
