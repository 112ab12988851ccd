package games

import "tg-casino/internal/rng"

type Symbol string

const (
	Cherry  Symbol = "cherry"
	Lemon   Symbol = "lemon"
	Star    Symbol = "star"
	Apple   Symbol = "apple"
	Grapes  Symbol = "grapes"
	Bell    Symbol = "bell"
	Diamond Symbol = "diamond"
)

// reelStrip orders symbols by rarity; weight 100 is the common cherry, 20 the
// diamond jackpot. Order matters for the cumulative-weight draw.
var reelStrip = []struct {
	sym    Symbol
	weight int
}{
	{Cherry, 100},
	{Lemon, 80},
	{Star, 60},
	{Apple, 60},
	{Grapes, 40},
	{Bell, 30},
	{Diamond, 20},
}

// tripleMultiplier pays out three-of-a-kind, rarest symbol highest.
var tripleMultiplier = map[Symbol]int64{
	Cherry:  2,
	Lemon:   3,
	Star:    6,
	Apple:   4,
	Grapes:  5,
	Bell:    8,
	Diamond: 10,
}

// SlotsDetail is the outcome record for a single spin.
type SlotsDetail struct {
	Reels      [3]Symbol `json:"reels"`
	Multiplier float64   `json:"multiplier"`
}

func totalWeight() int {
	total := 0
	for _, e := range reelStrip {
		total += e.weight
	}
	return total
}

func spinReel(src rng.Source) Symbol {
	draw := src.Float64() * float64(totalWeight())
	cumulative := 0
	for _, e := range reelStrip {
		cumulative += e.weight
		if draw <= float64(cumulative) {
			return e.sym
		}
	}
	return reelStrip[0].sym
}

// SpinSlots resolves one spin of three independent weighted reels.
// Three of a kind pays the per-symbol multiplier, any pair pays 1.5x floored
// to a whole unit, anything else loses.
func SpinSlots(bet int64, src rng.Source) (int64, SlotsDetail) {
	reels := [3]Symbol{spinReel(src), spinReel(src), spinReel(src)}

	if reels[0] == reels[1] && reels[1] == reels[2] {
		mult := tripleMultiplier[reels[0]]
		return bet * mult, SlotsDetail{Reels: reels, Multiplier: float64(mult)}
	}

	if reels[0] == reels[1] || reels[1] == reels[2] || reels[0] == reels[2] {
		return bet * 3 / 2, SlotsDetail{Reels: reels, Multiplier: 1.5}
	}

	return 0, SlotsDetail{Reels: reels}
}
