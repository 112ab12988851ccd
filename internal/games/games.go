package games

// Kind identifies a game for round routing, history records and bet limits.
type Kind string

const (
	KindSlots     Kind = "slots"
	KindBlackjack Kind = "blackjack"
	KindRoulette  Kind = "roulette"
	KindMines     Kind = "mines"
	KindCrash     Kind = "crash"
	KindCoinflip  Kind = "coinflip"
	KindPenalty   Kind = "penalty"
)

// Kinds lists every supported game.
func Kinds() []Kind {
	return []Kind{
		KindSlots, KindBlackjack, KindRoulette, KindMines,
		KindCrash, KindCoinflip, KindPenalty,
	}
}

func (k Kind) Valid() bool {
	switch k {
	case KindSlots, KindBlackjack, KindRoulette, KindMines,
		KindCrash, KindCoinflip, KindPenalty:
		return true
	}
	return false
}
