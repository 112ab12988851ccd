package games

// BlackjackStatus mirrors the lifecycle of a blackjack round.
type BlackjackStatus string

const (
	BlackjackActive     BlackjackStatus = "active"
	BlackjackPlayerWins BlackjackStatus = "player_wins"
	BlackjackDealerWins BlackjackStatus = "dealer_wins"
	BlackjackPush       BlackjackStatus = "push"
	BlackjackNatural    BlackjackStatus = "blackjack"
	BlackjackBust       BlackjackStatus = "bust"
)

// BlackjackDetail is the outcome record for a finished blackjack round.
type BlackjackDetail struct {
	PlayerCards []Card          `json:"player_cards"`
	DealerCards []Card          `json:"dealer_cards"`
	PlayerScore int             `json:"player_score"`
	DealerScore int             `json:"dealer_score"`
	Status      BlackjackStatus `json:"status"`
}

// DealerPlay draws for the dealer until the hand reaches 17 or more.
func DealerPlay(deck *Deck, hand []Card) []Card {
	for HandValue(hand) < 17 {
		hand = append(hand, deck.Draw())
	}
	return hand
}

// SettleNatural resolves a player dealt 21. Pays 2.5x unless the dealer also
// holds 21, which pushes the stake back.
func SettleNatural(bet int64, dealerScore int) (int64, BlackjackStatus) {
	if dealerScore == 21 {
		return bet, BlackjackPush
	}
	return bet * 5 / 2, BlackjackNatural
}

// SettleStand compares final totals after the dealer has played. A dealer
// bust or lower total pays 2x, equal totals push, otherwise the stake is lost.
func SettleStand(bet int64, playerScore, dealerScore int) (int64, BlackjackStatus) {
	switch {
	case dealerScore > 21 || playerScore > dealerScore:
		return bet * 2, BlackjackPlayerWins
	case playerScore == dealerScore:
		return bet, BlackjackPush
	default:
		return 0, BlackjackDealerWins
	}
}
