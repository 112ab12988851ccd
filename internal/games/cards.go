package games

import "tg-casino/internal/rng"

// Card is a standard playing card. Rank is "A", "2".."10", "J", "Q", "K".
type Card struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

var (
	cardRanks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
	cardSuits = []string{"♠", "♥", "♦", "♣"}
)

func (c Card) String() string { return c.Rank + c.Suit }

// Value returns the blackjack value of the card, counting aces as 11.
func (c Card) Value() int {
	switch c.Rank {
	case "A":
		return 11
	case "J", "Q", "K", "10":
		return 10
	case "2", "3", "4", "5", "6", "7", "8", "9":
		return int(c.Rank[0] - '0')
	}
	return 0
}

// Deck is a single 52-card deck dealt from the top.
type Deck struct {
	cards []Card
	dealt int
}

// NewDeck builds a shuffled 52-card deck using a Fisher-Yates permutation
// driven by src.
func NewDeck(src rng.Source) *Deck {
	cards := make([]Card, 0, 52)
	for _, suit := range cardSuits {
		for _, rank := range cardRanks {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	for i := len(cards) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return &Deck{cards: cards}
}

// Draw deals the next card. Panics past 52 cards; a blackjack round can never
// exhaust a full deck.
func (d *Deck) Draw() Card {
	c := d.cards[d.dealt]
	d.dealt++
	return c
}

// Remaining reports undealt cards.
func (d *Deck) Remaining() int { return len(d.cards) - d.dealt }

// HandValue totals a blackjack hand, dropping aces from 11 to 1 while the
// hand would otherwise bust.
func HandValue(cards []Card) int {
	value, aces := 0, 0
	for _, c := range cards {
		value += c.Value()
		if c.Rank == "A" {
			aces++
		}
	}
	for value > 21 && aces > 0 {
		value -= 10
		aces--
	}
	return value
}
