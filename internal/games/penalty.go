package games

import "tg-casino/internal/rng"

type Direction string

const (
	Left   Direction = "left"
	Center Direction = "center"
	Right  Direction = "right"
)

var directions = []Direction{Left, Center, Right}

func (d Direction) Valid() bool { return d == Left || d == Center || d == Right }

// Goal odds depend on whether the keeper guesses the shot direction.
const (
	guessedGoalChance = 0.30
	openGoalChance    = 0.85
)

// PenaltyDetail is the outcome record for a single penalty kick.
type PenaltyDetail struct {
	Shot   Direction `json:"shot"`
	Keeper Direction `json:"keeper"`
	Goal   bool      `json:"goal"`
}

// ShootPenalty resolves one kick. The keeper dives uniformly; a goal pays 2x.
func ShootPenalty(bet int64, shot Direction, src rng.Source) (int64, PenaltyDetail) {
	keeper := directions[src.IntN(3)]

	chance := openGoalChance
	if shot == keeper {
		chance = guessedGoalChance
	}
	goal := src.Float64() < chance

	d := PenaltyDetail{Shot: shot, Keeper: keeper, Goal: goal}
	if goal {
		return bet * 2, d
	}
	return 0, d
}
