package games

import (
	"testing"

	"tg-casino/internal/rng"
)

func TestShootPenaltyPayoutIsExact(t *testing.T) {
	src := rng.NewSeeded(3)
	for i := 0; i < 1000; i++ {
		payout, d := ShootPenalty(50, Left, src)
		if d.Goal && payout != 100 {
			t.Fatalf("goal payout = %d, want 100", payout)
		}
		if !d.Goal && payout != 0 {
			t.Fatalf("save payout = %d, want 0", payout)
		}
		if !d.Keeper.Valid() {
			t.Fatalf("keeper direction %q invalid", d.Keeper)
		}
	}
}

func TestShootPenaltyGoalRates(t *testing.T) {
	src := rng.NewSeeded(11)
	const n = 200000
	guessedGoals, guessed := 0, 0
	openGoals, open := 0, 0
	for i := 0; i < n; i++ {
		_, d := ShootPenalty(1, Center, src)
		if d.Shot == d.Keeper {
			guessed++
			if d.Goal {
				guessedGoals++
			}
		} else {
			open++
			if d.Goal {
				openGoals++
			}
		}
	}
	if g := float64(guessedGoals) / float64(guessed); g < 0.28 || g > 0.32 {
		t.Fatalf("guessed-direction goal rate %f, want ~0.30", g)
	}
	if g := float64(openGoals) / float64(open); g < 0.83 || g > 0.87 {
		t.Fatalf("open goal rate %f, want ~0.85", g)
	}
	// keeper dives uniformly, so it guesses right about a third of the time
	if r := float64(guessed) / n; r < 0.31 || r > 0.36 {
		t.Fatalf("keeper guess rate %f, want ~1/3", r)
	}
}
