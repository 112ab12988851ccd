package games

import (
	"testing"

	"tg-casino/internal/rng"
)

func TestSpinSlotsPayoutTable(t *testing.T) {
	src := rng.NewSeeded(5)
	for i := 0; i < 5000; i++ {
		payout, d := SpinSlots(100, src)
		r := d.Reels
		switch {
		case r[0] == r[1] && r[1] == r[2]:
			want := 100 * tripleMultiplier[r[0]]
			if payout != want {
				t.Fatalf("triple %v payout = %d, want %d", r, payout, want)
			}
		case r[0] == r[1] || r[1] == r[2] || r[0] == r[2]:
			if payout != 150 {
				t.Fatalf("pair %v payout = %d, want 150", r, payout)
			}
		default:
			if payout != 0 {
				t.Fatalf("no match %v payout = %d, want 0", r, payout)
			}
		}
	}
}

func TestSpinSlotsPairPayoutFloors(t *testing.T) {
	// 1.5x of an odd stake must floor to a whole unit.
	src := rng.NewSeeded(5)
	for i := 0; i < 5000; i++ {
		payout, d := SpinSlots(101, src)
		if d.Multiplier == 1.5 && payout != 151 {
			t.Fatalf("pair payout = %d, want floor(101*1.5) = 151", payout)
		}
	}
}

func TestSpinReelWeighting(t *testing.T) {
	src := rng.NewSeeded(9)
	counts := make(map[Symbol]int)
	const n = 390000 // 1000 draws per unit of weight
	for i := 0; i < n; i++ {
		counts[spinReel(src)]++
	}
	// cherry (weight 100) must come up far more often than diamond (weight 20)
	if counts[Cherry] < 4*counts[Diamond] {
		t.Fatalf("cherry=%d diamond=%d, weighting looks off", counts[Cherry], counts[Diamond])
	}
	for _, e := range reelStrip {
		want := n * e.weight / totalWeight()
		got := counts[e.sym]
		if got < want*9/10 || got > want*11/10 {
			t.Fatalf("%s drawn %d times, want ~%d", e.sym, got, want)
		}
	}
}

func TestTripleMultiplierOrdering(t *testing.T) {
	// rarest symbol pays the most
	if tripleMultiplier[Diamond] != 10 || tripleMultiplier[Cherry] != 2 {
		t.Fatalf("jackpot table edges wrong: %v", tripleMultiplier)
	}
	if tripleMultiplier[Diamond] <= tripleMultiplier[Bell] {
		t.Fatal("diamond must outpay bell")
	}
}
