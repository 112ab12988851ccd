package games

import (
	"testing"

	"tg-casino/internal/rng"
)

func TestFlipCoinPayoutIsExact(t *testing.T) {
	src := rng.NewSeeded(1)
	for i := 0; i < 1000; i++ {
		payout, d := FlipCoin(100, Heads, src)
		if d.Win && payout != 200 {
			t.Fatalf("win payout = %d, want 200", payout)
		}
		if !d.Win && payout != 0 {
			t.Fatalf("loss payout = %d, want 0", payout)
		}
		if d.Win != (d.Choice == d.Result) {
			t.Fatalf("win flag inconsistent with %+v", d)
		}
	}
}

func TestFlipCoinRoughlyFair(t *testing.T) {
	src := rng.NewSeeded(7)
	heads := 0
	const n = 100000
	for i := 0; i < n; i++ {
		_, d := FlipCoin(1, Heads, src)
		if d.Result == Heads {
			heads++
		}
	}
	freq := float64(heads) / n
	if freq < 0.49 || freq > 0.51 {
		t.Fatalf("heads frequency %f not near 0.5", freq)
	}
}

func TestCoinSideValid(t *testing.T) {
	if !Heads.Valid() || !Tails.Valid() {
		t.Fatal("heads and tails must validate")
	}
	if CoinSide("edge").Valid() {
		t.Fatal("unknown side must not validate")
	}
}
