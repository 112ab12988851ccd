package games

import (
	"testing"
	"time"

	"tg-casino/internal/rng"
)

func TestDrawCrashPointBounds(t *testing.T) {
	src := rng.NewSeeded(23)
	for i := 0; i < 100000; i++ {
		p := DrawCrashPoint(src)
		if p < 1.0 || p >= 22.5 {
			t.Fatalf("crash point %v outside [1, 22.5)", p)
		}
	}
}

func TestDrawCrashPointTiers(t *testing.T) {
	src := rng.NewSeeded(29)
	const n = 200000
	var instant, low, mid, high, top int
	for i := 0; i < n; i++ {
		p := DrawCrashPoint(src)
		switch {
		case p == 1.0:
			instant++
		case p < 1.5:
			low++
		case p < 2.5:
			mid++
		case p < 7.5:
			high++
		default:
			top++
		}
	}
	near := func(got int, want float64, name string) {
		f := float64(got) / n
		if f < want-0.01 || f > want+0.01 {
			t.Errorf("%s tier frequency %f, want ~%f", name, f, want)
		}
	}
	near(instant, 0.04, "instant")
	near(low, 0.11, "low")
	near(mid, 0.35, "mid")
	near(high, 0.35, "high")
	near(top, 0.15, "top")
}

func TestCrashMultiplierAt(t *testing.T) {
	cases := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 1.00},
		{99 * time.Millisecond, 1.00},
		{100 * time.Millisecond, 1.01},
		{250 * time.Millisecond, 1.02},
		{time.Second, 1.10},
		{10 * time.Second, 2.00},
		{-time.Second, 1.00},
	}
	for _, tc := range cases {
		got := CrashMultiplierAt(tc.elapsed)
		if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("multiplier(%v) = %v, want %v", tc.elapsed, got, tc.want)
		}
	}
}

func TestCrashPayoutFloors(t *testing.T) {
	if p := CrashPayout(100, 1.57); p != 157 {
		t.Fatalf("payout = %d, want 157", p)
	}
	if p := CrashPayout(33, 1.01); p != 33 {
		t.Fatalf("payout = %d, want floor(33*1.01) = 33", p)
	}
}
