package round

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"tg-casino/internal/games"
	"tg-casino/internal/rng"
)

// fakeClock advances the round clock without sleeping. The offset is atomic
// because the crash ticker goroutine reads the clock concurrently.
type fakeClock struct {
	base   time.Time
	offset atomic.Int64
}

func (c *fakeClock) now() time.Time {
	return c.base.Add(time.Duration(c.offset.Load()))
}

func (c *fakeClock) advance(d time.Duration) {
	c.offset.Add(int64(d))
}

// crashSeed finds a seed whose first crash point draw lands at or above min.
func crashSeed(t *testing.T, min float64) uint64 {
	t.Helper()
	for seed := uint64(1); seed < 500; seed++ {
		if games.DrawCrashPoint(rng.NewSeeded(seed)) >= min {
			return seed
		}
	}
	t.Fatalf("no seed with crash point >= %v", min)
	return 0
}

func TestCrashCashOutMidFlight(t *testing.T) {
	seed := crashSeed(t, 2.0)
	svc, ledger, hist := newTestService(t, seed)
	clock := &fakeClock{base: time.Now()}
	svc.now = clock.now
	ctx := context.Background()

	snap, err := svc.StartCrash(ctx, "100", 100)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Multiplier != 1.0 || snap.Status != "flying" {
		t.Fatalf("start snapshot %+v", snap)
	}

	// 50 ticks in: multiplier 1.50, still below the crash point
	clock.advance(50 * games.CrashTickInterval)

	live, err := svc.CrashStatus(ctx, "100")
	if err != nil {
		t.Fatal(err)
	}
	if live.Terminal || live.Multiplier != 1.50 {
		t.Fatalf("mid-flight status %+v, want flying at 1.50", live)
	}

	st, err := svc.CrashCashOut(ctx, "100")
	if err != nil {
		t.Fatal(err)
	}
	if st.Status != "cashed_out" || st.Payout != 150 {
		t.Fatalf("cash-out %+v, want cashed_out with payout 150", st)
	}
	if got := balanceOf(t, ledger, "100"); got != 1050 {
		t.Fatalf("balance = %d, want 1050", got)
	}
	records, _ := hist.List(ctx, "100", 0)
	if len(records) != 1 || records[0].Payout != 150 {
		t.Fatalf("history %v, want one record with payout 150", records)
	}
	if _, err := svc.CrashCashOut(ctx, "100"); !errors.Is(err, ErrRoundNotFound) {
		t.Fatalf("cash-out after settle err = %v, want ErrRoundNotFound", err)
	}
}

func TestCrashCashOutAfterCrashPointLoses(t *testing.T) {
	seed := crashSeed(t, 1.5)
	svc, ledger, _ := newTestService(t, seed)
	clock := &fakeClock{base: time.Now()}
	svc.now = clock.now
	ctx := context.Background()

	if _, err := svc.StartCrash(ctx, "100", 100); err != nil {
		t.Fatal(err)
	}
	clock.advance(time.Hour)

	// the ticker may resolve the round between advance and cash-out, so both
	// outcomes of the race are acceptable; the stake is lost either way
	st, err := svc.CrashCashOut(ctx, "100")
	switch {
	case err == nil:
		if st.Status != "crashed" || st.Payout != 0 {
			t.Fatalf("late cash-out %+v, want crashed with payout 0", st)
		}
	case errors.Is(err, ErrRoundResolved) || errors.Is(err, ErrRoundNotFound):
	default:
		t.Fatal(err)
	}

	waitForNoRounds(t, svc)
	if got := balanceOf(t, ledger, "100"); got != 900 {
		t.Fatalf("balance = %d, want 900", got)
	}
}

func TestCrashTickerResolvesRound(t *testing.T) {
	seed := crashSeed(t, 1.5)
	svc, ledger, hist := newTestService(t, seed)
	clock := &fakeClock{base: time.Now()}
	svc.now = clock.now
	ctx := context.Background()

	if _, err := svc.StartCrash(ctx, "100", 100); err != nil {
		t.Fatal(err)
	}

	// an idle crash round is never swept, the ticker owns its lifecycle
	if n := svc.SweepExpired(ctx, 0); n != 0 {
		t.Fatalf("sweep claimed %d crash rounds", n)
	}

	clock.advance(time.Hour)
	waitForNoRounds(t, svc)

	if got := balanceOf(t, ledger, "100"); got != 900 {
		t.Fatalf("balance = %d, want 900", got)
	}
	records, _ := hist.List(ctx, "100", 0)
	if len(records) != 1 || records[0].Payout != 0 {
		t.Fatalf("history %v, want one crashed record", records)
	}
}

func TestCrashDecisionsWithoutRound(t *testing.T) {
	svc, _, _ := newTestService(t, 1)
	ctx := context.Background()

	if _, err := svc.CrashCashOut(ctx, "100"); !errors.Is(err, ErrRoundNotFound) {
		t.Fatalf("cash-out err = %v", err)
	}
	if _, err := svc.CrashStatus(ctx, "100"); !errors.Is(err, ErrRoundNotFound) {
		t.Fatalf("status err = %v", err)
	}
}

func TestCrashSingleActiveRound(t *testing.T) {
	seed := crashSeed(t, 1.5)
	svc, _, _ := newTestService(t, seed)
	clock := &fakeClock{base: time.Now()}
	svc.now = clock.now
	ctx := context.Background()

	if _, err := svc.StartCrash(ctx, "100", 100); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.StartCrash(ctx, "100", 100); !errors.Is(err, ErrRoundActive) {
		t.Fatalf("second start err = %v, want ErrRoundActive", err)
	}
	if _, err := svc.CrashCashOut(ctx, "100"); err != nil {
		t.Fatal(err)
	}
}

func waitForNoRounds(t *testing.T, svc *Service) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if svc.ActiveRounds() == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("crash round never resolved")
}
