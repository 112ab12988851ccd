package round

import (
	"context"
	"errors"
	"testing"

	"tg-casino/internal/games"
)

func TestBlackjackSingleActiveRound(t *testing.T) {
	svc, _, _ := newTestService(t, 4)
	ctx := context.Background()

	st, err := svc.StartBlackjack(ctx, "100", 50)
	if err != nil {
		t.Fatal(err)
	}
	if st.Terminal {
		t.Skip("seed dealt a natural, nothing left to collide with")
	}
	if _, err := svc.StartBlackjack(ctx, "100", 50); !errors.Is(err, ErrRoundActive) {
		t.Fatalf("second start err = %v, want ErrRoundActive", err)
	}
	// the round stays playable
	if _, err := svc.BlackjackStand(ctx, "100"); err != nil {
		t.Fatal(err)
	}
	// and once resolved, a new round may start
	if _, err := svc.StartBlackjack(ctx, "100", 50); err != nil {
		t.Fatal(err)
	}
}

func TestBlackjackStandSettlesBalance(t *testing.T) {
	svc, ledger, hist := newTestService(t, 6)
	ctx := context.Background()

	st, err := svc.StartBlackjack(ctx, "100", 100)
	if err != nil {
		t.Fatal(err)
	}
	if !st.Terminal {
		if got := balanceOf(t, ledger, "100"); got != 900 {
			t.Fatalf("stake not debited on start: balance %d", got)
		}
		if len(st.DealerCards) != 1 {
			t.Fatalf("dealer must show exactly one card mid-round, got %d", len(st.DealerCards))
		}
		st, err = svc.BlackjackStand(ctx, "100")
		if err != nil {
			t.Fatal(err)
		}
	}
	if !st.Terminal {
		t.Fatal("stand must resolve the round")
	}
	if got := balanceOf(t, ledger, "100"); got != 1000-100+st.Payout {
		t.Fatalf("balance = %d, want %d", got, 1000-100+st.Payout)
	}
	if st.DealerScore < 17 && st.Status != games.BlackjackBust {
		t.Fatalf("dealer stopped below 17 at %d", st.DealerScore)
	}
	records, _ := hist.List(ctx, "100", 0)
	if len(records) != 1 || records[0].Game != "blackjack" {
		t.Fatalf("expected one blackjack history record, got %v", records)
	}
}

func TestBlackjackHitUntilBustLosesStake(t *testing.T) {
	// hit forever: every seed eventually busts or hits 21; busting must pay 0
	for seed := uint64(0); seed < 30; seed++ {
		svc, ledger, _ := newTestService(t, seed)
		ctx := context.Background()

		st, err := svc.StartBlackjack(ctx, "100", 100)
		if err != nil {
			t.Fatal(err)
		}
		for !st.Terminal && st.PlayerScore < 21 {
			st, err = svc.BlackjackHit(ctx, "100")
			if err != nil {
				t.Fatal(err)
			}
		}
		if st.Terminal && st.Status == games.BlackjackBust {
			if st.Payout != 0 {
				t.Fatalf("seed %d: bust paid %d", seed, st.Payout)
			}
			if got := balanceOf(t, ledger, "100"); got != 900 {
				t.Fatalf("seed %d: balance after bust = %d, want 900", seed, got)
			}
			if _, err := svc.BlackjackHit(ctx, "100"); !errors.Is(err, ErrRoundNotFound) {
				t.Fatalf("hit after bust err = %v, want ErrRoundNotFound", err)
			}
			return
		}
	}
	t.Fatal("no seed produced a bust in 30 attempts")
}

func TestBlackjackNaturalPaysFiveToTwo(t *testing.T) {
	// search for a seed that deals the player a natural without a dealer natural
	for seed := uint64(0); seed < 3000; seed++ {
		svc, ledger, _ := newTestService(t, seed)
		st, err := svc.StartBlackjack(context.Background(), "100", 100)
		if err != nil {
			t.Fatal(err)
		}
		if st.Terminal && st.Status == games.BlackjackNatural {
			if st.Payout != 250 {
				t.Fatalf("seed %d: natural paid %d, want 250", seed, st.Payout)
			}
			if got := balanceOf(t, ledger, "100"); got != 1150 {
				t.Fatalf("seed %d: balance = %d, want 1150", seed, got)
			}
			return
		}
	}
	t.Fatal("no seed dealt a natural in 3000 attempts")
}

func TestBlackjackDecisionWithoutRound(t *testing.T) {
	svc, _, _ := newTestService(t, 4)
	ctx := context.Background()
	if _, err := svc.BlackjackHit(ctx, "100"); !errors.Is(err, ErrRoundNotFound) {
		t.Fatalf("hit err = %v, want ErrRoundNotFound", err)
	}
	if _, err := svc.BlackjackStand(ctx, "100"); !errors.Is(err, ErrRoundNotFound) {
		t.Fatalf("stand err = %v, want ErrRoundNotFound", err)
	}
}

func TestBlackjackStatusResumesHand(t *testing.T) {
	svc, _, _ := newTestService(t, 2)
	ctx := context.Background()

	if _, err := svc.BlackjackStatus("100"); !errors.Is(err, ErrRoundNotFound) {
		t.Fatalf("status without round err = %v, want ErrRoundNotFound", err)
	}

	started, err := svc.StartBlackjack(ctx, "100", 100)
	if err != nil {
		t.Fatal(err)
	}
	if started.Terminal {
		t.Skip("dealt a natural, nothing to resume")
	}

	st, err := svc.BlackjackStatus("100")
	if err != nil {
		t.Fatal(err)
	}
	if st.RoundID != started.RoundID || st.Terminal {
		t.Fatalf("status %+v does not match the live round", st)
	}
	if len(st.DealerCards) != 1 {
		t.Fatalf("status shows %d dealer cards, the hole card must stay hidden", len(st.DealerCards))
	}
	if st.PlayerScore != games.HandValue(st.PlayerCards) {
		t.Fatalf("status score %d does not match cards", st.PlayerScore)
	}

	if _, err := svc.BlackjackStand(ctx, "100"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.BlackjackStatus("100"); !errors.Is(err, ErrRoundNotFound) {
		t.Fatalf("status after settle err = %v, want ErrRoundNotFound", err)
	}
}
