package withdraw

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"tg-casino/internal/event"
	"tg-casino/internal/player"
)

func newTestWithdraw(t *testing.T) (*Service, player.Repo) {
	t.Helper()
	ledger := player.NewMemoryRepo()
	if _, err := ledger.Create(context.Background(), "100", "tester"); err != nil {
		t.Fatal(err)
	}
	return New(ledger, NewMemoryRepo(), event.NewBus(), zap.NewNop()), ledger
}

func balanceOf(t *testing.T, ledger player.Repo, tid string) int64 {
	t.Helper()
	p, err := ledger.Get(context.Background(), tid)
	if err != nil {
		t.Fatal(err)
	}
	return p.Balance
}

func TestRequestDebitsImmediately(t *testing.T) {
	svc, ledger := newTestWithdraw(t)
	ctx := context.Background()

	id, err := svc.Request(ctx, "100", 400, "addr-1")
	if err != nil {
		t.Fatal(err)
	}
	if got := balanceOf(t, ledger, "100"); got != 600 {
		t.Fatalf("balance = %d, want 600", got)
	}

	pending, err := svc.Pending(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 1 || pending[0].ID != id || pending[0].Amount != 400 {
		t.Fatalf("pending = %+v", pending)
	}
}

func TestRequestRejectsOverdraw(t *testing.T) {
	svc, ledger := newTestWithdraw(t)
	ctx := context.Background()

	if _, err := svc.Request(ctx, "100", 2000, "addr-1"); !errors.Is(err, player.ErrInsufficientFunds) {
		t.Fatalf("overdraw err = %v", err)
	}
	if got := balanceOf(t, ledger, "100"); got != 1000 {
		t.Fatalf("balance touched on rejected request: %d", got)
	}
	if _, err := svc.Request(ctx, "100", 0, "addr-1"); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("zero amount err = %v", err)
	}
}

func TestApproveKeepsDebit(t *testing.T) {
	svc, ledger := newTestWithdraw(t)
	ctx := context.Background()

	id, _ := svc.Request(ctx, "100", 400, "addr-1")
	if err := svc.Approve(ctx, id); err != nil {
		t.Fatal(err)
	}
	if got := balanceOf(t, ledger, "100"); got != 600 {
		t.Fatalf("balance = %d, want 600", got)
	}
	if err := svc.Approve(ctx, id); !errors.Is(err, ErrNotPending) {
		t.Fatalf("double approve err = %v", err)
	}
	if err := svc.Reject(ctx, id); !errors.Is(err, ErrNotPending) {
		t.Fatalf("reject after approve err = %v", err)
	}
	pending, _ := svc.Pending(ctx)
	if len(pending) != 0 {
		t.Fatalf("pending after approve = %+v", pending)
	}
}

func TestRejectRefunds(t *testing.T) {
	svc, ledger := newTestWithdraw(t)
	ctx := context.Background()

	id, _ := svc.Request(ctx, "100", 400, "addr-1")
	if err := svc.Reject(ctx, id); err != nil {
		t.Fatal(err)
	}
	if got := balanceOf(t, ledger, "100"); got != 1000 {
		t.Fatalf("balance = %d, want full refund to 1000", got)
	}
	if err := svc.Approve(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("approve missing err = %v", err)
	}
}
