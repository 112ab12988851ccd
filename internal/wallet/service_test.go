package wallet

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"tg-casino/internal/event"
	"tg-casino/internal/player"
)

func newTestWallet(t *testing.T) (*Service, player.Repo) {
	t.Helper()
	ledger := player.NewMemoryRepo()
	if _, err := ledger.Create(context.Background(), "100", "tester"); err != nil {
		t.Fatal(err)
	}
	return New(ledger, NewMemoryRecorder(), event.NewBus(), zap.NewNop()), ledger
}

func TestDepositCreditsAndRecords(t *testing.T) {
	svc, _ := newTestWallet(t)
	ctx := context.Background()

	balance, err := svc.Deposit(ctx, "100", 500)
	if err != nil {
		t.Fatal(err)
	}
	if balance != player.StartingBalance+500 {
		t.Fatalf("balance = %d", balance)
	}

	txs, err := svc.Transactions(ctx, "100", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 1 || txs[0].Kind != KindDeposit || txs[0].Amount != 500 {
		t.Fatalf("transactions = %+v", txs)
	}
}

func TestDepositRejectsBadInput(t *testing.T) {
	svc, _ := newTestWallet(t)
	ctx := context.Background()

	if _, err := svc.Deposit(ctx, "100", 0); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("zero deposit err = %v", err)
	}
	if _, err := svc.Deposit(ctx, "100", -5); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("negative deposit err = %v", err)
	}
	if _, err := svc.Deposit(ctx, "999", 100); !errors.Is(err, player.ErrNotFound) {
		t.Fatalf("unknown player err = %v", err)
	}
}
