package wallet

import (
	"context"

	"go.uber.org/zap"

	"tg-casino/internal/event"
	"tg-casino/internal/player"
)

type Service struct {
	ledger player.Repo
	txs    Recorder
	bus    *event.Bus
	log    *zap.Logger
}

func New(ledger player.Repo, txs Recorder, bus *event.Bus, log *zap.Logger) *Service {
	return &Service{ledger: ledger, txs: txs, bus: bus, log: log}
}

// Deposit credits the player and records the transaction. The trail is
// best effort, the credited balance is authoritative.
func (s *Service) Deposit(ctx context.Context, playerID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	balance, err := s.ledger.Adjust(ctx, playerID, amount)
	if err != nil {
		return 0, err
	}
	if _, err := s.txs.Append(ctx, Transaction{PlayerID: playerID, Kind: KindDeposit, Amount: amount}); err != nil {
		s.log.Error("deposit transaction not recorded",
			zap.String("player", playerID), zap.Int64("amount", amount), zap.Error(err))
	}
	s.bus.Publish(event.EventDepositConfirmed, &Transaction{
		PlayerID: playerID, Kind: KindDeposit, Amount: amount,
	})
	return balance, nil
}

func (s *Service) Transactions(ctx context.Context, playerID string, limit int) ([]Transaction, error) {
	return s.txs.List(ctx, playerID, limit)
}
