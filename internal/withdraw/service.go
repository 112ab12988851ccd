package withdraw

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tg-casino/internal/event"
	"tg-casino/internal/player"
)

// Service runs the withdraw queue. The stake leaves the balance the moment
// the request is filed, so a player cannot wager funds that are on their way
// out. A rejection puts the amount back.
type Service struct {
	ledger player.Repo
	repo   Repo
	bus    *event.Bus
	log    *zap.Logger
}

func New(ledger player.Repo, repo Repo, bus *event.Bus, log *zap.Logger) *Service {
	return &Service{ledger: ledger, repo: repo, bus: bus, log: log}
}

func (s *Service) Request(ctx context.Context, playerID string, amount int64, address string) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	if _, err := s.ledger.Adjust(ctx, playerID, -amount); err != nil {
		return 0, err
	}
	id, err := s.repo.Create(ctx, Request{PlayerID: playerID, Amount: amount, Address: address})
	if err != nil {
		// queue write failed, put the money back
		if _, refundErr := s.ledger.Adjust(ctx, playerID, amount); refundErr != nil {
			s.log.Error("withdraw refund failed after queue error",
				zap.String("player", playerID), zap.Int64("amount", amount), zap.Error(refundErr))
		}
		return 0, err
	}
	s.bus.Publish(event.EventWithdrawRequested, &Request{
		ID: id, PlayerID: playerID, Amount: amount, Address: address, Status: StatusPending,
	})
	return id, nil
}

func (s *Service) Approve(ctx context.Context, id int64) error {
	return s.repo.Decide(ctx, id, StatusApproved, time.Now())
}

func (s *Service) Reject(ctx context.Context, id int64) error {
	req, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Decide(ctx, id, StatusRejected, time.Now()); err != nil {
		return err
	}
	if _, err := s.ledger.Adjust(ctx, req.PlayerID, req.Amount); err != nil {
		s.log.Error("withdraw rejection refund failed",
			zap.Int64("request", id), zap.String("player", req.PlayerID), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) Pending(ctx context.Context) ([]Request, error) {
	return s.repo.Pending(ctx)
}
