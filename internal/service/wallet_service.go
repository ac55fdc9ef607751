package service

import (
	"context"
	"time"

	"github.com/Dmungal1308/QuickSales-sub000/internal/adapter/nats"
	"github.com/Dmungal1308/QuickSales-sub000/internal/domain/entity"
	"github.com/Dmungal1308/QuickSales-sub000/internal/platform/logger"
	"github.com/Dmungal1308/QuickSales-sub000/internal/repository"
	"github.com/Dmungal1308/QuickSales-sub000/internal/session"
)

type WalletService struct {
	wallet    repository.WalletRepository
	sessions  session.Store
	publisher nats.MessagePublisher
	log       logger.Logger
}

func NewWalletService(wallet repository.WalletRepository, sessions session.Store, publisher nats.MessagePublisher, log logger.Logger) *WalletService {
	if publisher == nil {
		publisher = nats.NewNoopPublisher()
	}
	if log == nil {
		log = logger.NoOp()
	}
	return &WalletService{wallet: wallet, sessions: sessions, publisher: publisher, log: log}
}

func (s *WalletService) Balance(ctx context.Context) (entity.Money, error) {
	sess, err := s.sessions.Current(ctx)
	if err != nil {
		return 0, err
	}
	return s.wallet.Balance(ctx, sess.UserID)
}

func (s *WalletService) Deposit(ctx context.Context, amount entity.Money) (entity.Money, error) {
	if !amount.IsPositive() {
		return 0, ErrInvalidAmount
	}
	sess, err := s.sessions.Current(ctx)
	if err != nil {
		return 0, err
	}

	s.log.Info("WalletService.Deposit: depositing", "user_id", sess.UserID, "amount", amount.String())
	balance, err := s.wallet.Deposit(ctx, sess.UserID, amount)
	if err != nil {
		return 0, err
	}
	s.publishEvent(ctx, SubjectWalletDeposit, sess.UserID, amount, balance)
	return balance, nil
}

func (s *WalletService) Withdraw(ctx context.Context, amount entity.Money) (entity.Money, error) {
	if !amount.IsPositive() {
		return 0, ErrInvalidAmount
	}
	sess, err := s.sessions.Current(ctx)
	if err != nil {
		return 0, err
	}

	s.log.Info("WalletService.Withdraw: withdrawing", "user_id", sess.UserID, "amount", amount.String())
	balance, err := s.wallet.Withdraw(ctx, sess.UserID, amount)
	if err != nil {
		return 0, normalizeServerError(err)
	}
	s.publishEvent(ctx, SubjectWalletWithdraw, sess.UserID, amount, balance)
	return balance, nil
}

func (s *WalletService) publishEvent(ctx context.Context, subject string, userID int64, amount, balance entity.Money) {
	event := WalletEvent{UserID: userID, Amount: amount, Balance: balance, OccurredAt: time.Now().UTC()}
	if err := s.publisher.Publish(ctx, subject, event); err != nil {
		s.log.Warnf("WalletService: failed to publish %s: %v", subject, err)
	}
}
