package withdrawalservice

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/asadmehmood/investhub/internal/domain"
	"github.com/asadmehmood/investhub/internal/pg"
)

type WithdrawalRepo interface {
	Create(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	FindByID(ctx context.Context, id int) (*domain.Withdrawal, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Withdrawal, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error)
	UpdateStatus(ctx context.Context, id int, status string, note *string, processedAt *time.Time) error
}
type TransactionRepo interface {
	Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	UpdateByReference(ctx context.Context, userID, referenceID int, txType, status, description string) error
}
type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	LockByID(ctx context.Context, userID int) (bool, error)
}

// Ledger supplies the freshly derived balance a request is checked against.
type Ledger interface {
	GetUserStats(ctx context.Context, userID int) (*domain.UserStats, error)
}

// Notifier delivers the withdrawal notification. Fire and forget: delivery
// failure never fails the request.
type Notifier interface {
	NotifyWithdrawal(user *domain.User, amountAfterFee decimal.Decimal)
}

var (
	// MinAmount is the smallest withdrawal a user may request.
	MinAmount = decimal.NewFromInt(400)
	// Fee is attached to every withdrawal; the payout is amount minus fee,
	// the amount field itself is never reduced.
	Fee = decimal.NewFromInt(100)
)

type Service struct {
	withdrawalRepo  WithdrawalRepo
	transactionRepo TransactionRepo
	userRepo        UserRepo
	ledger          Ledger
	notifier        Notifier
	txManager       pg.TXManager
	now             func() time.Time
}

func New(withdrawalRepo WithdrawalRepo, transactionRepo TransactionRepo, userRepo UserRepo,
	ledger Ledger, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		withdrawalRepo:  withdrawalRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		ledger:          ledger,
		notifier:        notifier,
		txManager:       txManager,
		now:             time.Now,
	}
}

// Request files a pending withdrawal after the minimum and balance checks.
// The user row is locked first so concurrent requests cannot both pass the
// balance check; the balance itself is derived inside the same transaction.
func (s *Service) Request(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Withdrawal, error) {
	if amount.LessThan(MinAmount) {
		return nil, fmt.Errorf("%w: minimum withdrawal amount is %s", domain.ErrValidation, MinAmount)
	}

	withdrawal := &domain.Withdrawal{
		UserID: userID,
		Amount: amount,
		Fee:    Fee,
		Status: domain.WithdrawalPending,
	}

	var user *domain.User
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		found, err := s.userRepo.LockByID(ctx, userID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: user %d", domain.ErrNotFound, userID)
		}

		stats, err := s.ledger.GetUserStats(ctx, userID)
		if err != nil {
			return err
		}
		if amount.GreaterThan(stats.CurrentBalance) {
			return fmt.Errorf("%w: requested %s, balance %s",
				domain.ErrInsufficientBalance, amount, stats.CurrentBalance)
		}

		if _, err := s.withdrawalRepo.Create(ctx, withdrawal); err != nil {
			return err
		}
		if _, err := s.transactionRepo.Create(ctx, &domain.Transaction{
			UserID:      userID,
			Type:        domain.TxWithdrawal,
			Amount:      amount,
			Description: "Withdrawal request",
			ReferenceID: &withdrawal.ID,
			Status:      domain.TxPending,
		}); err != nil {
			return err
		}

		user, err = s.userRepo.FindByID(ctx, userID)
		return err
	})
	if err != nil {
		zap.L().Error("can't request withdrawal", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	if user != nil {
		go s.notifier.NotifyWithdrawal(user, amount.Sub(Fee))
	}

	zap.L().Info("withdrawal requested", zap.Int("userID", userID), zap.Int("withdrawalID", withdrawal.ID))
	return withdrawal, nil
}

// Process moves a pending withdrawal to processing.
func (s *Service) Process(ctx context.Context, withdrawalID int, note string) (*domain.Withdrawal, error) {
	if note == "" {
		note = "Processing by admin"
	}
	return s.transition(ctx, withdrawalID, note, domain.WithdrawalProcessing, "Withdrawal processing",
		domain.WithdrawalPending)
}

// Complete moves a processing withdrawal to completed and stamps
// processedAt. Only now does the amount enter the ledger's withdrawn total.
func (s *Service) Complete(ctx context.Context, withdrawalID int, note string) (*domain.Withdrawal, error) {
	if note == "" {
		note = "Completed by admin"
	}
	return s.transition(ctx, withdrawalID, note, domain.WithdrawalCompleted, "Withdrawal completed",
		domain.WithdrawalProcessing)
}

// Reject terminates a pending or processing withdrawal. There is no refund
// write: the ledger only ever counted completed withdrawals, so the funds
// reappear in the derived balance by exclusion.
func (s *Service) Reject(ctx context.Context, withdrawalID int, note string) (*domain.Withdrawal, error) {
	if note == "" {
		note = "Rejected by admin"
	}
	return s.transition(ctx, withdrawalID, note, domain.WithdrawalRejected, "Withdrawal rejected: "+note,
		domain.WithdrawalPending, domain.WithdrawalProcessing)
}

func (s *Service) transition(ctx context.Context, withdrawalID int, note, target, txDescription string, from ...string) (*domain.Withdrawal, error) {
	var withdrawal *domain.Withdrawal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		withdrawal, err = s.withdrawalRepo.FindByIDForUpdate(ctx, withdrawalID)
		if err != nil {
			return err
		}
		if withdrawal == nil {
			return fmt.Errorf("%w: withdrawal %d", domain.ErrNotFound, withdrawalID)
		}
		if !statusIn(withdrawal.Status, from) {
			return fmt.Errorf("%w: withdrawal %d is %s", domain.ErrInvalidState, withdrawalID, withdrawal.Status)
		}

		var processedAt *time.Time
		if target == domain.WithdrawalCompleted {
			now := s.now()
			processedAt = &now
		}
		if err := s.withdrawalRepo.UpdateStatus(ctx, withdrawalID, target, &note, processedAt); err != nil {
			return err
		}
		withdrawal.Status = target
		withdrawal.AdminNote = &note
		if processedAt != nil {
			withdrawal.ProcessedAt = processedAt
		}

		txStatus := target
		if target == domain.WithdrawalRejected {
			txStatus = domain.TxRejected
		}
		return s.transactionRepo.UpdateByReference(ctx, withdrawal.UserID, withdrawalID,
			domain.TxWithdrawal, txStatus, txDescription)
	})
	if err != nil {
		zap.L().Error("can't transition withdrawal",
			zap.Int("withdrawalID", withdrawalID), zap.String("target", target), zap.Error(err))
		return nil, err
	}

	zap.L().Info("withdrawal transitioned",
		zap.Int("withdrawalID", withdrawalID), zap.String("status", target))
	return withdrawal, nil
}

func statusIn(status string, allowed []string) bool {
	for _, s := range allowed {
		if status == s {
			return true
		}
	}
	return false
}

func (s *Service) GetWithdrawal(ctx context.Context, withdrawalID int) (*domain.Withdrawal, error) {
	withdrawal, err := s.withdrawalRepo.FindByID(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}
	if withdrawal == nil {
		return nil, fmt.Errorf("%w: withdrawal %d", domain.ErrNotFound, withdrawalID)
	}
	return withdrawal, nil
}

func (s *Service) GetWithdrawals(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	return s.withdrawalRepo.FindByUserID(ctx, userID)
}
