package depositservice

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/asadmehmood/investhub/internal/domain"
	"github.com/asadmehmood/investhub/internal/pg"
	"github.com/asadmehmood/investhub/internal/service/rewardservice"
)

type DepositRepo interface {
	Create(ctx context.Context, deposit *domain.Deposit) (*domain.Deposit, error)
	FindByID(ctx context.Context, id int) (*domain.Deposit, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Deposit, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Deposit, error)
	UpdateStatus(ctx context.Context, id int, status string, note *string, updatedAt time.Time) error
}
type TransactionRepo interface {
	Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
	UpdateByReference(ctx context.Context, userID, referenceID int, txType, status, description string) error
}
type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	SetYoutubeVerified(ctx context.Context, userID int, verified bool) error
}
type VerificationRepo interface {
	HasApprovedByUserID(ctx context.Context, userID int) (bool, error)
}

// ProgramActivator starts the reward program for an approved deposit.
type ProgramActivator interface {
	Activate(ctx context.Context, userID, depositID int, depositAmount decimal.Decimal) (*domain.RewardProgram, error)
}

type Service struct {
	depositRepo      DepositRepo
	transactionRepo  TransactionRepo
	userRepo         UserRepo
	verificationRepo VerificationRepo
	activator        ProgramActivator
	txManager        pg.TXManager
	now              func() time.Time
}

func New(depositRepo DepositRepo, transactionRepo TransactionRepo, userRepo UserRepo,
	verificationRepo VerificationRepo, activator ProgramActivator, txManager pg.TXManager) *Service {
	return &Service{
		depositRepo:      depositRepo,
		transactionRepo:  transactionRepo,
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		activator:        activator,
		txManager:        txManager,
		now:              time.Now,
	}
}

// Submit files a pending deposit and its journal entry.
func (s *Service) Submit(ctx context.Context, userID int, amount decimal.Decimal, receiptRef string) (*domain.Deposit, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: deposit amount must be positive", domain.ErrValidation)
	}
	if receiptRef == "" {
		return nil, fmt.Errorf("%w: receipt is required", domain.ErrValidation)
	}

	deposit := &domain.Deposit{
		UserID:     userID,
		Amount:     amount,
		ReceiptRef: receiptRef,
		Status:     domain.DepositPending,
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.depositRepo.Create(ctx, deposit); err != nil {
			return err
		}
		_, err := s.transactionRepo.Create(ctx, &domain.Transaction{
			UserID:      userID,
			Type:        domain.TxDeposit,
			Amount:      amount,
			Description: "Deposit pending approval",
			ReferenceID: &deposit.ID,
			Status:      domain.TxPending,
		})
		return err
	})
	if err != nil {
		zap.L().Error("can't submit deposit", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("deposit submitted", zap.Int("userID", userID), zap.Int("depositID", deposit.ID))
	return deposit, nil
}

// PreviewPlan resolves the tier a deposit amount would earn and files a
// pending deposit with a placeholder receipt for the upgrade request.
func (s *Service) PreviewPlan(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: deposit amount must be positive", domain.ErrValidation)
	}
	weeklyProfit := rewardservice.WeeklyProfitFor(amount)
	if weeklyProfit.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: amount below the minimum reward tier", domain.ErrValidation)
	}

	_, err := s.depositRepo.Create(ctx, &domain.Deposit{
		UserID:     userID,
		Amount:     amount,
		ReceiptRef: "pending_receipt",
		Status:     domain.DepositPending,
	})
	if err != nil {
		return decimal.Zero, err
	}
	return weeklyProfit, nil
}

// Approve moves a pending deposit to approved, completes its journal entry
// and activates the reward program, all in one transaction. It also
// backfills the user's youtube flag from an already approved verification.
func (s *Service) Approve(ctx context.Context, depositID int, note string) (*domain.Deposit, *domain.RewardProgram, error) {
	if note == "" {
		note = "Approved by admin"
	}

	var (
		deposit *domain.Deposit
		program *domain.RewardProgram
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		deposit, err = s.depositRepo.FindByIDForUpdate(ctx, depositID)
		if err != nil {
			return err
		}
		if deposit == nil {
			return fmt.Errorf("%w: deposit %d", domain.ErrNotFound, depositID)
		}
		if deposit.Status != domain.DepositPending {
			return fmt.Errorf("%w: deposit %d is %s", domain.ErrInvalidState, depositID, deposit.Status)
		}

		if err := s.depositRepo.UpdateStatus(ctx, depositID, domain.DepositApproved, &note, s.now()); err != nil {
			return err
		}
		if err := s.transactionRepo.UpdateByReference(ctx, deposit.UserID, depositID,
			domain.TxDeposit, domain.TxCompleted, "Deposit approved"); err != nil {
			return err
		}

		program, err = s.activator.Activate(ctx, deposit.UserID, depositID, deposit.Amount)
		if err != nil {
			return err
		}

		return s.backfillYoutubeVerified(ctx, deposit.UserID)
	})
	if err != nil {
		zap.L().Error("can't approve deposit", zap.Int("depositID", depositID), zap.Error(err))
		return nil, nil, err
	}

	deposit.Status = domain.DepositApproved
	deposit.AdminNote = &note
	zap.L().Info("deposit approved", zap.Int("depositID", depositID))
	return deposit, program, nil
}

// Reject marks a pending deposit rejected. No balance or program side
// effects: a rejected deposit simply never enters the ledger's sums.
func (s *Service) Reject(ctx context.Context, depositID int, note string) (*domain.Deposit, error) {
	if note == "" {
		note = "Rejected by admin"
	}

	var deposit *domain.Deposit
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		deposit, err = s.depositRepo.FindByIDForUpdate(ctx, depositID)
		if err != nil {
			return err
		}
		if deposit == nil {
			return fmt.Errorf("%w: deposit %d", domain.ErrNotFound, depositID)
		}
		if deposit.Status != domain.DepositPending {
			return fmt.Errorf("%w: deposit %d is %s", domain.ErrInvalidState, depositID, deposit.Status)
		}

		if err := s.depositRepo.UpdateStatus(ctx, depositID, domain.DepositRejected, &note, s.now()); err != nil {
			return err
		}
		return s.transactionRepo.UpdateByReference(ctx, deposit.UserID, depositID,
			domain.TxDeposit, domain.TxRejected, "Deposit rejected: "+note)
	})
	if err != nil {
		zap.L().Error("can't reject deposit", zap.Int("depositID", depositID), zap.Error(err))
		return nil, err
	}

	deposit.Status = domain.DepositRejected
	deposit.AdminNote = &note
	zap.L().Info("deposit rejected", zap.Int("depositID", depositID))
	return deposit, nil
}

func (s *Service) GetDeposit(ctx context.Context, depositID int) (*domain.Deposit, error) {
	deposit, err := s.depositRepo.FindByID(ctx, depositID)
	if err != nil {
		return nil, err
	}
	if deposit == nil {
		return nil, fmt.Errorf("%w: deposit %d", domain.ErrNotFound, depositID)
	}
	return deposit, nil
}

func (s *Service) GetDeposits(ctx context.Context, userID int) ([]domain.Deposit, error) {
	return s.depositRepo.FindByUserID(ctx, userID)
}

// backfillYoutubeVerified flips the user flag when an approved verification
// exists but the flag was never set. A convenience, not a gate on approval.
func (s *Service) backfillYoutubeVerified(ctx context.Context, userID int) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || user == nil || user.YoutubeVerified {
		return err
	}
	approved, err := s.verificationRepo.HasApprovedByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if !approved {
		return nil
	}
	return s.userRepo.SetYoutubeVerified(ctx, userID, true)
}
