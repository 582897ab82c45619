package adminservice

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/asadmehmood/investhub/internal/domain"
)

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	List(ctx context.Context, page, limit int) ([]domain.User, error)
	Count(ctx context.Context) (int, error)
	SetActive(ctx context.Context, userID int, active bool) error
}
type DepositRepo interface {
	FindByUserID(ctx context.Context, userID int) ([]domain.Deposit, error)
	List(ctx context.Context, page, limit int, status string) ([]domain.Deposit, error)
	SumApproved(ctx context.Context) (decimal.Decimal, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}
type WithdrawalRepo interface {
	FindByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error)
	List(ctx context.Context, page, limit int, status string) ([]domain.Withdrawal, error)
	SumCompleted(ctx context.Context) (decimal.Decimal, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}
type ProgramRepo interface {
	FindByUserID(ctx context.Context, userID int) ([]domain.RewardProgram, error)
	CountActive(ctx context.Context) (int, error)
}
type TransactionRepo interface {
	FindByUserID(ctx context.Context, userID int, txType string, limit int) ([]domain.Transaction, error)
}
type VerificationRepo interface {
	FindByUserID(ctx context.Context, userID int) ([]domain.Verification, error)
	FindLatestPending(ctx context.Context) ([]domain.Verification, error)
}
type Ledger interface {
	GetUserStats(ctx context.Context, userID int) (*domain.UserStats, error)
}

// DashboardStats is the admin overview. Totals come from aggregate queries
// in the storage layer rather than per-user scans.
type DashboardStats struct {
	TotalUsers                  int             `json:"totalUsers"`
	TotalDeposits               decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals            decimal.Decimal `json:"totalWithdrawals"`
	PendingDeposits             int             `json:"pendingDeposits"`
	PendingWithdrawals          int             `json:"pendingWithdrawals"`
	ActiveRewardPrograms        int             `json:"activeRewardPrograms"`
	PendingYoutubeVerifications int             `json:"pendingYoutubeVerifications"`
}

// UserWithStats pairs a user with their derived financial state.
type UserWithStats struct {
	User  domain.User
	Stats domain.UserStats
}

// UserDetail bundles everything the admin user page shows.
type UserDetail struct {
	User          domain.User            `json:"user"`
	Stats         domain.UserStats       `json:"stats"`
	Deposits      []domain.Deposit       `json:"deposits"`
	Withdrawals   []domain.Withdrawal    `json:"withdrawals"`
	Programs      []domain.RewardProgram `json:"rewardPrograms"`
	Transactions  []domain.Transaction   `json:"transactions"`
	Verifications []domain.Verification  `json:"youtubeVerifications"`
}

type Service struct {
	userRepo         UserRepo
	depositRepo      DepositRepo
	withdrawalRepo   WithdrawalRepo
	programRepo      ProgramRepo
	transactionRepo  TransactionRepo
	verificationRepo VerificationRepo
	ledger           Ledger
}

func New(userRepo UserRepo, depositRepo DepositRepo, withdrawalRepo WithdrawalRepo,
	programRepo ProgramRepo, transactionRepo TransactionRepo,
	verificationRepo VerificationRepo, ledger Ledger) *Service {
	return &Service{
		userRepo:         userRepo,
		depositRepo:      depositRepo,
		withdrawalRepo:   withdrawalRepo,
		programRepo:      programRepo,
		transactionRepo:  transactionRepo,
		verificationRepo: verificationRepo,
		ledger:           ledger,
	}
}

func (s *Service) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalDeposits, err := s.depositRepo.SumApproved(ctx)
	if err != nil {
		return nil, err
	}
	totalWithdrawals, err := s.withdrawalRepo.SumCompleted(ctx)
	if err != nil {
		return nil, err
	}
	pendingDeposits, err := s.depositRepo.CountByStatus(ctx, domain.DepositPending)
	if err != nil {
		return nil, err
	}
	pendingWithdrawals, err := s.withdrawalRepo.CountByStatus(ctx, domain.WithdrawalPending)
	if err != nil {
		return nil, err
	}
	activePrograms, err := s.programRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	pendingVerifications, err := s.verificationRepo.FindLatestPending(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalUsers:                  totalUsers,
		TotalDeposits:               totalDeposits,
		TotalWithdrawals:            totalWithdrawals,
		PendingDeposits:             pendingDeposits,
		PendingWithdrawals:          pendingWithdrawals,
		ActiveRewardPrograms:        activePrograms,
		PendingYoutubeVerifications: len(pendingVerifications),
	}, nil
}

func (s *Service) ListUsers(ctx context.Context, page, limit int) ([]UserWithStats, int, error) {
	users, err := s.userRepo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	result := make([]UserWithStats, 0, len(users))
	for _, user := range users {
		stats, err := s.ledger.GetUserStats(ctx, user.ID)
		if err != nil {
			zap.L().Error("can't derive stats for user", zap.Int("userID", user.ID), zap.Error(err))
			return nil, 0, err
		}
		result = append(result, UserWithStats{User: user, Stats: *stats})
	}
	return result, total, nil
}

func (s *Service) GetUserDetail(ctx context.Context, userID int) (*UserDetail, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, userID)
	}

	stats, err := s.ledger.GetUserStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	deposits, err := s.depositRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	withdrawals, err := s.withdrawalRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	programs, err := s.programRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactionRepo.FindByUserID(ctx, userID, "", 0)
	if err != nil {
		return nil, err
	}
	verifications, err := s.verificationRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UserDetail{
		User:          *user,
		Stats:         *stats,
		Deposits:      deposits,
		Withdrawals:   withdrawals,
		Programs:      programs,
		Transactions:  transactions,
		Verifications: verifications,
	}, nil
}

func (s *Service) ToggleUserActive(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, userID)
	}
	if err := s.userRepo.SetActive(ctx, userID, !user.Active); err != nil {
		return nil, err
	}
	user.Active = !user.Active
	zap.L().Info("user active flag toggled", zap.Int("userID", userID), zap.Bool("active", user.Active))
	return user, nil
}

func (s *Service) ListDeposits(ctx context.Context, page, limit int, status string) ([]domain.Deposit, error) {
	if status == "all" {
		status = ""
	}
	return s.depositRepo.List(ctx, page, limit, status)
}

func (s *Service) ListWithdrawals(ctx context.Context, page, limit int, status string) ([]domain.Withdrawal, error) {
	if status == "all" {
		status = ""
	}
	return s.withdrawalRepo.List(ctx, page, limit, status)
}
