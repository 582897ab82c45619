package ledgerservice

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/asadmehmood/investhub/internal/domain"
	"github.com/asadmehmood/investhub/internal/pg"
)

type DepositRepo interface {
	SumApprovedByUser(ctx context.Context, userID int) (decimal.Decimal, error)
}
type ProfitRepo interface {
	SumPaidByUser(ctx context.Context, userID int) (decimal.Decimal, error)
}
type WithdrawalRepo interface {
	SumCompletedByUser(ctx context.Context, userID int) (decimal.Decimal, error)
}
type ReferralRepo interface {
	SumPaidBonusByReferrer(ctx context.Context, referrerID int) (decimal.Decimal, error)
	CountByReferrer(ctx context.Context, referrerID int) (int, error)
}

// Service derives a user's financial state from the source records. The
// balance is a view: nothing here is cached or stored, every call recomputes
// from scratch.
type Service struct {
	depositRepo    DepositRepo
	profitRepo     ProfitRepo
	withdrawalRepo WithdrawalRepo
	referralRepo   ReferralRepo
	txManager      pg.TXManager
}

func New(depositRepo DepositRepo, profitRepo ProfitRepo, withdrawalRepo WithdrawalRepo, referralRepo ReferralRepo, txManager pg.TXManager) *Service {
	return &Service{
		depositRepo:    depositRepo,
		profitRepo:     profitRepo,
		withdrawalRepo: withdrawalRepo,
		referralRepo:   referralRepo,
		txManager:      txManager,
	}
}

// GetUserStats runs its reads in a single transaction so the sums can never
// observe a half-applied transition.
func (s *Service) GetUserStats(ctx context.Context, userID int) (*domain.UserStats, error) {
	var stats domain.UserStats

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		deposited, err := s.depositRepo.SumApprovedByUser(ctx, userID)
		if err != nil {
			return err
		}
		profit, err := s.profitRepo.SumPaidByUser(ctx, userID)
		if err != nil {
			return err
		}
		withdrawn, err := s.withdrawalRepo.SumCompletedByUser(ctx, userID)
		if err != nil {
			return err
		}
		bonus, err := s.referralRepo.SumPaidBonusByReferrer(ctx, userID)
		if err != nil {
			return err
		}
		count, err := s.referralRepo.CountByReferrer(ctx, userID)
		if err != nil {
			return err
		}

		stats = domain.UserStats{
			TotalDeposited: deposited,
			TotalProfit:    profit,
			TotalWithdrawn: withdrawn,
			ReferralBonus:  bonus,
			ReferralCount:  count,
			CurrentBalance: deposited.Add(profit).Add(bonus).Sub(withdrawn),
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to derive user stats", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	return &stats, nil
}
