package referralservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/asadmehmood/investhub/internal/domain"
)

type ReferralRepo interface {
	FindByReferrerID(ctx context.Context, referrerID int) ([]domain.Referral, error)
}
type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

// Detail is one referral enriched with the referred user's profile.
type Detail struct {
	ID           int             `json:"id"`
	FullName     string          `json:"fullName"`
	MobileNumber string          `json:"mobileNumber"`
	RegisteredAt time.Time       `json:"registeredAt"`
	Active       bool            `json:"active"`
	Bonus        decimal.Decimal `json:"bonus"`
	Status       string          `json:"status"`
}

// Stats aggregates a referrer's totals plus the current calendar month.
type Stats struct {
	TotalReferrals   int             `json:"totalReferrals"`
	TotalEarnings    decimal.Decimal `json:"totalEarnings"`
	MonthlyReferrals int             `json:"monthlyReferrals"`
	MonthlyEarnings  decimal.Decimal `json:"monthlyEarnings"`
}

type Service struct {
	referralRepo ReferralRepo
	userRepo     UserRepo
	now          func() time.Time
}

func New(referralRepo ReferralRepo, userRepo UserRepo) *Service {
	return &Service{
		referralRepo: referralRepo,
		userRepo:     userRepo,
		now:          time.Now,
	}
}

func (s *Service) GetReferrals(ctx context.Context, referrerID int) ([]Detail, error) {
	referrals, err := s.referralRepo.FindByReferrerID(ctx, referrerID)
	if err != nil {
		return nil, err
	}

	details := make([]Detail, 0, len(referrals))
	for _, referral := range referrals {
		detail := Detail{
			ID:           referral.ID,
			FullName:     "Unknown User",
			MobileNumber: "Unknown",
			RegisteredAt: referral.CreatedAt,
			Bonus:        referral.Bonus,
			Status:       referral.Status,
		}
		referred, err := s.userRepo.FindByID(ctx, referral.ReferredID)
		if err != nil {
			zap.L().Error("can't enrich referral", zap.Int("referredID", referral.ReferredID), zap.Error(err))
			return nil, err
		}
		if referred != nil {
			detail.FullName = referred.FullName
			detail.MobileNumber = referred.MobileNumber
			detail.RegisteredAt = referred.CreatedAt
			detail.Active = referred.Active
		}
		details = append(details, detail)
	}
	return details, nil
}

func (s *Service) GetStats(ctx context.Context, referrerID int) (*Stats, error) {
	referrals, err := s.referralRepo.FindByReferrerID(ctx, referrerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	stats := &Stats{
		TotalEarnings:   decimal.Zero,
		MonthlyEarnings: decimal.Zero,
	}
	for _, referral := range referrals {
		stats.TotalReferrals++
		stats.TotalEarnings = stats.TotalEarnings.Add(referral.Bonus)
		if referral.CreatedAt.Month() == now.Month() && referral.CreatedAt.Year() == now.Year() {
			stats.MonthlyReferrals++
			stats.MonthlyEarnings = stats.MonthlyEarnings.Add(referral.Bonus)
		}
	}
	return stats, nil
}
