package referralservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/asadmehmood/investhub/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockReferralRepo, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	referralRepo := NewMockReferralRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	service := New(referralRepo, userRepo)
	defer ctrl.Finish()
	return service, referralRepo, userRepo
}

func TestGetReferrals(t *testing.T) {
	service, referralRepo, userRepo := NewMock(t)
	registeredAt := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		prepareMock   func()
		check         func(t *testing.T, details []Detail)
		expectedError error
	}{
		{
			name: "No referrals",
			prepareMock: func() {
				referralRepo.EXPECT().FindByReferrerID(gomock.Any(), 1).Return(nil, nil)
			},
			check: func(t *testing.T, details []Detail) {
				assert.Empty(t, details)
			},
		},
		{
			name: "Referrals are enriched with profiles",
			prepareMock: func() {
				referralRepo.EXPECT().FindByReferrerID(gomock.Any(), 1).Return([]domain.Referral{
					{ID: 5, ReferredID: 2, Bonus: decimal.NewFromInt(100), Status: domain.ReferralPaid},
				}, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.User{
					ID: 2, FullName: "Referred User", MobileNumber: "03007654321",
					CreatedAt: registeredAt, Active: true,
				}, nil)
			},
			check: func(t *testing.T, details []Detail) {
				require.Len(t, details, 1)
				assert.Equal(t, "Referred User", details[0].FullName)
				assert.Equal(t, "03007654321", details[0].MobileNumber)
				assert.Equal(t, registeredAt, details[0].RegisteredAt)
				assert.True(t, details[0].Active)
			},
		},
		{
			name: "Missing referred profile falls back to placeholders",
			prepareMock: func() {
				referralRepo.EXPECT().FindByReferrerID(gomock.Any(), 1).Return([]domain.Referral{
					{ID: 5, ReferredID: 2, Bonus: decimal.NewFromInt(100), Status: domain.ReferralPaid},
				}, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(nil, nil)
			},
			check: func(t *testing.T, details []Detail) {
				require.Len(t, details, 1)
				assert.Equal(t, "Unknown User", details[0].FullName)
				assert.Equal(t, "Unknown", details[0].MobileNumber)
				assert.False(t, details[0].Active)
			},
		},
		{
			name: "Profile lookup failure",
			prepareMock: func() {
				referralRepo.EXPECT().FindByReferrerID(gomock.Any(), 1).Return([]domain.Referral{
					{ID: 5, ReferredID: 2},
				}, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			details, err := service.GetReferrals(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				require.NoError(t, err)
				tt.check(t, details)
			}
		})
	}
}

func TestGetStats(t *testing.T) {
	service, referralRepo, _ := NewMock(t)
	service.now = func() time.Time { return time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC) }

	referralRepo.EXPECT().FindByReferrerID(gomock.Any(), 1).Return([]domain.Referral{
		{Bonus: decimal.NewFromInt(100), CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Bonus: decimal.NewFromInt(100), CreatedAt: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
		{Bonus: decimal.NewFromInt(100), CreatedAt: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)},
		{Bonus: decimal.NewFromInt(100), CreatedAt: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
	}, nil)

	stats, err := service.GetStats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalReferrals)
	assert.True(t, decimal.NewFromInt(400).Equal(stats.TotalEarnings))
	assert.Equal(t, 2, stats.MonthlyReferrals)
	assert.True(t, decimal.NewFromInt(200).Equal(stats.MonthlyEarnings))
}

func TestGetStatsEmpty(t *testing.T) {
	service, referralRepo, _ := NewMock(t)

	referralRepo.EXPECT().FindByReferrerID(gomock.Any(), 1).Return(nil, nil)

	stats, err := service.GetStats(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalReferrals)
	assert.True(t, stats.TotalEarnings.IsZero())
}
