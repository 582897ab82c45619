package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/asadmehmood/investhub/internal/pg"
)

type mocks struct {
	depositRepo    *MockDepositRepo
	profitRepo     *MockProfitRepo
	withdrawalRepo *MockWithdrawalRepo
	referralRepo   *MockReferralRepo
	txManager      *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		depositRepo:    NewMockDepositRepo(ctrl),
		profitRepo:     NewMockProfitRepo(ctrl),
		withdrawalRepo: NewMockWithdrawalRepo(ctrl),
		referralRepo:   NewMockReferralRepo(ctrl),
		txManager:      pg.NewMockTXManager(ctrl),
	}
	service := New(m.depositRepo, m.profitRepo, m.withdrawalRepo, m.referralRepo, m.txManager)
	defer ctrl.Finish()
	return service, m
}

func passthroughTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestGetUserStats(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name            string
		prepareMock     func()
		expectedBalance int64
		expectedError   error
	}{
		{
			name: "Balance combines all sources",
			prepareMock: func() {
				passthroughTx(m)
				m.depositRepo.EXPECT().SumApprovedByUser(gomock.Any(), 1).Return(decimal.NewFromInt(50000), nil)
				m.profitRepo.EXPECT().SumPaidByUser(gomock.Any(), 1).Return(decimal.NewFromInt(10000), nil)
				m.withdrawalRepo.EXPECT().SumCompletedByUser(gomock.Any(), 1).Return(decimal.NewFromInt(5000), nil)
				m.referralRepo.EXPECT().SumPaidBonusByReferrer(gomock.Any(), 1).Return(decimal.NewFromInt(200), nil)
				m.referralRepo.EXPECT().CountByReferrer(gomock.Any(), 1).Return(2, nil)
			},
			expectedBalance: 55200,
		},
		{
			name: "All zero for a fresh user",
			prepareMock: func() {
				passthroughTx(m)
				m.depositRepo.EXPECT().SumApprovedByUser(gomock.Any(), 1).Return(decimal.Zero, nil)
				m.profitRepo.EXPECT().SumPaidByUser(gomock.Any(), 1).Return(decimal.Zero, nil)
				m.withdrawalRepo.EXPECT().SumCompletedByUser(gomock.Any(), 1).Return(decimal.Zero, nil)
				m.referralRepo.EXPECT().SumPaidBonusByReferrer(gomock.Any(), 1).Return(decimal.Zero, nil)
				m.referralRepo.EXPECT().CountByReferrer(gomock.Any(), 1).Return(0, nil)
			},
			expectedBalance: 0,
		},
		{
			name: "Deposit sum failure aborts",
			prepareMock: func() {
				passthroughTx(m)
				m.depositRepo.EXPECT().SumApprovedByUser(gomock.Any(), 1).Return(decimal.Zero, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
		{
			name: "Profit sum failure aborts",
			prepareMock: func() {
				passthroughTx(m)
				m.depositRepo.EXPECT().SumApprovedByUser(gomock.Any(), 1).Return(decimal.NewFromInt(50000), nil)
				m.profitRepo.EXPECT().SumPaidByUser(gomock.Any(), 1).Return(decimal.Zero, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			stats, err := service.GetUserStats(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, stats)
			} else {
				assert.NoError(t, err)
				assert.True(t, decimal.NewFromInt(tt.expectedBalance).Equal(stats.CurrentBalance),
					"expected %d, got %s", tt.expectedBalance, stats.CurrentBalance)
			}
		})
	}
}
