package journalservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/asadmehmood/investhub/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockTransactionRepo) {
	ctrl := gomock.NewController(t)
	transactionRepo := NewMockTransactionRepo(ctrl)
	service := New(transactionRepo)
	defer ctrl.Finish()
	return service, transactionRepo
}

func TestGetActivities(t *testing.T) {
	service, transactionRepo := NewMock(t)

	transactionRepo.EXPECT().FindByUserID(gomock.Any(), 1, "", 10).
		Return([]domain.Transaction{{ID: 1}, {ID: 2}}, nil)

	activities, err := service.GetActivities(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, activities, 2)
}

func TestGetTransactions(t *testing.T) {
	service, transactionRepo := NewMock(t)
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	all := []domain.Transaction{
		{ID: 1, CreatedAt: now.AddDate(0, 0, -5)},
		{ID: 2, CreatedAt: now.AddDate(0, 0, -45)},
		{ID: 3, CreatedAt: time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC)},
	}

	tests := []struct {
		name        string
		txType      string
		timeRange   string
		prepareMock func()
		expectedIDs []int
	}{
		{
			name:      "Type all maps to no filter",
			txType:    "all",
			timeRange: RangeAll,
			prepareMock: func() {
				transactionRepo.EXPECT().FindByUserID(gomock.Any(), 1, "", 0).Return(all, nil)
			},
			expectedIDs: []int{1, 2, 3},
		},
		{
			name:      "Last 30 days",
			txType:    "",
			timeRange: Range30Days,
			prepareMock: func() {
				transactionRepo.EXPECT().FindByUserID(gomock.Any(), 1, "", 0).Return(all, nil)
			},
			expectedIDs: []int{1},
		},
		{
			name:      "Last 90 days",
			txType:    "",
			timeRange: Range90Days,
			prepareMock: func() {
				transactionRepo.EXPECT().FindByUserID(gomock.Any(), 1, "", 0).Return(all, nil)
			},
			expectedIDs: []int{1, 2},
		},
		{
			name:      "Current year",
			txType:    "",
			timeRange: RangeYear,
			prepareMock: func() {
				transactionRepo.EXPECT().FindByUserID(gomock.Any(), 1, "", 0).Return(all, nil)
			},
			expectedIDs: []int{1, 2},
		},
		{
			name:      "Specific type is passed through",
			txType:    domain.TxDeposit,
			timeRange: RangeAll,
			prepareMock: func() {
				transactionRepo.EXPECT().FindByUserID(gomock.Any(), 1, domain.TxDeposit, 0).
					Return([]domain.Transaction{{ID: 1, CreatedAt: now}}, nil)
			},
			expectedIDs: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			transactions, err := service.GetTransactions(context.Background(), 1, tt.txType, tt.timeRange)
			require.NoError(t, err)

			ids := make([]int, 0, len(transactions))
			for _, transaction := range transactions {
				ids = append(ids, transaction.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Deposit", Title(domain.TxDeposit))
	assert.Equal(t, "Withdrawal", Title(domain.TxWithdrawal))
	assert.Equal(t, "Weekly Profit", Title(domain.TxProfit))
	assert.Equal(t, "Referral Bonus", Title(domain.TxReferral))
	assert.Equal(t, "Transaction", Title("something else"))
}
