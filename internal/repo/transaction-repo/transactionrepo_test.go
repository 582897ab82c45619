package transactionrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/asadmehmood/investhub/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	referenceID := 7

	transaction := &domain.Transaction{
		UserID:      1,
		Type:        domain.TxDeposit,
		Amount:      decimal.NewFromInt(50000),
		Description: "Deposit pending approval",
		ReferenceID: &referenceID,
		Status:      domain.TxPending,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create transaction successfully",
			mockSetup: func() {
				mock.ExpectQuery(`(?s)INSERT INTO transactions.+RETURNING id, created_at`).
					WithArgs(1, domain.TxDeposit, transaction.Amount, "Deposit pending approval", &referenceID, domain.TxPending).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(33, createdAt))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(`INSERT INTO transactions`).
					WithArgs(1, domain.TxDeposit, transaction.Amount, "Deposit pending approval", &referenceID, domain.TxPending).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.Create(context.Background(), transaction)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 33, created.ID)
				assert.Equal(t, createdAt, created.CreatedAt)
			}
		})
	}
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{
		"id", "user_id", "type", "amount", "description", "reference_id", "status", "created_at",
	}).
		AddRow(33, 1, domain.TxDeposit, decimal.NewFromInt(50000), "Deposit approved", nil, domain.TxCompleted, createdAt).
		AddRow(34, 1, domain.TxProfit, decimal.NewFromInt(5000), "Weekly profit for week 1", nil, domain.TxCompleted, createdAt)

	mock.ExpectQuery(`(?s)SELECT .+ FROM transactions.+WHERE user_id = \$1 AND \(\$2 = '' OR type = \$2\).+LIMIT NULLIF\(\$3, 0\)`).
		WithArgs(1, "", 10).
		WillReturnRows(rows)

	transactions, err := repo.FindByUserID(context.Background(), 1, "", 10)
	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
	assert.Equal(t, domain.TxDeposit, transactions[0].Type)
	assert.Equal(t, domain.TxProfit, transactions[1].Type)
}

func TestRepository_UpdateByReference(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Journal entry updated",
			mockSetup: func() {
				mock.ExpectExec(`(?s)UPDATE transactions SET status = \$1, description = \$2.+WHERE user_id = \$3 AND reference_id = \$4 AND type = \$5`).
					WithArgs(domain.TxCompleted, "Deposit approved", 1, 7, domain.TxDeposit).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(`UPDATE transactions SET`).
					WithArgs(domain.TxCompleted, "Deposit approved", 1, 7, domain.TxDeposit).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateByReference(context.Background(), 1, 7, domain.TxDeposit, domain.TxCompleted, "Deposit approved")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
