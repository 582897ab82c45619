package depositrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
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

var depositCols = []string{"id", "user_id", "amount", "receipt_ref", "status", "admin_note", "created_at", "updated_at"}

func depositRow(status string, createdAt time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(depositCols).
		AddRow(7, 1, decimal.NewFromInt(50000), "receipts/a.jpg", status, nil, createdAt, &createdAt)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	deposit := &domain.Deposit{
		UserID:     1,
		Amount:     decimal.NewFromInt(50000),
		ReceiptRef: "receipts/a.jpg",
		Status:     domain.DepositPending,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create deposit successfully",
			mockSetup: func() {
				mock.ExpectQuery(`(?s)INSERT INTO deposits.+RETURNING id, created_at`).
					WithArgs(1, deposit.Amount, "receipts/a.jpg", domain.DepositPending).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(7, createdAt))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(`INSERT INTO deposits`).
					WithArgs(1, deposit.Amount, "receipts/a.jpg", domain.DepositPending).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.Create(context.Background(), deposit)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, created.ID)
				assert.Equal(t, createdAt, created.CreatedAt)
			}
		})
	}
}

func TestRepository_FindByIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Deposit locked",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT .+ FROM deposits WHERE id = \$1 FOR UPDATE`).
					WithArgs(7).
					WillReturnRows(depositRow(domain.DepositPending, createdAt))
			},
			found: true,
		},
		{
			name: "Deposit missing",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT .+ FROM deposits WHERE id = \$1 FOR UPDATE`).
					WithArgs(7).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT .+ FROM deposits WHERE id = \$1 FOR UPDATE`).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			deposit, err := repo.FindByIDForUpdate(context.Background(), 7)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.found {
					assert.Equal(t, 7, deposit.ID)
					assert.Equal(t, domain.DepositPending, deposit.Status)
				} else {
					assert.Nil(t, deposit)
				}
			}
		})
	}
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM deposits WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs(1).
		WillReturnRows(depositRow(domain.DepositApproved, createdAt))

	deposits, err := repo.FindByUserID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, deposits, 1)
	assert.Equal(t, domain.DepositApproved, deposits[0].Status)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)
	updatedAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	note := "Approved by admin"

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Status updated",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE deposits SET status = $1, admin_note = $2, updated_at = $3 WHERE id = $4`)).
					WithArgs(domain.DepositApproved, &note, updatedAt, 7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(`UPDATE deposits SET`).
					WithArgs(domain.DepositApproved, &note, updatedAt, 7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateStatus(context.Background(), 7, domain.DepositApproved, &note, updatedAt)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)SELECT .+ FROM deposits.+LIMIT \$1 OFFSET \$2`).
		WithArgs(20, 0, domain.DepositPending).
		WillReturnRows(depositRow(domain.DepositPending, createdAt))

	deposits, err := repo.List(context.Background(), 1, 20, domain.DepositPending)
	assert.NoError(t, err)
	assert.Len(t, deposits, 1)
}

func TestRepository_SumApprovedByUser(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  decimal.Decimal
	}{
		{
			name: "Sum returned",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(amount), 0) FROM deposits WHERE user_id = $1 AND status = 'approved'`)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(decimal.NewFromInt(125000)))
			},
			expected: decimal.NewFromInt(125000),
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT COALESCE`).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expected:  decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			sum, err := repo.SumApprovedByUser(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, tt.expected.Equal(sum))
		})
	}
}

func TestRepository_CountByStatus(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM deposits WHERE status = $1`)).
		WithArgs(domain.DepositPending).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountByStatus(context.Background(), domain.DepositPending)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}
