package referralrepo

import (
	"context"
	"errors"
	"regexp"
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
	paidAt := createdAt

	referral := &domain.Referral{
		ReferrerID: 3,
		ReferredID: 10,
		Bonus:      decimal.NewFromInt(100),
		Status:     domain.ReferralPaid,
		PaidAt:     &paidAt,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create referral successfully",
			mockSetup: func() {
				mock.ExpectQuery(`(?s)INSERT INTO referrals.+RETURNING id, created_at`).
					WithArgs(3, 10, referral.Bonus, domain.ReferralPaid, &paidAt).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(5, createdAt))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(`INSERT INTO referrals`).
					WithArgs(3, 10, referral.Bonus, domain.ReferralPaid, &paidAt).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.Create(context.Background(), referral)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 5, created.ID)
			}
		})
	}
}

func TestRepository_FindByReferrerID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"id", "referrer_id", "referred_id", "bonus", "status", "created_at", "paid_at"}).
		AddRow(5, 3, 10, decimal.NewFromInt(100), domain.ReferralPaid, createdAt, &createdAt)

	mock.ExpectQuery(`SELECT .+ FROM referrals WHERE referrer_id = \$1 ORDER BY created_at DESC`).
		WithArgs(3).
		WillReturnRows(rows)

	referrals, err := repo.FindByReferrerID(context.Background(), 3)
	assert.NoError(t, err)
	assert.Len(t, referrals, 1)
	assert.Equal(t, 10, referrals[0].ReferredID)
}

func TestRepository_SumPaidBonusByReferrer(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(bonus), 0) FROM referrals WHERE referrer_id = $1 AND status = 'paid'`)).
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(decimal.NewFromInt(300)))

	sum, err := repo.SumPaidBonusByReferrer(context.Background(), 3)
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(300).Equal(sum))
}

func TestRepository_CountByReferrer(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM referrals WHERE referrer_id = $1`)).
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountByReferrer(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}
