package verificationrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
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

var verificationCols = []string{"id", "user_id", "screenshot_ref", "status", "admin_note", "created_at", "updated_at"}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	verification := &domain.Verification{
		UserID:        1,
		ScreenshotRef: "youtube/a.png",
		Status:        domain.VerificationPending,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create verification successfully",
			mockSetup: func() {
				mock.ExpectQuery(`(?s)INSERT INTO verifications.+RETURNING id, created_at`).
					WithArgs(1, "youtube/a.png", domain.VerificationPending).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(3, createdAt))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(`INSERT INTO verifications`).
					WithArgs(1, "youtube/a.png", domain.VerificationPending).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.Create(context.Background(), verification)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, created.ID)
			}
		})
	}
}

func TestRepository_FindLatestByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		found     bool
	}{
		{
			name: "Latest submission found",
			mockSetup: func() {
				rows := pgxmock.NewRows(verificationCols).
					AddRow(3, 1, "youtube/a.png", domain.VerificationPending, nil, createdAt, &createdAt)
				mock.ExpectQuery(`SELECT .+ FROM verifications WHERE user_id = \$1 ORDER BY created_at DESC LIMIT 1`).
					WithArgs(1).
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "No submissions",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT .+ FROM verifications WHERE user_id = \$1 ORDER BY created_at DESC LIMIT 1`).
					WithArgs(1).
					WillReturnError(pgx.ErrNoRows)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			verification, err := repo.FindLatestByUserID(context.Background(), 1)
			assert.NoError(t, err)
			if tt.found {
				assert.Equal(t, 3, verification.ID)
			} else {
				assert.Nil(t, verification)
			}
		})
	}
}

func TestRepository_HasApprovedByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM verifications WHERE user_id = $1 AND status = 'approved')`)).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	approved, err := repo.HasApprovedByUserID(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, approved)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)
	updatedAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	note := "Approved by admin"

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE verifications SET status = $1, admin_note = $2, updated_at = $3 WHERE id = $4`)).
		WithArgs(domain.VerificationApproved, &note, updatedAt, 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateStatus(context.Background(), 3, domain.VerificationApproved, &note, updatedAt)
	assert.NoError(t, err)
}

func TestRepository_FindLatestPending(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	// One user's latest row is pending, another's latest was already approved.
	rows := pgxmock.NewRows(verificationCols).
		AddRow(3, 1, "youtube/a.png", domain.VerificationPending, nil, createdAt, &createdAt).
		AddRow(4, 2, "youtube/b.png", domain.VerificationApproved, nil, createdAt, &createdAt)

	mock.ExpectQuery(`(?s)SELECT DISTINCT ON \(user_id\) .+ FROM verifications.+ORDER BY user_id, created_at DESC`).
		WillReturnRows(rows)

	pending, err := repo.FindLatestPending(context.Background())
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, 3, pending[0].ID)
}
