package announcementrepo

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

var announcementCols = []string{"id", "content", "language", "active", "created_by", "created_at"}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	createdBy := 1

	announcement := &domain.Announcement{
		Content:   "Maintenance window on Friday",
		Language:  "en",
		Active:    true,
		CreatedBy: &createdBy,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create announcement successfully",
			mockSetup: func() {
				mock.ExpectQuery(`(?s)INSERT INTO announcements.+RETURNING id, created_at`).
					WithArgs("Maintenance window on Friday", "en", true, &createdBy).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(4, createdAt))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(`INSERT INTO announcements`).
					WithArgs("Maintenance window on Friday", "en", true, &createdBy).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.Create(context.Background(), announcement)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 4, created.ID)
			}
		})
	}
}

func TestRepository_FindLatestActive(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		found     bool
	}{
		{
			name: "Active announcement found",
			mockSetup: func() {
				rows := pgxmock.NewRows(announcementCols).
					AddRow(4, "Maintenance window on Friday", "en", true, nil, createdAt)
				mock.ExpectQuery(`SELECT .+ FROM announcements WHERE active ORDER BY created_at DESC LIMIT 1`).
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "No active announcement",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT .+ FROM announcements WHERE active ORDER BY created_at DESC LIMIT 1`).
					WillReturnError(pgx.ErrNoRows)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			announcement, err := repo.FindLatestActive(context.Background())
			assert.NoError(t, err)
			if tt.found {
				assert.Equal(t, 4, announcement.ID)
				assert.True(t, announcement.Active)
			} else {
				assert.Nil(t, announcement)
			}
		})
	}
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows(announcementCols).
		AddRow(4, "Maintenance window on Friday", "en", true, nil, createdAt).
		AddRow(3, "Old notice", "en", false, nil, createdAt.AddDate(0, 0, -10))

	mock.ExpectQuery(`SELECT .+ FROM announcements ORDER BY created_at DESC`).
		WillReturnRows(rows)

	announcements, err := repo.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, announcements, 2)
}

func TestRepository_SetActive(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE announcements SET active = $1 WHERE id = $2`)).
		WithArgs(false, 4).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.SetActive(context.Background(), 4, false)
	assert.NoError(t, err)
}
