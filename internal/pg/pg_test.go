package pg

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTXManager_Begin(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		fn        func(ctx context.Context) error
		expectErr bool
	}{
		{
			name: "Commit on success",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
			fn:        func(ctx context.Context) error { return nil },
			expectErr: false,
		},
		{
			name: "Rollback on error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn:        func(ctx context.Context) error { return errors.New("boom") },
			expectErr: true,
		},
		{
			name: "Begin failure",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("no conn"))
			},
			fn:        func(ctx context.Context) error { return nil },
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()
			tt.mockSetup(mock)

			manager := NewTXManager(mock)
			err = manager.Begin(context.Background(), tt.fn)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTXManager_BeginNested(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	manager := NewTXManager(mock)
	var innerCalled bool
	err = manager.Begin(context.Background(), func(ctx context.Context) error {
		return manager.Begin(ctx, func(ctx context.Context) error {
			innerCalled = true
			return nil
		})
	})

	assert.NoError(t, err)
	assert.True(t, innerCalled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_RoutesThroughTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	db := New(mock)
	manager := NewTXManager(mock)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET active = $1")).
		WithArgs(true).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err = manager.Begin(context.Background(), func(ctx context.Context) error {
		_, execErr := db.Exec(ctx, "UPDATE users SET active = $1", true)
		return execErr
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
