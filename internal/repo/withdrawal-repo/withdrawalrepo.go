package withdrawalrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/asadmehmood/investhub/internal/domain"
	"github.com/asadmehmood/investhub/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const withdrawalColumns = `id, user_id, amount, fee, status, processed_at, admin_note, created_at`

func scanWithdrawal(row pgx.Row) (*domain.Withdrawal, error) {
	var w domain.Withdrawal
	err := row.Scan(&w.ID, &w.UserID, &w.Amount, &w.Fee, &w.Status, &w.ProcessedAt, &w.AdminNote, &w.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) Create(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
		INSERT INTO withdrawals (user_id, amount, fee, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, withdrawal.UserID, withdrawal.Amount, withdrawal.Fee, withdrawal.Status).
		Scan(&withdrawal.ID, &withdrawal.CreatedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Withdrawal, error) {
	withdrawal, err := scanWithdrawal(r.db.QueryRow(ctx, `SELECT `+withdrawalColumns+` FROM withdrawals WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

// FindByIDForUpdate locks the withdrawal row so concurrent admin transitions
// are serialized within the surrounding transaction.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Withdrawal, error) {
	withdrawal, err := scanWithdrawal(r.db.QueryRow(ctx, `SELECT `+withdrawalColumns+` FROM withdrawals WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		withdrawal, err := scanWithdrawal(rows)
		if err != nil {
			zap.L().Error("can't scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, *withdrawal)
	}
	return withdrawals, rows.Err()
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string, note *string, processedAt *time.Time) error {
	query := `UPDATE withdrawals SET status = $1, admin_note = $2, processed_at = COALESCE($3, processed_at) WHERE id = $4`
	_, err := r.db.Exec(ctx, query, status, note, processedAt, id)
	if err != nil {
		zap.L().Error("can't update withdrawal status", zap.Error(err))
	}
	return err
}

func (r *Repository) List(ctx context.Context, page, limit int, status string) ([]domain.Withdrawal, error) {
	query := `
		SELECT ` + withdrawalColumns + ` FROM withdrawals
		WHERE ($3 = '' OR status = $3)
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, (page-1)*limit, status)
	if err != nil {
		zap.L().Error("can't list withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		withdrawal, err := scanWithdrawal(rows)
		if err != nil {
			zap.L().Error("can't scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, *withdrawal)
	}
	return withdrawals, rows.Err()
}

// SumCompletedByUser feeds the ledger: only completed withdrawals count, so
// a rejected withdrawal returns funds without any refund write.
func (r *Repository) SumCompletedByUser(ctx context.Context, userID int) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM withdrawals WHERE user_id = $1 AND status = 'completed'`
	err := r.db.QueryRow(ctx, query, userID).Scan(&sum)
	if err != nil {
		zap.L().Error("can't sum completed withdrawals", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

func (r *Repository) SumCompleted(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM withdrawals WHERE status = 'completed'`).Scan(&sum)
	if err != nil {
		zap.L().Error("can't sum completed withdrawals", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

func (r *Repository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM withdrawals WHERE status = $1`, status).Scan(&count)
	if err != nil {
		zap.L().Error("can't count withdrawals", zap.Error(err))
		return 0, err
	}
	return count, nil
}
