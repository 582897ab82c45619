package depositrepo

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

const depositColumns = `id, user_id, amount, receipt_ref, status, admin_note, created_at, updated_at`

func scanDeposit(row pgx.Row) (*domain.Deposit, error) {
	var d domain.Deposit
	err := row.Scan(&d.ID, &d.UserID, &d.Amount, &d.ReceiptRef, &d.Status, &d.AdminNote, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Create(ctx context.Context, deposit *domain.Deposit) (*domain.Deposit, error) {
	query := `
		INSERT INTO deposits (user_id, amount, receipt_ref, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, deposit.UserID, deposit.Amount, deposit.ReceiptRef, deposit.Status).
		Scan(&deposit.ID, &deposit.CreatedAt)
	if err != nil {
		zap.L().Error("can't save deposit", zap.Error(err))
		return nil, err
	}
	return deposit, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Deposit, error) {
	deposit, err := scanDeposit(r.db.QueryRow(ctx, `SELECT `+depositColumns+` FROM deposits WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find deposit", zap.Error(err))
		return nil, err
	}
	return deposit, nil
}

// FindByIDForUpdate locks the deposit row for the duration of the
// surrounding transaction so concurrent approvals cannot race.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Deposit, error) {
	deposit, err := scanDeposit(r.db.QueryRow(ctx, `SELECT `+depositColumns+` FROM deposits WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock deposit", zap.Error(err))
		return nil, err
	}
	return deposit, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Deposit, error) {
	query := `SELECT ` + depositColumns + ` FROM deposits WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't fetch deposits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deposits []domain.Deposit
	for rows.Next() {
		deposit, err := scanDeposit(rows)
		if err != nil {
			zap.L().Error("can't scan deposit row", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, *deposit)
	}
	return deposits, rows.Err()
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string, note *string, updatedAt time.Time) error {
	query := `UPDATE deposits SET status = $1, admin_note = $2, updated_at = $3 WHERE id = $4`
	_, err := r.db.Exec(ctx, query, status, note, updatedAt, id)
	if err != nil {
		zap.L().Error("can't update deposit status", zap.Error(err))
	}
	return err
}

func (r *Repository) List(ctx context.Context, page, limit int, status string) ([]domain.Deposit, error) {
	query := `
		SELECT ` + depositColumns + ` FROM deposits
		WHERE ($3 = '' OR status = $3)
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, (page-1)*limit, status)
	if err != nil {
		zap.L().Error("can't list deposits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deposits []domain.Deposit
	for rows.Next() {
		deposit, err := scanDeposit(rows)
		if err != nil {
			zap.L().Error("can't scan deposit row", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, *deposit)
	}
	return deposits, rows.Err()
}

// SumApprovedByUser feeds the ledger: only approved deposits count.
func (r *Repository) SumApprovedByUser(ctx context.Context, userID int) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM deposits WHERE user_id = $1 AND status = 'approved'`
	err := r.db.QueryRow(ctx, query, userID).Scan(&sum)
	if err != nil {
		zap.L().Error("can't sum approved deposits", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

func (r *Repository) SumApproved(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM deposits WHERE status = 'approved'`).Scan(&sum)
	if err != nil {
		zap.L().Error("can't sum approved deposits", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

func (r *Repository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM deposits WHERE status = $1`, status).Scan(&count)
	if err != nil {
		zap.L().Error("can't count deposits", zap.Error(err))
		return 0, err
	}
	return count, nil
}
