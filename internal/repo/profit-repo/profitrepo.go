package profitrepo

import (
	"context"

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

const profitColumns = `id, user_id, reward_program_id, amount, week_number, start_date, end_date, status, paid_at, created_at`

func scanProfit(row pgx.Row) (*domain.Profit, error) {
	var p domain.Profit
	err := row.Scan(&p.ID, &p.UserID, &p.RewardProgramID, &p.Amount, &p.WeekNumber,
		&p.StartDate, &p.EndDate, &p.Status, &p.PaidAt, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a profit row. Week numbers are unique per program; a
// conflicting insert is reported as created=false so reconciliation reruns
// stay idempotent.
func (r *Repository) Create(ctx context.Context, profit *domain.Profit) (bool, error) {
	query := `
		INSERT INTO profits (user_id, reward_program_id, amount, week_number, start_date, end_date, status, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (reward_program_id, week_number) DO NOTHING
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		profit.UserID, profit.RewardProgramID, profit.Amount, profit.WeekNumber,
		profit.StartDate, profit.EndDate, profit.Status, profit.PaidAt,
	).Scan(&profit.ID, &profit.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		zap.L().Error("can't save profit", zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *Repository) FindByProgramID(ctx context.Context, programID int) ([]domain.Profit, error) {
	query := `SELECT ` + profitColumns + ` FROM profits WHERE reward_program_id = $1 ORDER BY week_number`
	rows, err := r.db.Query(ctx, query, programID)
	if err != nil {
		zap.L().Error("can't fetch profits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var profits []domain.Profit
	for rows.Next() {
		profit, err := scanProfit(rows)
		if err != nil {
			zap.L().Error("can't scan profit row", zap.Error(err))
			return nil, err
		}
		profits = append(profits, *profit)
	}
	return profits, rows.Err()
}

// WeeksByProgramID returns the week numbers already persisted for a program.
func (r *Repository) WeeksByProgramID(ctx context.Context, programID int) (map[int]struct{}, error) {
	rows, err := r.db.Query(ctx, `SELECT week_number FROM profits WHERE reward_program_id = $1`, programID)
	if err != nil {
		zap.L().Error("can't fetch profit weeks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	weeks := make(map[int]struct{})
	for rows.Next() {
		var week int
		if err := rows.Scan(&week); err != nil {
			zap.L().Error("can't scan profit week", zap.Error(err))
			return nil, err
		}
		weeks[week] = struct{}{}
	}
	return weeks, rows.Err()
}

// SumPaidByUser feeds the ledger: only paid profits count.
func (r *Repository) SumPaidByUser(ctx context.Context, userID int) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM profits WHERE user_id = $1 AND status = 'paid'`
	err := r.db.QueryRow(ctx, query, userID).Scan(&sum)
	if err != nil {
		zap.L().Error("can't sum paid profits", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}
