package programrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
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

const programColumns = `id, user_id, deposit_id, deposit_amount, weekly_profit, status, start_date, end_date, created_at`

func scanProgram(row pgx.Row) (*domain.RewardProgram, error) {
	var p domain.RewardProgram
	err := row.Scan(&p.ID, &p.UserID, &p.DepositID, &p.DepositAmount, &p.WeeklyProfit,
		&p.Status, &p.StartDate, &p.EndDate, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, program *domain.RewardProgram) (*domain.RewardProgram, error) {
	query := `
		INSERT INTO reward_programs (user_id, deposit_id, deposit_amount, weekly_profit, status, start_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		program.UserID, program.DepositID, program.DepositAmount,
		program.WeeklyProfit, program.Status, program.StartDate,
	).Scan(&program.ID, &program.CreatedAt)
	if err != nil {
		zap.L().Error("can't save reward program", zap.Error(err))
		return nil, err
	}
	return program, nil
}

func (r *Repository) FindActiveByUserID(ctx context.Context, userID int) (*domain.RewardProgram, error) {
	query := `SELECT ` + programColumns + ` FROM reward_programs WHERE user_id = $1 AND status = 'active'`
	program, err := scanProgram(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find active reward program", zap.Error(err))
		return nil, err
	}
	return program, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.RewardProgram, error) {
	query := `SELECT ` + programColumns + ` FROM reward_programs WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't fetch reward programs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var programs []domain.RewardProgram
	for rows.Next() {
		program, err := scanProgram(rows)
		if err != nil {
			zap.L().Error("can't scan reward program row", zap.Error(err))
			return nil, err
		}
		programs = append(programs, *program)
	}
	return programs, rows.Err()
}

// FindActive lists every active program; the profit reconciler walks this
// set on each tick.
func (r *Repository) FindActive(ctx context.Context, limit uint32) ([]domain.RewardProgram, error) {
	query := `SELECT ` + programColumns + ` FROM reward_programs WHERE status = 'active' ORDER BY id LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't fetch active reward programs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var programs []domain.RewardProgram
	for rows.Next() {
		program, err := scanProgram(rows)
		if err != nil {
			zap.L().Error("can't scan reward program row", zap.Error(err))
			return nil, err
		}
		programs = append(programs, *program)
	}
	return programs, rows.Err()
}

func (r *Repository) End(ctx context.Context, id int, endDate time.Time) error {
	query := `UPDATE reward_programs SET status = 'ended', end_date = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, endDate, id)
	if err != nil {
		zap.L().Error("can't end reward program", zap.Error(err))
	}
	return err
}

func (r *Repository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reward_programs WHERE status = 'active'`).Scan(&count)
	if err != nil {
		zap.L().Error("can't count active reward programs", zap.Error(err))
		return 0, err
	}
	return count, nil
}
