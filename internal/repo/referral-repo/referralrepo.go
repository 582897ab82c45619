package referralrepo

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

const referralColumns = `id, referrer_id, referred_id, bonus, status, created_at, paid_at`

func scanReferral(row pgx.Row) (*domain.Referral, error) {
	var ref domain.Referral
	err := row.Scan(&ref.ID, &ref.ReferrerID, &ref.ReferredID, &ref.Bonus, &ref.Status, &ref.CreatedAt, &ref.PaidAt)
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

// Create inserts a referral record. The referred_id unique constraint
// guarantees a user can be referred at most once.
func (r *Repository) Create(ctx context.Context, referral *domain.Referral) (*domain.Referral, error) {
	query := `
		INSERT INTO referrals (referrer_id, referred_id, bonus, status, paid_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		referral.ReferrerID, referral.ReferredID, referral.Bonus, referral.Status, referral.PaidAt,
	).Scan(&referral.ID, &referral.CreatedAt)
	if err != nil {
		zap.L().Error("can't save referral", zap.Error(err))
		return nil, err
	}
	return referral, nil
}

func (r *Repository) FindByReferrerID(ctx context.Context, referrerID int) ([]domain.Referral, error) {
	query := `SELECT ` + referralColumns + ` FROM referrals WHERE referrer_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, referrerID)
	if err != nil {
		zap.L().Error("can't fetch referrals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var referrals []domain.Referral
	for rows.Next() {
		referral, err := scanReferral(rows)
		if err != nil {
			zap.L().Error("can't scan referral row", zap.Error(err))
			return nil, err
		}
		referrals = append(referrals, *referral)
	}
	return referrals, rows.Err()
}

// SumPaidBonusByReferrer feeds the ledger: only paid referral bonuses count.
func (r *Repository) SumPaidBonusByReferrer(ctx context.Context, referrerID int) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(bonus), 0) FROM referrals WHERE referrer_id = $1 AND status = 'paid'`
	err := r.db.QueryRow(ctx, query, referrerID).Scan(&sum)
	if err != nil {
		zap.L().Error("can't sum referral bonuses", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

// CountByReferrer counts every referral for the referrer regardless of
// status.
func (r *Repository) CountByReferrer(ctx context.Context, referrerID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM referrals WHERE referrer_id = $1`, referrerID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count referrals", zap.Error(err))
		return 0, err
	}
	return count, nil
}
