package verificationrepo

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

const verificationColumns = `id, user_id, screenshot_ref, status, admin_note, created_at, updated_at`

func scanVerification(row pgx.Row) (*domain.Verification, error) {
	var v domain.Verification
	err := row.Scan(&v.ID, &v.UserID, &v.ScreenshotRef, &v.Status, &v.AdminNote, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repository) Create(ctx context.Context, verification *domain.Verification) (*domain.Verification, error) {
	query := `
		INSERT INTO verifications (user_id, screenshot_ref, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, verification.UserID, verification.ScreenshotRef, verification.Status).
		Scan(&verification.ID, &verification.CreatedAt)
	if err != nil {
		zap.L().Error("can't save verification", zap.Error(err))
		return nil, err
	}
	return verification, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Verification, error) {
	verification, err := scanVerification(r.db.QueryRow(ctx, `SELECT `+verificationColumns+` FROM verifications WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find verification", zap.Error(err))
		return nil, err
	}
	return verification, nil
}

// FindLatestByUserID returns the most recently created verification: only
// that one is authoritative for the user's current status.
func (r *Repository) FindLatestByUserID(ctx context.Context, userID int) (*domain.Verification, error) {
	query := `SELECT ` + verificationColumns + ` FROM verifications WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`
	verification, err := scanVerification(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find latest verification", zap.Error(err))
		return nil, err
	}
	return verification, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Verification, error) {
	query := `SELECT ` + verificationColumns + ` FROM verifications WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't fetch verifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var verifications []domain.Verification
	for rows.Next() {
		verification, err := scanVerification(rows)
		if err != nil {
			zap.L().Error("can't scan verification row", zap.Error(err))
			return nil, err
		}
		verifications = append(verifications, *verification)
	}
	return verifications, rows.Err()
}

// HasApprovedByUserID reports whether any verification for the user has been
// approved, regardless of later submissions.
func (r *Repository) HasApprovedByUserID(ctx context.Context, userID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM verifications WHERE user_id = $1 AND status = 'approved')`
	err := r.db.QueryRow(ctx, query, userID).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check approved verification", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string, note *string, updatedAt time.Time) error {
	query := `UPDATE verifications SET status = $1, admin_note = $2, updated_at = $3 WHERE id = $4`
	_, err := r.db.Exec(ctx, query, status, note, updatedAt, id)
	if err != nil {
		zap.L().Error("can't update verification status", zap.Error(err))
	}
	return err
}

// FindLatestPending returns, per user, the most recent verification when it
// is still pending. An older pending row superseded by a newer submission is
// not reported.
func (r *Repository) FindLatestPending(ctx context.Context) ([]domain.Verification, error) {
	query := `
		SELECT DISTINCT ON (user_id) ` + verificationColumns + `
		FROM verifications
		ORDER BY user_id, created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't fetch latest verifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var pending []domain.Verification
	for rows.Next() {
		verification, err := scanVerification(rows)
		if err != nil {
			zap.L().Error("can't scan verification row", zap.Error(err))
			return nil, err
		}
		if verification.Status == domain.VerificationPending {
			pending = append(pending, *verification)
		}
	}
	return pending, rows.Err()
}
