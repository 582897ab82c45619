package userrepo

import (
	"context"

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

const userColumns = `id, username, password_hash, full_name, address, city, mobile_number,
		easypaisa_number, role, youtube_verified, referral_code, referred_by, active, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.FullName, &user.Address,
		&user.City, &user.MobileNumber, &user.EasyPaisaNumber, &user.Role,
		&user.YoutubeVerified, &user.ReferralCode, &user.ReferredBy, &user.Active, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by username", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE referral_code = $1`, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by referral code", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, password_hash, full_name, address, city,
			mobile_number, easypaisa_number, role, referral_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, active, created_at
	`
	err := r.db.QueryRow(ctx, query,
		user.Username, user.PasswordHash, user.FullName, user.Address, user.City,
		user.MobileNumber, user.EasyPaisaNumber, user.Role, user.ReferralCode,
	).Scan(&user.ID, &user.Active, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) SetReferredBy(ctx context.Context, userID, referrerID int) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET referred_by = $1 WHERE id = $2`, referrerID, userID)
	if err != nil {
		zap.L().Error("can't set referred_by", zap.Error(err))
	}
	return err
}

func (r *Repository) SetYoutubeVerified(ctx context.Context, userID int, verified bool) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET youtube_verified = $1 WHERE id = $2`, verified, userID)
	if err != nil {
		zap.L().Error("can't set youtube_verified", zap.Error(err))
	}
	return err
}

func (r *Repository) SetActive(ctx context.Context, userID int, active bool) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET active = $1 WHERE id = $2`, active, userID)
	if err != nil {
		zap.L().Error("can't set active", zap.Error(err))
	}
	return err
}

// LockByID takes a row lock on the user, serializing concurrent lifecycle
// operations for that user within the surrounding transaction. Returns false
// when the user does not exist.
func (r *Repository) LockByID(ctx context.Context, userID int) (bool, error) {
	var id int
	err := r.db.QueryRow(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		zap.L().Error("can't lock user row", zap.Error(err))
		return false, err
	}
	return true, nil
}

func (r *Repository) List(ctx context.Context, page, limit int) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, (page-1)*limit)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return 0, err
	}
	return count, nil
}
