package announcementrepo

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

const announcementColumns = `id, content, language, active, created_by, created_at`

func scanAnnouncement(row pgx.Row) (*domain.Announcement, error) {
	var a domain.Announcement
	err := row.Scan(&a.ID, &a.Content, &a.Language, &a.Active, &a.CreatedBy, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) Create(ctx context.Context, announcement *domain.Announcement) (*domain.Announcement, error) {
	query := `
		INSERT INTO announcements (content, language, active, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		announcement.Content, announcement.Language, announcement.Active, announcement.CreatedBy,
	).Scan(&announcement.ID, &announcement.CreatedAt)
	if err != nil {
		zap.L().Error("can't save announcement", zap.Error(err))
		return nil, err
	}
	return announcement, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Announcement, error) {
	announcement, err := scanAnnouncement(r.db.QueryRow(ctx, `SELECT `+announcementColumns+` FROM announcements WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find announcement", zap.Error(err))
		return nil, err
	}
	return announcement, nil
}

// FindLatestActive returns the most recently created active announcement,
// the only one shown to users.
func (r *Repository) FindLatestActive(ctx context.Context) (*domain.Announcement, error) {
	query := `SELECT ` + announcementColumns + ` FROM announcements WHERE active ORDER BY created_at DESC LIMIT 1`
	announcement, err := scanAnnouncement(r.db.QueryRow(ctx, query))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find active announcement", zap.Error(err))
		return nil, err
	}
	return announcement, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Announcement, error) {
	query := `SELECT ` + announcementColumns + ` FROM announcements ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't fetch announcements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var announcements []domain.Announcement
	for rows.Next() {
		announcement, err := scanAnnouncement(rows)
		if err != nil {
			zap.L().Error("can't scan announcement row", zap.Error(err))
			return nil, err
		}
		announcements = append(announcements, *announcement)
	}
	return announcements, rows.Err()
}

func (r *Repository) SetActive(ctx context.Context, id int, active bool) error {
	_, err := r.db.Exec(ctx, `UPDATE announcements SET active = $1 WHERE id = $2`, active, id)
	if err != nil {
		zap.L().Error("can't update announcement", zap.Error(err))
	}
	return err
}
