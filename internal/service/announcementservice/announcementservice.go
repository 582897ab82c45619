package announcementservice

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/asadmehmood/investhub/internal/domain"
)

type AnnouncementRepo interface {
	Create(ctx context.Context, announcement *domain.Announcement) (*domain.Announcement, error)
	FindByID(ctx context.Context, id int) (*domain.Announcement, error)
	FindLatestActive(ctx context.Context) (*domain.Announcement, error)
	FindAll(ctx context.Context) ([]domain.Announcement, error)
	SetActive(ctx context.Context, id int, active bool) error
}

type Service struct {
	announcementRepo AnnouncementRepo
}

func New(announcementRepo AnnouncementRepo) *Service {
	return &Service{
		announcementRepo: announcementRepo,
	}
}

func (s *Service) Create(ctx context.Context, content, language string, active bool, createdBy int) (*domain.Announcement, error) {
	if len(content) < 5 {
		return nil, fmt.Errorf("%w: announcement content too short", domain.ErrValidation)
	}
	if language == "" {
		language = "en"
	}
	announcement := &domain.Announcement{
		Content:   content,
		Language:  language,
		Active:    active,
		CreatedBy: &createdBy,
	}
	if _, err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, err
	}
	zap.L().Info("announcement created", zap.Int("announcementID", announcement.ID))
	return announcement, nil
}

// GetCurrent returns the most recent active announcement, or nil when none.
func (s *Service) GetCurrent(ctx context.Context) (*domain.Announcement, error) {
	return s.announcementRepo.FindLatestActive(ctx)
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Announcement, error) {
	return s.announcementRepo.FindAll(ctx)
}

func (s *Service) ToggleActive(ctx context.Context, id int) (*domain.Announcement, error) {
	announcement, err := s.announcementRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if announcement == nil {
		return nil, fmt.Errorf("%w: announcement %d", domain.ErrNotFound, id)
	}
	if err := s.announcementRepo.SetActive(ctx, id, !announcement.Active); err != nil {
		return nil, err
	}
	announcement.Active = !announcement.Active
	return announcement, nil
}
