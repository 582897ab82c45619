package dto

import (
	"time"

	"github.com/asadmehmood/investhub/internal/domain"
)

type AnnouncementRequestDTO struct {
	Content  string `json:"content" validate:"required,min=5"`
	Language string `json:"language"`
	Active   bool   `json:"active"`
}

type AnnouncementDTO struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	Language  string    `json:"language"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewAnnouncementDTO(a *domain.Announcement) AnnouncementDTO {
	return AnnouncementDTO{
		ID:        a.ID,
		Content:   a.Content,
		Language:  a.Language,
		Active:    a.Active,
		CreatedAt: a.CreatedAt,
	}
}

func NewAnnouncementDTOs(announcements []domain.Announcement) []AnnouncementDTO {
	out := make([]AnnouncementDTO, len(announcements))
	for i := range announcements {
		out[i] = NewAnnouncementDTO(&announcements[i])
	}
	return out
}
