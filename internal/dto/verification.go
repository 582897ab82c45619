package dto

import (
	"time"

	"github.com/asadmehmood/investhub/internal/domain"
)

type VerificationDTO struct {
	ID            int        `json:"id"`
	UserID        int        `json:"userId"`
	ScreenshotRef string     `json:"screenshotRef"`
	Status        string     `json:"status"`
	AdminNote     *string    `json:"adminNote"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt"`
}

func NewVerificationDTO(v *domain.Verification) VerificationDTO {
	return VerificationDTO{
		ID:            v.ID,
		UserID:        v.UserID,
		ScreenshotRef: v.ScreenshotRef,
		Status:        v.Status,
		AdminNote:     v.AdminNote,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func NewVerificationDTOs(verifications []domain.Verification) []VerificationDTO {
	out := make([]VerificationDTO, len(verifications))
	for i := range verifications {
		out[i] = NewVerificationDTO(&verifications[i])
	}
	return out
}
