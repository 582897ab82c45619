package announcements

import (
	"context"
	"net/http"

	"github.com/asadmehmood/investhub/internal/domain"
	"github.com/asadmehmood/investhub/internal/dto"
	"github.com/asadmehmood/investhub/pkg/utils"
)

type Service interface {
	GetCurrent(ctx context.Context) (*domain.Announcement, error)
}

type AnnouncementHandler struct {
	announcementService Service
}

func New(announcementService Service) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
	}
}

// GetCurrent godoc
//
//	@Summary		Get current announcement
//	@Description	Return the latest active announcement. Public, no authentication required.
//	@Tags			Announcements
//	@Produce		json
//	@Success		200	{object}	dto.AnnouncementDTO
//	@Success		204	{object}	utils.Response	"No active announcement"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/announcements/current [get]
func (h *AnnouncementHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	announcement, err := h.announcementService.GetCurrent(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch announcement")
		return
	}
	if announcement == nil {
		utils.RespondWithError(w, http.StatusNoContent, "No active announcement")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAnnouncementDTO(announcement))
}
