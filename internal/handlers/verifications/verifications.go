package verifications

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/asadmehmood/investhub/internal/domain"
	"github.com/asadmehmood/investhub/internal/dto"
	"github.com/asadmehmood/investhub/internal/service/verificationservice"
	"github.com/asadmehmood/investhub/pkg/auth"
	"github.com/asadmehmood/investhub/pkg/filestore"
	"github.com/asadmehmood/investhub/pkg/utils"
)

const maxUploadSize = 12 << 20

type Service interface {
	Submit(ctx context.Context, userID int, screenshotRef string) (*domain.Verification, error)
	GetStatus(ctx context.Context, userID int) (*verificationservice.Status, error)
}

type FileStore interface {
	SaveImage(subDir string, header *multipart.FileHeader) (string, error)
}

type VerificationHandler struct {
	verificationService Service
	files               FileStore
}

func New(verificationService Service, files FileStore) *VerificationHandler {
	return &VerificationHandler{
		verificationService: verificationService,
		files:               files,
	}
}

// Submit godoc
//
//	@Summary		Submit YouTube verification
//	@Description	Upload a screenshot proving the channel subscription. The submission stays pending until an admin reviews it.
//	@Tags			Verifications
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			screenshot	formData	file	true	"Subscription screenshot"
//	@Success		200			{object}	dto.VerificationDTO
//	@Failure		400			{object}	utils.Response	"Invalid screenshot"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/user/youtube-verification [post]
func (h *VerificationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	_, header, err := r.FormFile("screenshot")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Screenshot image is required")
		return
	}
	screenshotRef, err := h.files.SaveImage(filestore.YoutubeDir, header)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	verification, err := h.verificationService.Submit(r.Context(), userID, screenshotRef)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewVerificationDTO(verification))
}

// GetStatus godoc
//
//	@Summary		Get verification status
//	@Description	Return whether the user's channel subscription is verified and the latest submission state
//	@Tags			Verifications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	verificationservice.Status
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/youtube-verification/status [get]
func (h *VerificationHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	status, err := h.verificationService.GetStatus(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch verification status")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, status)
}
