package deposits

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/asadmehmood/investhub/internal/domain"
	"github.com/asadmehmood/investhub/internal/dto"
	"github.com/asadmehmood/investhub/pkg/auth"
	"github.com/asadmehmood/investhub/pkg/filestore"
	"github.com/asadmehmood/investhub/pkg/utils"
)

const maxUploadSize = 12 << 20

type Service interface {
	Submit(ctx context.Context, userID int, amount decimal.Decimal, receiptRef string) (*domain.Deposit, error)
	PreviewPlan(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error)
	GetDeposits(ctx context.Context, userID int) ([]domain.Deposit, error)
}

type FileStore interface {
	SaveImage(subDir string, header *multipart.FileHeader) (string, error)
}

type DepositHandler struct {
	depositService Service
	files          FileStore
}

func New(depositService Service, files FileStore) *DepositHandler {
	return &DepositHandler{
		depositService: depositService,
		files:          files,
	}
}

// Submit godoc
//
//	@Summary		Submit a deposit
//	@Description	File a deposit with its payment receipt image. The deposit stays pending until an admin approves it.
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			amount	formData	string	true	"Deposit amount"
//	@Param			receipt	formData	file	true	"Payment receipt image"
//	@Success		200		{object}	dto.DepositDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or receipt"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/deposits [post]
func (h *DepositHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	amount, err := decimal.NewFromString(r.FormValue("amount"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
		return
	}

	_, header, err := r.FormFile("receipt")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Receipt image is required")
		return
	}
	receiptRef, err := h.files.SaveImage(filestore.ReceiptDir, header)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	deposit, err := h.depositService.Submit(r.Context(), userID, amount, receiptRef)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDepositDTO(deposit))
}

// PreviewPlan godoc
//
//	@Summary		Preview an investment plan
//	@Description	Resolve the weekly profit for an amount and file a pending deposit the user can complete later
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PlanPreviewRequestDTO	true	"Plan preview request body"
//	@Success		200		{object}	dto.PlanPreviewResponseDTO
//	@Failure		400		{object}	utils.Response	"Amount below the minimum investment tier"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/deposits/preview [post]
func (h *DepositHandler) PreviewPlan(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PlanPreviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	weeklyProfit, err := h.depositService.PreviewPlan(r.Context(), userID, req.Amount)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PlanPreviewResponseDTO{
		Amount:       req.Amount,
		WeeklyProfit: weeklyProfit,
		Message:      "Plan selected, submit your deposit receipt to activate it",
	})
}

// GetDeposits godoc
//
//	@Summary		Get deposit history
//	@Description	List the authenticated user's deposits, newest first
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.DepositDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/deposits [get]
func (h *DepositHandler) GetDeposits(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	deposits, err := h.depositService.GetDeposits(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch deposits")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDepositDTOs(deposits))
}
