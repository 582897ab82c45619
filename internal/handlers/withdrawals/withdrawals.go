package withdrawals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/asadmehmood/investhub/internal/domain"
	"github.com/asadmehmood/investhub/internal/dto"
	"github.com/asadmehmood/investhub/pkg/auth"
	"github.com/asadmehmood/investhub/pkg/utils"
)

type Service interface {
	Request(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Withdrawal, error)
	GetWithdrawals(ctx context.Context, userID int) ([]domain.Withdrawal, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// Request godoc
//
//	@Summary		Request a withdrawal
//	@Description	Request a payout from the current balance. A processing fee is attached on top of the requested amount.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalRequestDTO	true	"Withdrawal request body"
//	@Success		200		{object}	dto.WithdrawalDTO
//	@Failure		400		{object}	utils.Response	"Amount below the minimum withdrawal"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/withdrawals [post]
func (h *WithdrawalHandler) Request(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	withdrawal, err := h.withdrawalService.Request(r.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalDTO(withdrawal))
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawal history
//	@Description	List the authenticated user's withdrawal requests, newest first
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/withdrawals [get]
func (h *WithdrawalHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	withdrawals, err := h.withdrawalService.GetWithdrawals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalDTOs(withdrawals))
}
