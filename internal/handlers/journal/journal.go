package journal

import (
	"context"
	"net/http"

	"github.com/asadmehmood/investhub/internal/domain"
	"github.com/asadmehmood/investhub/internal/dto"
	"github.com/asadmehmood/investhub/internal/service/journalservice"
	"github.com/asadmehmood/investhub/pkg/auth"
	"github.com/asadmehmood/investhub/pkg/utils"
)

type Service interface {
	GetActivities(ctx context.Context, userID int) ([]domain.Transaction, error)
	GetTransactions(ctx context.Context, userID int, txType, timeRange string) ([]domain.Transaction, error)
}

type JournalHandler struct {
	journalService Service
}

func New(journalService Service) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
	}
}

// GetActivities godoc
//
//	@Summary		Get recent activities
//	@Description	Return the ten most recent ledger entries for the authenticated user
//	@Tags			Journal
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/activities [get]
func (h *JournalHandler) GetActivities(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	activities, err := h.journalService.GetActivities(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch activities")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, newTransactionDTOs(activities))
}

// GetTransactions godoc
//
//	@Summary		Get transaction history
//	@Description	List ledger entries filtered by type and time range
//	@Tags			Journal
//	@Security		BearerAuth
//	@Produce		json
//	@Param			type	query		string	false	"Transaction type: deposit, withdrawal, profit, referral or all"
//	@Param			range	query		string	false	"Time range: 30days, 90days, year or all"	default(30days)
//	@Success		200		{array}		dto.TransactionDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *JournalHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	txType := r.URL.Query().Get("type")
	timeRange := r.URL.Query().Get("range")
	if timeRange == "" {
		timeRange = journalservice.Range30Days
	}

	transactions, err := h.journalService.GetTransactions(r.Context(), userID, txType, timeRange)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, newTransactionDTOs(transactions))
}

func newTransactionDTOs(transactions []domain.Transaction) []dto.TransactionDTO {
	out := make([]dto.TransactionDTO, len(transactions))
	for i := range transactions {
		out[i] = dto.NewTransactionDTO(&transactions[i], journalservice.Title(transactions[i].Type))
	}
	return out
}
