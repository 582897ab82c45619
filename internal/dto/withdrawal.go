package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/asadmehmood/investhub/internal/domain"
)

type WithdrawalRequestDTO struct {
	Amount decimal.Decimal `json:"amount" validate:"required" example:"400"`
}

type WithdrawalDTO struct {
	ID          int             `json:"id"`
	UserID      int             `json:"userId"`
	Amount      decimal.Decimal `json:"amount"`
	Fee         decimal.Decimal `json:"fee"`
	Status      string          `json:"status"`
	ProcessedAt *time.Time      `json:"processedAt"`
	AdminNote   *string         `json:"adminNote"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func NewWithdrawalDTO(w *domain.Withdrawal) WithdrawalDTO {
	return WithdrawalDTO{
		ID:          w.ID,
		UserID:      w.UserID,
		Amount:      w.Amount,
		Fee:         w.Fee,
		Status:      w.Status,
		ProcessedAt: w.ProcessedAt,
		AdminNote:   w.AdminNote,
		CreatedAt:   w.CreatedAt,
	}
}

func NewWithdrawalDTOs(withdrawals []domain.Withdrawal) []WithdrawalDTO {
	out := make([]WithdrawalDTO, len(withdrawals))
	for i := range withdrawals {
		out[i] = NewWithdrawalDTO(&withdrawals[i])
	}
	return out
}
