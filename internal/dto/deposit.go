package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/asadmehmood/investhub/internal/domain"
)

type DepositRequestDTO struct {
	Amount decimal.Decimal `json:"amount" validate:"required" example:"50000"`
}

type PlanPreviewRequestDTO struct {
	Amount decimal.Decimal `json:"amount" validate:"required" example:"50000"`
}

type PlanPreviewResponseDTO struct {
	Amount       decimal.Decimal `json:"amount" example:"50000"`
	WeeklyProfit decimal.Decimal `json:"weeklyProfit" example:"5000"`
	Message      string          `json:"message"`
}

type DepositDTO struct {
	ID         int             `json:"id"`
	UserID     int             `json:"userId"`
	Amount     decimal.Decimal `json:"amount"`
	ReceiptRef string          `json:"receiptRef"`
	Status     string          `json:"status"`
	AdminNote  *string         `json:"adminNote"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  *time.Time      `json:"updatedAt"`
}

func NewDepositDTO(d *domain.Deposit) DepositDTO {
	return DepositDTO{
		ID:         d.ID,
		UserID:     d.UserID,
		Amount:     d.Amount,
		ReceiptRef: d.ReceiptRef,
		Status:     d.Status,
		AdminNote:  d.AdminNote,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func NewDepositDTOs(deposits []domain.Deposit) []DepositDTO {
	out := make([]DepositDTO, len(deposits))
	for i := range deposits {
		out[i] = NewDepositDTO(&deposits[i])
	}
	return out
}
