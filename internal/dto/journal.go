package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/asadmehmood/investhub/internal/domain"
)

type TransactionDTO struct {
	ID          int             `json:"id"`
	UserID      int             `json:"userId"`
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func NewTransactionDTO(tx *domain.Transaction, title string) TransactionDTO {
	return TransactionDTO{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Type:        tx.Type,
		Title:       title,
		Amount:      tx.Amount,
		Description: tx.Description,
		Status:      tx.Status,
		CreatedAt:   tx.CreatedAt,
	}
}
