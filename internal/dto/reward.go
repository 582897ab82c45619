package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/asadmehmood/investhub/internal/domain"
)

type RewardProgramDTO struct {
	ID            int             `json:"id"`
	UserID        int             `json:"userId"`
	DepositID     int             `json:"depositId"`
	DepositAmount decimal.Decimal `json:"depositAmount"`
	WeeklyProfit  decimal.Decimal `json:"weeklyProfit"`
	Status        string          `json:"status"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       *time.Time      `json:"endDate"`
	NextPayout    *time.Time      `json:"nextPayout,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func NewRewardProgramDTO(p *domain.RewardProgram) RewardProgramDTO {
	return RewardProgramDTO{
		ID:            p.ID,
		UserID:        p.UserID,
		DepositID:     p.DepositID,
		DepositAmount: p.DepositAmount,
		WeeklyProfit:  p.WeeklyProfit,
		Status:        p.Status,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		CreatedAt:     p.CreatedAt,
	}
}

func NewRewardProgramDTOs(programs []domain.RewardProgram) []RewardProgramDTO {
	out := make([]RewardProgramDTO, len(programs))
	for i := range programs {
		out[i] = NewRewardProgramDTO(&programs[i])
	}
	return out
}
