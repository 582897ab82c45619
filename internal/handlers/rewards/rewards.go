package rewards

import (
	"context"
	"net/http"
	"time"

	"github.com/asadmehmood/investhub/internal/domain"
	"github.com/asadmehmood/investhub/internal/dto"
	"github.com/asadmehmood/investhub/internal/service/rewardservice"
	"github.com/asadmehmood/investhub/pkg/auth"
	"github.com/asadmehmood/investhub/pkg/utils"
)

type Service interface {
	GetActiveProgram(ctx context.Context, userID int) (*domain.RewardProgram, error)
	GetPrograms(ctx context.Context, userID int) ([]domain.RewardProgram, error)
	GetSchedule(ctx context.Context, userID int) ([]domain.ScheduleEntry, error)
}

type Ledger interface {
	GetUserStats(ctx context.Context, userID int) (*domain.UserStats, error)
}

type RewardHandler struct {
	rewardService Service
	ledger        Ledger
}

func New(rewardService Service, ledger Ledger) *RewardHandler {
	return &RewardHandler{
		rewardService: rewardService,
		ledger:        ledger,
	}
}

// GetActiveProgram godoc
//
//	@Summary		Get active reward program
//	@Description	Return the authenticated user's currently active reward program
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.RewardProgramDTO
//	@Success		204	{object}	utils.Response	"No active program"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/rewards/active [get]
func (h *RewardHandler) GetActiveProgram(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	program, err := h.rewardService.GetActiveProgram(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch reward program")
		return
	}
	if program == nil {
		utils.RespondWithError(w, http.StatusNoContent, "No active program")
		return
	}
	out := dto.NewRewardProgramDTO(program)
	out.NextPayout = rewardservice.NextPayout(program, time.Now())
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// GetPrograms godoc
//
//	@Summary		Get reward program history
//	@Description	List all of the authenticated user's reward programs, active and ended
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RewardProgramDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/rewards [get]
func (h *RewardHandler) GetPrograms(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	programs, err := h.rewardService.GetPrograms(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch reward programs")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRewardProgramDTOs(programs))
}

// GetSchedule godoc
//
//	@Summary		Get weekly profit schedule
//	@Description	Return the 12-week profit schedule for the active reward program
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		domain.ScheduleEntry
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/rewards/schedule [get]
func (h *RewardHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	schedule, err := h.rewardService.GetSchedule(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch schedule")
		return
	}
	if schedule == nil {
		schedule = []domain.ScheduleEntry{}
	}
	utils.RespondWithJSON(w, http.StatusOK, schedule)
}

// GetStats godoc
//
//	@Summary		Get financial stats
//	@Description	Return the authenticated user's derived balance, totals and referral counters
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.UserStats
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/stats [get]
func (h *RewardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	stats, err := h.ledger.GetUserStats(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}
