package referrals

import (
	"context"
	"net/http"

	"github.com/asadmehmood/investhub/internal/service/referralservice"
	"github.com/asadmehmood/investhub/pkg/auth"
	"github.com/asadmehmood/investhub/pkg/utils"
)

type Service interface {
	GetReferrals(ctx context.Context, referrerID int) ([]referralservice.Detail, error)
	GetStats(ctx context.Context, referrerID int) (*referralservice.Stats, error)
}

type ReferralHandler struct {
	referralService Service
}

func New(referralService Service) *ReferralHandler {
	return &ReferralHandler{
		referralService: referralService,
	}
}

// GetReferrals godoc
//
//	@Summary		Get referred users
//	@Description	List the users referred by the authenticated user together with the bonus earned for each
//	@Tags			Referrals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		referralservice.Detail
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/referrals [get]
func (h *ReferralHandler) GetReferrals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	referrals, err := h.referralService.GetReferrals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch referrals")
		return
	}
	if referrals == nil {
		referrals = []referralservice.Detail{}
	}
	utils.RespondWithJSON(w, http.StatusOK, referrals)
}

// GetStats godoc
//
//	@Summary		Get referral stats
//	@Description	Return referral totals plus the current calendar month's counters
//	@Tags			Referrals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	referralservice.Stats
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/referrals/stats [get]
func (h *ReferralHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	stats, err := h.referralService.GetStats(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch referral stats")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}
