package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/asadmehmood/investhub/internal/domain"
	"github.com/asadmehmood/investhub/internal/dto"
	"github.com/asadmehmood/investhub/internal/service/adminservice"
	"github.com/asadmehmood/investhub/pkg/auth"
	"github.com/asadmehmood/investhub/pkg/utils"
)

type Service interface {
	GetDashboardStats(ctx context.Context) (*adminservice.DashboardStats, error)
	ListUsers(ctx context.Context, page, limit int) ([]adminservice.UserWithStats, int, error)
	GetUserDetail(ctx context.Context, userID int) (*adminservice.UserDetail, error)
	ToggleUserActive(ctx context.Context, userID int) (*domain.User, error)
	ListDeposits(ctx context.Context, page, limit int, status string) ([]domain.Deposit, error)
	ListWithdrawals(ctx context.Context, page, limit int, status string) ([]domain.Withdrawal, error)
}

type DepositService interface {
	Approve(ctx context.Context, depositID int, note string) (*domain.Deposit, *domain.RewardProgram, error)
	Reject(ctx context.Context, depositID int, note string) (*domain.Deposit, error)
}

type WithdrawalService interface {
	Process(ctx context.Context, withdrawalID int, note string) (*domain.Withdrawal, error)
	Complete(ctx context.Context, withdrawalID int, note string) (*domain.Withdrawal, error)
	Reject(ctx context.Context, withdrawalID int, note string) (*domain.Withdrawal, error)
}

type VerificationService interface {
	GetPending(ctx context.Context) ([]domain.Verification, error)
	Approve(ctx context.Context, verificationID int, note string) (*domain.Verification, error)
	Reject(ctx context.Context, verificationID int, note string) (*domain.Verification, error)
}

type AnnouncementService interface {
	Create(ctx context.Context, content, language string, active bool, createdBy int) (*domain.Announcement, error)
	GetAll(ctx context.Context) ([]domain.Announcement, error)
	ToggleActive(ctx context.Context, id int) (*domain.Announcement, error)
}

type AdminHandler struct {
	adminService        Service
	depositService      DepositService
	withdrawalService   WithdrawalService
	verificationService VerificationService
	announcementService AnnouncementService
}

func New(adminService Service, depositService DepositService, withdrawalService WithdrawalService,
	verificationService VerificationService, announcementService AnnouncementService) *AdminHandler {
	return &AdminHandler{
		adminService:        adminService,
		depositService:      depositService,
		withdrawalService:   withdrawalService,
		verificationService: verificationService,
		announcementService: announcementService,
	}
}

func idParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func pageParams(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

func noteFromBody(r *http.Request) string {
	var req dto.AdminNoteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return ""
	}
	return req.Note
}

func respondTransitionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidState):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// GetDashboard godoc
//
//	@Summary		Get dashboard stats
//	@Description	Return platform-wide totals and pending work counters
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	adminservice.DashboardStats
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/dashboard [get]
func (h *AdminHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.GetDashboardStats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch dashboard stats")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

// ListUsers godoc
//
//	@Summary		List users
//	@Description	Page through registered users with their derived financial stats
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int	false	"Page number"
//	@Param			limit	query		int	false	"Page size"
//	@Success		200		{object}	dto.PagedUsersResponseDTO
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	users, total, err := h.adminService.ListUsers(r.Context(), page, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	out := make([]dto.AdminUserDTO, len(users))
	for i := range users {
		out[i] = dto.AdminUserDTO{
			User:  dto.NewUserDTO(&users[i].User),
			Stats: users[i].Stats,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PagedUsersResponseDTO{
		Users: out,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// GetUserDetail godoc
//
//	@Summary		Get user detail
//	@Description	Return a user's profile, derived stats and full activity history
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	adminservice.UserDetail
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id} [get]
func (h *AdminHandler) GetUserDetail(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	detail, err := h.adminService.GetUserDetail(r.Context(), userID)
	if err != nil {
		respondTransitionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, detail)
}

// ToggleUserActive godoc
//
//	@Summary		Toggle user active flag
//	@Description	Block or unblock a user account
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	dto.UserDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id}/toggle-active [patch]
func (h *AdminHandler) ToggleUserActive(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := h.adminService.ToggleUserActive(r.Context(), userID)
	if err != nil {
		respondTransitionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserDTO(user))
}

// ListDeposits godoc
//
//	@Summary		List deposits
//	@Description	Page through deposits, optionally filtered by status
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int		false	"Page number"
//	@Param			limit	query		int		false	"Page size"
//	@Param			status	query		string	false	"Deposit status filter"
//	@Success		200		{array}		dto.DepositDTO
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/deposits [get]
func (h *AdminHandler) ListDeposits(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	deposits, err := h.adminService.ListDeposits(r.Context(), page, limit, r.URL.Query().Get("status"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch deposits")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDepositDTOs(deposits))
}

// ApproveDeposit godoc
//
//	@Summary		Approve a deposit
//	@Description	Approve a pending deposit, credit it to the user and activate the matching reward program
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Deposit ID"
//	@Param			request	body		dto.AdminNoteRequestDTO	false	"Optional admin note"
//	@Success		200		{object}	dto.DepositDTO
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Deposit not found"
//	@Failure		409		{object}	utils.Response	"Deposit is not pending"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/deposits/{id}/approve [post]
func (h *AdminHandler) ApproveDeposit(w http.ResponseWriter, r *http.Request) {
	depositID, err := idParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid deposit id")
		return
	}

	deposit, _, err := h.depositService.Approve(r.Context(), depositID, noteFromBody(r))
	if err != nil {
		respondTransitionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDepositDTO(deposit))
}

// RejectDeposit godoc
//
//	@Summary		Reject a deposit
//	@Description	Reject a pending deposit with an optional note
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Deposit ID"
//	@Param			request	body		dto.AdminNoteRequestDTO	false	"Optional admin note"
//	@Success		200		{object}	dto.DepositDTO
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Deposit not found"
//	@Failure		409		{object}	utils.Response	"Deposit is not pending"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/deposits/{id}/reject [post]
func (h *AdminHandler) RejectDeposit(w http.ResponseWriter, r *http.Request) {
	depositID, err := idParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid deposit id")
		return
	}

	deposit, err := h.depositService.Reject(r.Context(), depositID, noteFromBody(r))
	if err != nil {
		respondTransitionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDepositDTO(deposit))
}

// ListWithdrawals godoc
//
//	@Summary		List withdrawals
//	@Description	Page through withdrawal requests, optionally filtered by status
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int		false	"Page number"
//	@Param			limit	query		int		false	"Page size"
//	@Param			status	query		string	false	"Withdrawal status filter"
//	@Success		200		{array}		dto.WithdrawalDTO
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals [get]
func (h *AdminHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	withdrawals, err := h.adminService.ListWithdrawals(r.Context(), page, limit, r.URL.Query().Get("status"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalDTOs(withdrawals))
}

// ProcessWithdrawal godoc
//
//	@Summary		Start processing a withdrawal
//	@Description	Move a pending withdrawal into processing
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Withdrawal ID"
//	@Param			request	body		dto.AdminNoteRequestDTO	false	"Optional admin note"
//	@Success		200		{object}	dto.WithdrawalDTO
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Withdrawal not found"
//	@Failure		409		{object}	utils.Response	"Withdrawal is not pending"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/process [post]
func (h *AdminHandler) ProcessWithdrawal(w http.ResponseWriter, r *http.Request) {
	h.transitionWithdrawal(w, r, h.withdrawalService.Process)
}

// CompleteWithdrawal godoc
//
//	@Summary		Complete a withdrawal
//	@Description	Mark a processing withdrawal as paid out
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Withdrawal ID"
//	@Param			request	body		dto.AdminNoteRequestDTO	false	"Optional admin note"
//	@Success		200		{object}	dto.WithdrawalDTO
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Withdrawal not found"
//	@Failure		409		{object}	utils.Response	"Withdrawal is not processing"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/complete [post]
func (h *AdminHandler) CompleteWithdrawal(w http.ResponseWriter, r *http.Request) {
	h.transitionWithdrawal(w, r, h.withdrawalService.Complete)
}

// RejectWithdrawal godoc
//
//	@Summary		Reject a withdrawal
//	@Description	Reject a pending or processing withdrawal, releasing the held funds
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Withdrawal ID"
//	@Param			request	body		dto.AdminNoteRequestDTO	false	"Optional admin note"
//	@Success		200		{object}	dto.WithdrawalDTO
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Withdrawal not found"
//	@Failure		409		{object}	utils.Response	"Withdrawal already settled"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/reject [post]
func (h *AdminHandler) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	h.transitionWithdrawal(w, r, h.withdrawalService.Reject)
}

func (h *AdminHandler) transitionWithdrawal(w http.ResponseWriter, r *http.Request,
	fn func(ctx context.Context, withdrawalID int, note string) (*domain.Withdrawal, error)) {
	withdrawalID, err := idParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid withdrawal id")
		return
	}

	withdrawal, err := fn(r.Context(), withdrawalID, noteFromBody(r))
	if err != nil {
		respondTransitionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalDTO(withdrawal))
}

// ListPendingVerifications godoc
//
//	@Summary		List pending verifications
//	@Description	Return the latest YouTube verification submission for every user whose submission is still pending
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.VerificationDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/youtube-verifications [get]
func (h *AdminHandler) ListPendingVerifications(w http.ResponseWriter, r *http.Request) {
	verifications, err := h.verificationService.GetPending(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch verifications")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewVerificationDTOs(verifications))
}

// ApproveVerification godoc
//
//	@Summary		Approve a verification
//	@Description	Approve a pending YouTube verification and mark the user verified
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Verification ID"
//	@Param			request	body		dto.AdminNoteRequestDTO	false	"Optional admin note"
//	@Success		200		{object}	dto.VerificationDTO
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Verification not found"
//	@Failure		409		{object}	utils.Response	"Verification is not pending"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/youtube-verifications/{id}/approve [post]
func (h *AdminHandler) ApproveVerification(w http.ResponseWriter, r *http.Request) {
	h.transitionVerification(w, r, h.verificationService.Approve)
}

// RejectVerification godoc
//
//	@Summary		Reject a verification
//	@Description	Reject a pending YouTube verification with an optional note
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Verification ID"
//	@Param			request	body		dto.AdminNoteRequestDTO	false	"Optional admin note"
//	@Success		200		{object}	dto.VerificationDTO
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Verification not found"
//	@Failure		409		{object}	utils.Response	"Verification is not pending"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/youtube-verifications/{id}/reject [post]
func (h *AdminHandler) RejectVerification(w http.ResponseWriter, r *http.Request) {
	h.transitionVerification(w, r, h.verificationService.Reject)
}

func (h *AdminHandler) transitionVerification(w http.ResponseWriter, r *http.Request,
	fn func(ctx context.Context, verificationID int, note string) (*domain.Verification, error)) {
	verificationID, err := idParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid verification id")
		return
	}

	verification, err := fn(r.Context(), verificationID, noteFromBody(r))
	if err != nil {
		respondTransitionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewVerificationDTO(verification))
}

// CreateAnnouncement godoc
//
//	@Summary		Create an announcement
//	@Description	Publish a new announcement shown to all users
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AnnouncementRequestDTO	true	"Announcement body"
//	@Success		200		{object}	dto.AnnouncementDTO
//	@Failure		400		{object}	utils.Response	"Invalid announcement"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/announcements [post]
func (h *AdminHandler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	adminID, _ := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AnnouncementRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	announcement, err := h.announcementService.Create(r.Context(), req.Content, req.Language, req.Active, adminID)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAnnouncementDTO(announcement))
}

// ListAnnouncements godoc
//
//	@Summary		List announcements
//	@Description	Return every announcement, active and inactive
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AnnouncementDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/announcements [get]
func (h *AdminHandler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcementService.GetAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch announcements")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAnnouncementDTOs(announcements))
}

// ToggleAnnouncement godoc
//
//	@Summary		Toggle an announcement
//	@Description	Flip an announcement's active flag
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Announcement ID"
//	@Success		200	{object}	dto.AnnouncementDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Announcement not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/announcements/{id}/toggle [patch]
func (h *AdminHandler) ToggleAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid announcement id")
		return
	}

	announcement, err := h.announcementService.ToggleActive(r.Context(), id)
	if err != nil {
		respondTransitionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAnnouncementDTO(announcement))
}
