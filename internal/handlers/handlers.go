package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/asadmehmood/investhub/docs"
	adminhandlers "github.com/asadmehmood/investhub/internal/handlers/admin"
	announcementhandlers "github.com/asadmehmood/investhub/internal/handlers/announcements"
	authhandlers "github.com/asadmehmood/investhub/internal/handlers/auth"
	deposithandlers "github.com/asadmehmood/investhub/internal/handlers/deposits"
	journalhandlers "github.com/asadmehmood/investhub/internal/handlers/journal"
	referralhandlers "github.com/asadmehmood/investhub/internal/handlers/referrals"
	rewardhandlers "github.com/asadmehmood/investhub/internal/handlers/rewards"
	verificationhandlers "github.com/asadmehmood/investhub/internal/handlers/verifications"
	withdrawalhandlers "github.com/asadmehmood/investhub/internal/handlers/withdrawals"
	"github.com/asadmehmood/investhub/internal/service"
	"github.com/asadmehmood/investhub/pkg/auth"
	"github.com/asadmehmood/investhub/pkg/filestore"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type DepositHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	PreviewPlan(w http.ResponseWriter, r *http.Request)
	GetDeposits(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type RewardHandler interface {
	GetActiveProgram(w http.ResponseWriter, r *http.Request)
	GetPrograms(w http.ResponseWriter, r *http.Request)
	GetSchedule(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type ReferralHandler interface {
	GetReferrals(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type VerificationHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)
}

type JournalHandler interface {
	GetActivities(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type AnnouncementHandler interface {
	GetCurrent(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
	GetUserDetail(w http.ResponseWriter, r *http.Request)
	ToggleUserActive(w http.ResponseWriter, r *http.Request)
	ListDeposits(w http.ResponseWriter, r *http.Request)
	ApproveDeposit(w http.ResponseWriter, r *http.Request)
	RejectDeposit(w http.ResponseWriter, r *http.Request)
	ListWithdrawals(w http.ResponseWriter, r *http.Request)
	ProcessWithdrawal(w http.ResponseWriter, r *http.Request)
	CompleteWithdrawal(w http.ResponseWriter, r *http.Request)
	RejectWithdrawal(w http.ResponseWriter, r *http.Request)
	ListPendingVerifications(w http.ResponseWriter, r *http.Request)
	ApproveVerification(w http.ResponseWriter, r *http.Request)
	RejectVerification(w http.ResponseWriter, r *http.Request)
	CreateAnnouncement(w http.ResponseWriter, r *http.Request)
	ListAnnouncements(w http.ResponseWriter, r *http.Request)
	ToggleAnnouncement(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	DepositHandler      DepositHandler
	WithdrawalHandler   WithdrawalHandler
	RewardHandler       RewardHandler
	ReferralHandler     ReferralHandler
	VerificationHandler VerificationHandler
	JournalHandler      JournalHandler
	AnnouncementHandler AnnouncementHandler
	AdminHandler        AdminHandler

	jwtService auth.JWTServiceInterface
	uploadDir  string
}

func New(s *service.Services, jwtService auth.JWTServiceInterface, files *filestore.Store) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		DepositHandler:      deposithandlers.New(s.DepositService, files),
		WithdrawalHandler:   withdrawalhandlers.New(s.WithdrawalService),
		RewardHandler:       rewardhandlers.New(s.RewardService, s.LedgerService),
		ReferralHandler:     referralhandlers.New(s.ReferralService),
		VerificationHandler: verificationhandlers.New(s.VerificationService, files),
		JournalHandler:      journalhandlers.New(s.JournalService),
		AnnouncementHandler: announcementhandlers.New(s.AnnouncementService),
		AdminHandler: adminhandlers.New(s.AdminService, s.DepositService,
			s.WithdrawalService, s.VerificationService, s.AnnouncementService),
		jwtService: jwtService,
		uploadDir:  files.BaseDir(),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.jwtService))
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadDir))))
	})

	r.Get("/api/announcements/current", h.AnnouncementHandler.GetCurrent)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))
			r.Get("/me", h.AuthHandler.Me)
			r.Get("/stats", h.RewardHandler.GetStats)
			r.Get("/activities", h.JournalHandler.GetActivities)
			r.Get("/transactions", h.JournalHandler.GetTransactions)

			r.Route("/deposits", func(r chi.Router) {
				r.Post("/", h.DepositHandler.Submit)
				r.Get("/", h.DepositHandler.GetDeposits)
				r.Post("/preview", h.DepositHandler.PreviewPlan)
			})
			r.Route("/withdrawals", func(r chi.Router) {
				r.Post("/", h.WithdrawalHandler.Request)
				r.Get("/", h.WithdrawalHandler.GetWithdrawals)
			})
			r.Route("/rewards", func(r chi.Router) {
				r.Get("/", h.RewardHandler.GetPrograms)
				r.Get("/active", h.RewardHandler.GetActiveProgram)
				r.Get("/schedule", h.RewardHandler.GetSchedule)
			})
			r.Route("/referrals", func(r chi.Router) {
				r.Get("/", h.ReferralHandler.GetReferrals)
				r.Get("/stats", h.ReferralHandler.GetStats)
			})
			r.Route("/youtube-verification", func(r chi.Router) {
				r.Post("/", h.VerificationHandler.Submit)
				r.Get("/status", h.VerificationHandler.GetStatus)
			})
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.jwtService), auth.AdminMiddleware)

		r.Get("/dashboard", h.AdminHandler.GetDashboard)
		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.AdminHandler.ListUsers)
			r.Get("/{id}", h.AdminHandler.GetUserDetail)
			r.Patch("/{id}/toggle-active", h.AdminHandler.ToggleUserActive)
		})
		r.Route("/deposits", func(r chi.Router) {
			r.Get("/", h.AdminHandler.ListDeposits)
			r.Post("/{id}/approve", h.AdminHandler.ApproveDeposit)
			r.Post("/{id}/reject", h.AdminHandler.RejectDeposit)
		})
		r.Route("/withdrawals", func(r chi.Router) {
			r.Get("/", h.AdminHandler.ListWithdrawals)
			r.Post("/{id}/process", h.AdminHandler.ProcessWithdrawal)
			r.Post("/{id}/complete", h.AdminHandler.CompleteWithdrawal)
			r.Post("/{id}/reject", h.AdminHandler.RejectWithdrawal)
		})
		r.Route("/youtube-verifications", func(r chi.Router) {
			r.Get("/", h.AdminHandler.ListPendingVerifications)
			r.Post("/{id}/approve", h.AdminHandler.ApproveVerification)
			r.Post("/{id}/reject", h.AdminHandler.RejectVerification)
		})
		r.Route("/announcements", func(r chi.Router) {
			r.Post("/", h.AdminHandler.CreateAnnouncement)
			r.Get("/", h.AdminHandler.ListAnnouncements)
			r.Patch("/{id}/toggle", h.AdminHandler.ToggleAnnouncement)
		})
	})

	return r
}
