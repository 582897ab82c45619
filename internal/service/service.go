package service

import (
	"github.com/asadmehmood/investhub/internal/pg"
	"github.com/asadmehmood/investhub/internal/repo"
	"github.com/asadmehmood/investhub/internal/service/adminservice"
	"github.com/asadmehmood/investhub/internal/service/announcementservice"
	"github.com/asadmehmood/investhub/internal/service/authservice"
	"github.com/asadmehmood/investhub/internal/service/depositservice"
	"github.com/asadmehmood/investhub/internal/service/journalservice"
	"github.com/asadmehmood/investhub/internal/service/ledgerservice"
	"github.com/asadmehmood/investhub/internal/service/referralservice"
	"github.com/asadmehmood/investhub/internal/service/rewardservice"
	"github.com/asadmehmood/investhub/internal/service/verificationservice"
	"github.com/asadmehmood/investhub/internal/service/withdrawalservice"
	pkgauth "github.com/asadmehmood/investhub/pkg/auth"
)

type Services struct {
	AuthService         *authservice.Service
	LedgerService       *ledgerservice.Service
	RewardService       *rewardservice.Service
	DepositService      *depositservice.Service
	WithdrawalService   *withdrawalservice.Service
	VerificationService *verificationservice.Service
	ReferralService     *referralservice.Service
	JournalService      *journalservice.Service
	AnnouncementService *announcementservice.Service
	AdminService        *adminservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager,
	jwtService pkgauth.JWTServiceInterface, notifier withdrawalservice.Notifier) *Services {
	ledgerService := ledgerservice.New(repo.DepositRepo, repo.ProfitRepo, repo.WithdrawalRepo, repo.ReferralRepo, txManager)
	rewardService := rewardservice.New(repo.ProgramRepo, repo.ProfitRepo)
	depositService := depositservice.New(repo.DepositRepo, repo.TransactionRepo, repo.UserRepo,
		repo.VerificationRepo, rewardService, txManager)
	withdrawalService := withdrawalservice.New(repo.WithdrawalRepo, repo.TransactionRepo, repo.UserRepo,
		ledgerService, notifier, txManager)
	authService := authservice.New(repo.UserRepo, repo.ReferralRepo, repo.TransactionRepo,
		&pkgauth.HashService{}, jwtService, txManager)
	verificationService := verificationservice.New(repo.VerificationRepo, repo.UserRepo)
	referralService := referralservice.New(repo.ReferralRepo, repo.UserRepo)
	journalService := journalservice.New(repo.TransactionRepo)
	announcementService := announcementservice.New(repo.AnnouncementRepo)
	adminService := adminservice.New(repo.UserRepo, repo.DepositRepo, repo.WithdrawalRepo,
		repo.ProgramRepo, repo.TransactionRepo, repo.VerificationRepo, ledgerService)

	return &Services{
		AuthService:         authService,
		LedgerService:       ledgerService,
		RewardService:       rewardService,
		DepositService:      depositService,
		WithdrawalService:   withdrawalService,
		VerificationService: verificationService,
		ReferralService:     referralService,
		JournalService:      journalService,
		AnnouncementService: announcementService,
		AdminService:        adminService,
	}
}
