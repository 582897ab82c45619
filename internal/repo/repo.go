package repo

import (
	"github.com/asadmehmood/investhub/internal/pg"
	announcementrepo "github.com/asadmehmood/investhub/internal/repo/announcement-repo"
	depositrepo "github.com/asadmehmood/investhub/internal/repo/deposit-repo"
	profitrepo "github.com/asadmehmood/investhub/internal/repo/profit-repo"
	programrepo "github.com/asadmehmood/investhub/internal/repo/program-repo"
	referralrepo "github.com/asadmehmood/investhub/internal/repo/referral-repo"
	transactionrepo "github.com/asadmehmood/investhub/internal/repo/transaction-repo"
	userrepo "github.com/asadmehmood/investhub/internal/repo/user-repo"
	verificationrepo "github.com/asadmehmood/investhub/internal/repo/verification-repo"
	withdrawalrepo "github.com/asadmehmood/investhub/internal/repo/withdrawal-repo"
)

type Repositories struct {
	UserRepo         *userrepo.Repository
	DepositRepo      *depositrepo.Repository
	WithdrawalRepo   *withdrawalrepo.Repository
	VerificationRepo *verificationrepo.Repository
	ProgramRepo      *programrepo.Repository
	ProfitRepo       *profitrepo.Repository
	TransactionRepo  *transactionrepo.Repository
	ReferralRepo     *referralrepo.Repository
	AnnouncementRepo *announcementrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		DepositRepo:      depositrepo.New(conn),
		WithdrawalRepo:   withdrawalrepo.New(conn),
		VerificationRepo: verificationrepo.New(conn),
		ProgramRepo:      programrepo.New(conn),
		ProfitRepo:       profitrepo.New(conn),
		TransactionRepo:  transactionrepo.New(conn),
		ReferralRepo:     referralrepo.New(conn),
		AnnouncementRepo: announcementrepo.New(conn),
	}
}
