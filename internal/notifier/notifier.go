// Package notifier sends operational email notifications over SMTP.
package notifier

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/asadmehmood/investhub/internal/config"
	"github.com/asadmehmood/investhub/internal/domain"
)

type Service struct {
	dialer     *gomail.Dialer
	from       string
	adminEmail string
}

func New(cfg *config.Config) *Service {
	return &Service{
		dialer:     gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:       cfg.SMTPUser,
		adminEmail: cfg.AdminEmail,
	}
}

// NotifyWithdrawal mails the payout details to the admin inbox. Failures are
// logged, never surfaced to the caller.
func (s *Service) NotifyWithdrawal(user *domain.User, amountAfterFee decimal.Decimal) {
	if s.adminEmail == "" || s.from == "" {
		zap.L().Debug("withdrawal notification skipped: smtp not configured")
		return
	}

	body := fmt.Sprintf(
		"New withdrawal request\n\n"+
			"User: %s\n"+
			"Full name: %s\n"+
			"Address: %s, %s\n"+
			"Mobile: %s\n"+
			"EasyPaisa: %s\n"+
			"Amount to pay out: %s PKR\n",
		user.Username,
		user.FullName,
		user.Address, user.City,
		user.MobileNumber,
		user.EasyPaisaNumber,
		amountAfterFee.StringFixed(2),
	)

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.adminEmail)
	m.SetHeader("Subject", fmt.Sprintf("Withdrawal request from %s", user.Username))
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		zap.L().Error("failed to send withdrawal notification",
			zap.String("username", user.Username),
			zap.Error(err))
		return
	}

	zap.L().Info("withdrawal notification sent",
		zap.String("username", user.Username),
		zap.String("amount", amountAfterFee.StringFixed(2)))
}
