package authservice

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/asadmehmood/investhub/internal/domain"
	"github.com/asadmehmood/investhub/internal/pg"
	"github.com/asadmehmood/investhub/pkg/auth"
)

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	SetReferredBy(ctx context.Context, userID, referrerID int) error
}
type ReferralRepo interface {
	Create(ctx context.Context, referral *domain.Referral) (*domain.Referral, error)
}
type TransactionRepo interface {
	Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
}

// ReferralBonus is the fixed credit paid to a referrer at registration.
var ReferralBonus = decimal.NewFromInt(100)

var ErrUsernameTaken = errors.New("username already taken")

// RegisterInput carries the profile fields collected at registration.
type RegisterInput struct {
	Username        string
	Password        string
	FullName        string
	Address         string
	City            string
	MobileNumber    string
	EasyPaisaNumber string
	ReferralCode    string
}

type Service struct {
	userRepo        UserRepo
	referralRepo    ReferralRepo
	transactionRepo TransactionRepo
	hashService     auth.HashServiceInterface
	jwtService      auth.JWTServiceInterface
	txManager       pg.TXManager
	now             func() time.Time
}

func New(userRepo UserRepo, referralRepo ReferralRepo, transactionRepo TransactionRepo,
	hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:        userRepo,
		referralRepo:    referralRepo,
		transactionRepo: transactionRepo,
		hashService:     hashService,
		jwtService:      jwtService,
		txManager:       txManager,
		now:             time.Now,
	}
}

// Register creates the account and resolves the supplied referral code. The
// user and any referral records commit as one unit.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("username", input.Username))
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := s.hashService.HashPassword(input.Password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	referralCode, err := generateReferralCode()
	if err != nil {
		zap.L().Error("can't generate referral code: ", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		Username:        input.Username,
		PasswordHash:    hashedPassword,
		FullName:        input.FullName,
		Address:         input.Address,
		City:            input.City,
		MobileNumber:    input.MobileNumber,
		EasyPaisaNumber: input.EasyPaisaNumber,
		Role:            domain.RoleUser,
		ReferralCode:    referralCode,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.userRepo.Create(ctx, user); err != nil {
			return err
		}
		return s.resolveReferral(ctx, user, input.ReferralCode)
	})
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("username", input.Username))
	return user, nil
}

// resolveReferral credits the owner of the supplied code. A blank or unknown
// code is a silent no-op; the registration itself never fails over it.
func (s *Service) resolveReferral(ctx context.Context, user *domain.User, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil
	}
	referrer, err := s.userRepo.FindByReferralCode(ctx, code)
	if err != nil {
		return err
	}
	if referrer == nil {
		zap.L().Info("referral code matched no user", zap.String("code", code))
		return nil
	}

	if err := s.userRepo.SetReferredBy(ctx, user.ID, referrer.ID); err != nil {
		return err
	}
	paidAt := s.now()
	if _, err := s.referralRepo.Create(ctx, &domain.Referral{
		ReferrerID: referrer.ID,
		ReferredID: user.ID,
		Bonus:      ReferralBonus,
		Status:     domain.ReferralPaid,
		PaidAt:     &paidAt,
	}); err != nil {
		return err
	}
	_, err = s.transactionRepo.Create(ctx, &domain.Transaction{
		UserID:      referrer.ID,
		Type:        domain.TxReferral,
		Amount:      ReferralBonus,
		Description: fmt.Sprintf("Referral bonus for %s", user.Username),
		Status:      domain.TxCompleted,
	})
	if err != nil {
		return err
	}

	referrerID := referrer.ID
	user.ReferredBy = &referrerID
	zap.L().Info("referral resolved", zap.Int("referrerID", referrer.ID), zap.Int("referredID", user.ID))
	return nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("username", username))
		return nil, errors.New("invalid credentials")
	}
	if !user.Active {
		zap.L().Info("inactive user login rejected", zap.String("username", username))
		return nil, errors.New("account is deactivated")
	}
	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return user, nil
}

func (s *Service) GenerateToken(userID int, role string) (string, error) {
	expirationTime := s.now().Add(24 * time.Hour)

	token, err := s.jwtService.GenerateJWT(userID, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) GetUser(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, userID)
	}
	return user, nil
}

// EnsureAdmin provisions the administrator account from configuration on
// first run. Nothing happens when the username already exists.
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		zap.L().Warn("admin credentials not configured, skipping bootstrap")
		return nil
	}
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		return err
	}
	referralCode, err := generateReferralCode()
	if err != nil {
		return err
	}
	_, err = s.userRepo.Create(ctx, &domain.User{
		Username:        username,
		PasswordHash:    hashedPassword,
		FullName:        "Administrator",
		Address:         "-",
		City:            "-",
		MobileNumber:    "-",
		EasyPaisaNumber: "-",
		Role:            domain.RoleAdmin,
		ReferralCode:    referralCode,
	})
	if err != nil {
		return err
	}
	zap.L().Info("admin account provisioned", zap.String("username", username))
	return nil
}

// generateReferralCode produces an 8-char uppercase hex code.
func generateReferralCode() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}
