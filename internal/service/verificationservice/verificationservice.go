package verificationservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/asadmehmood/investhub/internal/domain"
)

type VerificationRepo interface {
	Create(ctx context.Context, verification *domain.Verification) (*domain.Verification, error)
	FindByID(ctx context.Context, id int) (*domain.Verification, error)
	FindLatestByUserID(ctx context.Context, userID int) (*domain.Verification, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Verification, error)
	FindLatestPending(ctx context.Context) ([]domain.Verification, error)
	UpdateStatus(ctx context.Context, id int, status string, note *string, updatedAt time.Time) error
}
type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	SetYoutubeVerified(ctx context.Context, userID int, verified bool) error
}

// Status is the user-facing verification summary. Only the most recent
// submission counts.
type Status struct {
	Verified       bool       `json:"verified"`
	Status         *string    `json:"status"`
	LastSubmission *time.Time `json:"lastSubmission"`
}

type Service struct {
	verificationRepo VerificationRepo
	userRepo         UserRepo
	now              func() time.Time
}

func New(verificationRepo VerificationRepo, userRepo UserRepo) *Service {
	return &Service{
		verificationRepo: verificationRepo,
		userRepo:         userRepo,
		now:              time.Now,
	}
}

// Submit files a new pending verification. Users may resubmit; the latest
// submission supersedes earlier ones.
func (s *Service) Submit(ctx context.Context, userID int, screenshotRef string) (*domain.Verification, error) {
	if screenshotRef == "" {
		return nil, fmt.Errorf("%w: screenshot is required", domain.ErrValidation)
	}
	verification := &domain.Verification{
		UserID:        userID,
		ScreenshotRef: screenshotRef,
		Status:        domain.VerificationPending,
	}
	if _, err := s.verificationRepo.Create(ctx, verification); err != nil {
		return nil, err
	}
	zap.L().Info("verification submitted", zap.Int("userID", userID), zap.Int("verificationID", verification.ID))
	return verification, nil
}

func (s *Service) GetStatus(ctx context.Context, userID int) (*Status, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, userID)
	}

	latest, err := s.verificationRepo.FindLatestByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	status := &Status{Verified: user.YoutubeVerified}
	if latest != nil {
		status.Status = &latest.Status
		status.LastSubmission = &latest.CreatedAt
	}
	return status, nil
}

func (s *Service) GetVerification(ctx context.Context, verificationID int) (*domain.Verification, error) {
	verification, err := s.verificationRepo.FindByID(ctx, verificationID)
	if err != nil {
		return nil, err
	}
	if verification == nil {
		return nil, fmt.Errorf("%w: verification %d", domain.ErrNotFound, verificationID)
	}
	return verification, nil
}

// Approve marks the verification approved and flips the user's flag.
func (s *Service) Approve(ctx context.Context, verificationID int, note string) (*domain.Verification, error) {
	if note == "" {
		note = "Approved by admin"
	}
	verification, err := s.GetVerification(ctx, verificationID)
	if err != nil {
		return nil, err
	}
	if verification.Status != domain.VerificationPending {
		return nil, fmt.Errorf("%w: verification %d is %s", domain.ErrInvalidState, verificationID, verification.Status)
	}

	if err := s.verificationRepo.UpdateStatus(ctx, verificationID, domain.VerificationApproved, &note, s.now()); err != nil {
		return nil, err
	}
	if err := s.userRepo.SetYoutubeVerified(ctx, verification.UserID, true); err != nil {
		return nil, err
	}

	verification.Status = domain.VerificationApproved
	verification.AdminNote = &note
	zap.L().Info("verification approved", zap.Int("verificationID", verificationID))
	return verification, nil
}

func (s *Service) Reject(ctx context.Context, verificationID int, note string) (*domain.Verification, error) {
	if note == "" {
		note = "Rejected by admin"
	}
	verification, err := s.GetVerification(ctx, verificationID)
	if err != nil {
		return nil, err
	}
	if verification.Status != domain.VerificationPending {
		return nil, fmt.Errorf("%w: verification %d is %s", domain.ErrInvalidState, verificationID, verification.Status)
	}

	if err := s.verificationRepo.UpdateStatus(ctx, verificationID, domain.VerificationRejected, &note, s.now()); err != nil {
		return nil, err
	}

	verification.Status = domain.VerificationRejected
	verification.AdminNote = &note
	zap.L().Info("verification rejected", zap.Int("verificationID", verificationID))
	return verification, nil
}

// GetPending lists, per user, the latest verification when it is still
// awaiting review.
func (s *Service) GetPending(ctx context.Context) ([]domain.Verification, error) {
	return s.verificationRepo.FindLatestPending(ctx)
}
