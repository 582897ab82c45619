package rewardservice

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/asadmehmood/investhub/internal/domain"
)

type ProgramRepo interface {
	Create(ctx context.Context, program *domain.RewardProgram) (*domain.RewardProgram, error)
	FindActiveByUserID(ctx context.Context, userID int) (*domain.RewardProgram, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.RewardProgram, error)
	End(ctx context.Context, id int, endDate time.Time) error
}
type ProfitRepo interface {
	FindByProgramID(ctx context.Context, programID int) ([]domain.Profit, error)
}

// ScheduleWeeks is the length of every program's profit schedule.
const ScheduleWeeks = 12

type Service struct {
	programRepo ProgramRepo
	profitRepo  ProfitRepo
	now         func() time.Time
}

func New(programRepo ProgramRepo, profitRepo ProfitRepo) *Service {
	return &Service{
		programRepo: programRepo,
		profitRepo:  profitRepo,
		now:         time.Now,
	}
}

// tiers maps a deposit amount to its weekly profit, highest threshold first.
var tiers = []struct {
	minDeposit   decimal.Decimal
	weeklyProfit decimal.Decimal
}{
	{decimal.NewFromInt(500000), decimal.NewFromInt(15000)},
	{decimal.NewFromInt(100000), decimal.NewFromInt(10000)},
	{decimal.NewFromInt(50000), decimal.NewFromInt(5000)},
	{decimal.NewFromInt(30000), decimal.NewFromInt(3000)},
	{decimal.NewFromInt(15000), decimal.NewFromInt(1500)},
	{decimal.NewFromInt(5000), decimal.NewFromInt(500)},
}

// WeeklyProfitFor resolves the weekly profit for a deposit amount. Zero
// means the amount is below the lowest tier and earns no program.
func WeeklyProfitFor(depositAmount decimal.Decimal) decimal.Decimal {
	for _, tier := range tiers {
		if depositAmount.GreaterThanOrEqual(tier.minDeposit) {
			return tier.weeklyProfit
		}
	}
	return decimal.Zero
}

// Activate resolves the tier for an approved deposit and starts a new
// program. Any prior active program is ended first: the rollover is
// unconditional and abandons that program's unpaid weeks. A sub-tier deposit
// creates nothing and is not an error.
//
// Runs inside the caller's transaction; deposit approval and program
// creation commit or fail as one unit.
func (s *Service) Activate(ctx context.Context, userID, depositID int, depositAmount decimal.Decimal) (*domain.RewardProgram, error) {
	if depositID <= 0 {
		return nil, fmt.Errorf("%w: reward program requires a deposit", domain.ErrReference)
	}

	weeklyProfit := WeeklyProfitFor(depositAmount)
	if weeklyProfit.IsZero() {
		zap.L().Info("deposit below reward tiers, no program created",
			zap.Int("userID", userID), zap.String("amount", depositAmount.String()))
		return nil, nil
	}

	existing, err := s.programRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := s.programRepo.End(ctx, existing.ID, s.now()); err != nil {
			return nil, err
		}
		zap.L().Info("rolled over active reward program",
			zap.Int("userID", userID), zap.Int("endedProgramID", existing.ID))
	}

	program := &domain.RewardProgram{
		UserID:        userID,
		DepositID:     depositID,
		DepositAmount: depositAmount,
		WeeklyProfit:  weeklyProfit,
		Status:        domain.ProgramActive,
		StartDate:     s.now(),
	}
	if _, err := s.programRepo.Create(ctx, program); err != nil {
		return nil, err
	}

	zap.L().Info("reward program activated",
		zap.Int("userID", userID), zap.Int("programID", program.ID),
		zap.String("weeklyProfit", weeklyProfit.String()))
	return program, nil
}

func (s *Service) GetActiveProgram(ctx context.Context, userID int) (*domain.RewardProgram, error) {
	return s.programRepo.FindActiveByUserID(ctx, userID)
}

func (s *Service) GetPrograms(ctx context.Context, userID int) ([]domain.RewardProgram, error) {
	return s.programRepo.FindByUserID(ctx, userID)
}

// GetSchedule returns the active program's weekly schedule. Persisted profit
// rows are authoritative; with none yet, a projection is synthesized against
// the clock and not persisted by this read path.
func (s *Service) GetSchedule(ctx context.Context, userID int) ([]domain.ScheduleEntry, error) {
	program, err := s.programRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, nil
	}

	profits, err := s.profitRepo.FindByProgramID(ctx, program.ID)
	if err != nil {
		return nil, err
	}
	if len(profits) > 0 {
		entries := make([]domain.ScheduleEntry, len(profits))
		for i, profit := range profits {
			entries[i] = domain.ScheduleEntry{
				WeekNumber: profit.WeekNumber,
				StartDate:  profit.StartDate,
				EndDate:    profit.EndDate,
				Amount:     profit.Amount,
				Status:     profit.Status,
			}
		}
		return entries, nil
	}

	return ProjectSchedule(program, s.now()), nil
}

// NextPayout is the end of the first week window that has not fully elapsed,
// nil once every week of the program is behind now.
func NextPayout(program *domain.RewardProgram, now time.Time) *time.Time {
	for week := 1; week <= ScheduleWeeks; week++ {
		end := program.StartDate.AddDate(0, 0, (week-1)*7+6)
		if !end.Before(now) {
			return &end
		}
	}
	return nil
}

// ProjectSchedule synthesizes the 12-week schedule for a program. Week n
// spans [start+(n-1)*7d, start+(n-1)*7d+6d]; status is paid once the window
// has fully elapsed, processing while now is inside it, pending otherwise.
func ProjectSchedule(program *domain.RewardProgram, now time.Time) []domain.ScheduleEntry {
	entries := make([]domain.ScheduleEntry, 0, ScheduleWeeks)
	for week := 1; week <= ScheduleWeeks; week++ {
		start := program.StartDate.AddDate(0, 0, (week-1)*7)
		end := start.AddDate(0, 0, 6)

		status := domain.ProfitPending
		switch {
		case end.Before(now):
			status = domain.ProfitPaid
		case !start.After(now) && !now.After(end):
			status = domain.ProfitProcessing
		}

		entries = append(entries, domain.ScheduleEntry{
			WeekNumber: week,
			StartDate:  start,
			EndDate:    end,
			Amount:     program.WeeklyProfit,
			Status:     status,
		})
	}
	return entries
}
