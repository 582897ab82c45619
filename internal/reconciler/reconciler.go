// Package reconciler materializes elapsed profit weeks. Until a week is
// persisted here, the schedule a user sees is only a projection; the ledger
// counts nothing. Each pass turns every fully elapsed, not-yet-persisted
// week of every active program into a paid profit row plus a completed
// journal entry.
package reconciler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/asadmehmood/investhub/internal/config"
	"github.com/asadmehmood/investhub/internal/domain"
	"github.com/asadmehmood/investhub/internal/pg"
	"github.com/asadmehmood/investhub/internal/service/rewardservice"
)

var processingPrograms sync.Map

type ProgramRepo interface {
	FindActive(ctx context.Context, limit uint32) ([]domain.RewardProgram, error)
}
type ProfitRepo interface {
	WeeksByProgramID(ctx context.Context, programID int) (map[int]struct{}, error)
	Create(ctx context.Context, profit *domain.Profit) (bool, error)
}
type TransactionRepo interface {
	Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error)
}

type Service struct {
	programRepo     ProgramRepo
	profitRepo      ProfitRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
	limit           uint32
	workerPool      WorkerPoolI
	updateInterval  time.Duration
	now             func() time.Time
}

func New(cfg *config.Config, programRepo ProgramRepo, profitRepo ProfitRepo,
	transactionRepo TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		programRepo:     programRepo,
		profitRepo:      profitRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		limit:           1000,
		workerPool:      NewWorkerPool(10),
		updateInterval:  cfg.ReconcileInterval,
		now:             time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Profit reconciler started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			return
		case <-ticker.C:
			s.processPrograms(ctx)
		}
	}
}

func (s *Service) processPrograms(ctx context.Context) {
	programs, err := s.programRepo.FindActive(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch programs for reconciliation", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, program := range programs {
		program := program

		if _, loaded := processingPrograms.LoadOrStore(program.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingPrograms.Delete(program.ID)
				return s.reconcileProgram(ctx, program)
			})
			if err != nil {
				processingPrograms.Delete(program.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error reconciling programs", zap.Error(err))
	}
}

// reconcileProgram persists every elapsed week the program is still owed.
// Reruns are harmless: week numbers are unique per program and an existing
// row skips the journal write too.
func (s *Service) reconcileProgram(ctx context.Context, program domain.RewardProgram) error {
	persisted, err := s.profitRepo.WeeksByProgramID(ctx, program.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch persisted weeks for program %d: %w", program.ID, err)
	}

	now := s.now()
	for week := 1; week <= rewardservice.ScheduleWeeks; week++ {
		if _, ok := persisted[week]; ok {
			continue
		}
		start := program.StartDate.AddDate(0, 0, (week-1)*7)
		end := start.AddDate(0, 0, 6)
		if !end.Before(now) {
			break
		}

		if err := s.persistWeek(ctx, program, week, start, end); err != nil {
			return fmt.Errorf("failed to persist week %d of program %d: %w", week, program.ID, err)
		}
	}
	return nil
}

func (s *Service) persistWeek(ctx context.Context, program domain.RewardProgram, week int, start, end time.Time) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		paidAt := end
		profit := &domain.Profit{
			UserID:          program.UserID,
			RewardProgramID: program.ID,
			Amount:          program.WeeklyProfit,
			WeekNumber:      week,
			StartDate:       start,
			EndDate:         end,
			Status:          domain.ProfitPaid,
			PaidAt:          &paidAt,
		}
		created, err := s.profitRepo.Create(ctx, profit)
		if err != nil {
			return err
		}
		if !created {
			return nil
		}

		_, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			UserID:      program.UserID,
			Type:        domain.TxProfit,
			Amount:      program.WeeklyProfit,
			Description: fmt.Sprintf("Weekly profit for week %d", week),
			ReferenceID: &profit.ID,
			Status:      domain.TxCompleted,
		})
		if err != nil {
			return err
		}

		zap.L().Info("Profit week materialized",
			zap.Int("programID", program.ID), zap.Int("week", week),
			zap.String("amount", program.WeeklyProfit.String()))
		return nil
	})
}
