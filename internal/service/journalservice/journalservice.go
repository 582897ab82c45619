package journalservice

import (
	"context"
	"time"

	"github.com/asadmehmood/investhub/internal/domain"
)

type TransactionRepo interface {
	FindByUserID(ctx context.Context, userID int, txType string, limit int) ([]domain.Transaction, error)
}

// Time ranges accepted by GetTransactions.
const (
	Range30Days string = "30days"
	Range90Days string = "90days"
	RangeYear   string = "year"
	RangeAll    string = "all"
)

const activitiesLimit = 10

type Service struct {
	transactionRepo TransactionRepo
	now             func() time.Time
}

func New(transactionRepo TransactionRepo) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// GetActivities returns the user's latest journal entries for the dashboard.
func (s *Service) GetActivities(ctx context.Context, userID int) ([]domain.Transaction, error) {
	return s.transactionRepo.FindByUserID(ctx, userID, "", activitiesLimit)
}

// GetTransactions returns the journal filtered by type ("all" or empty for
// everything) and time range.
func (s *Service) GetTransactions(ctx context.Context, userID int, txType, timeRange string) ([]domain.Transaction, error) {
	if txType == "all" {
		txType = ""
	}
	transactions, err := s.transactionRepo.FindByUserID(ctx, userID, txType, 0)
	if err != nil {
		return nil, err
	}
	return filterByTimeRange(transactions, timeRange, s.now()), nil
}

func filterByTimeRange(transactions []domain.Transaction, timeRange string, now time.Time) []domain.Transaction {
	var cutoff time.Time
	switch timeRange {
	case Range30Days:
		cutoff = now.AddDate(0, 0, -30)
	case Range90Days:
		cutoff = now.AddDate(0, 0, -90)
	case RangeYear:
		cutoff = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return transactions
	}

	filtered := make([]domain.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if !transaction.CreatedAt.Before(cutoff) {
			filtered = append(filtered, transaction)
		}
	}
	return filtered
}

// Title maps a journal entry type to its display title.
func Title(txType string) string {
	switch txType {
	case domain.TxDeposit:
		return "Deposit"
	case domain.TxWithdrawal:
		return "Withdrawal"
	case domain.TxProfit:
		return "Weekly Profit"
	case domain.TxReferral:
		return "Referral Bonus"
	default:
		return "Transaction"
	}
}
