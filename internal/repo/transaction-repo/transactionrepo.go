package transactionrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/asadmehmood/investhub/internal/domain"
	"github.com/asadmehmood/investhub/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const transactionColumns = `id, user_id, type, amount, description, reference_id, status, created_at`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Description, &t.ReferenceID, &t.Status, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, type, amount, description, reference_id, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		transaction.UserID, transaction.Type, transaction.Amount,
		transaction.Description, transaction.ReferenceID, transaction.Status,
	).Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

// FindByUserID returns the user's journal, newest first. txType filters by
// type when non-empty; limit of 0 means no limit.
func (r *Repository) FindByUserID(ctx context.Context, userID int, txType string, limit int) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + ` FROM transactions
		WHERE user_id = $1 AND ($2 = '' OR type = $2)
		ORDER BY created_at DESC
		LIMIT NULLIF($3, 0)
	`
	rows, err := r.db.Query(ctx, query, userID, txType, limit)
	if err != nil {
		zap.L().Error("can't fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}
	return transactions, rows.Err()
}

// UpdateByReference moves the journal entry linked to a deposit or
// withdrawal along with its referent's lifecycle. The journal is append-only
// otherwise; only status and description ever change.
func (r *Repository) UpdateByReference(ctx context.Context, userID, referenceID int, txType, status, description string) error {
	query := `
		UPDATE transactions SET status = $1, description = $2
		WHERE user_id = $3 AND reference_id = $4 AND type = $5
	`
	_, err := r.db.Exec(ctx, query, status, description, userID, referenceID, txType)
	if err != nil {
		zap.L().Error("can't update transaction by reference", zap.Error(err))
	}
	return err
}
