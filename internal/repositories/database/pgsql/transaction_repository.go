package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/moneytrack/money_tracker_app/internal/apperrors"
	"github.com/moneytrack/money_tracker_app/internal/core/domain"
	portsrepo "github.com/moneytrack/money_tracker_app/internal/core/ports/repositories"
	"github.com/moneytrack/money_tracker_app/internal/models"
)

const transactionColumns = `t.id, t.account_id, t.amount, t.transaction_type, t.note, t.created_at, a.name_cn, a.color, a.is_debt`

type PgxTransactionRepository struct {
	BaseRepository
}

// NewPgxTransactionRepository creates a new repository for ledger data.
func NewPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts the ledger row and applies the signed delta to the
// owning account inside one DB transaction. The SELECT ... FOR UPDATE
// serializes the read-modify-write per account, so concurrent Record calls
// against the same account cannot lose an update.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var balance decimal.Decimal
	var nameCN, color string
	var isDebt bool
	lockQuery := `SELECT balance, name_cn, color, is_debt FROM accounts WHERE id = $1 FOR UPDATE;`
	err = tx.QueryRow(ctx, lockQuery, txn.AccountID).Scan(&balance, &nameCN, &color, &isDebt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock account %d: %w", txn.AccountID, err)
	}

	insertQuery := `
		INSERT INTO transactions (account_id, amount, transaction_type, note, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;`
	saved := txn
	err = tx.QueryRow(ctx, insertQuery,
		txn.AccountID,
		txn.Amount,
		string(txn.Type),
		txn.Note,
		txn.CreatedAt,
	).Scan(&saved.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction for account %d: %w", txn.AccountID, err)
	}

	updateQuery := `UPDATE accounts SET balance = $2, updated_at = $3 WHERE id = $1;`
	newBalance := balance.Add(txn.Amount)
	if _, err := tx.Exec(ctx, updateQuery, txn.AccountID, newBalance, txn.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to apply balance delta to account %d: %w", txn.AccountID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	saved.AccountName = nameCN
	saved.AccountColor = color
	saved.AccountIsDebt = isDebt
	return &saved, nil
}

func toDomainTransaction(m models.Transaction, accountName, accountColor string, accountIsDebt bool) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		Amount:        m.Amount,
		Type:          domain.TransactionType(m.Type),
		Note:          m.Note,
		CreatedAt:     m.CreatedAt,
		AccountName:   accountName,
		AccountColor:  accountColor,
		AccountIsDebt: accountIsDebt,
	}
}

func scanTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	txns := []domain.Transaction{}
	for rows.Next() {
		var m models.Transaction
		var nameCN, color string
		var isDebt bool
		err := rows.Scan(
			&m.TransactionID,
			&m.AccountID,
			&m.Amount,
			&m.Type,
			&m.Note,
			&m.CreatedAt,
			&nameCN,
			&color,
			&isDebt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m, nameCN, color, isDebt))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return txns, nil
}

// ListTransactions returns one page ordered newest first plus the total count.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, limit, offset int) ([]domain.Transaction, int64, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN accounts a ON t.account_id = a.id
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT $1 OFFSET $2;`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns, err := scanTransactions(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions;`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	return txns, total, nil
}

// ListAllTransactions returns the full ledger ordered newest first.
func (r *PgxTransactionRepository) ListAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN accounts a ON t.account_id = a.id
		ORDER BY t.created_at DESC, t.id DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}
