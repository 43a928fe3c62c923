package pgsql

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ftracker/ft_backend/internal/apperrors"
	"github.com/ftracker/ft_backend/internal/core/domain"
	portsrepo "github.com/ftracker/ft_backend/internal/core/ports/repositories"
	"github.com/ftracker/ft_backend/internal/models"
	"github.com/ftracker/ft_backend/internal/utils/mapping"
)

// ledgerLockKey is the advisory lock key serializing guarded appends
// against the transactions table.
const ledgerLockKey = 857201

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger transaction data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// FindAllTransactions retrieves the full ledger in insertion order.
func (r *PgxLedgerRepository) FindAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, `SELECT payload FROM transactions ORDER BY created_at ASC, transaction_id ASC`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}

	return scanTransactions(rows)
}

// SaveTransaction appends a single transaction to the ledger.
func (r *PgxLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	payload, model, err := marshalPayload(txn)
	if err != nil {
		return err
	}

	_, err = r.Pool.Exec(ctx,
		`INSERT INTO transactions (transaction_id, txn_date, kind, payload) VALUES ($1, $2, $3, $4)`,
		model.TransactionID, model.Date, model.Kind, payload,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction "+model.TransactionID, err)
	}
	return nil
}

// SaveTransactionChecked appends a transaction after re-running the guard
// against the ledger contents inside one database transaction. A session
// advisory lock serializes concurrent guarded appends, so the guard always
// sees every committed append that precedes this one.
func (r *PgxLedgerRepository) SaveTransactionChecked(ctx context.Context, txn domain.Transaction, guard func([]domain.Transaction) error) error {
	payload, model, err := marshalPayload(txn)
	if err != nil {
		return err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, ledgerLockKey); err != nil {
		return apperrors.NewAppError(500, "failed to acquire ledger lock", err)
	}

	rows, err := tx.Query(ctx, `SELECT payload FROM transactions ORDER BY created_at ASC, transaction_id ASC`)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query transactions", err)
	}
	ledger, err := scanTransactions(rows)
	if err != nil {
		return err
	}

	if err := guard(ledger); err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO transactions (transaction_id, txn_date, kind, payload) VALUES ($1, $2, $3, $4)`,
		model.TransactionID, model.Date, model.Kind, payload,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction "+model.TransactionID, err)
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction removes a transaction by its ID.
func (r *PgxLedgerRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1`, transactionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction "+transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// marshalPayload maps a domain transaction to its row model and JSONB payload.
func marshalPayload(txn domain.Transaction) ([]byte, models.Transaction, error) {
	model := mapping.ToModelTransaction(txn)
	payload, err := json.Marshal(model)
	if err != nil {
		return nil, models.Transaction{}, apperrors.NewAppError(500, "failed to marshal transaction payload", err)
	}
	return payload, model, nil
}

// scanTransactions drains a payload result set into domain transactions.
func scanTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction payload", err)
		}
		var model models.Transaction
		if err := json.Unmarshal(payload, &model); err != nil {
			return nil, apperrors.NewAppError(500, "failed to unmarshal transaction payload", err)
		}
		txn, err := mapping.ToDomainTransaction(model)
		if err != nil {
			return nil, apperrors.NewAppError(500, "corrupt transaction payload", err)
		}
		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read transactions", err)
	}
	return transactions, nil
}
