package repositories

import (
	"context"

	"github.com/ftracker/ft_backend/internal/core/domain"
)

// LedgerReader defines read operations for the transaction ledger.
type LedgerReader interface {
	// FindAllTransactions retrieves the full ledger in insertion order.
	// Balances and monthly summaries are always derived from a full scan.
	FindAllTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// LedgerWriter defines write operations for the transaction ledger. The
// ledger is append-mostly: transactions are never edited in place.
type LedgerWriter interface {
	// SaveTransaction appends a single transaction to the durable ledger.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// SaveTransactionChecked appends a transaction after re-running the given
	// guard against the ledger contents inside one database transaction, so
	// that concurrent writers cannot overdraw an account between the check
	// and the insert. The guard receives the current ledger and returns an
	// error to abort the append.
	SaveTransactionChecked(ctx context.Context, txn domain.Transaction, guard func([]domain.Transaction) error) error

	// DeleteTransaction removes a transaction by its ID. Returns
	// apperrors.ErrNotFound if no transaction with that ID exists.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// LedgerRepositoryFacade combines all ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
