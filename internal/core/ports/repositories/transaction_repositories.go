package repositories

import (
	"context"
	"time"

	"github.com/explainmymoney/emm_backend/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its ID.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves all transactions, newest first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsByCategory retrieves transactions in one category, newest first.
	ListTransactionsByCategory(ctx context.Context, category domain.Category) ([]domain.Transaction, error)

	// ListTransactionsByDateRange retrieves transactions whose timestamp falls in [from, to].
	ListTransactionsByDateRange(ctx context.Context, from, to time.Time) ([]domain.Transaction, error)

	// ListInvestmentTransactions retrieves all Investment-category transactions, newest first.
	ListInvestmentTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
// Transactions are immutable once created; there is no update.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction. Returns apperrors.ErrNotFound
	// when no row matches.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
