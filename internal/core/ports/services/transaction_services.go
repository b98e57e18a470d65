package services

import (
	"context"
	"time"

	"github.com/explainmymoney/emm_backend/internal/core/domain"
	"github.com/explainmymoney/emm_backend/internal/dto"
)

// TransactionSvcFacade defines the business operations over transactions.
type TransactionSvcFacade interface {
	// CreateTransaction validates and persists a manually supplied transaction.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// Persist assigns identity and creation time to an already-built domain
	// transaction and stores it. Used by the statement ingestion pipeline.
	Persist(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	GetAllTransactions(ctx context.Context) ([]domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
	GetTransactionsByCategory(ctx context.Context, category domain.Category) ([]domain.Transaction, error)
	GetTransactionsByDateRange(ctx context.Context, from, to time.Time) ([]domain.Transaction, error)
	GetInvestmentTransactions(ctx context.Context) ([]domain.Transaction, error)

	// CategoryAnalytics aggregates debit totals and percentages per category.
	CategoryAnalytics(ctx context.Context) (*dto.CategoryAnalyticsResponse, error)

	// InvestmentAnalytics aggregates totals per investment subtype.
	InvestmentAnalytics(ctx context.Context) (*dto.InvestmentAnalyticsResponse, error)
}
