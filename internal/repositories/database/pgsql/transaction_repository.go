package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/explainmymoney/emm_backend/internal/apperrors"
	"github.com/explainmymoney/emm_backend/internal/core/domain"
	portsrepo "github.com/explainmymoney/emm_backend/internal/core/ports/repositories"
	"github.com/explainmymoney/emm_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{db: db}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:  d.TransactionID,
		RawMessage:     d.RawMessage,
		Source:         string(d.Source),
		Timestamp:      d.Timestamp,
		Category:       string(d.Category),
		InvestmentType: nullable(string(d.InvestmentType)),
		Summary:        d.Summary,
		Amount:         d.Amount,
		Currency:       d.Currency,
		Type:           string(d.Type),
		Merchant:       nullable(d.Merchant),
		Method:         nullable(d.Method),
		ReferenceNo:    nullable(d.ReferenceNo),
		Balance:        nullable(d.Balance),
		CreatedAt:      d.CreatedAt,
	}
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:  m.TransactionID,
		RawMessage:     m.RawMessage,
		Source:         domain.Source(m.Source),
		Timestamp:      m.Timestamp,
		Category:       domain.Category(m.Category),
		InvestmentType: domain.InvestmentType(m.InvestmentType.String),
		Summary:        m.Summary,
		Amount:         m.Amount,
		Currency:       m.Currency,
		Type:           domain.TransactionType(m.Type),
		Merchant:       m.Merchant.String,
		Method:         m.Method.String,
		ReferenceNo:    m.ReferenceNo.String,
		Balance:        m.Balance.String,
		CreatedAt:      m.CreatedAt,
	}
}

const transactionColumns = `transaction_id, raw_message, source, timestamp, category, investment_type, summary, amount, currency, type, merchant, method, reference_no, balance, created_at`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.RawMessage,
		&m.Source,
		&m.Timestamp,
		&m.Category,
		&m.InvestmentType,
		&m.Summary,
		&m.Amount,
		&m.Currency,
		&m.Type,
		&m.Merchant,
		&m.Method,
		&m.ReferenceNo,
		&m.Balance,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	d := toDomainTransaction(m)
	return &d, nil
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()
	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction rows: %w", err)
	}
	return txns, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.db.Exec(ctx, query,
		m.TransactionID,
		m.RawMessage,
		m.Source,
		m.Timestamp,
		m.Category,
		m.InvestmentType,
		m.Summary,
		m.Amount,
		m.Currency,
		m.Type,
		m.Merchant,
		m.Method,
		m.ReferenceNo,
		m.Balance,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	txn, err := scanTransaction(r.db.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY timestamp DESC, created_at DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return collectTransactions(rows)
}

func (r *PgxTransactionRepository) ListTransactionsByCategory(ctx context.Context, category domain.Category) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE category = $1 ORDER BY timestamp DESC, created_at DESC;`
	rows, err := r.db.Query(ctx, query, string(category))
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for category %s: %w", category, err)
	}
	return collectTransactions(rows)
}

func (r *PgxTransactionRepository) ListTransactionsByDateRange(ctx context.Context, from, to time.Time) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE timestamp >= $1 AND timestamp <= $2 ORDER BY timestamp DESC, created_at DESC;`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in date range: %w", err)
	}
	return collectTransactions(rows)
}

func (r *PgxTransactionRepository) ListInvestmentTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return r.ListTransactionsByCategory(ctx, domain.CategoryInvestment)
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
