package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/explainmymoney/emm_backend/internal/apperrors"
	"github.com/explainmymoney/emm_backend/internal/core/domain"
	"github.com/explainmymoney/emm_backend/internal/core/parser"
	portsrepo "github.com/explainmymoney/emm_backend/internal/core/ports/repositories"
	portssvc "github.com/explainmymoney/emm_backend/internal/core/ports/services"
	"github.com/explainmymoney/emm_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// transactionServiceImpl implements the TransactionSvcFacade interface.
type transactionServiceImpl struct {
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionServiceImpl{txnRepo: repo}
}

// Ensure transactionServiceImpl implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionServiceImpl)(nil)

var validCategories = map[domain.Category]bool{
	domain.CategoryFood:          true,
	domain.CategoryEntertainment: true,
	domain.CategoryEMIHomeLoan:   true,
	domain.CategoryEMICarLoan:    true,
	domain.CategoryUtilities:     true,
	domain.CategoryShopping:      true,
	domain.CategoryInvestment:    true,
	domain.CategoryOther:         true,
}

func (s *transactionServiceImpl) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txn := domain.Transaction{
		RawMessage:     req.RawMessage,
		Source:         domain.Source(req.Source),
		Timestamp:      req.Timestamp,
		Category:       domain.Category(req.Category),
		InvestmentType: domain.InvestmentType(req.InvestmentType),
		Summary:        req.Summary,
		Amount:         req.Amount,
		Currency:       req.Currency,
		Type:           domain.TransactionType(req.Type),
		Merchant:       req.Merchant,
		Method:         req.Method,
		ReferenceNo:    req.ReferenceNo,
		Balance:        req.Balance,
	}

	if txn.Currency == "" {
		txn.Currency = parser.DefaultCurrencySymbol
	}
	if txn.Summary == "" {
		cls := parser.Classification{
			Category:       txn.Category,
			InvestmentType: txn.InvestmentType,
			Merchant:       txn.Merchant,
		}
		if cls.Merchant == "" {
			cls.Merchant = parser.ExtractMerchant(txn.RawMessage)
		}
		candidate := parser.RawCandidate{
			Description: txn.RawMessage,
			Amount:      txn.Amount,
			Direction:   txn.Type,
		}
		txn.Summary = parser.Summarize(candidate, cls, txn.Currency, parser.DefaultLocale)
	}

	return s.Persist(ctx, txn)
}

// Persist validates a built transaction, assigns identity and creation time,
// and stores it.
func (s *transactionServiceImpl) Persist(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	if err := validateTransaction(&txn); err != nil {
		return nil, err
	}

	txn.TransactionID = uuid.NewString()
	txn.CreatedAt = time.Now()
	txn.Amount = txn.Amount.Round(2)

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	return &txn, nil
}

// validateTransaction enforces the domain invariants: positive amount, a
// known category, and the Investment/investmentType pairing.
func validateTransaction(txn *domain.Transaction) error {
	if txn.Amount.Sign() <= 0 {
		return fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}
	if !validCategories[txn.Category] {
		return fmt.Errorf("unknown category %q: %w", txn.Category, apperrors.ErrValidation)
	}
	switch txn.Type {
	case domain.Debit, domain.Credit, domain.Alert:
	default:
		return fmt.Errorf("unknown transaction type %q: %w", txn.Type, apperrors.ErrValidation)
	}

	// investmentType is non-empty iff category is Investment.
	if txn.Category == domain.CategoryInvestment {
		if txn.InvestmentType == "" {
			txn.InvestmentType = domain.InvestmentOther
		}
	} else if txn.InvestmentType != "" {
		return fmt.Errorf("investmentType set on non-investment category %q: %w", txn.Category, apperrors.ErrValidation)
	}
	return nil
}

func (s *transactionServiceImpl) GetAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.txnRepo.ListTransactions(ctx)
}

func (s *transactionServiceImpl) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.txnRepo.FindTransactionByID(ctx, transactionID)
}

func (s *transactionServiceImpl) DeleteTransaction(ctx context.Context, transactionID string) error {
	return s.txnRepo.DeleteTransaction(ctx, transactionID)
}

func (s *transactionServiceImpl) GetTransactionsByCategory(ctx context.Context, category domain.Category) ([]domain.Transaction, error) {
	if !validCategories[category] {
		return nil, fmt.Errorf("unknown category %q: %w", category, apperrors.ErrValidation)
	}
	return s.txnRepo.ListTransactionsByCategory(ctx, category)
}

func (s *transactionServiceImpl) GetTransactionsByDateRange(ctx context.Context, from, to time.Time) ([]domain.Transaction, error) {
	if from.After(to) {
		return nil, fmt.Errorf("date range start after end: %w", apperrors.ErrValidation)
	}
	return s.txnRepo.ListTransactionsByDateRange(ctx, from, to)
}

func (s *transactionServiceImpl) GetInvestmentTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.txnRepo.ListInvestmentTransactions(ctx)
}

// CategoryAnalytics groups debit transactions by category with totals and
// percentage-of-spend, largest first.
func (s *transactionServiceImpl) CategoryAnalytics(ctx context.Context) (*dto.CategoryAnalyticsResponse, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for analytics: %w", err)
	}

	totals := make(map[domain.Category]*dto.CategoryTotal)
	totalSpend := decimal.Zero
	for i := range txns {
		if txns[i].Type != domain.Debit {
			continue
		}
		entry, ok := totals[txns[i].Category]
		if !ok {
			entry = &dto.CategoryTotal{Name: string(txns[i].Category)}
			totals[txns[i].Category] = entry
		}
		entry.Total = entry.Total.Add(txns[i].Amount)
		entry.Count++
		totalSpend = totalSpend.Add(txns[i].Amount)
	}

	resp := &dto.CategoryAnalyticsResponse{TotalSpend: totalSpend, Categories: []dto.CategoryTotal{}}
	for _, entry := range totals {
		if totalSpend.Sign() > 0 {
			pct, _ := entry.Total.Div(totalSpend).Mul(decimal.NewFromInt(100)).Float64()
			entry.Percentage = pct
		}
		resp.Categories = append(resp.Categories, *entry)
	}
	// Largest first; ties break on name so output is stable across runs.
	sort.SliceStable(resp.Categories, func(i, j int) bool {
		if !resp.Categories[i].Total.Equal(resp.Categories[j].Total) {
			return resp.Categories[i].Total.GreaterThan(resp.Categories[j].Total)
		}
		return resp.Categories[i].Name < resp.Categories[j].Name
	})
	return resp, nil
}

// InvestmentAnalytics groups Investment transactions by subtype with totals
// and percentage-of-investment, largest first.
func (s *transactionServiceImpl) InvestmentAnalytics(ctx context.Context) (*dto.InvestmentAnalyticsResponse, error) {
	investments, err := s.txnRepo.ListInvestmentTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list investment transactions: %w", err)
	}

	totals := make(map[domain.InvestmentType]*dto.InvestmentTotal)
	totalInvestment := decimal.Zero
	for i := range investments {
		invType := investments[i].InvestmentType
		if invType == "" {
			invType = domain.InvestmentOther
		}
		entry, ok := totals[invType]
		if !ok {
			entry = &dto.InvestmentTotal{Type: string(invType)}
			totals[invType] = entry
		}
		entry.Total = entry.Total.Add(investments[i].Amount)
		entry.Count++
		totalInvestment = totalInvestment.Add(investments[i].Amount)
	}

	resp := &dto.InvestmentAnalyticsResponse{
		TotalInvestment: totalInvestment,
		Investments:     []dto.InvestmentTotal{},
		Transactions:    dto.ToTransactionResponses(investments),
	}
	for _, entry := range totals {
		if totalInvestment.Sign() > 0 {
			pct, _ := entry.Total.Div(totalInvestment).Mul(decimal.NewFromInt(100)).Float64()
			entry.Percentage = pct
		}
		resp.Investments = append(resp.Investments, *entry)
	}
	sort.SliceStable(resp.Investments, func(i, j int) bool {
		if !resp.Investments[i].Total.Equal(resp.Investments[j].Total) {
			return resp.Investments[i].Total.GreaterThan(resp.Investments[j].Total)
		}
		return resp.Investments[i].Type < resp.Investments[j].Type
	})
	return resp, nil
}
