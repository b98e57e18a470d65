package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/explainmymoney/emm_backend/internal/apperrors"
	"github.com/explainmymoney/emm_backend/internal/core/domain"
	"github.com/explainmymoney/emm_backend/internal/core/parser"
	portsrepo "github.com/explainmymoney/emm_backend/internal/core/ports/repositories"
	portssvc "github.com/explainmymoney/emm_backend/internal/core/ports/services"
	"github.com/explainmymoney/emm_backend/internal/dto"
	"github.com/explainmymoney/emm_backend/internal/middleware"
	"golang.org/x/text/language"
)

// MaxStatementBytes is the upload size ceiling for statement documents.
const MaxStatementBytes = 10 << 20 // 10 MB

// statementServiceImpl implements the StatementSvcFacade interface.
type statementServiceImpl struct {
	txnService portssvc.TransactionSvcFacade
	userRepo   portsrepo.UserReader
}

// StatementOption is a functional option for configuring the statement service.
type StatementOption func(*statementServiceImpl)

// WithUserReader wires a user reader so imports pick up the uploading user's
// currency settings. Without it the defaults (₹, en-IN) apply.
func WithUserReader(repo portsrepo.UserReader) StatementOption {
	return func(s *statementServiceImpl) {
		s.userRepo = repo
	}
}

// NewStatementService creates a new statement ingestion service.
func NewStatementService(txnService portssvc.TransactionSvcFacade, options ...StatementOption) portssvc.StatementSvcFacade {
	svc := &statementServiceImpl{txnService: txnService}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure statementServiceImpl implements the StatementSvcFacade interface
var _ portssvc.StatementSvcFacade = (*statementServiceImpl)(nil)

// ImportStatement decodes, gates, enriches and persists one uploaded
// statement document. A document that cannot be decoded fails the whole
// batch; individual bad rows are counted in Skipped and never abort it.
func (s *statementServiceImpl) ImportStatement(ctx context.Context, userID, filename, mimeType string, data []byte) (*dto.ImportStatementResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(data) > MaxStatementBytes {
		return nil, fmt.Errorf("statement exceeds %d bytes: %w", MaxStatementBytes, apperrors.ErrValidation)
	}

	candidates, err := decodeStatement(filename, mimeType, data)
	if err != nil {
		return nil, err
	}

	valid := make([]parser.RawCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.IsValid() {
			valid = append(valid, c)
		}
	}
	skipped := len(candidates) - len(valid)

	if len(valid) == 0 {
		return nil, fmt.Errorf("%w (parsed %d rows)", apperrors.ErrEmptyStatement, len(candidates))
	}

	symbol, locale := s.currencySettings(ctx, userID)

	saved := make([]domain.Transaction, 0, len(valid))
	for _, c := range valid {
		txn, err := s.txnService.Persist(ctx, c.ToTransaction(domain.SourceStatement, symbol, locale))
		if err != nil {
			logger.Warn("Skipping statement row that failed to persist",
				slog.String("description", c.Description),
				slog.String("error", err.Error()))
			skipped++
			continue
		}
		saved = append(saved, *txn)
	}

	logger.Info("Statement imported",
		slog.String("filename", filename),
		slog.Int("count", len(saved)),
		slog.Int("skipped", skipped))

	return &dto.ImportStatementResponse{
		Success:      true,
		Message:      fmt.Sprintf("Successfully imported %d transactions from your bank statement.", len(saved)),
		Count:        len(saved),
		Skipped:      skipped,
		Transactions: dto.ToTransactionResponses(saved),
	}, nil
}

// decodeStatement routes a document to its format adapter: file extension
// first, MIME type second.
func decodeStatement(filename, mimeType string, data []byte) ([]parser.RawCandidate, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	mime := strings.ToLower(mimeType)

	switch {
	case ext == "pdf":
		return parser.ParsePDF(data)
	case ext == "csv":
		return parser.ParseCSV(data)
	case ext == "xlsx":
		return parser.ParseXLSX(data)
	case ext == "xls":
		return parser.ParseXLS(data)
	case mime == "application/pdf":
		return parser.ParsePDF(data)
	case mime == "text/csv":
		return parser.ParseCSV(data)
	case strings.Contains(mime, "spreadsheet"):
		return parser.ParseXLSX(data)
	case strings.Contains(mime, "excel"):
		return parser.ParseXLS(data)
	}
	return nil, fmt.Errorf("%q (%s): %w", filename, mimeType, apperrors.ErrUnsupportedFormat)
}

// IngestMessage runs one SMS/email body through extraction, the validation
// gate, and enrichment. When the body carries no parseable date token, the
// message's own timestamp stands in for the transaction date.
func (s *statementServiceImpl) IngestMessage(ctx context.Context, userID string, req dto.IngestMessageRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	c, ok := parser.ExtractLine(req.Body)
	if !ok {
		return nil, fmt.Errorf("no transaction data found in message: %w", apperrors.ErrValidation)
	}
	if c.Date.IsZero() && req.TimestampMillis > 0 {
		c.Date = time.UnixMilli(req.TimestampMillis).UTC()
	}
	if !c.IsValid() {
		return nil, fmt.Errorf("message did not yield a valid transaction: %w", apperrors.ErrValidation)
	}

	symbol, locale := s.currencySettings(ctx, userID)
	txn, err := s.txnService.Persist(ctx, c.ToTransaction(domain.SourceSMS, symbol, locale))
	if err != nil {
		return nil, err
	}

	logger.Info("Message ingested",
		slog.String("address", req.Address),
		slog.String("category", string(txn.Category)))
	return txn, nil
}

// currencySettings resolves the currency symbol and locale for a user,
// falling back to the defaults when the user is unknown.
func (s *statementServiceImpl) currencySettings(ctx context.Context, userID string) (string, language.Tag) {
	symbol, locale := parser.DefaultCurrencySymbol, parser.DefaultLocale
	if s.userRepo == nil || userID == "" {
		return symbol, locale
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil || user == nil {
		return symbol, locale
	}
	if user.CurrencySymbol != "" {
		symbol = user.CurrencySymbol
	}
	if user.Country != "" {
		if tag, err := language.Parse("en-" + strings.ToUpper(user.Country)); err == nil {
			locale = tag
		}
	}
	return symbol, locale
}
