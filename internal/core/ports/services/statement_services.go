package services

import (
	"context"

	"github.com/explainmymoney/emm_backend/internal/core/domain"
	"github.com/explainmymoney/emm_backend/internal/dto"
)

// StatementSvcFacade defines statement and message ingestion.
type StatementSvcFacade interface {
	// ImportStatement decodes an uploaded statement document, validates and
	// enriches its rows, and persists the survivors. Routing is by file
	// extension first, MIME type second.
	ImportStatement(ctx context.Context, userID, filename, mimeType string, data []byte) (*dto.ImportStatementResponse, error)

	// IngestMessage runs a single SMS/email body through the same extraction,
	// validation and enrichment pipeline as a statement row.
	IngestMessage(ctx context.Context, userID string, req dto.IngestMessageRequest) (*domain.Transaction, error)
}
