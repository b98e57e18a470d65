package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/explainmymoney/emm_backend/internal/apperrors"
	portssvc "github.com/explainmymoney/emm_backend/internal/core/ports/services"
	"github.com/explainmymoney/emm_backend/internal/core/services"
	"github.com/explainmymoney/emm_backend/internal/dto"
	"github.com/explainmymoney/emm_backend/internal/middleware"
	"github.com/explainmymoney/emm_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// statementHandler handles statement uploads and message ingestion.
type statementHandler struct {
	stmtService portssvc.StatementSvcFacade
}

func newStatementHandler(ss portssvc.StatementSvcFacade) *statementHandler {
	return &statementHandler{stmtService: ss}
}

// RegisterStatementRoutes registers the upload and message ingestion routes.
func RegisterStatementRoutes(rg *gin.RouterGroup, cfg *config.Config, stmtService portssvc.StatementSvcFacade) {
	h := newStatementHandler(stmtService)

	rate, err := limiter.NewRateFromFormatted(cfg.UploadRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	uploadLimiter := limiter.New(memory.NewStore(), rate)

	rg.POST("/statements/upload", middleware.RateLimit(uploadLimiter), h.uploadStatement)
	rg.POST("/messages", h.ingestMessage)
}

// uploadStatement godoc
// @Summary Upload a bank statement
// @Description Parses a PDF/CSV/XLSX/XLS statement and imports its transactions.
// @Tags statements
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Statement document"
// @Success 200 {object} dto.ImportStatementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Security BearerAuth
// @Router /statements/upload [post]
func (h *statementHandler) uploadStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, _ := middleware.GetUserIDFromContext(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No file uploaded"})
		return
	}
	if fileHeader.Size > services.MaxStatementBytes {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "File exceeds the 10MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	resp, err := h.stmtService.ImportStatement(c.Request.Context(), userID, fileHeader.Filename, mimeType, data)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnsupportedFormat):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unsupported file format. Please upload a PDF, CSV or Excel statement."})
		case errors.Is(err, apperrors.ErrEmptyStatement):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No transactions could be extracted from this statement."})
		case errors.Is(err, apperrors.ErrMalformedDocument):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "The uploaded document could not be parsed."})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to import statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to import statement"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ingestMessage godoc
// @Summary Ingest a bank notification message
// @Description Parses a single SMS/email body into a categorized transaction.
// @Tags statements
// @Accept json
// @Produce json
// @Param message body dto.IngestMessageRequest true "Notification message"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /messages [post]
func (h *statementHandler) ingestMessage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, _ := middleware.GetUserIDFromContext(c)

	var req dto.IngestMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.stmtService.IngestMessage(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to ingest message", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to ingest message"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}
