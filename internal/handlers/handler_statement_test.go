package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/explainmymoney/emm_backend/internal/apperrors"
	"github.com/explainmymoney/emm_backend/internal/core/domain"
	portssvc "github.com/explainmymoney/emm_backend/internal/core/ports/services"
	"github.com/explainmymoney/emm_backend/internal/dto"
	"github.com/explainmymoney/emm_backend/internal/handlers"
	"github.com/explainmymoney/emm_backend/internal/middleware"
	"github.com/explainmymoney/emm_backend/internal/platform/config"
	"github.com/explainmymoney/emm_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock StatementService ---

type MockStatementService struct {
	mock.Mock
}

func (m *MockStatementService) ImportStatement(ctx context.Context, userID, filename, mimeType string, data []byte) (*dto.ImportStatementResponse, error) {
	args := m.Called(ctx, userID, filename, mimeType, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ImportStatementResponse), args.Error(1)
}

func (m *MockStatementService) IngestMessage(ctx context.Context, userID string, req dto.IngestMessageRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.StatementSvcFacade = (*MockStatementService)(nil)

type StatementHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockStatementService
	jwtSecret   string
	userID      string
}

func (suite *StatementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = "user-1"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockStatementService)
	cfg := &config.Config{UploadRateLimit: "100-M"}

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterStatementRoutes(v1, cfg, suite.mockService)
}

func TestStatementHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(StatementHandlerTestSuite))
}

func (suite *StatementHandlerTestSuite) bearerToken() string {
	token, err := utils.GenerateJWT(suite.userID, suite.jwtSecret, time.Hour, "emm-backend")
	suite.Require().NoError(err)
	return "Bearer " + token
}

func (suite *StatementHandlerTestSuite) multipartUpload(filename string, content []byte) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	suite.Require().NoError(err)
	_, err = part.Write(content)
	suite.Require().NoError(err)
	suite.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/statements/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", suite.bearerToken())
	return req
}

func (suite *StatementHandlerTestSuite) TestUploadStatement_Success() {
	csv := []byte("Date,Narration,Debit\n02/03/2024,UPI/Swiggy order,450\n")
	suite.mockService.On("ImportStatement", mock.Anything, suite.userID, "statement.csv", mock.Anything, csv).
		Return(&dto.ImportStatementResponse{
			Success: true,
			Message: "Successfully imported 1 transactions from your bank statement.",
			Count:   1,
			Skipped: 0,
		}, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.multipartUpload("statement.csv", csv))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ImportStatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal(1, resp.Count)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *StatementHandlerTestSuite) TestUploadStatement_UnsupportedFormat() {
	suite.mockService.On("ImportStatement", mock.Anything, suite.userID, "notes.txt", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrUnsupportedFormat).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.multipartUpload("notes.txt", []byte("hello")))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Unsupported file format")
}

func (suite *StatementHandlerTestSuite) TestUploadStatement_EmptyStatement() {
	suite.mockService.On("ImportStatement", mock.Anything, suite.userID, "statement.csv", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrEmptyStatement).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.multipartUpload("statement.csv", []byte("Date,Narration,Debit\n")))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "No transactions could be extracted")
}

func (suite *StatementHandlerTestSuite) TestUploadStatement_MissingFile() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/statements/upload", nil)
	req.Header.Set("Authorization", suite.bearerToken())

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ImportStatement", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StatementHandlerTestSuite) TestUploadStatement_Unauthorized() {
	csv := []byte("Date,Narration,Debit\n")
	req := suite.multipartUpload("statement.csv", csv)
	req.Header.Del("Authorization")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *StatementHandlerTestSuite) TestIngestMessage_Success() {
	txn := &domain.Transaction{
		TransactionID: "t-1",
		Source:        domain.SourceSMS,
		Category:      domain.CategoryFood,
		Summary:       "You paid ₹450 to Starbucks.",
		Type:          domain.Debit,
		Merchant:      "Starbucks",
		Method:        "UPI",
	}
	suite.mockService.On("IngestMessage", mock.Anything, suite.userID, mock.AnythingOfType("dto.IngestMessageRequest")).
		Return(txn, nil).Once()

	payload := `{"address":"VM-HDFCBK","body":"Acct XX8901 debited by Rs. 450.00 on 27-Dec-24. Info: UPI/3456789012/Starbucks."}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/messages", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", suite.bearerToken())

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Food", resp.Category)
	suite.Equal("UPI", resp.Method)
}

func (suite *StatementHandlerTestSuite) TestIngestMessage_InvalidBody() {
	payload := `{"address":"VM-HDFCBK"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/messages", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", suite.bearerToken())

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "IngestMessage", mock.Anything, mock.Anything, mock.Anything)
}
