package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/apperrors"
	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	portsrepo "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/repositories"
	portssvc "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/services"
	"github.com/aidaadigitall/escfinan-sub003/internal/dto"
	"github.com/aidaadigitall/escfinan-sub003/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, organizationID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, organizationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, organizationID string, transactionID string, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, organizationID, transactionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, organizationID string, filter portsrepo.TransactionListFilter, userID string) ([]domain.Transaction, string, error) {
	args := m.Called(ctx, organizationID, filter, userID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.String(1), args.Error(2)
}

func (m *MockTransactionService) UpdateTransactionStatus(ctx context.Context, organizationID string, transactionID string, status domain.TransactionStatus, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, organizationID, transactionID, status, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
	jwtSecret   string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "escfinan-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	registerCustomValidators()
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockTransactionService)

	orgScoped := suite.router.Group("/api/v1/organizations/:orgID")
	registerTransactionRoutes(orgScoped, suite.mockService)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_Success() {
	orgID := uuid.NewString()
	userID := uuid.NewString()
	now := time.Now().UTC()

	expected := []domain.Transaction{
		{
			TransactionID:  uuid.NewString(),
			OrganizationID: orgID,
			Description:    "Office rent",
			Amount:         decimal.NewFromInt(1200),
			Type:           domain.EntryExpense,
			Status:         domain.StatusPending,
			DueDate:        now.AddDate(0, 0, 5),
		},
		{
			TransactionID:  uuid.NewString(),
			OrganizationID: orgID,
			Description:    "Consulting invoice",
			Amount:         decimal.NewFromInt(3500),
			Type:           domain.EntryIncome,
			Status:         domain.StatusReceived,
			DueDate:        now.AddDate(0, 0, -2),
		},
	}

	suite.mockService.On("ListTransactions",
		mock.Anything,
		orgID,
		mock.MatchedBy(func(f portsrepo.TransactionListFilter) bool {
			return f.Status != nil && *f.Status == domain.StatusPending && f.Limit == 10
		}),
		userID,
	).Return(expected, "", nil).Once()

	url := fmt.Sprintf("/api/v1/organizations/%s/transactions?status=pending&limit=10", orgID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ListTransactionsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Transactions, 2)
	suite.Equal(expected[0].TransactionID, body.Transactions[0].TransactionID)
	suite.Empty(body.NextToken)

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_InvalidFromDate() {
	orgID := uuid.NewString()
	userID := uuid.NewString()

	url := fmt.Sprintf("/api/v1/organizations/%s/transactions?from=not-a-date", orgID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_Forbidden() {
	orgID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockService.On("ListTransactions", mock.Anything, orgID, mock.Anything, userID).
		Return(nil, "", apperrors.ErrForbidden).Once()

	url := fmt.Sprintf("/api/v1/organizations/%s/transactions", orgID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	orgID := uuid.NewString()
	userID := uuid.NewString()
	dueDate := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)

	created := &domain.Transaction{
		TransactionID:  uuid.NewString(),
		OrganizationID: orgID,
		Description:    "Internet bill",
		Amount:         decimal.NewFromInt(80),
		Type:           domain.EntryExpense,
		Status:         domain.StatusPending,
		DueDate:        dueDate,
	}

	suite.mockService.On("CreateTransaction",
		mock.Anything,
		orgID,
		mock.MatchedBy(func(r dto.CreateTransactionRequest) bool {
			return r.Description == "Internet bill" && r.Type == "expense"
		}),
		userID,
	).Return(created, nil).Once()

	payload, _ := json.Marshal(dto.CreateTransactionRequest{
		Description: "Internet bill",
		Amount:      decimal.NewFromInt(80),
		Type:        "expense",
		DueDate:     dueDate,
	})

	url := fmt.Sprintf("/api/v1/organizations/%s/transactions", orgID)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.TransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(created.TransactionID, body.TransactionID)

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestUpdateStatus_NotFound() {
	orgID := uuid.NewString()
	userID := uuid.NewString()
	txnID := uuid.NewString()

	suite.mockService.On("UpdateTransactionStatus",
		mock.Anything, orgID, txnID, domain.StatusPaid, userID,
	).Return(nil, apperrors.ErrNotFound).Once()

	payload, _ := json.Marshal(dto.UpdateTransactionStatusRequest{Status: "paid"})

	url := fmt.Sprintf("/api/v1/organizations/%s/transactions/%s/status", orgID, txnID)
	req, _ := http.NewRequest(http.MethodPatch, url, bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestRequests_Unauthorized() {
	orgID := uuid.NewString()

	url := fmt.Sprintf("/api/v1/organizations/%s/transactions", orgID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions")
}

// --- Run Test Suite ---
func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
