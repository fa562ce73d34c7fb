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

	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
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

// --- Mock AssistantService ---
type MockAssistantService struct {
	mock.Mock
}

func (m *MockAssistantService) Chat(ctx context.Context, organizationID string, message string, systemData *domain.FinancialSummary, history []domain.ChatTurn, userID string) (*domain.AssistantReply, error) {
	args := m.Called(ctx, organizationID, message, systemData, history, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssistantReply), args.Error(1)
}

func (m *MockAssistantService) GenerateInsights(ctx context.Context, organizationID string, summary *domain.FinancialSummary, userID string) (*domain.AssistantReply, error) {
	args := m.Called(ctx, organizationID, summary, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssistantReply), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AssistantSvc = (*MockAssistantService)(nil)

// --- Test Suite ---
type AssistantHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockAssistantService
	jwtSecret   string
}

func (suite *AssistantHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	registerCustomValidators()
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockAssistantService)

	orgScoped := suite.router.Group("/api/v1/organizations/:orgID")
	registerAssistantRoutes(orgScoped, suite.mockService)
}

// generateTestToken creates a dummy JWT for testing.
func (suite *AssistantHandlerTestSuite) generateTestToken(userID string) string {
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

func (suite *AssistantHandlerTestSuite) postChat(orgID, userID string, body []byte) *httptest.ResponseRecorder {
	url := fmt.Sprintf("/api/v1/organizations/%s/assistant/chat", orgID)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AssistantHandlerTestSuite) TestChat_AcceptsStructuredSystemData() {
	orgID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockService.On("Chat",
		mock.Anything,
		orgID,
		"Como está meu caixa?",
		mock.MatchedBy(func(s *domain.FinancialSummary) bool {
			return s != nil &&
				s.TotalIncome.Equal(decimal.NewFromInt(100)) &&
				s.TotalExpense.Equal(decimal.NewFromInt(50)) &&
				s.Balance.Equal(decimal.NewFromInt(50))
		}),
		mock.Anything,
		userID,
	).Return(&domain.AssistantReply{Response: "Saldo positivo.", Type: domain.AssistantText}, nil).Once()

	body := []byte(`{"message":"Como está meu caixa?","systemData":{"totalIncome":100,"totalExpense":50,"balance":50}}`)
	w := suite.postChat(orgID, userID, body)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ChatResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Saldo positivo.", resp.Response)
	suite.Equal("text", resp.Type)

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AssistantHandlerTestSuite) TestChat_OmittedSystemDataPassesNil() {
	orgID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockService.On("Chat",
		mock.Anything, orgID, "Oi",
		mock.MatchedBy(func(s *domain.FinancialSummary) bool { return s == nil }),
		mock.Anything, userID,
	).Return(&domain.AssistantReply{Response: "Olá!", Type: domain.AssistantText}, nil).Once()

	w := suite.postChat(orgID, userID, []byte(`{"message":"Oi"}`))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AssistantHandlerTestSuite) TestChat_AcceptsSystemRoleInHistory() {
	orgID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockService.On("Chat",
		mock.Anything, orgID, "E agora?",
		mock.Anything,
		mock.MatchedBy(func(h []domain.ChatTurn) bool {
			return len(h) == 2 && h[0].Role == "system" && h[1].Role == "user"
		}),
		userID,
	).Return(&domain.AssistantReply{Response: "Continue.", Type: domain.AssistantText}, nil).Once()

	body := []byte(`{"message":"E agora?","conversationHistory":[{"role":"system","content":"contexto"},{"role":"user","content":"pergunta"}]}`)
	w := suite.postChat(orgID, userID, body)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *AssistantHandlerTestSuite) TestChat_MissingMessageRejected() {
	orgID := uuid.NewString()
	userID := uuid.NewString()

	w := suite.postChat(orgID, userID, []byte(`{"systemData":{"balance":10}}`))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Chat")
}

// --- Run Test Suite ---
func TestAssistantHandler(t *testing.T) {
	suite.Run(t, new(AssistantHandlerTestSuite))
}
