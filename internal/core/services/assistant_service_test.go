package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/apperrors"
	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	portssvc "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/services"
	"github.com/aidaadigitall/escfinan-sub003/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AIGatewayClient ---
type MockAIGatewayClient struct {
	mock.Mock
}

func (m *MockAIGatewayClient) ChatCompletion(ctx context.Context, systemPrompt string, turns []domain.ChatTurn) (string, error) {
	args := m.Called(ctx, systemPrompt, turns)
	return args.String(0), args.Error(1)
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) FinancialSummary(ctx context.Context, organizationID string, from, to time.Time, userID string) (*domain.FinancialSummary, error) {
	args := m.Called(ctx, organizationID, from, to, userID)
	var summary *domain.FinancialSummary
	if args.Get(0) != nil {
		summary = args.Get(0).(*domain.FinancialSummary)
	}
	return summary, args.Error(1)
}

// --- Test Suite ---
type AssistantServiceTestSuite struct {
	suite.Suite
	mockGateway   *MockAIGatewayClient
	mockReporting *MockReportingService
	service       portssvc.AssistantSvc
}

func (suite *AssistantServiceTestSuite) SetupTest() {
	suite.mockGateway = new(MockAIGatewayClient)
	suite.mockReporting = new(MockReportingService)
	suite.service = services.NewAssistantService(suite.mockGateway, suite.mockReporting)
}

func testSummary() *domain.FinancialSummary {
	return &domain.FinancialSummary{
		TotalIncome:  decimal.NewFromInt(10000),
		TotalExpense: decimal.NewFromInt(7000),
		Balance:      decimal.NewFromInt(3000),
	}
}

// --- Chat Tests ---

func (suite *AssistantServiceTestSuite) TestChat_RelaysAnswerAndClassifiesText() {
	ctx := context.Background()
	suite.mockReporting.On("FinancialSummary", ctx, "org-1",
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), "user-1").
		Return(testSummary(), nil).Once()
	suite.mockGateway.On("ChatCompletion", ctx, mock.AnythingOfType("string"),
		mock.MatchedBy(func(turns []domain.ChatTurn) bool {
			return len(turns) == 1 && turns[0].Role == "user" && turns[0].Content == "Como está meu caixa?"
		})).Return("Seu caixa está saudável neste mês.", nil).Once()

	reply, err := suite.service.Chat(ctx, "org-1", "Como está meu caixa?", nil, nil, "user-1")

	suite.Require().NoError(err)
	suite.Equal("Seu caixa está saudável neste mês.", reply.Response)
	suite.Equal(domain.AssistantText, reply.Type)
	suite.mockGateway.AssertExpectations(suite.T())
}

func (suite *AssistantServiceTestSuite) TestChat_ClassifiesSuggestion() {
	ctx := context.Background()
	suite.mockReporting.On("FinancialSummary", ctx, "org-1",
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), "user-1").
		Return(testSummary(), nil).Once()
	suite.mockGateway.On("ChatCompletion", ctx, mock.Anything, mock.Anything).
		Return("Minha Sugestão é reduzir custos fixos.", nil).Once()

	reply, err := suite.service.Chat(ctx, "org-1", "O que devo fazer?", nil, nil, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.AssistantSuggestion, reply.Type)
}

func (suite *AssistantServiceTestSuite) TestChat_ClassifiesInsight() {
	ctx := context.Background()
	suite.mockReporting.On("FinancialSummary", ctx, "org-1",
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), "user-1").
		Return(testSummary(), nil).Once()
	suite.mockGateway.On("ChatCompletion", ctx, mock.Anything, mock.Anything).
		Return("Uma análise dos seus gastos mostra aumento em março.", nil).Once()

	reply, err := suite.service.Chat(ctx, "org-1", "Analise meus gastos", nil, nil, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.AssistantInsight, reply.Type)
}

func (suite *AssistantServiceTestSuite) TestChat_UsesProvidedSystemData() {
	ctx := context.Background()
	snapshot := &domain.FinancialSummary{
		TotalIncome:  decimal.NewFromInt(100),
		TotalExpense: decimal.NewFromInt(50),
		Balance:      decimal.NewFromInt(50),
	}
	suite.mockGateway.On("ChatCompletion", ctx, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Receita total: 100.00") &&
			strings.Contains(prompt, "Saldo: 50.00")
	}), mock.Anything).Return("ok", nil).Once()

	_, err := suite.service.Chat(ctx, "org-1", "Oi", snapshot, nil, "user-1")

	suite.Require().NoError(err)
	// Summary is never computed when the caller supplies a snapshot
	suite.mockReporting.AssertNotCalled(suite.T(), "FinancialSummary",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockGateway.AssertExpectations(suite.T())
}

func (suite *AssistantServiceTestSuite) TestChat_PropagatesRateLimit() {
	ctx := context.Background()
	suite.mockReporting.On("FinancialSummary", ctx, "org-1",
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), "user-1").
		Return(testSummary(), nil).Once()
	suite.mockGateway.On("ChatCompletion", ctx, mock.Anything, mock.Anything).
		Return("", apperrors.ErrRateLimited).Once()

	reply, err := suite.service.Chat(ctx, "org-1", "Oi", nil, nil, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRateLimited)
	suite.Nil(reply)
}

func (suite *AssistantServiceTestSuite) TestChat_PropagatesInsufficientCredits() {
	ctx := context.Background()
	suite.mockReporting.On("FinancialSummary", ctx, "org-1",
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), "user-1").
		Return(testSummary(), nil).Once()
	suite.mockGateway.On("ChatCompletion", ctx, mock.Anything, mock.Anything).
		Return("", apperrors.ErrInsufficientCredits).Once()

	_, err := suite.service.Chat(ctx, "org-1", "Oi", nil, nil, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientCredits)
}

// --- GenerateInsights Tests ---

func (suite *AssistantServiceTestSuite) TestGenerateInsights_WithProvidedSummary() {
	ctx := context.Background()
	suite.mockGateway.On("ChatCompletion", ctx, mock.Anything, mock.Anything).
		Return("Suas despesas cresceram 12% no trimestre.", nil).Once()

	reply, err := suite.service.GenerateInsights(ctx, "org-1", testSummary(), "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.AssistantInsight, reply.Type)
	suite.mockReporting.AssertNotCalled(suite.T(), "FinancialSummary",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AssistantServiceTestSuite) TestGenerateInsights_ComputesSummaryWhenMissing() {
	ctx := context.Background()
	suite.mockReporting.On("FinancialSummary", ctx, "org-1",
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), "user-1").
		Return(testSummary(), nil).Once()
	suite.mockGateway.On("ChatCompletion", ctx, mock.Anything, mock.Anything).
		Return("Insights gerados.", nil).Once()

	reply, err := suite.service.GenerateInsights(ctx, "org-1", nil, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.AssistantInsight, reply.Type)
	suite.mockReporting.AssertExpectations(suite.T())
}

func TestAssistantServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssistantServiceTestSuite))
}
