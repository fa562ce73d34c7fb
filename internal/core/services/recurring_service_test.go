package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/apperrors"
	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	portsrepo "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/repositories"
	portssvc "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/services"
	"github.com/aidaadigitall/escfinan-sub003/internal/core/services"
	"github.com/aidaadigitall/escfinan-sub003/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RecurringBillRepository ---
type MockRecurringBillRepository struct {
	mock.Mock
}

func (m *MockRecurringBillRepository) SaveRecurringBill(ctx context.Context, bill domain.RecurringBill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockRecurringBillRepository) FindRecurringBillByID(ctx context.Context, recurringBillID string) (*domain.RecurringBill, error) {
	args := m.Called(ctx, recurringBillID)
	var bill *domain.RecurringBill
	if args.Get(0) != nil {
		bill = args.Get(0).(*domain.RecurringBill)
	}
	return bill, args.Error(1)
}

func (m *MockRecurringBillRepository) ListRecurringBills(ctx context.Context, organizationID string, limit int, offset int) ([]domain.RecurringBill, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	var bills []domain.RecurringBill
	if args.Get(0) != nil {
		bills = args.Get(0).([]domain.RecurringBill)
	}
	return bills, args.Error(1)
}

func (m *MockRecurringBillRepository) ListActiveRecurringBills(ctx context.Context) ([]domain.RecurringBill, error) {
	args := m.Called(ctx)
	var bills []domain.RecurringBill
	if args.Get(0) != nil {
		bills = args.Get(0).([]domain.RecurringBill)
	}
	return bills, args.Error(1)
}

func (m *MockRecurringBillRepository) UpdateRecurringBill(ctx context.Context, bill domain.RecurringBill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockRecurringBillRepository) DeactivateRecurringBill(ctx context.Context, recurringBillID string, userID string, now time.Time) error {
	args := m.Called(ctx, recurringBillID, userID, now)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, organizationID string, filter portsrepo.TransactionListFilter) ([]domain.Transaction, string, error) {
	args := m.Called(ctx, organizationID, filter)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.String(1), args.Error(2)
}

func (m *MockTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, userID string, now time.Time) error {
	args := m.Called(ctx, transactionID, status, userID, now)
	return args.Error(0)
}

func (m *MockTransactionRepository) ExistsWithDescriptionInRange(ctx context.Context, organizationID, description string, from, to time.Time) (bool, error) {
	args := m.Called(ctx, organizationID, description, from, to)
	return args.Bool(0), args.Error(1)
}

// --- Test Suite ---
type RecurringServiceTestSuite struct {
	suite.Suite
	mockRecurringRepo *MockRecurringBillRepository
	mockTxnRepo       *MockTransactionRepository
	service           portssvc.RecurringSvcFacade
}

func (suite *RecurringServiceTestSuite) SetupTest() {
	suite.mockRecurringRepo = new(MockRecurringBillRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	// No authorizer wired: materialization runs outside any user session
	suite.service = services.NewRecurringService(suite.mockRecurringRepo, suite.mockTxnRepo)
}

func monthlyBill(orgID, description string, day int) domain.RecurringBill {
	return domain.RecurringBill{
		RecurringBillID: uuid.NewString(),
		OrganizationID:  orgID,
		Description:     description,
		Amount:          decimal.NewFromInt(1200),
		Type:            domain.EntryExpense,
		RecurrenceType:  domain.RecurMonthly,
		RecurrenceDay:   day,
		StartDate:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedBy: uuid.NewString(),
		},
	}
}

// --- RunMaterialization Tests ---

func (suite *RecurringServiceTestSuite) TestRunMaterialization_CreatesPendingTransaction() {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	bill := monthlyBill("org-1", "Aluguel", 10)

	suite.mockRecurringRepo.On("ListActiveRecurringBills", ctx).Return([]domain.RecurringBill{bill}, nil).Once()
	suite.mockTxnRepo.On("ExistsWithDescriptionInRange", ctx, "org-1", "Aluguel",
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)).Return(false, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.OrganizationID == "org-1" &&
			txn.Description == "Aluguel" &&
			txn.Status == domain.StatusPending &&
			txn.Notes == domain.RecurringOriginNote &&
			txn.DueDate.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	})).Return(nil).Once()

	stats, err := suite.service.RunMaterialization(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(1, stats.Total)
	suite.Equal(1, stats.Processed)
	suite.Equal(0, stats.Skipped)
	suite.Empty(stats.Errors)
	suite.mockRecurringRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *RecurringServiceTestSuite) TestRunMaterialization_SkipsWhenAlreadyMaterialized() {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	bill := monthlyBill("org-1", "Aluguel", 10)

	suite.mockRecurringRepo.On("ListActiveRecurringBills", ctx).Return([]domain.RecurringBill{bill}, nil).Once()
	suite.mockTxnRepo.On("ExistsWithDescriptionInRange", ctx, "org-1", "Aluguel",
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(true, nil).Once()

	stats, err := suite.service.RunMaterialization(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(1, stats.Skipped)
	suite.Equal(0, stats.Processed)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *RecurringServiceTestSuite) TestRunMaterialization_SkipsWhenNotTriggerDay() {
	ctx := context.Background()
	// Day 11, bill fires on day 10
	now := time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC)
	bill := monthlyBill("org-1", "Aluguel", 10)

	suite.mockRecurringRepo.On("ListActiveRecurringBills", ctx).Return([]domain.RecurringBill{bill}, nil).Once()

	stats, err := suite.service.RunMaterialization(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(1, stats.Skipped)
	suite.Equal(0, stats.Processed)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ExistsWithDescriptionInRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RecurringServiceTestSuite) TestRunMaterialization_FailureDoesNotAbortBatch() {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	failing := monthlyBill("org-1", "Aluguel", 10)
	healthy := monthlyBill("org-2", "Internet", 10)

	suite.mockRecurringRepo.On("ListActiveRecurringBills", ctx).Return([]domain.RecurringBill{failing, healthy}, nil).Once()
	suite.mockTxnRepo.On("ExistsWithDescriptionInRange", ctx, "org-1", "Aluguel",
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(false, nil).Once()
	suite.mockTxnRepo.On("ExistsWithDescriptionInRange", ctx, "org-2", "Internet",
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(false, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.OrganizationID == "org-1"
	})).Return(apperrors.ErrDuplicate).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.OrganizationID == "org-2"
	})).Return(nil).Once()

	stats, err := suite.service.RunMaterialization(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(2, stats.Total)
	suite.Equal(1, stats.Processed)
	suite.Require().Len(stats.Errors, 1)
	suite.Equal(failing.RecurringBillID, stats.Errors[0].RecurringBillID)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *RecurringServiceTestSuite) TestRunMaterialization_SecondRunSameDayIsIdempotent() {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	bill := monthlyBill("org-1", "Aluguel", 10)

	// First run materializes
	suite.mockRecurringRepo.On("ListActiveRecurringBills", ctx).Return([]domain.RecurringBill{bill}, nil).Twice()
	suite.mockTxnRepo.On("ExistsWithDescriptionInRange", ctx, "org-1", "Aluguel",
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(false, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	first, err := suite.service.RunMaterialization(ctx, now)
	suite.Require().NoError(err)
	suite.Equal(1, first.Processed)

	// Second run sees the existing entry and skips
	suite.mockTxnRepo.On("ExistsWithDescriptionInRange", ctx, "org-1", "Aluguel",
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(true, nil).Once()

	second, err := suite.service.RunMaterialization(ctx, now)
	suite.Require().NoError(err)
	suite.Equal(0, second.Processed)
	suite.Equal(1, second.Skipped)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// --- CreateRecurringBill Tests ---

func (suite *RecurringServiceTestSuite) TestCreateRecurringBill_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateRecurringBillRequest{
		Description:    "Aluguel",
		Amount:         decimal.NewFromInt(1200),
		Type:           "expense",
		RecurrenceType: "monthly",
		RecurrenceDay:  10,
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockRecurringRepo.On("SaveRecurringBill", ctx, mock.MatchedBy(func(bill domain.RecurringBill) bool {
		return bill.OrganizationID == "org-1" && bill.IsActive && bill.RecurrenceDay == 10
	})).Return(nil).Once()

	bill, err := suite.service.CreateRecurringBill(ctx, "org-1", req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(bill)
	suite.NotEmpty(bill.RecurringBillID)
	suite.True(bill.IsActive)
	suite.mockRecurringRepo.AssertExpectations(suite.T())
}

func (suite *RecurringServiceTestSuite) TestCreateRecurringBill_RejectsInvalidMonthlyDay() {
	ctx := context.Background()
	req := dto.CreateRecurringBillRequest{
		Description:    "Aluguel",
		Amount:         decimal.NewFromInt(1200),
		Type:           "expense",
		RecurrenceType: "monthly",
		RecurrenceDay:  0,
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	bill, err := suite.service.CreateRecurringBill(ctx, "org-1", req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(bill)
	suite.mockRecurringRepo.AssertNotCalled(suite.T(), "SaveRecurringBill", mock.Anything, mock.Anything)
}

func (suite *RecurringServiceTestSuite) TestCreateRecurringBill_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateRecurringBillRequest{
		Description:    "Aluguel",
		Amount:         decimal.Zero,
		Type:           "expense",
		RecurrenceType: "monthly",
		RecurrenceDay:  10,
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	_, err := suite.service.CreateRecurringBill(ctx, "org-1", req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RecurringServiceTestSuite) TestUpdateRecurringBill_ClearsEndDate() {
	ctx := context.Background()
	bill := monthlyBill("org-1", "Aluguel", 10)
	endDate := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	bill.EndDate = &endDate

	suite.mockRecurringRepo.On("FindRecurringBillByID", ctx, bill.RecurringBillID).
		Return(&bill, nil).Once()
	suite.mockRecurringRepo.On("UpdateRecurringBill", ctx, mock.MatchedBy(func(b domain.RecurringBill) bool {
		return b.RecurringBillID == bill.RecurringBillID && b.EndDate == nil
	})).Return(nil).Once()

	updated, err := suite.service.UpdateRecurringBill(ctx, "org-1", bill.RecurringBillID,
		dto.UpdateRecurringBillRequest{ClearEndDate: true}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Nil(updated.EndDate)
	suite.mockRecurringRepo.AssertExpectations(suite.T())
}

func TestRecurringServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecurringServiceTestSuite))
}
