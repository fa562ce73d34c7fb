package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/apperrors"
	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	portssvc "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/services"
	"github.com/aidaadigitall/escfinan-sub003/internal/core/services"
	"github.com/aidaadigitall/escfinan-sub003/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo *MockTransactionRepository
	service     portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Description: "Compra de insumos",
		Amount:      decimal.NewFromFloat(350.50),
		Type:        "expense",
		DueDate:     time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.OrganizationID == "org-1" &&
			txn.Status == domain.StatusPending &&
			txn.Type == domain.EntryExpense &&
			txn.Amount.Equal(decimal.NewFromFloat(350.50))
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, "org-1", req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(domain.StatusPending, txn.Status)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_HonorsExplicitStatus() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Description: "Recebimento cliente",
		Amount:      decimal.NewFromInt(900),
		Type:        "income",
		Status:      "received",
		DueDate:     time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Status == domain.StatusReceived
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, "org-1", req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.StatusReceived, txn.Status)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Description: "Valor inválido",
		Amount:      decimal.NewFromInt(-10),
		Type:        "expense",
		DueDate:     time.Now(),
	}

	txn, err := suite.service.CreateTransaction(ctx, "org-1", req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_HidesOtherOrganizations() {
	ctx := context.Background()
	txnID := uuid.NewString()
	other := &domain.Transaction{
		TransactionID:  txnID,
		OrganizationID: "org-2",
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(other, nil).Once()

	txn, err := suite.service.GetTransactionByID(ctx, "org-1", txnID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(txn)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransactionStatus_Success() {
	ctx := context.Background()
	txnID := uuid.NewString()
	userID := uuid.NewString()
	existing := &domain.Transaction{
		TransactionID:  txnID,
		OrganizationID: "org-1",
		Status:         domain.StatusPending,
	}
	paid := &domain.Transaction{
		TransactionID:  txnID,
		OrganizationID: "org-1",
		Status:         domain.StatusPaid,
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(existing, nil).Once()
	suite.mockTxnRepo.On("UpdateTransactionStatus", ctx, txnID, domain.StatusPaid, userID,
		mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(paid, nil).Once()

	txn, err := suite.service.UpdateTransactionStatus(ctx, "org-1", txnID, domain.StatusPaid, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPaid, txn.Status)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
