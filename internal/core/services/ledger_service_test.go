package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ftracker/ft_backend/internal/apperrors"
	"github.com/ftracker/ft_backend/internal/core/domain"
	portssvc "github.com/ftracker/ft_backend/internal/core/ports/services"
	"github.com/ftracker/ft_backend/internal/core/services"
	"github.com/ftracker/ft_backend/internal/dto"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockLedgerRepository) SaveTransactionChecked(ctx context.Context, txn domain.Transaction, guard func([]domain.Transaction) error) error {
	args := m.Called(ctx, txn, guard)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLedgerRepository
	service  portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerRepository)
	suite.service = services.NewLedgerService(suite.mockRepo, services.OverdraftAdvisory)
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestRecordIncome_Success() {
	ctx := context.Background()
	req := dto.CreateIncomeRequest{
		Source:      "Client A",
		GrossAmount: decimal.NewFromInt(1000),
		FeePolicy:   domain.FeePolicyPercent,
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Kind == domain.KindIncome &&
			txn.Income != nil &&
			txn.Income.NetAmount.Equal(decimal.NewFromInt(900)) &&
			!txn.Income.ToPaypal
	})).Return(nil).Once()

	txn, err := suite.service.RecordIncome(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.True(txn.Income.FeeAmount.Equal(decimal.NewFromInt(100)))
	suite.NotEmpty(txn.TransactionID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordIncome_ValidationError() {
	ctx := context.Background()
	req := dto.CreateIncomeRequest{
		Source:      "Client A",
		GrossAmount: decimal.NewFromInt(10),
		FeePolicy:   domain.FeePolicyManual, // no manual fee given
	}

	txn, err := suite.service.RecordIncome(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRecordIncome_SaveError() {
	ctx := context.Background()
	req := dto.CreateIncomeRequest{
		Source:      "Client A",
		GrossAmount: decimal.NewFromInt(100),
		FeePolicy:   domain.FeePolicyNone,
	}
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(expectedErr).Once()

	txn, err := suite.service.RecordIncome(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordExpense_Success() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Category:    "Food",
		Description: "groceries",
		Amount:      decimal.NewFromInt(40),
		Currency:    domain.CurrencyUSD,
	}
	income, err := domain.NewIncome("i1", time.Now(), "Client", decimal.NewFromInt(100), domain.FeePolicyNone, nil, false)
	suite.Require().NoError(err)

	suite.mockRepo.On("FindAllTransactions", ctx).Return([]domain.Transaction{income}, nil).Once()
	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Kind == domain.KindExpense && txn.Expense.Label == "Food - groceries"
	})).Return(nil).Once()

	txn, err := suite.service.RecordExpense(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(domain.CurrencyUSD, txn.Expense.Currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordExpense_LabelWithoutDescription() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Category: "Rent",
		Amount:   decimal.NewFromInt(10),
		Currency: domain.CurrencyUSD,
	}
	income, err := domain.NewIncome("i1", time.Now(), "Client", decimal.NewFromInt(100), domain.FeePolicyNone, nil, false)
	suite.Require().NoError(err)

	suite.mockRepo.On("FindAllTransactions", ctx).Return([]domain.Transaction{income}, nil).Once()
	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Expense.Label == "Rent"
	})).Return(nil).Once()

	txn, err := suite.service.RecordExpense(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordExpense_InsufficientFunds() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Category: "Food",
		Amount:   decimal.NewFromInt(5000),
		Currency: domain.CurrencyDZD,
	}

	// Cash balance is 3000 DZD; the 5000 DZD expense must be rejected and
	// nothing persisted.
	transfer, err := domain.NewUsdDzdTransfer("t1", time.Now(), decimal.NewFromInt(15), decimal.NewFromInt(200))
	suite.Require().NoError(err)
	income, err := domain.NewIncome("i1", time.Now(), "Client", decimal.NewFromInt(15), domain.FeePolicyNone, nil, false)
	suite.Require().NoError(err)

	suite.mockRepo.On("FindAllTransactions", ctx).Return([]domain.Transaction{income, transfer}, nil).Once()

	txn, err := suite.service.RecordExpense(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestTransferUsdToDzd_Success() {
	ctx := context.Background()
	req := dto.CreateUsdDzdTransferRequest{
		AmountUSD: decimal.NewFromInt(500),
		Rate:      decimal.NewFromInt(200),
	}
	income, err := domain.NewIncome("i1", time.Now(), "Client", decimal.NewFromInt(500), domain.FeePolicyNone, nil, false)
	suite.Require().NoError(err)

	suite.mockRepo.On("FindAllTransactions", ctx).Return([]domain.Transaction{income}, nil).Once()
	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Kind == domain.KindTransferUsdDzd &&
			txn.UsdDzd.AmountDZD.Equal(decimal.NewFromInt(100000))
	})).Return(nil).Once()

	txn, err := suite.service.TransferUsdToDzd(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestTransferUsdToDzd_InsufficientFunds() {
	ctx := context.Background()
	req := dto.CreateUsdDzdTransferRequest{
		AmountUSD: decimal.NewFromInt(600),
		Rate:      decimal.NewFromInt(200),
	}
	income, err := domain.NewIncome("i1", time.Now(), "Client", decimal.NewFromInt(500), domain.FeePolicyNone, nil, false)
	suite.Require().NoError(err)

	suite.mockRepo.On("FindAllTransactions", ctx).Return([]domain.Transaction{income}, nil).Once()

	txn, err := suite.service.TransferUsdToDzd(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestTransferPaypalToBank_Success() {
	ctx := context.Background()
	req := dto.CreatePaypalBankTransferRequest{
		AmountSent: decimal.NewFromInt(200),
		Method:     domain.TransferMethodManual,
	}
	income, err := domain.NewIncome("i1", time.Now(), "Client", decimal.NewFromInt(200), domain.FeePolicyNone, nil, true)
	suite.Require().NoError(err)

	suite.mockRepo.On("FindAllTransactions", ctx).Return([]domain.Transaction{income}, nil).Once()
	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Kind == domain.KindTransferPaypalBank &&
			txn.PaypalBank.AmountReceived.Equal(decimal.NewFromInt(195))
	})).Return(nil).Once()

	txn, err := suite.service.TransferPaypalToBank(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.True(txn.PaypalBank.Fee.Equal(decimal.NewFromInt(5)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestTransferPaypalToBank_InsufficientFunds() {
	ctx := context.Background()
	req := dto.CreatePaypalBankTransferRequest{
		AmountSent: decimal.NewFromInt(300),
		Method:     domain.TransferMethodAutomatic,
	}
	income, err := domain.NewIncome("i1", time.Now(), "Client", decimal.NewFromInt(200), domain.FeePolicyNone, nil, true)
	suite.Require().NoError(err)

	suite.mockRepo.On("FindAllTransactions", ctx).Return([]domain.Transaction{income}, nil).Once()

	txn, err := suite.service.TransferPaypalToBank(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestSaveGuarded_EnforcedUsesCheckedSave() {
	ctx := context.Background()
	enforced := services.NewLedgerService(suite.mockRepo, services.OverdraftEnforced)
	req := dto.CreateExpenseRequest{
		Category: "Food",
		Amount:   decimal.NewFromInt(40),
		Currency: domain.CurrencyUSD,
	}

	suite.mockRepo.On("SaveTransactionChecked", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("func([]domain.Transaction) error")).Return(nil).Once()

	txn, err := enforced.RecordExpense(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAllTransactions", mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestSaveGuarded_EnforcedGuardRejects() {
	ctx := context.Background()
	enforced := services.NewLedgerService(suite.mockRepo, services.OverdraftEnforced)
	req := dto.CreateExpenseRequest{
		Category: "Food",
		Amount:   decimal.NewFromInt(40),
		Currency: domain.CurrencyUSD,
	}

	// The guard handed to the repository must reject an empty ledger, which
	// cannot cover the expense; the repository then surfaces that rejection.
	guardErr := domain.CheckSufficiency(domain.Balances{}, domain.KindExpense, req.Amount, req.Currency)
	suite.Require().ErrorIs(guardErr, apperrors.ErrInsufficientFunds)

	suite.mockRepo.On("SaveTransactionChecked", ctx, mock.AnythingOfType("domain.Transaction"), mock.MatchedBy(func(guard func([]domain.Transaction) error) bool {
		return errors.Is(guard(nil), apperrors.ErrInsufficientFunds)
	})).Return(guardErr).Once()

	txn, err := enforced.RecordExpense(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListTransactions_NewestFirst() {
	ctx := context.Background()
	older, err := domain.NewIncome("i1", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "Client", decimal.NewFromInt(100), domain.FeePolicyNone, nil, false)
	suite.Require().NoError(err)
	newer, err := domain.NewExpense("e1", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "Food", decimal.NewFromInt(10), domain.CurrencyUSD)
	suite.Require().NoError(err)

	suite.mockRepo.On("FindAllTransactions", ctx).Return([]domain.Transaction{older, newer}, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{})

	suite.Require().NoError(err)
	suite.Require().Len(txns, 2)
	suite.Equal("e1", txns[0].TransactionID)
	suite.Equal("i1", txns[1].TransactionID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListTransactions_SameDateLatestAppendedFirst() {
	ctx := context.Background()
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	first, err := domain.NewIncome("i1", date, "Client", decimal.NewFromInt(100), domain.FeePolicyNone, nil, false)
	suite.Require().NoError(err)
	second, err := domain.NewExpense("e1", date, "Food", decimal.NewFromInt(10), domain.CurrencyUSD)
	suite.Require().NoError(err)

	suite.mockRepo.On("FindAllTransactions", ctx).Return([]domain.Transaction{first, second}, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{})

	suite.Require().NoError(err)
	suite.Require().Len(txns, 2)
	suite.Equal("e1", txns[0].TransactionID)
	suite.Equal("i1", txns[1].TransactionID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListTransactions_KindAndMonthFilter() {
	ctx := context.Background()
	marchIncome, err := domain.NewIncome("i1", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), "Client", decimal.NewFromInt(100), domain.FeePolicyNone, nil, false)
	suite.Require().NoError(err)
	aprilIncome, err := domain.NewIncome("i2", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), "Client", decimal.NewFromInt(100), domain.FeePolicyNone, nil, false)
	suite.Require().NoError(err)
	marchExpense, err := domain.NewExpense("e1", time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), "Food", decimal.NewFromInt(10), domain.CurrencyUSD)
	suite.Require().NoError(err)

	suite.mockRepo.On("FindAllTransactions", ctx).Return([]domain.Transaction{marchIncome, aprilIncome, marchExpense}, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{
		Kind:  string(domain.KindIncome),
		Year:  2024,
		Month: 3,
	})

	suite.Require().NoError(err)
	suite.Require().Len(txns, 1)
	suite.Equal("i1", txns[0].TransactionID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_Success() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteTransaction", ctx, "txn-1").Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, "txn-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteTransaction", ctx, "missing").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
