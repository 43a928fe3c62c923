package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ftracker/ft_backend/internal/core/domain"
	portssvc "github.com/ftracker/ft_backend/internal/core/ports/services"
	"github.com/ftracker/ft_backend/internal/core/services"
)

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetDisplayRate(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockSettingsRepository) UpdateDisplayRate(ctx context.Context, rate decimal.Decimal) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo   *MockLedgerRepository
	mockSettingsRepo *MockSettingsRepository
	service          portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.service = services.NewReportingService(suite.mockLedgerRepo, suite.mockSettingsRepo)
}

func (suite *ReportingServiceTestSuite) ledgerFixture() []domain.Transaction {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	income, err := domain.NewIncome("i1", date, "Client", decimal.NewFromInt(1000), domain.FeePolicyPercent, nil, false)
	suite.Require().NoError(err)
	expense, err := domain.NewExpense("e1", date, "Food", decimal.NewFromInt(400), domain.CurrencyUSD)
	suite.Require().NoError(err)
	transfer, err := domain.NewUsdDzdTransfer("t1", date, decimal.NewFromInt(100), decimal.NewFromInt(200))
	suite.Require().NoError(err)

	return []domain.Transaction{income, expense, transfer}
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestBalances_DerivedFromFullLedger() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("FindAllTransactions", ctx).Return(suite.ledgerFixture(), nil).Once()

	balances, err := suite.service.Balances(ctx)

	suite.Require().NoError(err)
	suite.True(balances.BankUSD.Equal(decimal.NewFromInt(400)), "got %s", balances.BankUSD)
	suite.True(balances.CashDZD.Equal(decimal.NewFromInt(20000)), "got %s", balances.CashDZD)
	suite.True(balances.PaypalUSD.IsZero())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestBalances_EmptyLedger() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("FindAllTransactions", ctx).Return([]domain.Transaction{}, nil).Once()

	balances, err := suite.service.Balances(ctx)

	suite.Require().NoError(err)
	suite.True(balances.BankUSD.IsZero())
	suite.True(balances.PaypalUSD.IsZero())
	suite.True(balances.CashDZD.IsZero())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestBalances_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockLedgerRepo.On("FindAllTransactions", ctx).Return(nil, expectedErr).Once()

	_, err := suite.service.Balances(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestMonthlySummary_Derived() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("FindAllTransactions", ctx).Return(suite.ledgerFixture(), nil).Once()

	summary, err := suite.service.MonthlySummary(ctx, 2024, time.March)

	suite.Require().NoError(err)
	suite.True(summary.Earned.Equal(decimal.NewFromInt(900)), "got %s", summary.Earned)
	suite.True(summary.SpentUSD.Equal(decimal.NewFromInt(400)), "got %s", summary.SpentUSD)
	suite.True(summary.SpentDZD.IsZero())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestMonthlySummary_OtherMonthEmpty() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("FindAllTransactions", ctx).Return(suite.ledgerFixture(), nil).Once()

	summary, err := suite.service.MonthlySummary(ctx, 2024, time.April)

	suite.Require().NoError(err)
	suite.True(summary.Earned.IsZero())
	suite.True(summary.SpentUSD.IsZero())
	suite.True(summary.SpentDZD.IsZero())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestNetWorth_UsesDisplayRate() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("FindAllTransactions", ctx).Return(suite.ledgerFixture(), nil).Once()
	suite.mockSettingsRepo.On("GetDisplayRate", ctx).Return(decimal.NewFromInt(200), nil).Once()

	// Bank 400 USD plus 20000 DZD cash at rate 200 adds 100 USD.
	netWorth, err := suite.service.NetWorth(ctx)

	suite.Require().NoError(err)
	suite.True(netWorth.Equal(decimal.NewFromInt(500)), "got %s", netWorth)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestNetWorth_SettingsError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockLedgerRepo.On("FindAllTransactions", ctx).Return(suite.ledgerFixture(), nil).Once()
	suite.mockSettingsRepo.On("GetDisplayRate", ctx).Return(decimal.Decimal{}, expectedErr).Once()

	_, err := suite.service.NetWorth(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
