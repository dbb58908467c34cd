package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/moneytrack/money_tracker_app/internal/apperrors"
	"github.com/moneytrack/money_tracker_app/internal/core/domain"
	"github.com/moneytrack/money_tracker_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) OverrideBalance(ctx context.Context, accountID int64, balance decimal.Decimal, now time.Time) (*domain.Account, error) {
	args := m.Called(ctx, accountID, balance, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  *services.AccountService
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestGetAccountByID_Success() {
	ctx := context.Background()
	expectedAccount := &domain.Account{
		AccountID: 3,
		Name:      "icbc",
		NameCN:    "工行卡",
		Balance:   decimal.NewFromInt(1500),
		IsDebt:    false,
	}

	suite.mockRepo.On("FindAccountByID", ctx, int64(3)).Return(expectedAccount, nil).Once()

	account, err := suite.service.GetAccountByID(ctx, 3)

	suite.Require().NoError(err)
	suite.Equal(expectedAccount, account)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindAccountByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, 99)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_Success() {
	ctx := context.Background()
	expectedAccounts := []domain.Account{
		{AccountID: 1, Name: "alipay", Balance: decimal.NewFromInt(100)},
		{AccountID: 2, Name: "huabei", Balance: decimal.NewFromInt(50), IsDebt: true},
	}

	suite.mockRepo.On("ListAccounts", ctx).Return(expectedAccounts, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx)

	suite.Require().NoError(err)
	suite.Equal(expectedAccounts, accounts)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_NilBecomesEmpty() {
	ctx := context.Background()
	var noAccounts []domain.Account

	suite.mockRepo.On("ListAccounts", ctx).Return(noAccounts, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx)

	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListAccounts", ctx).Return(nil, expectedErr).Once()

	accounts, err := suite.service.ListAccounts(ctx)

	suite.Require().Error(err)
	suite.Nil(accounts)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestOverrideBalance_Success() {
	ctx := context.Background()
	newBalance := decimal.NewFromFloat(1234.56)
	updated := &domain.Account{AccountID: 1, Name: "alipay", Balance: newBalance}

	suite.mockRepo.On("OverrideBalance", ctx, int64(1), newBalance, mock.AnythingOfType("time.Time")).
		Return(updated, nil).Once()

	account, err := suite.service.OverrideBalance(ctx, 1, newBalance)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.True(newBalance.Equal(account.Balance))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestOverrideBalance_ZeroIsValid() {
	ctx := context.Background()
	updated := &domain.Account{AccountID: 2, Name: "huabei", Balance: decimal.Zero, IsDebt: true}

	suite.mockRepo.On("OverrideBalance", ctx, int64(2), decimal.Zero, mock.AnythingOfType("time.Time")).
		Return(updated, nil).Once()

	account, err := suite.service.OverrideBalance(ctx, 2, decimal.Zero)

	suite.Require().NoError(err)
	suite.True(account.Balance.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestOverrideBalance_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("OverrideBalance", ctx, int64(42), decimal.NewFromInt(10), mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.OverrideBalance(ctx, 42, decimal.NewFromInt(10))

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
