package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/moneytrack/money_tracker_app/internal/apperrors"
	"github.com/moneytrack/money_tracker_app/internal/core/services"
	portssvc "github.com/moneytrack/money_tracker_app/internal/core/ports/services"
	"github.com/moneytrack/money_tracker_app/internal/utils/timewindow"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) SumExpensesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) DailyExpenseTotals(ctx context.Context, from, to time.Time, loc *time.Location) (map[time.Time]decimal.Decimal, error) {
	args := m.Called(ctx, from, to, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[time.Time]decimal.Decimal), args.Error(1)
}

// --- Test Suite Setup ---

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo, time.UTC)
}

func (suite *ReportingServiceTestSuite) expectSum(w timewindow.Window, total decimal.Decimal) {
	suite.mockRepo.On("SumExpensesBetween", mock.Anything, w.Start, w.End).Return(total, nil).Once()
}

// --- Statistics ---

func (suite *ReportingServiceTestSuite) TestStatistics_ComparesAgainstPreviousWindows() {
	ctx := context.Background()
	ref := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)

	suite.expectSum(timewindow.Day(ref, time.UTC), decimal.NewFromInt(20))
	suite.expectSum(timewindow.PreviousDay(ref, time.UTC), decimal.NewFromInt(40))
	suite.expectSum(timewindow.Week(ref, time.UTC), decimal.NewFromInt(75))
	suite.expectSum(timewindow.PreviousWeek(ref, time.UTC), decimal.Zero)
	suite.expectSum(timewindow.Month(ref, time.UTC), decimal.NewFromInt(100))
	suite.expectSum(timewindow.PreviousMonth(ref, time.UTC), decimal.NewFromInt(80))

	snapshot, err := suite.service.Statistics(ctx, ref)

	suite.Require().NoError(err)
	suite.Require().NotNil(snapshot)

	// Spent less today than yesterday: change is negative, percent is the
	// magnitude of the swing.
	suite.True(decimal.NewFromInt(20).Equal(snapshot.Daily.Current))
	suite.True(decimal.NewFromInt(40).Equal(snapshot.Daily.Previous))
	suite.True(decimal.NewFromInt(-20).Equal(snapshot.Daily.Change))
	suite.True(decimal.NewFromInt(50).Equal(snapshot.Daily.ChangePercent), "daily percent: %s", snapshot.Daily.ChangePercent)

	// No spend last week: percent comparison is undefined, reported as zero.
	suite.True(decimal.NewFromInt(75).Equal(snapshot.Weekly.Change))
	suite.True(snapshot.Weekly.ChangePercent.IsZero())

	suite.True(decimal.NewFromInt(20).Equal(snapshot.Monthly.Change))
	suite.True(decimal.NewFromInt(25).Equal(snapshot.Monthly.ChangePercent), "monthly percent: %s", snapshot.Monthly.ChangePercent)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestStatistics_EmptyLedger() {
	ctx := context.Background()
	ref := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)

	suite.mockRepo.On("SumExpensesBetween", mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, nil).Times(6)

	snapshot, err := suite.service.Statistics(ctx, ref)

	suite.Require().NoError(err)
	suite.True(snapshot.Daily.Current.IsZero())
	suite.True(snapshot.Daily.Change.IsZero())
	suite.True(snapshot.Daily.ChangePercent.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestStatistics_RepoError() {
	ctx := context.Background()
	ref := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)
	expectedErr := assert.AnError

	suite.mockRepo.On("SumExpensesBetween", mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, expectedErr).Once()

	snapshot, err := suite.service.Statistics(ctx, ref)

	suite.Require().Error(err)
	suite.Nil(snapshot)
	suite.ErrorIs(err, expectedErr)
}

// --- ChartSeries ---

func (suite *ReportingServiceTestSuite) TestChartSeries_ZeroFillsMissingDays() {
	ctx := context.Background()
	ref := time.Date(2025, 6, 11, 18, 0, 0, 0, time.UTC)
	day1 := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	totals := map[time.Time]decimal.Decimal{
		day1: decimal.NewFromInt(15),
		day3: decimal.NewFromFloat(5.5),
	}
	suite.mockRepo.On("DailyExpenseTotals", mock.Anything,
		day1, day3.AddDate(0, 0, 1), time.UTC).Return(totals, nil).Once()

	points, err := suite.service.ChartSeries(ctx, 3, ref)

	suite.Require().NoError(err)
	suite.Require().Len(points, 3)

	suite.Equal(day1, points[0].Date)
	suite.True(decimal.NewFromInt(15).Equal(points[0].Total))

	// June 10 had no expenses and still gets a point.
	suite.Equal(day1.AddDate(0, 0, 1), points[1].Date)
	suite.True(points[1].Total.IsZero())

	suite.Equal(day3, points[2].Date)
	suite.True(decimal.NewFromFloat(5.5).Equal(points[2].Total))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestChartSeries_RejectsNonPositiveDays() {
	ctx := context.Background()

	for _, days := range []int{0, -7} {
		points, err := suite.service.ChartSeries(ctx, days, time.Now())
		suite.Require().Error(err)
		suite.Nil(points)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "DailyExpenseTotals", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestChartSeries_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("DailyExpenseTotals", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, expectedErr).Once()

	points, err := suite.service.ChartSeries(ctx, 7, time.Now())

	suite.Require().Error(err)
	suite.Nil(points)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Test Suite ---

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
