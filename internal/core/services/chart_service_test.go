package services_test

import (
	"context"
	"testing"

	"github.com/lmorales/salon_dashboard_app/internal/apperrors"
	"github.com/lmorales/salon_dashboard_app/internal/core/domain"
	"github.com/lmorales/salon_dashboard_app/internal/core/services"
	portssvc "github.com/lmorales/salon_dashboard_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockChartGateway is a mock type for the ChartGateway interface
type MockChartGateway struct {
	mock.Mock
}

func (m *MockChartGateway) FetchStatistics(ctx context.Context, month, sede string) (*domain.StatisticsData, error) {
	args := m.Called(ctx, month, sede)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatisticsData), args.Error(1)
}

func (m *MockChartGateway) FetchPrediction(ctx context.Context, sede string) (*domain.PredictionData, error) {
	args := m.Called(ctx, sede)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PredictionData), args.Error(1)
}

func (m *MockChartGateway) FetchRevenuePatterns(ctx context.Context, sede string) (*domain.RevenuePatternsData, error) {
	args := m.Called(ctx, sede)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevenuePatternsData), args.Error(1)
}

func (m *MockChartGateway) FetchServiceDemand(ctx context.Context, sede string) (*domain.ServiceDemandData, error) {
	args := m.Called(ctx, sede)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceDemandData), args.Error(1)
}

// --- Test Suite Setup ---

type ChartServiceTestSuite struct {
	suite.Suite
	mockGateway *MockChartGateway
	service     portssvc.ChartSvcFacade
	scope       domain.ReportScope
}

func (suite *ChartServiceTestSuite) SetupTest() {
	suite.mockGateway = new(MockChartGateway)
	suite.service = services.NewChartService(suite.mockGateway)
	suite.scope = domain.ReportScope{Date: "2026-03-14", Sede: "Principal"}
}

func statisticsData() *domain.StatisticsData {
	return &domain.StatisticsData{
		Totals: domain.MonthTotals{Sales: decimal.NewFromInt(2500000)},
		SalesByStylist: map[string]decimal.Decimal{
			"Ana": decimal.NewFromInt(1500000),
		},
	}
}

func predictionData() *domain.PredictionData {
	return &domain.PredictionData{
		Historical: []domain.TimePoint{{Date: "2026-03-13", Value: decimal.NewFromInt(400000)}},
		Forecast:   []domain.TimePoint{{Date: "2026-03-15", Value: decimal.NewFromInt(420000)}},
		Trend:      "up",
	}
}

// --- Test Cases ---

func (suite *ChartServiceTestSuite) TestRender_InstallsInstance() {
	ctx := context.Background()

	// The statistics endpoint takes the month, not the full date.
	suite.mockGateway.On("FetchStatistics", ctx, "2026-03", "Principal").Return(statisticsData(), nil).Once()

	instance, err := suite.service.Render(ctx, domain.SlotStatistics, suite.scope)

	suite.Require().NoError(err)
	suite.NotEmpty(instance.InstanceID)
	suite.Equal(domain.SlotStatistics, instance.ChartSlot)

	live, ok := suite.service.Instance(domain.SlotStatistics)
	suite.Require().True(ok)
	suite.Equal(instance.InstanceID, live.InstanceID)
	suite.mockGateway.AssertExpectations(suite.T())
}

func (suite *ChartServiceTestSuite) TestRender_DestroysPriorInstance() {
	ctx := context.Background()

	suite.mockGateway.On("FetchPrediction", ctx, "Principal").Return(predictionData(), nil).Twice()

	first, err := suite.service.Render(ctx, domain.SlotPrediction, suite.scope)
	suite.Require().NoError(err)

	second, err := suite.service.Render(ctx, domain.SlotPrediction, suite.scope)
	suite.Require().NoError(err)

	// One live instance per slot; the second render replaces the first.
	suite.NotEqual(first.InstanceID, second.InstanceID)

	live, ok := suite.service.Instance(domain.SlotPrediction)
	suite.Require().True(ok)
	suite.Equal(second.InstanceID, live.InstanceID)
}

func (suite *ChartServiceTestSuite) TestRender_FetchFailureLeavesPriorInstance() {
	ctx := context.Background()

	suite.mockGateway.On("FetchPrediction", ctx, "Principal").Return(predictionData(), nil).Once()
	first, err := suite.service.Render(ctx, domain.SlotPrediction, suite.scope)
	suite.Require().NoError(err)

	suite.mockGateway.On("FetchPrediction", ctx, "Principal").Return(nil, apperrors.ErrNetwork).Once()
	_, err = suite.service.Render(ctx, domain.SlotPrediction, suite.scope)
	suite.Require().ErrorIs(err, apperrors.ErrNetwork)

	live, ok := suite.service.Instance(domain.SlotPrediction)
	suite.Require().True(ok)
	suite.Equal(first.InstanceID, live.InstanceID)
}

func (suite *ChartServiceTestSuite) TestRenderAll_IsolatesSlotFailures() {
	ctx := context.Background()

	suite.mockGateway.On("FetchStatistics", ctx, "2026-03", "Principal").Return(statisticsData(), nil).Once()
	suite.mockGateway.On("FetchPrediction", ctx, "Principal").Return(predictionData(), nil).Once()
	suite.mockGateway.On("FetchRevenuePatterns", ctx, "Principal").Return(nil, apperrors.ErrNetwork).Once()
	suite.mockGateway.On("FetchServiceDemand", ctx, "Principal").Return(&domain.ServiceDemandData{GrowthService: "Corte"}, nil).Once()

	board := suite.service.RenderAll(ctx, suite.scope)

	suite.Len(board.Charts, 3)
	suite.Len(board.Failures, 1)
	suite.Contains(board.Failures, domain.SlotRevenuePatterns)
	suite.Contains(board.Charts, domain.SlotStatistics)
	suite.Contains(board.Charts, domain.SlotPrediction)
	suite.Contains(board.Charts, domain.SlotServiceDemand)
	suite.mockGateway.AssertExpectations(suite.T())
}

func (suite *ChartServiceTestSuite) TestRenderAll_AllSlotsSucceed() {
	ctx := context.Background()

	suite.mockGateway.On("FetchStatistics", ctx, "2026-03", "Principal").Return(statisticsData(), nil).Once()
	suite.mockGateway.On("FetchPrediction", ctx, "Principal").Return(predictionData(), nil).Once()
	suite.mockGateway.On("FetchRevenuePatterns", ctx, "Principal").Return(&domain.RevenuePatternsData{Inference: "Los sábados son el día más fuerte"}, nil).Once()
	suite.mockGateway.On("FetchServiceDemand", ctx, "Principal").Return(&domain.ServiceDemandData{GrowthService: "Tinte"}, nil).Once()

	board := suite.service.RenderAll(ctx, suite.scope)

	suite.Len(board.Charts, len(domain.AllChartSlots()))
	suite.Empty(board.Failures)
}

func TestChartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChartServiceTestSuite))
}
