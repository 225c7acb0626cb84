package services_test

import (
	"context"
	"testing"

	"github.com/lmorales/salon_dashboard_app/internal/apperrors"
	"github.com/lmorales/salon_dashboard_app/internal/core/domain"
	"github.com/lmorales/salon_dashboard_app/internal/core/services"
	portssvc "github.com/lmorales/salon_dashboard_app/internal/core/ports/services"
	"github.com/stretchr/testify/suite"
)

type SummaryServiceTestSuite struct {
	suite.Suite
	mockGateway *MockSummaryGateway
	service     portssvc.SummarySvcFacade
}

func (suite *SummaryServiceTestSuite) SetupTest() {
	suite.mockGateway = new(MockSummaryGateway)
	store := services.NewViewStateStore(suite.mockGateway)
	suite.service = services.NewSummaryService(store)
}

// --- Test Cases ---

func (suite *SummaryServiceTestSuite) TestView_FetchesOnFirstUse() {
	ctx := context.Background()
	scope := domain.ReportScope{Date: "2026-03-14", Sede: "Principal"}

	suite.mockGateway.On("FetchSummary", ctx, scope).Return(snapshotFor(scope, 1, 2, 3), nil).Once()

	result, err := suite.service.View(ctx, scope, domain.FilterCriteria{})

	suite.Require().NoError(err)
	suite.Len(result.Rows, 3)
	suite.mockGateway.AssertExpectations(suite.T())
}

func (suite *SummaryServiceTestSuite) TestView_FilterChangeReusesSnapshot() {
	ctx := context.Background()
	scope := domain.ReportScope{Date: "2026-03-14", Sede: "Principal"}

	// One fetch serves both views: filter changes never hit the network.
	suite.mockGateway.On("FetchSummary", ctx, scope).Return(snapshotFor(scope, 1, 2), nil).Once()

	_, err := suite.service.View(ctx, scope, domain.FilterCriteria{})
	suite.Require().NoError(err)

	result, err := suite.service.View(ctx, scope, domain.FilterCriteria{Stylist: "Ana"})
	suite.Require().NoError(err)
	suite.Len(result.Rows, 2)

	suite.mockGateway.AssertNumberOfCalls(suite.T(), "FetchSummary", 1)
}

func (suite *SummaryServiceTestSuite) TestView_ScopeChangeRefetches() {
	ctx := context.Background()
	scopeA := domain.ReportScope{Date: "2026-03-14", Sede: "Principal"}
	scopeB := domain.ReportScope{Date: "2026-03-15", Sede: "Principal"}

	suite.mockGateway.On("FetchSummary", ctx, scopeA).Return(snapshotFor(scopeA, 1), nil).Once()
	suite.mockGateway.On("FetchSummary", ctx, scopeB).Return(snapshotFor(scopeB, 2, 3), nil).Once()

	_, err := suite.service.View(ctx, scopeA, domain.FilterCriteria{})
	suite.Require().NoError(err)

	result, err := suite.service.View(ctx, scopeB, domain.FilterCriteria{})
	suite.Require().NoError(err)
	suite.Len(result.Rows, 2)
	suite.mockGateway.AssertExpectations(suite.T())
}

func (suite *SummaryServiceTestSuite) TestView_PropagatesRefreshFailure() {
	ctx := context.Background()
	scope := domain.ReportScope{Date: "2026-03-14", Sede: "Principal"}

	suite.mockGateway.On("FetchSummary", ctx, scope).Return(nil, apperrors.ErrNetwork).Once()

	result, err := suite.service.View(ctx, scope, domain.FilterCriteria{})

	suite.Require().ErrorIs(err, apperrors.ErrNetwork)
	suite.Nil(result)
}

func (suite *SummaryServiceTestSuite) TestRefresh_WrapsGatewayError() {
	ctx := context.Background()
	scope := domain.ReportScope{Date: "2026-03-14", Sede: "Norte"}

	suite.mockGateway.On("FetchSummary", ctx, scope).Return(nil, apperrors.ErrNetwork).Once()

	err := suite.service.Refresh(ctx, scope)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNetwork)
	suite.Contains(err.Error(), "Norte")
}

func (suite *SummaryServiceTestSuite) TestCurrent_EmptyUntilFirstCommit() {
	_, ok := suite.service.Current()
	suite.False(ok)
}

func TestSummaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}
