package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/tip_pooling_app/internal/apperrors"
	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	portssvc "github.com/SscSPs/tip_pooling_app/internal/core/ports/services"
	"github.com/SscSPs/tip_pooling_app/internal/core/services"
	"github.com/SscSPs/tip_pooling_app/internal/core/tipping"
	"github.com/SscSPs/tip_pooling_app/internal/dto"
)

type CashOutServiceTestSuite struct {
	suite.Suite
	cashOutRepo *MockCashOutRepository
	rosterRepo  *MockRosterRepository
	deptRepo    *MockDepartmentRepository
	ruleRepo    *MockRuleRepository
	auth        *MockCompanyAuthorizer
	service     portssvc.CashOutSvcFacade
}

func (suite *CashOutServiceTestSuite) SetupTest() {
	suite.cashOutRepo = new(MockCashOutRepository)
	suite.rosterRepo = new(MockRosterRepository)
	suite.deptRepo = new(MockDepartmentRepository)
	suite.ruleRepo = new(MockRuleRepository)
	suite.auth = new(MockCompanyAuthorizer)

	rules := services.NewRuleService(suite.ruleRepo, suite.deptRepo)
	suite.service = services.NewCashOutService(
		suite.cashOutRepo,
		suite.rosterRepo,
		suite.deptRepo,
		rules,
		services.WithCashOutCompanyAuthorizer(suite.auth),
		services.WithCashOutPolicy(tipping.DefaultPolicy()),
		services.WithCashOutClock(clock),
	)
}

func (suite *CashOutServiceTestSuite) expectInputs() {
	t := suite.T()
	kitchenFlat, err := domain.NewFlatAmount(decimal.NewFromInt(5))
	require.NoError(t, err)
	toKitchen, err := domain.NewDepartmentPool("kitchen")
	require.NoError(t, err)
	tenPercent, err := domain.NewPercentageAmount(decimal.NewFromInt(10))
	require.NoError(t, err)
	runners, err := domain.NewIndividualSelection([]domain.Role{"runner"})
	require.NoError(t, err)

	suite.ruleRepo.On("ListRulesByCompany", mock.Anything, "co-1").Return([]domain.TipOutRule{
		{RuleID: "kitchen", Name: "Kitchen", Basis: domain.BasisTotalSales, Amount: kitchenFlat, Distribution: toKitchen, Position: 1, IsActive: true},
		{RuleID: "runners", Name: "Runners", Basis: domain.BasisGrossTips, Amount: tenPercent, Distribution: runners, Position: 2, IsActive: true},
	}, nil)
	suite.rosterRepo.On("GetRoster", mock.Anything, "co-1").Return(domain.Roster{
		"waiter": {Role: "serveur"},
		"r1":     {Role: "runner"},
		"r2":     {Role: "runner"},
		"mgr":    {Role: "gerant"},
	}, nil)
	suite.deptRepo.On("ListDepartmentsByCompany", mock.Anything, "co-1").Return([]domain.Department{
		{DepartmentID: "kitchen", CompanyID: "co-1", Name: "Cuisine"},
	}, nil)
}

func cashOutRequest() dto.CashOutRequest {
	return dto.CashOutRequest{
		ReporterID:          "waiter",
		ServiceDate:         "2024-03-14",
		FoodSales:           decimal.NewFromInt(150),
		AlcoholSales:        decimal.NewFromInt(50),
		GrossTips:           decimal.NewFromInt(50),
		CashOnHand:          decimal.NewFromInt(30),
		WasCollector:        true,
		RecipientSelections: map[string][]string{"runners": {"r1", "r2"}},
	}
}

func (suite *CashOutServiceTestSuite) TestPreviewCashOut() {
	ctx := context.Background()
	suite.expectInputs()
	suite.auth.On("AuthorizeUserAction", ctx, "waiter", "co-1", domain.AccessMember).Return(nil).Once()

	eval, err := suite.service.PreviewCashOut(ctx, "co-1", cashOutRequest(), "waiter")

	suite.Require().NoError(err)
	suite.Equal(domain.Role("serveur"), eval.Report.ReporterRole)
	suite.Len(eval.Ledger, 4)
	suite.Equal("10.00", eval.TotalTipOut.StringFixed(2))
	suite.Equal("40.00", eval.DueBack.StringFixed(2))
	suite.Empty(eval.Report.ReportID)
	suite.cashOutRepo.AssertNotCalled(suite.T(), "SaveCashOut", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CashOutServiceTestSuite) TestPreviewCashOut_OnBehalfRequiresManager() {
	ctx := context.Background()
	suite.auth.On("AuthorizeUserAction", ctx, "r1", "co-1", domain.AccessManager).Return(apperrors.ErrForbidden).Once()

	_, err := suite.service.PreviewCashOut(ctx, "co-1", cashOutRequest(), "r1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.ruleRepo.AssertNotCalled(suite.T(), "ListRulesByCompany", mock.Anything, mock.Anything)
}

func (suite *CashOutServiceTestSuite) TestPreviewCashOut_ReporterNotOnRoster() {
	ctx := context.Background()
	suite.expectInputs()
	suite.auth.On("AuthorizeUserAction", ctx, "mgr", "co-1", domain.AccessManager).Return(nil).Once()
	req := cashOutRequest()
	req.ReporterID = "stranger"

	_, err := suite.service.PreviewCashOut(ctx, "co-1", req, "mgr")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CashOutServiceTestSuite) TestPreviewCashOut_BadDate() {
	ctx := context.Background()
	suite.auth.On("AuthorizeUserAction", ctx, "waiter", "co-1", domain.AccessMember).Return(nil).Once()
	req := cashOutRequest()
	req.ServiceDate = "14/03/2024"

	_, err := suite.service.PreviewCashOut(ctx, "co-1", req, "waiter")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CashOutServiceTestSuite) TestPreviewCashOut_InputFetchError() {
	ctx := context.Background()
	suite.auth.On("AuthorizeUserAction", ctx, "waiter", "co-1", domain.AccessMember).Return(nil).Once()
	suite.ruleRepo.On("ListRulesByCompany", mock.Anything, "co-1").Return([]domain.TipOutRule{}, nil)
	suite.rosterRepo.On("GetRoster", mock.Anything, "co-1").Return(nil, assert.AnError)
	suite.deptRepo.On("ListDepartmentsByCompany", mock.Anything, "co-1").Return([]domain.Department{}, nil)

	_, err := suite.service.PreviewCashOut(ctx, "co-1", cashOutRequest(), "waiter")

	suite.ErrorIs(err, assert.AnError)
}

func (suite *CashOutServiceTestSuite) TestPreviewCashOut_ReportsSkippedRules() {
	ctx := context.Background()
	suite.expectInputs()
	suite.auth.On("AuthorizeUserAction", ctx, "waiter", "co-1", domain.AccessMember).Return(nil).Once()
	req := cashOutRequest()
	req.RecipientSelections = nil

	eval, err := suite.service.PreviewCashOut(ctx, "co-1", req, "waiter")

	suite.Require().NoError(err)
	suite.Require().Len(eval.Skipped, 1)
	suite.Equal(domain.RuleID("runners"), eval.Skipped[0].RuleID)
	suite.Equal(tipping.SkipNoEligibleRecipients, eval.Skipped[0].Reason)
	suite.Equal("35.00", eval.DueBack.StringFixed(2))
}

func (suite *CashOutServiceTestSuite) TestSubmitCashOut() {
	ctx := context.Background()
	suite.expectInputs()
	suite.auth.On("AuthorizeUserAction", ctx, "waiter", "co-1", domain.AccessMember).Return(nil).Once()

	var savedLedger []domain.Adjustment
	suite.cashOutRepo.On("SaveCashOut", ctx,
		mock.MatchedBy(func(r domain.CashOutReport) bool {
			return r.ReportID != "" && r.CreatedBy == "waiter" && r.CreatedAt.Equal(fixedNow)
		}),
		mock.AnythingOfType("[]domain.Adjustment"),
	).Run(func(args mock.Arguments) {
		savedLedger = args.Get(2).([]domain.Adjustment)
	}).Return(nil).Once()

	eval, err := suite.service.SubmitCashOut(ctx, "co-1", cashOutRequest(), "waiter")

	suite.Require().NoError(err)
	suite.Require().Len(savedLedger, 4)
	for _, line := range savedLedger {
		suite.NotEmpty(line.AdjustmentID)
		suite.Equal(eval.Report.ReportID, line.ReportID)
	}
	suite.cashOutRepo.AssertExpectations(suite.T())
}

func (suite *CashOutServiceTestSuite) TestSubmitCashOut_Duplicate() {
	ctx := context.Background()
	suite.expectInputs()
	suite.auth.On("AuthorizeUserAction", ctx, "waiter", "co-1", domain.AccessMember).Return(nil).Once()
	suite.cashOutRepo.On("SaveCashOut", ctx, mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.SubmitCashOut(ctx, "co-1", cashOutRequest(), "waiter")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func storedReport(collector bool) *domain.CashOutReport {
	return &domain.CashOutReport{
		ReportID:     "rep-1",
		CompanyID:    "co-1",
		ReporterID:   "waiter",
		ReporterRole: "serveur",
		ServiceDate:  time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		FoodSales:    decimal.NewFromInt(150),
		GrossTips:    decimal.NewFromInt(50),
		CashOnHand:   decimal.NewFromInt(30),
		WasCollector: collector,
	}
}

func storedLedger() []domain.Adjustment {
	kitchen := domain.RuleID("kitchen")
	return []domain.Adjustment{
		{AdjustmentID: "a1", ReportID: "rep-1", Type: domain.AdjustmentTipOutAutomatic, Amount: decimal.NewFromInt(-5), RuleID: &kitchen, UserID: "waiter"},
		{AdjustmentID: "a2", ReportID: "rep-1", Type: domain.AdjustmentManual, Amount: decimal.NewFromInt(7), UserID: "waiter"},
	}
}

func (suite *CashOutServiceTestSuite) TestGetCashOut() {
	ctx := context.Background()
	suite.cashOutRepo.On("FindReportByID", ctx, "co-1", "rep-1").Return(storedReport(true), nil).Once()
	suite.cashOutRepo.On("FindAdjustmentsByReportID", ctx, "rep-1").Return(storedLedger(), nil).Once()
	suite.auth.On("AuthorizeUserAction", ctx, "waiter", "co-1", domain.AccessMember).Return(nil).Once()

	eval, err := suite.service.GetCashOut(ctx, "co-1", "rep-1", "waiter")

	suite.Require().NoError(err)
	suite.Len(eval.Ledger, 2)
	suite.Equal("5.00", eval.TotalTipOut.StringFixed(2))
	// 30 cash + 5 tip-out - 7 manual
	suite.Equal("28.00", eval.DueBack.StringFixed(2))
}

func (suite *CashOutServiceTestSuite) TestGetCashOut_NotFound() {
	ctx := context.Background()
	suite.cashOutRepo.On("FindReportByID", ctx, "co-1", "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetCashOut(ctx, "co-1", "nope", "waiter")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CashOutServiceTestSuite) TestEditManualAdjustments_KeepsAutomaticLines() {
	ctx := context.Background()
	busser := "busser"
	suite.cashOutRepo.On("FindReportByID", ctx, "co-1", "rep-1").Return(storedReport(true), nil).Once()
	suite.cashOutRepo.On("FindAdjustmentsByReportID", ctx, "rep-1").Return(storedLedger(), nil).Once()
	suite.auth.On("AuthorizeUserAction", ctx, "waiter", "co-1", domain.AccessMember).Return(nil).Once()
	suite.cashOutRepo.On("ReplaceManualAdjustments", ctx, "rep-1",
		mock.MatchedBy(func(lines []domain.Adjustment) bool {
			return len(lines) == 1 && lines[0].Type == domain.AdjustmentSplitPayout && lines[0].AdjustmentID != ""
		}),
		"waiter", fixedNow,
	).Return(nil).Once()

	eval, err := suite.service.EditManualAdjustments(ctx, "co-1", "rep-1", dto.EditManualAdjustmentsRequest{
		ManualAdjustments: []dto.ManualAdjustmentRequest{
			{Type: "SPLIT_PAYOUT", Amount: decimal.NewFromInt(12), RelatedUserID: &busser},
		},
	}, "waiter")

	suite.Require().NoError(err)
	suite.Require().Len(eval.Ledger, 2)
	suite.Equal("a1", eval.Ledger[0].AdjustmentID)
	suite.Equal(domain.AdjustmentSplitPayout, eval.Ledger[1].Type)
	suite.Equal("23.00", eval.DueBack.StringFixed(2))
	suite.cashOutRepo.AssertExpectations(suite.T())
}

func (suite *CashOutServiceTestSuite) TestEditManualAdjustments_Rejections() {
	ctx := context.Background()
	suite.auth.On("AuthorizeUserAction", ctx, "waiter", "co-1", domain.AccessMember).Return(nil)
	suite.cashOutRepo.On("FindAdjustmentsByReportID", ctx, "rep-1").Return([]domain.Adjustment{}, nil)

	suite.Run("non collector report", func() {
		suite.cashOutRepo.On("FindReportByID", ctx, "co-1", "rep-1").Return(storedReport(false), nil).Once()
		_, err := suite.service.EditManualAdjustments(ctx, "co-1", "rep-1", dto.EditManualAdjustmentsRequest{}, "waiter")
		suite.ErrorIs(err, apperrors.ErrValidation)
	})

	suite.Run("zero amount line", func() {
		suite.cashOutRepo.On("FindReportByID", ctx, "co-1", "rep-1").Return(storedReport(true), nil).Once()
		_, err := suite.service.EditManualAdjustments(ctx, "co-1", "rep-1", dto.EditManualAdjustmentsRequest{
			ManualAdjustments: []dto.ManualAdjustmentRequest{{Type: "MANUAL", Amount: decimal.Zero}},
		}, "waiter")
		suite.ErrorIs(err, apperrors.ErrValidation)
	})

	suite.cashOutRepo.AssertNotCalled(suite.T(), "ReplaceManualAdjustments", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCashOutServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashOutServiceTestSuite))
}
