package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/tip_pooling_app/internal/apperrors"
	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	portssvc "github.com/SscSPs/tip_pooling_app/internal/core/ports/services"
	"github.com/SscSPs/tip_pooling_app/internal/core/tipping"
	"github.com/SscSPs/tip_pooling_app/internal/dto"
	"github.com/SscSPs/tip_pooling_app/internal/handlers"
	"github.com/SscSPs/tip_pooling_app/internal/platform/config"
)

// --- Mock RuleService ---
type MockRuleService struct {
	mock.Mock
}

func (m *MockRuleService) ResolveRuleSet(ctx context.Context, companyID string) ([]domain.TipOutRule, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TipOutRule), args.Error(1)
}
func (m *MockRuleService) ListRules(ctx context.Context, companyID string, userID string) ([]domain.TipOutRule, error) {
	args := m.Called(ctx, companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TipOutRule), args.Error(1)
}
func (m *MockRuleService) CreateRule(ctx context.Context, companyID string, req dto.CreateRuleRequest, userID string) (*domain.TipOutRule, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TipOutRule), args.Error(1)
}
func (m *MockRuleService) DeleteRule(ctx context.Context, companyID string, ruleID domain.RuleID, userID string) error {
	return m.Called(ctx, companyID, ruleID, userID).Error(0)
}

var _ portssvc.RuleSvcFacade = (*MockRuleService)(nil)

// --- Mock CashOutService ---
type MockCashOutService struct {
	mock.Mock
}

func (m *MockCashOutService) evaluation(args mock.Arguments) (*tipping.Evaluation, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tipping.Evaluation), args.Error(1)
}
func (m *MockCashOutService) PreviewCashOut(ctx context.Context, companyID string, req dto.CashOutRequest, userID string) (*tipping.Evaluation, error) {
	return m.evaluation(m.Called(ctx, companyID, req, userID))
}
func (m *MockCashOutService) GetCashOut(ctx context.Context, companyID string, reportID string, userID string) (*tipping.Evaluation, error) {
	return m.evaluation(m.Called(ctx, companyID, reportID, userID))
}
func (m *MockCashOutService) SubmitCashOut(ctx context.Context, companyID string, req dto.CashOutRequest, userID string) (*tipping.Evaluation, error) {
	return m.evaluation(m.Called(ctx, companyID, req, userID))
}
func (m *MockCashOutService) EditManualAdjustments(ctx context.Context, companyID string, reportID string, req dto.EditManualAdjustmentsRequest, userID string) (*tipping.Evaluation, error) {
	return m.evaluation(m.Called(ctx, companyID, reportID, req, userID))
}

var _ portssvc.CashOutSvcFacade = (*MockCashOutService)(nil)

// --- Mock PoolService ---
type MockPoolService struct {
	mock.Mock
}

func (m *MockPoolService) SummarizePayPeriod(ctx context.Context, companyID string, departmentID domain.DepartmentID, start, end time.Time, userID string) (*domain.PayPeriodSummary, error) {
	args := m.Called(ctx, companyID, departmentID, start, end, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayPeriodSummary), args.Error(1)
}
func (m *MockPoolService) GetPool(ctx context.Context, companyID string, poolID string, userID string) (*domain.Pool, error) {
	args := m.Called(ctx, companyID, poolID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pool), args.Error(1)
}
func (m *MockPoolService) ListPools(ctx context.Context, companyID string, departmentID domain.DepartmentID, userID string, params dto.ListPoolsParams) (*dto.ListPoolsResponse, error) {
	args := m.Called(ctx, companyID, departmentID, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListPoolsResponse), args.Error(1)
}
func (m *MockPoolService) ExportPool(ctx context.Context, companyID string, poolID string, userID string) ([]byte, string, error) {
	args := m.Called(ctx, companyID, poolID, userID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}
func (m *MockPoolService) CreatePool(ctx context.Context, companyID string, req dto.CreatePoolRequest, userID string) (*domain.Pool, error) {
	args := m.Called(ctx, companyID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pool), args.Error(1)
}

var _ portssvc.PoolSvcFacade = (*MockPoolService)(nil)

const (
	testSecret = "test-secret"
	testIssuer = "staff-service"
)

type HandlersTestSuite struct {
	suite.Suite
	router  *gin.Engine
	rules   *MockRuleService
	cashOut *MockCashOutService
	pools   *MockPoolService
	token   string
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (suite *HandlersTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())
	suite.token = suite.mintToken("server-1", testIssuer, time.Now().Add(time.Hour))
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.rules = new(MockRuleService)
	suite.cashOut = new(MockCashOutService)
	suite.pools = new(MockPoolService)

	cfg := &config.Config{JWTSecret: testSecret, JWTIssuer: testIssuer, IsProduction: true}
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Rule:    suite.rules,
		CashOut: suite.cashOut,
		Pool:    suite.pools,
	})
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.rules.AssertExpectations(suite.T())
	suite.cashOut.AssertExpectations(suite.T())
	suite.pools.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) mintToken(subject, issuer string, expires time.Time) string {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(expires),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	suite.Require().NoError(err)
	return signed
}

func (suite *HandlersTestSuite) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func sampleEvaluation() *tipping.Evaluation {
	ruleID := domain.RuleID("rule-bar")
	return &tipping.Evaluation{
		Report: domain.CashOutReport{
			ReportID:     "rep-1",
			ReporterID:   "server-1",
			ReporterRole: "serveur",
			ServiceDate:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			FoodSales:    decimal.NewFromInt(800),
			AlcoholSales: decimal.NewFromInt(200),
			GrossTips:    decimal.NewFromInt(150),
			CashOnHand:   decimal.NewFromInt(40),
			WasCollector: true,
		},
		Ledger: []domain.Adjustment{
			{Type: domain.AdjustmentTipOutAutomatic, Amount: decimal.NewFromInt(-20), RuleID: &ruleID, UserID: "server-1"},
		},
		TotalTipOut: decimal.NewFromInt(20),
		DueBack:     decimal.NewFromInt(60),
	}
}

func cashOutBody() map[string]any {
	return map[string]any{
		"reporterID":   "server-1",
		"serviceDate":  "2024-03-15",
		"foodSales":    "800",
		"alcoholSales": "200",
		"grossTips":    "150",
		"cashOnHand":   "40",
		"wasCollector": true,
	}
}

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestAuth_Rejections() {
	suite.Run("missing header", func() {
		w := suite.do(http.MethodGet, "/api/v1/companies/co-1/rules", nil, "")
		suite.Equal(http.StatusUnauthorized, w.Code)
	})
	suite.Run("expired token", func() {
		expired := suite.mintToken("server-1", testIssuer, time.Now().Add(-time.Minute))
		w := suite.do(http.MethodGet, "/api/v1/companies/co-1/rules", nil, expired)
		suite.Equal(http.StatusUnauthorized, w.Code)
		suite.Equal("Token has expired", suite.errorBody(w))
	})
	suite.Run("wrong issuer", func() {
		foreign := suite.mintToken("server-1", "someone-else", time.Now().Add(time.Hour))
		w := suite.do(http.MethodGet, "/api/v1/companies/co-1/rules", nil, foreign)
		suite.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (suite *HandlersTestSuite) TestSubmitCashOut_Created() {
	suite.cashOut.On("SubmitCashOut", mock.Anything, "co-1", mock.AnythingOfType("dto.CashOutRequest"), "server-1").
		Return(sampleEvaluation(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/companies/co-1/cashouts", cashOutBody(), suite.token)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.CashOutResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("rep-1", resp.ReportID)
	suite.Equal("2024-03-15", resp.ServiceDate)
	suite.True(resp.DueBack.Equal(decimal.NewFromInt(60)))
	suite.Len(resp.Adjustments, 1)
}

func (suite *HandlersTestSuite) TestSubmitCashOut_ErrorMapping() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "duplicate", err: apperrors.ErrDuplicate, status: http.StatusConflict},
		{name: "forbidden", err: apperrors.ErrForbidden, status: http.StatusForbidden},
		{name: "bad rule", err: apperrors.ErrInvalidRuleConfiguration, status: http.StatusUnprocessableEntity},
		{name: "validation", err: apperrors.ErrValidation, status: http.StatusBadRequest},
		{name: "storage", err: apperrors.NewAppError(500, "failed to insert", context.DeadlineExceeded), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.cashOut.On("SubmitCashOut", mock.Anything, "co-1", mock.Anything, "server-1").
				Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/companies/co-1/cashouts", cashOutBody(), suite.token)
			suite.Equal(tt.status, w.Code)
			if tt.status == http.StatusInternalServerError {
				suite.Equal("Failed to submit cash-out", suite.errorBody(w))
			}
		})
	}
}

func (suite *HandlersTestSuite) TestSubmitCashOut_BindingRejects() {
	tests := []struct {
		name  string
		patch func(map[string]any)
	}{
		{name: "negative sales", patch: func(b map[string]any) { b["foodSales"] = "-1" }},
		{name: "bad date", patch: func(b map[string]any) { b["serviceDate"] = "15/03/2024" }},
		{name: "missing reporter", patch: func(b map[string]any) { delete(b, "reporterID") }},
		{name: "zero manual line", patch: func(b map[string]any) {
			b["manualAdjustments"] = []map[string]any{{"type": "MANUAL", "amount": "0"}}
		}},
		{name: "automatic manual line", patch: func(b map[string]any) {
			b["manualAdjustments"] = []map[string]any{{"type": "TIP_OUT_AUTOMATIC", "amount": "5"}}
		}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			body := cashOutBody()
			tt.patch(body)
			w := suite.do(http.MethodPost, "/api/v1/companies/co-1/cashouts", body, suite.token)
			suite.Equal(http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func (suite *HandlersTestSuite) TestPreviewCashOut() {
	suite.cashOut.On("PreviewCashOut", mock.Anything, "co-1", mock.Anything, "server-1").
		Return(sampleEvaluation(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/companies/co-1/cashouts/preview", cashOutBody(), suite.token)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestCreateRule() {
	body := map[string]any{
		"name":                    "Kitchen share",
		"calculationBasis":        "TOTAL_SALES",
		"amountType":              "PERCENTAGE",
		"value":                   "2",
		"distributionType":        "DEPARTMENT_POOL",
		"destinationDepartmentID": "kitchen",
	}
	amount, _ := domain.NewPercentageAmount(decimal.NewFromInt(2))
	dist, _ := domain.NewDepartmentPool("kitchen")
	suite.rules.On("CreateRule", mock.Anything, "co-1", mock.AnythingOfType("dto.CreateRuleRequest"), "server-1").
		Return(&domain.TipOutRule{RuleID: "r1", Name: "Kitchen share", Basis: domain.BasisTotalSales, Amount: amount, Distribution: dist, IsActive: true}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/companies/co-1/rules", body, suite.token)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.RuleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("kitchen", resp.DestinationDepartmentID)
	suite.Equal("PERCENTAGE", resp.AmountType)
}

func (suite *HandlersTestSuite) TestCreateRule_PoolWithoutDestination() {
	body := map[string]any{
		"name":             "Kitchen share",
		"calculationBasis": "TOTAL_SALES",
		"amountType":       "PERCENTAGE",
		"value":            "2",
		"distributionType": "DEPARTMENT_POOL",
	}
	w := suite.do(http.MethodPost, "/api/v1/companies/co-1/rules", body, suite.token)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestDeleteRule() {
	suite.rules.On("DeleteRule", mock.Anything, "co-1", domain.RuleID("r1"), "server-1").Return(nil).Once()
	suite.rules.On("DeleteRule", mock.Anything, "co-1", domain.RuleID("gone"), "server-1").Return(apperrors.ErrNotFound).Once()

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/companies/co-1/rules/r1", nil, suite.token).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodDelete, "/api/v1/companies/co-1/rules/gone", nil, suite.token).Code)
}

func (suite *HandlersTestSuite) TestSummarizePayPeriod() {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	suite.pools.On("SummarizePayPeriod", mock.Anything, "co-1", domain.DepartmentID("kitchen"), start, end, "server-1").
		Return(&domain.PayPeriodSummary{
			DepartmentID:        "kitchen",
			Range:               domain.DateRange{Start: start, End: end},
			TotalTipOutAmount:   decimal.RequireFromString("125.50"),
			ContributingReports: 4,
		}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/companies/co-1/departments/kitchen/pay-period?start=2024-03-01&end=2024-03-15", nil, suite.token)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.PayPeriodSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(4, resp.ContributingReports)
	suite.True(resp.TotalTipOutAmount.Equal(decimal.RequireFromString("125.5")))
}

func (suite *HandlersTestSuite) TestSummarizePayPeriod_BadQuery() {
	w := suite.do(http.MethodGet, "/api/v1/companies/co-1/departments/kitchen/pay-period?start=2024-03-01", nil, suite.token)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/companies/co-1/departments/kitchen/pay-period?start=March&end=2024-03-15", nil, suite.token)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestCreatePool_ZeroHours() {
	body := map[string]any{
		"departmentID": "kitchen",
		"startDate":    "2024-03-01",
		"endDate":      "2024-03-15",
		"recipients":   []map[string]any{{"userID": "a", "hoursWorked": "0"}},
	}
	suite.pools.On("CreatePool", mock.Anything, "co-1", mock.AnythingOfType("dto.CreatePoolRequest"), "server-1").
		Return(nil, apperrors.ErrZeroHoursPool).Once()

	w := suite.do(http.MethodPost, "/api/v1/companies/co-1/pools", body, suite.token)
	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlersTestSuite) TestExportPool() {
	suite.pools.On("ExportPool", mock.Anything, "co-1", "pool-1", "server-1").
		Return([]byte("PK\x03\x04"), "pool_kitchen_2024-03-01_2024-03-15.xlsx", nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/companies/co-1/pools/pool-1/export", nil, suite.token)

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.True(strings.HasPrefix(w.Header().Get("Content-Type"), "application/vnd.openxmlformats"))
	suite.Contains(w.Header().Get("Content-Disposition"), "pool_kitchen_2024-03-01_2024-03-15.xlsx")
	suite.Equal([]byte("PK\x03\x04"), w.Body.Bytes())
}

func (suite *HandlersTestSuite) TestListPools_Pagination() {
	token := "MjAyNC0wMy0wMXxwb29sLTE"
	next := "next-page"
	suite.pools.On("ListPools", mock.Anything, "co-1", domain.DepartmentID("kitchen"), "server-1",
		dto.ListPoolsParams{Limit: 5, NextToken: &token}).
		Return(&dto.ListPoolsResponse{Pools: []dto.PoolResponse{{PoolID: "pool-0"}}, NextToken: &next}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/companies/co-1/departments/kitchen/pools?limit=5&nextToken="+token, nil, suite.token)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ListPoolsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
}

func (suite *HandlersTestSuite) TestListPools_LimitOutOfRange() {
	w := suite.do(http.MethodGet, "/api/v1/companies/co-1/departments/kitchen/pools?limit=500", nil, suite.token)
	suite.Equal(http.StatusBadRequest, w.Code)
}
