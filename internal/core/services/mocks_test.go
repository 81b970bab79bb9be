package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
)

// --- Repository mocks ---

type MockRuleRepository struct {
	mock.Mock
}

func (m *MockRuleRepository) ListRulesByCompany(ctx context.Context, companyID string) ([]domain.TipOutRule, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TipOutRule), args.Error(1)
}

func (m *MockRuleRepository) FindRuleByID(ctx context.Context, companyID string, ruleID domain.RuleID) (*domain.TipOutRule, error) {
	args := m.Called(ctx, companyID, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TipOutRule), args.Error(1)
}

func (m *MockRuleRepository) SaveRule(ctx context.Context, rule domain.TipOutRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockRuleRepository) DeactivateRule(ctx context.Context, companyID string, ruleID domain.RuleID, userID string, now time.Time) error {
	args := m.Called(ctx, companyID, ruleID, userID, now)
	return args.Error(0)
}

type MockRosterRepository struct {
	mock.Mock
}

func (m *MockRosterRepository) GetRoster(ctx context.Context, companyID string) (domain.Roster, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Roster), args.Error(1)
}

func (m *MockRosterRepository) FindEmployee(ctx context.Context, companyID string, userID domain.UserID) (*domain.RosterEntry, error) {
	args := m.Called(ctx, companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RosterEntry), args.Error(1)
}

type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) FindDepartmentByID(ctx context.Context, companyID string, departmentID domain.DepartmentID) (*domain.Department, error) {
	args := m.Called(ctx, companyID, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) ListDepartmentsByCompany(ctx context.Context, companyID string) ([]domain.Department, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}

type MockCashOutRepository struct {
	mock.Mock
}

func (m *MockCashOutRepository) FindReportByID(ctx context.Context, companyID string, reportID string) (*domain.CashOutReport, error) {
	args := m.Called(ctx, companyID, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashOutReport), args.Error(1)
}

func (m *MockCashOutRepository) FindAdjustmentsByReportID(ctx context.Context, reportID string) ([]domain.Adjustment, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Adjustment), args.Error(1)
}

func (m *MockCashOutRepository) ListPooledTipOuts(ctx context.Context, companyID string, departmentID domain.DepartmentID, dateRange domain.DateRange) ([]domain.PooledTipOut, error) {
	args := m.Called(ctx, companyID, departmentID, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PooledTipOut), args.Error(1)
}

func (m *MockCashOutRepository) SaveCashOut(ctx context.Context, report domain.CashOutReport, ledger []domain.Adjustment) error {
	args := m.Called(ctx, report, ledger)
	return args.Error(0)
}

func (m *MockCashOutRepository) ReplaceManualAdjustments(ctx context.Context, reportID string, manual []domain.Adjustment, userID string, now time.Time) error {
	args := m.Called(ctx, reportID, manual, userID, now)
	return args.Error(0)
}

type MockPoolRepository struct {
	mock.Mock
}

func (m *MockPoolRepository) FindPoolByID(ctx context.Context, companyID string, poolID string) (*domain.Pool, error) {
	args := m.Called(ctx, companyID, poolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pool), args.Error(1)
}

func (m *MockPoolRepository) FindPoolByPeriod(ctx context.Context, companyID string, departmentID domain.DepartmentID, start, end time.Time) (*domain.Pool, error) {
	args := m.Called(ctx, companyID, departmentID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pool), args.Error(1)
}

func (m *MockPoolRepository) ListPoolsByDepartment(ctx context.Context, companyID string, departmentID domain.DepartmentID, limit int, nextToken *string) ([]domain.Pool, *string, error) {
	args := m.Called(ctx, companyID, departmentID, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Pool), next, args.Error(2)
}

func (m *MockPoolRepository) SavePool(ctx context.Context, pool domain.Pool) error {
	args := m.Called(ctx, pool)
	return args.Error(0)
}

// --- Service mocks ---

type MockCompanyAuthorizer struct {
	mock.Mock
}

func (m *MockCompanyAuthorizer) AuthorizeUserAction(ctx context.Context, userID, companyID string, required domain.AccessLevel) error {
	args := m.Called(ctx, userID, companyID, required)
	return args.Error(0)
}

var fixedNow = time.Date(2024, 3, 16, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }
