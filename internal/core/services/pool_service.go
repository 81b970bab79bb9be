package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/tip_pooling_app/internal/apperrors"
	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tip_pooling_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tip_pooling_app/internal/core/ports/services"
	"github.com/SscSPs/tip_pooling_app/internal/core/tipping"
	"github.com/SscSPs/tip_pooling_app/internal/dto"
	"github.com/SscSPs/tip_pooling_app/internal/export"
)

// poolService aggregates pay periods and distributes department pools.
type poolService struct {
	BaseService
	poolRepo       portsrepo.PoolRepositoryFacade
	cashOutRepo    portsrepo.CashOutReader
	departmentRepo portsrepo.DepartmentReader
	rosterRepo     portsrepo.RosterReader
	places         int32
	now            func() time.Time
}

// PoolServiceOption is a functional option for configuring the pool service
type PoolServiceOption func(*poolService)

// WithPoolCompanyAuthorizer sets the company authorizer for the pool service.
func WithPoolCompanyAuthorizer(authorizer portssvc.CompanyAuthorizerSvc) PoolServiceOption {
	return func(s *poolService) {
		s.CompanyAuthorizer = authorizer
	}
}

// WithPoolPlaces sets the number of decimal places of the currency.
func WithPoolPlaces(places int32) PoolServiceOption {
	return func(s *poolService) {
		s.places = places
	}
}

// WithPoolClock overrides the clock used for audit fields.
func WithPoolClock(now func() time.Time) PoolServiceOption {
	return func(s *poolService) {
		s.now = now
	}
}

// NewPoolService creates a new pool service with the provided options
func NewPoolService(
	poolRepo portsrepo.PoolRepositoryFacade,
	cashOutRepo portsrepo.CashOutReader,
	departmentRepo portsrepo.DepartmentReader,
	rosterRepo portsrepo.RosterReader,
	options ...PoolServiceOption,
) portssvc.PoolSvcFacade {
	svc := &poolService{
		poolRepo:       poolRepo,
		cashOutRepo:    cashOutRepo,
		departmentRepo: departmentRepo,
		rosterRepo:     rosterRepo,
		places:         tipping.DefaultPlaces,
		now:            time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PoolSvcFacade = (*poolService)(nil)

func (s *poolService) SummarizePayPeriod(ctx context.Context, companyID string, departmentID domain.DepartmentID, start, end time.Time, userID string) (*domain.PayPeriodSummary, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.AccessMember); err != nil {
		return nil, err
	}
	dateRange := domain.DateRange{Start: start, End: end}
	if err := dateRange.Validate(); err != nil {
		return nil, err
	}
	department, err := s.departmentRepo.FindDepartmentByID(ctx, companyID, departmentID)
	if err != nil {
		return nil, err
	}
	summary, err := s.summarize(ctx, companyID, *department, dateRange)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *poolService) summarize(ctx context.Context, companyID string, department domain.Department, dateRange domain.DateRange) (domain.PayPeriodSummary, error) {
	tipOuts, err := s.cashOutRepo.ListPooledTipOuts(ctx, companyID, department.DepartmentID, dateRange)
	if err != nil {
		s.LogError(ctx, err, "Failed to list pooled tip-outs",
			slog.String("company_id", companyID),
			slog.String("department_id", string(department.DepartmentID)))
		return domain.PayPeriodSummary{}, fmt.Errorf("failed to list pooled tip-outs: %w", err)
	}

	summary, err := tipping.Summarize(tipping.SummarizeInput{
		CompanyID:  companyID,
		Department: department,
		Range:      dateRange,
		TipOuts:    tipOuts,
		Places:     s.places,
	})
	if err != nil {
		return domain.PayPeriodSummary{}, err
	}

	s.LogInfo(ctx, "Pay period summarized",
		slog.String("department_id", string(department.DepartmentID)),
		slog.String("total", summary.TotalTipOutAmount.String()),
		slog.Int("contributing_reports", summary.ContributingReports))
	return summary, nil
}

func (s *poolService) CreatePool(ctx context.Context, companyID string, req dto.CreatePoolRequest, userID string) (*domain.Pool, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.AccessManager); err != nil {
		return nil, err
	}

	dateRange, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	department, err := s.departmentRepo.FindDepartmentByID(ctx, companyID, domain.DepartmentID(req.DepartmentID))
	if err != nil {
		return nil, err
	}
	if err := department.ValidateDistribution(); err != nil {
		return nil, err
	}

	existing, err := s.poolRepo.FindPoolByPeriod(ctx, companyID, department.DepartmentID, dateRange.Start, dateRange.End)
	switch {
	case err == nil && existing != nil:
		return nil, fmt.Errorf("%w: pool %s already covers this period", apperrors.ErrDuplicate, existing.PoolID)
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		return nil, fmt.Errorf("failed to check existing pools: %w", err)
	}

	recipients := dto.ToPoolRecipients(req.Recipients)
	if len(recipients) > 0 {
		if err := s.checkRecipientsOnRoster(ctx, companyID, recipients); err != nil {
			return nil, err
		}
	}

	var total decimal.Decimal
	if req.TotalAmount != nil {
		total = *req.TotalAmount
	} else {
		summary, err := s.summarize(ctx, companyID, *department, dateRange)
		if err != nil {
			return nil, err
		}
		total = summary.TotalTipOutAmount
	}

	allocation, err := tipping.Allocate(total, recipients, s.places)
	if err != nil {
		s.LogWarn(ctx, "Pool allocation rejected",
			slog.String("department_id", req.DepartmentID),
			slog.String("total", total.String()),
			slog.String("error", err.Error()))
		return nil, err
	}

	now := s.now().UTC()
	pool := domain.Pool{
		PoolID:        uuid.NewString(),
		CompanyID:     companyID,
		DepartmentID:  department.DepartmentID,
		StartDate:     dateRange.Start,
		EndDate:       dateRange.End,
		TotalAmount:   total,
		TotalHours:    allocation.TotalHours,
		RatePerHour:   allocation.RatePerHour,
		Distributions: allocation.Distributions,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.poolRepo.SavePool(ctx, pool); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save pool", slog.String("department_id", req.DepartmentID))
		return nil, fmt.Errorf("failed to save pool: %w", err)
	}

	s.LogInfo(ctx, "Pool distributed",
		slog.String("pool_id", pool.PoolID),
		slog.String("department_id", string(pool.DepartmentID)),
		slog.String("total", pool.TotalAmount.String()),
		slog.Int("recipients", len(pool.Distributions)))
	return &pool, nil
}

func (s *poolService) GetPool(ctx context.Context, companyID string, poolID string, userID string) (*domain.Pool, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.AccessMember); err != nil {
		return nil, err
	}
	return s.poolRepo.FindPoolByID(ctx, companyID, poolID)
}

func (s *poolService) ListPools(ctx context.Context, companyID string, departmentID domain.DepartmentID, userID string, params dto.ListPoolsParams) (*dto.ListPoolsResponse, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.AccessMember); err != nil {
		return nil, err
	}
	pools, nextToken, err := s.poolRepo.ListPoolsByDepartment(ctx, companyID, departmentID, params.Limit, params.NextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to list pools", slog.String("department_id", string(departmentID)))
		return nil, fmt.Errorf("failed to list pools: %w", err)
	}
	resp := dto.ToListPoolsResponse(pools, nextToken)
	return &resp, nil
}

func (s *poolService) ExportPool(ctx context.Context, companyID string, poolID string, userID string) ([]byte, string, error) {
	pool, err := s.GetPool(ctx, companyID, poolID, userID)
	if err != nil {
		return nil, "", err
	}
	department, err := s.departmentRepo.FindDepartmentByID(ctx, companyID, pool.DepartmentID)
	if err != nil {
		return nil, "", err
	}
	roster, err := s.rosterRepo.GetRoster(ctx, companyID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load roster: %w", err)
	}

	data, err := export.PoolWorkbook(*pool, *department, roster, s.places)
	if err != nil {
		s.LogError(ctx, err, "Failed to render pool workbook", slog.String("pool_id", poolID))
		return nil, "", err
	}
	return data, export.FileName(*pool), nil
}

func (s *poolService) checkRecipientsOnRoster(ctx context.Context, companyID string, recipients []domain.PoolRecipient) error {
	roster, err := s.rosterRepo.GetRoster(ctx, companyID)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}
	for _, r := range recipients {
		if _, ok := roster[r.UserID]; !ok {
			return fmt.Errorf("%w: recipient %s is not on the roster", apperrors.ErrValidation, r.UserID)
		}
	}
	return nil
}

func parseDateRange(start, end string) (domain.DateRange, error) {
	s, err := time.Parse(dto.DateLayout, start)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: start date must be formatted as %s", apperrors.ErrDateRangeInvalid, dto.DateLayout)
	}
	e, err := time.Parse(dto.DateLayout, end)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: end date must be formatted as %s", apperrors.ErrDateRangeInvalid, dto.DateLayout)
	}
	r := domain.DateRange{Start: s, End: e}
	if err := r.Validate(); err != nil {
		return domain.DateRange{}, err
	}
	return r, nil
}
