package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/tip_pooling_app/internal/apperrors"
	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tip_pooling_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tip_pooling_app/internal/core/ports/services"
	"github.com/SscSPs/tip_pooling_app/internal/core/tipping"
	"github.com/SscSPs/tip_pooling_app/internal/dto"
)

// cashOutService evaluates and records end-of-shift reports.
type cashOutService struct {
	BaseService
	cashOutRepo    portsrepo.CashOutRepositoryFacade
	rosterRepo     portsrepo.RosterReader
	departmentRepo portsrepo.DepartmentReader
	rules          portssvc.RuleReaderSvc
	policy         tipping.Policy
	now            func() time.Time
}

// CashOutServiceOption is a functional option for configuring the cash-out service
type CashOutServiceOption func(*cashOutService)

// WithCashOutCompanyAuthorizer sets the company authorizer for the cash-out service.
func WithCashOutCompanyAuthorizer(authorizer portssvc.CompanyAuthorizerSvc) CashOutServiceOption {
	return func(s *cashOutService) {
		s.CompanyAuthorizer = authorizer
	}
}

// WithCashOutPolicy sets the rounding and recipient policy used for evaluations.
func WithCashOutPolicy(policy tipping.Policy) CashOutServiceOption {
	return func(s *cashOutService) {
		s.policy = policy
	}
}

// WithCashOutClock overrides the clock used for audit fields.
func WithCashOutClock(now func() time.Time) CashOutServiceOption {
	return func(s *cashOutService) {
		s.now = now
	}
}

// NewCashOutService creates a new cash-out service with the provided options
func NewCashOutService(
	cashOutRepo portsrepo.CashOutRepositoryFacade,
	rosterRepo portsrepo.RosterReader,
	departmentRepo portsrepo.DepartmentReader,
	rules portssvc.RuleReaderSvc,
	options ...CashOutServiceOption,
) portssvc.CashOutSvcFacade {
	svc := &cashOutService{
		cashOutRepo:    cashOutRepo,
		rosterRepo:     rosterRepo,
		departmentRepo: departmentRepo,
		rules:          rules,
		policy:         tipping.DefaultPolicy(),
		now:            time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CashOutSvcFacade = (*cashOutService)(nil)

func (s *cashOutService) PreviewCashOut(ctx context.Context, companyID string, req dto.CashOutRequest, userID string) (*tipping.Evaluation, error) {
	if err := s.authorizeReporter(ctx, companyID, req.ReporterID, userID); err != nil {
		return nil, err
	}
	eval, err := s.evaluate(ctx, companyID, req)
	if err != nil {
		return nil, err
	}
	return &eval, nil
}

func (s *cashOutService) SubmitCashOut(ctx context.Context, companyID string, req dto.CashOutRequest, userID string) (*tipping.Evaluation, error) {
	if err := s.authorizeReporter(ctx, companyID, req.ReporterID, userID); err != nil {
		return nil, err
	}
	eval, err := s.evaluate(ctx, companyID, req)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	eval.Report.ReportID = uuid.NewString()
	eval.Report.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	for i := range eval.Ledger {
		eval.Ledger[i].AdjustmentID = uuid.NewString()
		eval.Ledger[i].ReportID = eval.Report.ReportID
	}

	if err := s.cashOutRepo.SaveCashOut(ctx, eval.Report, eval.Ledger); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Cash-out already submitted for service date",
				slog.String("reporter_id", string(eval.Report.ReporterID)),
				slog.String("service_date", eval.Report.ServiceDate.Format(dto.DateLayout)))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save cash-out", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to save cash-out: %w", err)
	}

	s.LogInfo(ctx, "Cash-out submitted",
		slog.String("company_id", companyID),
		slog.String("report_id", eval.Report.ReportID),
		slog.Int("ledger_lines", len(eval.Ledger)),
		slog.String("due_back", eval.DueBack.String()))
	return &eval, nil
}

func (s *cashOutService) GetCashOut(ctx context.Context, companyID string, reportID string, userID string) (*tipping.Evaluation, error) {
	report, ledger, err := s.loadReport(ctx, companyID, reportID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeReporter(ctx, companyID, string(report.ReporterID), userID); err != nil {
		return nil, err
	}
	eval := tipping.Restate(*report, ledger)
	return &eval, nil
}

func (s *cashOutService) EditManualAdjustments(ctx context.Context, companyID string, reportID string, req dto.EditManualAdjustmentsRequest, userID string) (*tipping.Evaluation, error) {
	report, ledger, err := s.loadReport(ctx, companyID, reportID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeReporter(ctx, companyID, string(report.ReporterID), userID); err != nil {
		return nil, err
	}
	if !report.WasCollector {
		return nil, fmt.Errorf("%w: manual adjustments require a report that collected money", apperrors.ErrValidation)
	}

	manual := dto.ToManualAdjustments(req.ManualAdjustments)
	lines := make([]domain.Adjustment, 0, len(manual))
	for i, m := range manual {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("manual adjustment %d: %w", i, err)
		}
		lines = append(lines, domain.Adjustment{
			AdjustmentID:  uuid.NewString(),
			ReportID:      report.ReportID,
			Type:          m.Type,
			Amount:        m.Amount,
			UserID:        report.ReporterID,
			RelatedUserID: m.RelatedUserID,
			Note:          m.Note,
		})
	}

	if err := s.cashOutRepo.ReplaceManualAdjustments(ctx, report.ReportID, lines, userID, s.now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to replace manual adjustments", slog.String("report_id", reportID))
		return nil, fmt.Errorf("failed to replace manual adjustments: %w", err)
	}

	kept := make([]domain.Adjustment, 0, len(ledger)+len(lines))
	for _, line := range ledger {
		if !line.Type.IsManual() {
			kept = append(kept, line)
		}
	}
	kept = append(kept, lines...)

	s.LogInfo(ctx, "Manual adjustments replaced",
		slog.String("report_id", reportID),
		slog.Int("manual_lines", len(lines)))
	eval := tipping.Restate(*report, kept)
	return &eval, nil
}

// authorizeReporter lets employees act on their own reports and managers on anyone's.
func (s *cashOutService) authorizeReporter(ctx context.Context, companyID, reporterID, userID string) error {
	required := domain.AccessMember
	if reporterID != userID {
		required = domain.AccessManager
	}
	return s.AuthorizeUser(ctx, userID, companyID, required)
}

func (s *cashOutService) loadReport(ctx context.Context, companyID, reportID string) (*domain.CashOutReport, []domain.Adjustment, error) {
	report, err := s.cashOutRepo.FindReportByID(ctx, companyID, reportID)
	if err != nil {
		return nil, nil, err
	}
	ledger, err := s.cashOutRepo.FindAdjustmentsByReportID(ctx, report.ReportID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger", slog.String("report_id", reportID))
		return nil, nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	return report, ledger, nil
}

// evaluate fetches the rule set, roster and departments concurrently and runs the engine.
func (s *cashOutService) evaluate(ctx context.Context, companyID string, req dto.CashOutRequest) (tipping.Evaluation, error) {
	serviceDate, err := time.Parse(dto.DateLayout, req.ServiceDate)
	if err != nil {
		return tipping.Evaluation{}, fmt.Errorf("%w: service date must be formatted as %s", apperrors.ErrValidation, dto.DateLayout)
	}

	var (
		rules       []domain.TipOutRule
		roster      domain.Roster
		departments []domain.Department
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rules, err = s.rules.ResolveRuleSet(gctx, companyID)
		return err
	})
	g.Go(func() error {
		var err error
		roster, err = s.rosterRepo.GetRoster(gctx, companyID)
		if err != nil {
			return fmt.Errorf("failed to load roster: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		departments, err = s.departmentRepo.ListDepartmentsByCompany(gctx, companyID)
		if err != nil {
			return fmt.Errorf("failed to load departments: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load cash-out inputs", slog.String("company_id", companyID))
		return tipping.Evaluation{}, err
	}

	reporter, ok := roster[domain.UserID(req.ReporterID)]
	if !ok {
		return tipping.Evaluation{}, fmt.Errorf("%w: reporter %s is not on the roster", apperrors.ErrValidation, req.ReporterID)
	}

	byID := make(map[domain.DepartmentID]domain.Department, len(departments))
	for _, d := range departments {
		byID[d.DepartmentID] = d
	}
	selections := make(map[domain.RuleID][]domain.UserID, len(req.RecipientSelections))
	for ruleID, users := range req.RecipientSelections {
		ids := make([]domain.UserID, len(users))
		for i, u := range users {
			ids[i] = domain.UserID(u)
		}
		selections[domain.RuleID(ruleID)] = ids
	}

	eval, err := tipping.Evaluate(tipping.EvaluateInput{
		Report: domain.CashOutReport{
			CompanyID:    companyID,
			ReporterID:   domain.UserID(req.ReporterID),
			ReporterRole: reporter.Role,
			ServiceDate:  serviceDate,
			FoodSales:    req.FoodSales,
			AlcoholSales: req.AlcoholSales,
			GrossTips:    req.GrossTips,
			CashOnHand:   req.CashOnHand,
			WasCollector: req.WasCollector,
		},
		Rules:               rules,
		Roster:              roster,
		RecipientSelections: selections,
		Departments:         byID,
		ManualAdjustments:   dto.ToManualAdjustments(req.ManualAdjustments),
		Policy:              s.policy,
	})
	if err != nil {
		s.LogWarn(ctx, "Cash-out evaluation rejected", slog.String("company_id", companyID), slog.String("error", err.Error()))
		return tipping.Evaluation{}, err
	}

	for _, skipped := range eval.Skipped {
		s.LogWarn(ctx, "Tip-out rule skipped",
			slog.String("rule_id", string(skipped.RuleID)),
			slog.String("reason", string(skipped.Reason)))
	}
	return eval, nil
}
