package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/tip_pooling_app/internal/apperrors"
	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tip_pooling_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tip_pooling_app/internal/core/ports/services"
	"github.com/SscSPs/tip_pooling_app/internal/dto"
)

// ruleService manages the tip-out rules of a company.
type ruleService struct {
	BaseService
	ruleRepo       portsrepo.TipOutRuleRepositoryFacade
	departmentRepo portsrepo.DepartmentReader
	now            func() time.Time
}

// RuleServiceOption is a functional option for configuring the rule service
type RuleServiceOption func(*ruleService)

// WithRuleCompanyAuthorizer sets the company authorizer for the rule service.
func WithRuleCompanyAuthorizer(authorizer portssvc.CompanyAuthorizerSvc) RuleServiceOption {
	return func(s *ruleService) {
		s.CompanyAuthorizer = authorizer
	}
}

// WithRuleClock overrides the clock used for audit fields.
func WithRuleClock(now func() time.Time) RuleServiceOption {
	return func(s *ruleService) {
		s.now = now
	}
}

// NewRuleService creates a new rule service with the provided options
func NewRuleService(ruleRepo portsrepo.TipOutRuleRepositoryFacade, departmentRepo portsrepo.DepartmentReader, options ...RuleServiceOption) portssvc.RuleSvcFacade {
	svc := &ruleService{
		ruleRepo:       ruleRepo,
		departmentRepo: departmentRepo,
		now:            time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RuleSvcFacade = (*ruleService)(nil)

// ResolveRuleSet returns the active rules ordered by position, then name.
func (s *ruleService) ResolveRuleSet(ctx context.Context, companyID string) ([]domain.TipOutRule, error) {
	rules, err := s.ruleRepo.ListRulesByCompany(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load rule set", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to load rule set: %w", err)
	}

	active := make([]domain.TipOutRule, 0, len(rules))
	for _, r := range rules {
		if r.IsActive {
			active = append(active, r)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		if active[i].Position != active[j].Position {
			return active[i].Position < active[j].Position
		}
		if active[i].Name != active[j].Name {
			return active[i].Name < active[j].Name
		}
		return active[i].RuleID < active[j].RuleID
	})
	return active, nil
}

func (s *ruleService) ListRules(ctx context.Context, companyID string, userID string) ([]domain.TipOutRule, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.AccessMember); err != nil {
		return nil, err
	}
	return s.ResolveRuleSet(ctx, companyID)
}

func (s *ruleService) CreateRule(ctx context.Context, companyID string, req dto.CreateRuleRequest, userID string) (*domain.TipOutRule, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.AccessManager); err != nil {
		return nil, err
	}

	amount, err := amountFromRequest(req)
	if err != nil {
		return nil, err
	}
	distribution, err := distributionFromRequest(req)
	if err != nil {
		return nil, err
	}

	if distribution.Kind() == domain.DistributionDepartment {
		dept, err := s.departmentRepo.FindDepartmentByID(ctx, companyID, distribution.Destination())
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: department %s does not exist", apperrors.ErrInvalidRuleConfiguration, distribution.Destination())
			}
			return nil, fmt.Errorf("failed to look up destination department: %w", err)
		}
		if err := dept.ValidateDistribution(); err != nil {
			return nil, err
		}
	}

	now := s.now().UTC()
	rule := domain.TipOutRule{
		RuleID:       domain.RuleID(uuid.NewString()),
		CompanyID:    companyID,
		Name:         req.Name,
		Basis:        domain.CalculationBasis(req.CalculationBasis),
		Amount:       amount,
		Distribution: distribution,
		Position:     req.Position,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if req.SourceRole != nil && *req.SourceRole != "" {
		role := domain.Role(*req.SourceRole)
		rule.SourceRole = &role
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}

	if err := s.ruleRepo.SaveRule(ctx, rule); err != nil {
		s.LogError(ctx, err, "Failed to save rule", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to save rule: %w", err)
	}

	s.LogInfo(ctx, "Tip-out rule created",
		slog.String("company_id", companyID),
		slog.String("rule_id", string(rule.RuleID)),
		slog.String("distribution", string(distribution.Kind())))
	return &rule, nil
}

func (s *ruleService) DeleteRule(ctx context.Context, companyID string, ruleID domain.RuleID, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.AccessManager); err != nil {
		return err
	}
	if _, err := s.ruleRepo.FindRuleByID(ctx, companyID, ruleID); err != nil {
		return err
	}
	if err := s.ruleRepo.DeactivateRule(ctx, companyID, ruleID, userID, s.now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate rule", slog.String("rule_id", string(ruleID)))
		return fmt.Errorf("failed to deactivate rule: %w", err)
	}
	s.LogInfo(ctx, "Tip-out rule deactivated", slog.String("company_id", companyID), slog.String("rule_id", string(ruleID)))
	return nil
}

func amountFromRequest(req dto.CreateRuleRequest) (domain.AmountSpec, error) {
	switch domain.AmountKind(req.AmountType) {
	case domain.AmountPercentage:
		return domain.NewPercentageAmount(req.Value)
	case domain.AmountFlat:
		return domain.NewFlatAmount(req.Value)
	}
	return domain.AmountSpec{}, fmt.Errorf("%w: unknown amount type %q", apperrors.ErrInvalidRuleConfiguration, req.AmountType)
}

func distributionFromRequest(req dto.CreateRuleRequest) (domain.Distribution, error) {
	switch domain.DistributionKind(req.DistributionType) {
	case domain.DistributionIndividual:
		roles := make([]domain.Role, len(req.EligibleRoles))
		for i, r := range req.EligibleRoles {
			roles[i] = domain.Role(r)
		}
		return domain.NewIndividualSelection(roles)
	case domain.DistributionDepartment:
		return domain.NewDepartmentPool(domain.DepartmentID(req.DestinationDepartmentID))
	}
	return domain.Distribution{}, fmt.Errorf("%w: unknown distribution type %q", apperrors.ErrInvalidRuleConfiguration, req.DistributionType)
}
