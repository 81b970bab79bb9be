package services

import (
	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tip_pooling_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tip_pooling_app/internal/core/ports/services"
	"github.com/SscSPs/tip_pooling_app/internal/core/tipping"
	"github.com/SscSPs/tip_pooling_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}
	policy := PolicyFromConfig(cfg)

	// The authorizer is shared by every service
	container.Access = NewCompanyAuthorizer(repos.RosterRepo, policy.Recipients.ManagerRoles)

	container.Rule = NewRuleService(
		repos.RuleRepo,
		repos.DepartmentRepo,
		WithRuleCompanyAuthorizer(container.Access),
	)

	container.CashOut = NewCashOutService(
		repos.CashOutRepo,
		repos.RosterRepo,
		repos.DepartmentRepo,
		container.Rule,
		WithCashOutCompanyAuthorizer(container.Access),
		WithCashOutPolicy(policy),
	)

	container.Pool = NewPoolService(
		repos.PoolRepo,
		repos.CashOutRepo,
		repos.DepartmentRepo,
		repos.RosterRepo,
		WithPoolCompanyAuthorizer(container.Access),
		WithPoolPlaces(policy.Places),
	)

	return container
}

// PolicyFromConfig builds the evaluation policy, keeping the default roles when none are configured.
func PolicyFromConfig(cfg *config.Config) tipping.Policy {
	policy := tipping.DefaultPolicy()
	if cfg == nil {
		return policy
	}
	policy.Places = cfg.CurrencyPlaces
	if len(cfg.ManagerRoles) > 0 {
		policy.Recipients.ManagerRoles = toRoles(cfg.ManagerRoles)
	}
	if len(cfg.BackOfHouseRoles) > 0 {
		policy.Recipients.BackOfHouseRoles = toRoles(cfg.BackOfHouseRoles)
	}
	return policy
}

func toRoles(values []string) []domain.Role {
	roles := make([]domain.Role, len(values))
	for i, v := range values {
		roles[i] = domain.Role(v)
	}
	return roles
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.RuleSvcFacade        = (*ruleService)(nil)
	_ portssvc.CashOutSvcFacade     = (*cashOutService)(nil)
	_ portssvc.PoolSvcFacade        = (*poolService)(nil)
	_ portssvc.CompanyAuthorizerSvc = (*companyAuthorizer)(nil)
)
