package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
)

// TipOutRuleReader defines read operations for tip-out rule data
type TipOutRuleReader interface {
	// ListRulesByCompany retrieves the active rules of a company in evaluation order.
	ListRulesByCompany(ctx context.Context, companyID string) ([]domain.TipOutRule, error)

	// FindRuleByID retrieves a specific rule, returning apperrors.ErrNotFound when absent.
	FindRuleByID(ctx context.Context, companyID string, ruleID domain.RuleID) (*domain.TipOutRule, error)
}

// TipOutRuleWriter defines write operations for tip-out rule data
type TipOutRuleWriter interface {
	// SaveRule persists a new rule.
	SaveRule(ctx context.Context, rule domain.TipOutRule) error

	// DeactivateRule hides a rule from future evaluations. Past adjustments keep referencing it.
	DeactivateRule(ctx context.Context, companyID string, ruleID domain.RuleID, userID string, now time.Time) error
}

// TipOutRuleRepositoryFacade combines all rule-related repository interfaces
type TipOutRuleRepositoryFacade interface {
	TipOutRuleReader
	TipOutRuleWriter
}
