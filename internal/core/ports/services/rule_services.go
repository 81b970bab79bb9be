package services

import (
	"context"

	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	"github.com/SscSPs/tip_pooling_app/internal/dto"
)

// RuleReaderSvc defines read operations on tip-out rules
type RuleReaderSvc interface {
	// ResolveRuleSet returns the active rules of a company in evaluation order.
	ResolveRuleSet(ctx context.Context, companyID string) ([]domain.TipOutRule, error)

	// ListRules returns the rule set for display after authorizing the user.
	ListRules(ctx context.Context, companyID string, userID string) ([]domain.TipOutRule, error)
}

// RuleWriterSvc defines write operations on tip-out rules
type RuleWriterSvc interface {
	// CreateRule validates and stores a new rule.
	CreateRule(ctx context.Context, companyID string, req dto.CreateRuleRequest, userID string) (*domain.TipOutRule, error)

	// DeleteRule deactivates a rule. Existing ledgers are not touched.
	DeleteRule(ctx context.Context, companyID string, ruleID domain.RuleID, userID string) error
}

// RuleSvcFacade combines all rule-related service interfaces
type RuleSvcFacade interface {
	RuleReaderSvc
	RuleWriterSvc
}
