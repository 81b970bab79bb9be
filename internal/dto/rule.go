package dto

import (
	"time"

	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRuleRequest defines the data needed to configure a tip-out rule.
// Exactly one of EligibleRoles or DestinationDepartmentID is used, depending on DistributionType.
type CreateRuleRequest struct {
	Name                    string          `json:"name" binding:"required,max=120"`
	SourceRole              *string         `json:"sourceRole"` // Optional: nil applies to every role
	CalculationBasis        string          `json:"calculationBasis" binding:"required,oneof=TOTAL_SALES GROSS_TIPS"`
	AmountType              string          `json:"amountType" binding:"required,oneof=PERCENTAGE FLAT_AMOUNT"`
	Value                   decimal.Decimal `json:"value" binding:"decimal_gte0"`
	DistributionType        string          `json:"distributionType" binding:"required,oneof=INDIVIDUAL_SELECTION DEPARTMENT_POOL"`
	EligibleRoles           []string        `json:"eligibleRoles" binding:"required_if=DistributionType INDIVIDUAL_SELECTION"`
	DestinationDepartmentID string          `json:"destinationDepartmentID" binding:"required_if=DistributionType DEPARTMENT_POOL"`
	Position                int             `json:"position" binding:"gte=0"`
}

// RuleResponse defines the data returned for a tip-out rule.
type RuleResponse struct {
	RuleID                  string          `json:"ruleID"`
	Name                    string          `json:"name"`
	SourceRole              *string         `json:"sourceRole,omitempty"`
	CalculationBasis        string          `json:"calculationBasis"`
	AmountType              string          `json:"amountType"`
	Value                   decimal.Decimal `json:"value"`
	DistributionType        string          `json:"distributionType"`
	EligibleRoles           []string        `json:"eligibleRoles,omitempty"`
	DestinationDepartmentID string          `json:"destinationDepartmentID,omitempty"`
	Position                int             `json:"position"`
	IsActive                bool            `json:"isActive"`
	CreatedAt               time.Time       `json:"createdAt"`
	CreatedBy               string          `json:"createdBy"`
}

// ListRulesResponse wraps the rules of a company in evaluation order.
type ListRulesResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// ToRuleResponse converts a domain.TipOutRule to RuleResponse DTO.
func ToRuleResponse(r *domain.TipOutRule) RuleResponse {
	resp := RuleResponse{
		RuleID:                  string(r.RuleID),
		Name:                    r.Name,
		CalculationBasis:        string(r.Basis),
		AmountType:              string(r.Amount.Kind()),
		Value:                   r.Amount.Value(),
		DistributionType:        string(r.Distribution.Kind()),
		DestinationDepartmentID: string(r.Distribution.Destination()),
		Position:                r.Position,
		IsActive:                r.IsActive,
		CreatedAt:               r.CreatedAt,
		CreatedBy:               r.CreatedBy,
	}
	if r.SourceRole != nil {
		role := string(*r.SourceRole)
		resp.SourceRole = &role
	}
	for _, role := range r.Distribution.EligibleRoles() {
		resp.EligibleRoles = append(resp.EligibleRoles, string(role))
	}
	return resp
}

// ToListRulesResponse converts a slice of domain.TipOutRule to ListRulesResponse.
func ToListRulesResponse(rules []domain.TipOutRule) ListRulesResponse {
	list := make([]RuleResponse, len(rules))
	for i := range rules {
		list[i] = ToRuleResponse(&rules[i])
	}
	return ListRulesResponse{Rules: list}
}
