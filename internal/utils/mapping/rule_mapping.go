package mapping

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/tip_pooling_app/internal/apperrors"
	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	"github.com/SscSPs/tip_pooling_app/internal/models"
)

// ToModelRule converts a domain TipOutRule to a model TipOutRule
func ToModelRule(d domain.TipOutRule) models.TipOutRule {
	m := models.TipOutRule{
		RuleID:           string(d.RuleID),
		CompanyID:        d.CompanyID,
		Name:             d.Name,
		CalculationBasis: string(d.Basis),
		DistributionType: string(d.Distribution.Kind()),
		EligibleRoles:    []string{},
		Position:         d.Position,
		IsActive:         d.IsActive,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
	if d.SourceRole != nil {
		role := string(*d.SourceRole)
		m.SourceRole = &role
	}

	switch d.Amount.Kind() {
	case domain.AmountPercentage:
		m.Percentage = decimal.NewNullDecimal(d.Amount.Value())
	case domain.AmountFlat:
		m.FlatAmount = decimal.NewNullDecimal(d.Amount.Value())
	}

	switch d.Distribution.Kind() {
	case domain.DistributionIndividual:
		for _, r := range d.Distribution.EligibleRoles() {
			m.EligibleRoles = append(m.EligibleRoles, string(r))
		}
	case domain.DistributionDepartment:
		m.DestinationDepartmentID = optionalString(string(d.Distribution.Destination()))
	}
	return m
}

// ToDomainRule converts a model TipOutRule to a domain TipOutRule.
// A row with both or neither amount columns set, or with a distribution
// missing its target, is reported as an invalid rule configuration.
func ToDomainRule(m models.TipOutRule) (domain.TipOutRule, error) {
	d := domain.TipOutRule{
		RuleID:      domain.RuleID(m.RuleID),
		CompanyID:   m.CompanyID,
		Name:        m.Name,
		Basis:       domain.CalculationBasis(m.CalculationBasis),
		Position:    m.Position,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.SourceRole != nil && *m.SourceRole != "" {
		role := domain.Role(*m.SourceRole)
		d.SourceRole = &role
	}

	var err error
	switch {
	case m.Percentage.Valid && m.FlatAmount.Valid:
		return domain.TipOutRule{}, fmt.Errorf("%w: rule %s has both a percentage and a flat amount", apperrors.ErrInvalidRuleConfiguration, m.RuleID)
	case m.Percentage.Valid:
		d.Amount, err = domain.NewPercentageAmount(m.Percentage.Decimal)
	case m.FlatAmount.Valid:
		d.Amount, err = domain.NewFlatAmount(m.FlatAmount.Decimal)
	default:
		return domain.TipOutRule{}, fmt.Errorf("%w: rule %s has no amount", apperrors.ErrInvalidRuleConfiguration, m.RuleID)
	}
	if err != nil {
		return domain.TipOutRule{}, fmt.Errorf("rule %s: %w", m.RuleID, err)
	}

	switch domain.DistributionKind(m.DistributionType) {
	case domain.DistributionIndividual:
		roles := make([]domain.Role, len(m.EligibleRoles))
		for i, r := range m.EligibleRoles {
			roles[i] = domain.Role(r)
		}
		d.Distribution, err = domain.NewIndividualSelection(roles)
	case domain.DistributionDepartment:
		d.Distribution, err = domain.NewDepartmentPool(domain.DepartmentID(stringOrEmpty(m.DestinationDepartmentID)))
	default:
		err = fmt.Errorf("%w: unknown distribution type %q", apperrors.ErrInvalidRuleConfiguration, m.DistributionType)
	}
	if err != nil {
		return domain.TipOutRule{}, fmt.Errorf("rule %s: %w", m.RuleID, err)
	}
	return d, nil
}
