package domain

import (
	"fmt"

	"github.com/SscSPs/tip_pooling_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CalculationBasis selects the report figure a percentage rule is computed against.
type CalculationBasis string

const (
	BasisTotalSales CalculationBasis = "TOTAL_SALES"
	BasisGrossTips  CalculationBasis = "GROSS_TIPS"
)

// Valid reports whether b is a known basis.
func (b CalculationBasis) Valid() bool {
	return b == BasisTotalSales || b == BasisGrossTips
}

// AmountKind discriminates the AmountSpec union.
type AmountKind string

const (
	AmountPercentage AmountKind = "PERCENTAGE"
	AmountFlat       AmountKind = "FLAT_AMOUNT"
)

// AmountSpec is either a percentage of the basis or a flat amount, never both.
// The zero value has no kind and fails Validate.
type AmountSpec struct {
	kind  AmountKind
	value decimal.Decimal
}

// NewPercentageAmount returns a percentage spec. value must be within 0..100.
func NewPercentageAmount(value decimal.Decimal) (AmountSpec, error) {
	a := AmountSpec{kind: AmountPercentage, value: value}
	if err := a.Validate(); err != nil {
		return AmountSpec{}, err
	}
	return a, nil
}

// NewFlatAmount returns a flat amount spec. value must be positive.
func NewFlatAmount(value decimal.Decimal) (AmountSpec, error) {
	a := AmountSpec{kind: AmountFlat, value: value}
	if err := a.Validate(); err != nil {
		return AmountSpec{}, err
	}
	return a, nil
}

// Kind returns the variant, or "" for the zero value.
func (a AmountSpec) Kind() AmountKind { return a.kind }

// Value returns the percentage or flat amount.
func (a AmountSpec) Value() decimal.Decimal { return a.value }

// Validate checks the variant and its range.
func (a AmountSpec) Validate() error {
	switch a.kind {
	case AmountPercentage:
		if a.value.IsNegative() || a.value.GreaterThan(hundred) {
			return fmt.Errorf("%w: percentage %s outside 0..100", apperrors.ErrInvalidRuleConfiguration, a.value)
		}
	case AmountFlat:
		if !a.value.IsPositive() {
			return fmt.Errorf("%w: flat amount %s must be positive", apperrors.ErrInvalidRuleConfiguration, a.value)
		}
	default:
		return fmt.Errorf("%w: amount must be either a percentage or a flat amount", apperrors.ErrInvalidRuleConfiguration)
	}
	return nil
}

// Compute returns the raw rule amount for the given basis value.
func (a AmountSpec) Compute(basisValue decimal.Decimal) decimal.Decimal {
	if a.kind == AmountPercentage {
		return basisValue.Mul(a.value).Div(hundred)
	}
	return a.value
}

// DistributionKind discriminates the Distribution union.
type DistributionKind string

const (
	DistributionIndividual DistributionKind = "INDIVIDUAL_SELECTION"
	DistributionDepartment DistributionKind = "DEPARTMENT_POOL"
)

// Distribution says where a rule's deduction goes: to individually selected
// recipients holding one of the eligible roles, or into a department pool.
type Distribution struct {
	kind          DistributionKind
	eligibleRoles []Role
	destination   DepartmentID
}

// NewIndividualSelection returns a distribution split equally among selected recipients.
func NewIndividualSelection(eligibleRoles []Role) (Distribution, error) {
	d := Distribution{kind: DistributionIndividual, eligibleRoles: append([]Role(nil), eligibleRoles...)}
	if err := d.Validate(); err != nil {
		return Distribution{}, err
	}
	return d, nil
}

// NewDepartmentPool returns a distribution accumulated into a department pool.
func NewDepartmentPool(destination DepartmentID) (Distribution, error) {
	d := Distribution{kind: DistributionDepartment, destination: destination}
	if err := d.Validate(); err != nil {
		return Distribution{}, err
	}
	return d, nil
}

// Kind returns the variant, or "" for the zero value.
func (d Distribution) Kind() DistributionKind { return d.kind }

// EligibleRoles returns a copy of the roles allowed to receive an individual split.
func (d Distribution) EligibleRoles() []Role {
	return append([]Role(nil), d.eligibleRoles...)
}

// Destination returns the department for DepartmentPool distributions.
func (d Distribution) Destination() DepartmentID { return d.destination }

// AllowsRole reports whether role is among the eligible roles.
func (d Distribution) AllowsRole(role Role) bool {
	for _, r := range d.eligibleRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Validate checks that the variant carries its target.
func (d Distribution) Validate() error {
	switch d.kind {
	case DistributionIndividual:
		if len(d.eligibleRoles) == 0 {
			return fmt.Errorf("%w: individual selection needs at least one eligible role", apperrors.ErrInvalidRuleConfiguration)
		}
	case DistributionDepartment:
		if d.destination == "" {
			return fmt.Errorf("%w: department pool needs a destination department", apperrors.ErrInvalidRuleConfiguration)
		}
	default:
		return fmt.Errorf("%w: unknown distribution type %q", apperrors.ErrInvalidRuleConfiguration, d.kind)
	}
	return nil
}

// TipOutRule is a configured redistribution of part of a collector's tips.
type TipOutRule struct {
	RuleID       RuleID           `json:"ruleID"`
	CompanyID    string           `json:"companyID"`
	Name         string           `json:"name"`
	SourceRole   *Role            `json:"sourceRole,omitempty"` // nil applies to every role
	Basis        CalculationBasis `json:"calculationBasis"`
	Amount       AmountSpec       `json:"-"`
	Distribution Distribution     `json:"-"`
	Position     int              `json:"position"`
	IsActive     bool             `json:"isActive"`
	AuditFields
}

// AppliesTo reports whether the rule covers reports filed by role.
func (r TipOutRule) AppliesTo(role Role) bool {
	return r.SourceRole == nil || *r.SourceRole == role
}

// BasisValue picks the figure of the report this rule is computed against.
func (r TipOutRule) BasisValue(report CashOutReport) decimal.Decimal {
	if r.Basis == BasisGrossTips {
		return report.GrossTips
	}
	return report.TotalSales()
}

// Validate checks the whole rule configuration.
func (r TipOutRule) Validate() error {
	if !r.Basis.Valid() {
		return fmt.Errorf("%w: rule %s has unknown basis %q", apperrors.ErrInvalidRuleConfiguration, r.RuleID, r.Basis)
	}
	if err := r.Amount.Validate(); err != nil {
		return fmt.Errorf("rule %s: %w", r.RuleID, err)
	}
	if err := r.Distribution.Validate(); err != nil {
		return fmt.Errorf("rule %s: %w", r.RuleID, err)
	}
	return nil
}
