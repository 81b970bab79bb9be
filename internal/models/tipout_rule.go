package models

import "github.com/shopspring/decimal"

// TipOutRule is a row of tip_out_rules.
// Exactly one of Percentage and FlatAmount is set; a DB check constraint enforces it.
type TipOutRule struct {
	RuleID                  string              `db:"rule_id"`
	CompanyID               string              `db:"company_id"`
	Name                    string              `db:"name"`
	SourceRole              *string             `db:"source_role"` // Nullable
	CalculationBasis        string              `db:"calculation_basis"`
	Percentage              decimal.NullDecimal `db:"percentage"`
	FlatAmount              decimal.NullDecimal `db:"flat_amount"`
	DistributionType        string              `db:"distribution_type"`
	DestinationDepartmentID *string             `db:"destination_department_id"` // Nullable
	EligibleRoles           []string            `db:"eligible_roles"`
	Position                int                 `db:"position"`
	IsActive                bool                `db:"is_active"`
	AuditFields
}
