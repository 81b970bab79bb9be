package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/tip_pooling_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// CashOutReport is one employee's end-of-shift figures for a service date.
type CashOutReport struct {
	ReportID     string          `json:"reportID"`
	CompanyID    string          `json:"companyID"`
	ReporterID   UserID          `json:"reporterID"`
	ReporterRole Role            `json:"reporterRole"`
	ServiceDate  time.Time       `json:"serviceDate"`
	FoodSales    decimal.Decimal `json:"foodSales"`
	AlcoholSales decimal.Decimal `json:"alcoholSales"`
	GrossTips    decimal.Decimal `json:"grossTips"`
	CashOnHand   decimal.Decimal `json:"cashOnHand"`
	WasCollector bool            `json:"wasCollector"`
	AuditFields
}

// TotalSales is food plus alcohol sales.
func (r CashOutReport) TotalSales() decimal.Decimal {
	return r.FoodSales.Add(r.AlcoholSales)
}

// Normalized returns the report with every monetary field zeroed when the
// reporter did not collect money during the shift.
func (r CashOutReport) Normalized() CashOutReport {
	if r.WasCollector {
		return r
	}
	r.FoodSales = decimal.Zero
	r.AlcoholSales = decimal.Zero
	r.GrossTips = decimal.Zero
	r.CashOnHand = decimal.Zero
	return r
}

// Validate rejects negative figures and missing identity.
func (r CashOutReport) Validate() error {
	if r.ReporterID == "" {
		return fmt.Errorf("%w: reporter is required", apperrors.ErrValidation)
	}
	if r.ServiceDate.IsZero() {
		return fmt.Errorf("%w: service date is required", apperrors.ErrValidation)
	}
	figures := []struct {
		name  string
		value decimal.Decimal
	}{
		{"foodSales", r.FoodSales},
		{"alcoholSales", r.AlcoholSales},
		{"grossTips", r.GrossTips},
		{"cashOnHand", r.CashOnHand},
	}
	for _, f := range figures {
		if f.value.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative", apperrors.ErrValidation, f.name)
		}
	}
	return nil
}

// AdjustmentType classifies a ledger line.
type AdjustmentType string

const (
	AdjustmentTipOutAutomatic AdjustmentType = "TIP_OUT_AUTOMATIC"
	AdjustmentManual          AdjustmentType = "MANUAL"
	AdjustmentSplitPayout     AdjustmentType = "SPLIT_PAYOUT"
)

// IsManual reports whether the line was entered by a person rather than a rule.
func (t AdjustmentType) IsManual() bool {
	return t == AdjustmentManual || t == AdjustmentSplitPayout
}

// Adjustment is an immutable signed ledger line attached to a report.
// Negative amounts are deductions from the reporter, positive ones credit UserID.
type Adjustment struct {
	AdjustmentID  string          `json:"adjustmentID"`
	ReportID      string          `json:"reportID"`
	Type          AdjustmentType  `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	RuleID        *RuleID         `json:"ruleID,omitempty"`        // set iff Type is TIP_OUT_AUTOMATIC
	UserID        UserID          `json:"userID"`                  // whose balance the line moves
	RelatedUserID *UserID         `json:"relatedUserID,omitempty"` // recipient being credited
	Note          string          `json:"note,omitempty"`
}

// IsDeduction reports whether the line takes money from the reporter.
func (a Adjustment) IsDeduction() bool {
	return a.Amount.IsNegative() && a.RelatedUserID == nil
}

// ManualAdjustment is a caller-entered line appended verbatim to the ledger.
type ManualAdjustment struct {
	Type          AdjustmentType
	Amount        decimal.Decimal
	RelatedUserID *UserID
	Note          string
}

// Validate checks the type and that the line moves money.
func (m ManualAdjustment) Validate() error {
	if !m.Type.IsManual() {
		return fmt.Errorf("%w: manual adjustment has type %q", apperrors.ErrValidation, m.Type)
	}
	if m.Amount.IsZero() {
		return fmt.Errorf("%w: manual adjustment amount must not be zero", apperrors.ErrValidation)
	}
	return nil
}

// RosterEntry is what the engine knows about an employee.
type RosterEntry struct {
	Role        Role   `json:"role"`
	DisplayName string `json:"displayName"`
}

// Roster maps employees to their role. It is supplied by a collaborator and never mutated.
type Roster map[UserID]RosterEntry
