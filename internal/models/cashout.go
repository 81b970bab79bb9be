package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashOutReport is a row of cash_out_reports.
type CashOutReport struct {
	ReportID     string          `db:"report_id"`
	CompanyID    string          `db:"company_id"`
	ReporterID   string          `db:"reporter_id"`
	ReporterRole string          `db:"reporter_role"`
	ServiceDate  time.Time       `db:"service_date"`
	FoodSales    decimal.Decimal `db:"food_sales"`
	AlcoholSales decimal.Decimal `db:"alcohol_sales"`
	GrossTips    decimal.Decimal `db:"gross_tips"`
	CashOnHand   decimal.Decimal `db:"cash_on_hand"`
	WasCollector bool            `db:"was_collector"`
	AuditFields
}

// Adjustment is a row of adjustments. Position keeps the ledger in emission order.
type Adjustment struct {
	AdjustmentID   string          `db:"adjustment_id"`
	ReportID       string          `db:"report_id"`
	Position       int             `db:"position"`
	AdjustmentType string          `db:"adjustment_type"`
	Amount         decimal.Decimal `db:"amount"`
	RuleID         *string         `db:"rule_id"` // Nullable
	UserID         string          `db:"user_id"`
	RelatedUserID  *string         `db:"related_user_id"` // Nullable
	Note           *string         `db:"note"`            // Nullable
}
