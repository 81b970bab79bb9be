package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/tip_pooling_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Department groups employees whose pooled tip-outs are split by category.
type Department struct {
	DepartmentID         DepartmentID                   `json:"departmentID"`
	CompanyID            string                         `json:"companyID"`
	Name                 string                         `json:"name"`
	CategoryDistribution map[CategoryID]decimal.Decimal `json:"categoryDistribution"` // percentages
}

// ValidateDistribution requires the category percentages to sum to exactly 100
// when the department has any category.
func (d Department) ValidateDistribution() error {
	if len(d.CategoryDistribution) == 0 {
		return nil
	}
	sum := decimal.Zero
	for categoryID, pct := range d.CategoryDistribution {
		if pct.IsNegative() {
			return fmt.Errorf("%w: department %s category %s has negative percentage %s",
				apperrors.ErrInvalidRuleConfiguration, d.DepartmentID, categoryID, pct)
		}
		sum = sum.Add(pct)
	}
	if !sum.Equal(hundred) {
		return fmt.Errorf("%w: department %s category distribution sums to %s, not 100",
			apperrors.ErrInvalidRuleConfiguration, d.DepartmentID, sum)
	}
	return nil
}

// DateRange is an inclusive range of service dates.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Validate rejects a range whose start is after its end.
func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", apperrors.ErrDateRangeInvalid)
	}
	if truncateDay(r.Start).After(truncateDay(r.End)) {
		return fmt.Errorf("%w: start %s is after end %s", apperrors.ErrDateRangeInvalid,
			r.Start.Format(time.DateOnly), r.End.Format(time.DateOnly))
	}
	return nil
}

// Contains reports whether t falls on a day within the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	day := truncateDay(t)
	return !day.Before(truncateDay(r.Start)) && !day.After(truncateDay(r.End))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// PooledTipOut is a persisted automatic adjustment joined to its rule and report,
// as supplied to the pay-period aggregator.
type PooledTipOut struct {
	AdjustmentID   string
	ReportID       string
	CompanyID      string
	ServiceDate    time.Time
	AdjustmentType AdjustmentType
	Amount         decimal.Decimal
	RuleID         RuleID
	Distribution   Distribution
}

// PayPeriodSummary is the tip-out total routed to a department over a range.
type PayPeriodSummary struct {
	CompanyID           string                         `json:"companyID"`
	DepartmentID        DepartmentID                   `json:"departmentID"`
	Range               DateRange                      `json:"range"`
	TotalTipOutAmount   decimal.Decimal                `json:"totalTipOutAmount"`
	CategoryBreakdown   map[CategoryID]decimal.Decimal `json:"categoryBreakdown"`
	ContributingReports int                            `json:"contributingReports"`
}

// PoolRecipient is an allocation input.
type PoolRecipient struct {
	UserID      UserID
	HoursWorked decimal.Decimal
}

// PoolDistribution is one recipient's share of a pool.
type PoolDistribution struct {
	UserID            UserID          `json:"userID"`
	HoursWorked       decimal.Decimal `json:"hoursWorked"`
	DistributedAmount decimal.Decimal `json:"distributedAmount"`
}

// Pool is a lump sum split across a department by hours worked. Pools are never edited.
type Pool struct {
	PoolID        string             `json:"poolID"`
	CompanyID     string             `json:"companyID"`
	DepartmentID  DepartmentID       `json:"departmentID"`
	StartDate     time.Time          `json:"startDate"`
	EndDate       time.Time          `json:"endDate"`
	TotalAmount   decimal.Decimal    `json:"totalAmount"`
	TotalHours    decimal.Decimal    `json:"totalHours"`
	RatePerHour   decimal.Decimal    `json:"ratePerHour"`
	Distributions []PoolDistribution `json:"distributions"`
	AuditFields
}

// DistributedTotal sums the distributed amounts.
func (p Pool) DistributedTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, d := range p.Distributions {
		sum = sum.Add(d.DistributedAmount)
	}
	return sum
}
