package tipping

import (
	"sort"

	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummarizeInput selects the tip-outs routed to one department over a pay period.
type SummarizeInput struct {
	CompanyID  string
	Department domain.Department
	Range      domain.DateRange
	TipOuts    []domain.PooledTipOut
	Places     int32
}

// Summarize sums the automatic department-pool deductions routed to the
// department within the range and breaks the total down by category.
//
// Records outside the company, range, destination or adjustment type are
// ignored, so callers may pass a superset. The breakdown sums exactly to the
// total at the minimum unit.
func Summarize(in SummarizeInput) (domain.PayPeriodSummary, error) {
	if err := in.Range.Validate(); err != nil {
		return domain.PayPeriodSummary{}, err
	}
	if err := in.Department.ValidateDistribution(); err != nil {
		return domain.PayPeriodSummary{}, err
	}

	total := decimal.Zero
	reports := make(map[string]struct{})
	for _, t := range in.TipOuts {
		if !routesTo(t, in.CompanyID, in.Department.DepartmentID, in.Range) {
			continue
		}
		total = total.Add(t.Amount.Abs())
		reports[t.ReportID] = struct{}{}
	}

	total = total.Round(in.Places)
	breakdown, err := categoryBreakdown(total, in.Department.CategoryDistribution, in.Places)
	if err != nil {
		return domain.PayPeriodSummary{}, err
	}

	return domain.PayPeriodSummary{
		CompanyID:           in.CompanyID,
		DepartmentID:        in.Department.DepartmentID,
		Range:               in.Range,
		TotalTipOutAmount:   total,
		CategoryBreakdown:   breakdown,
		ContributingReports: len(reports),
	}, nil
}

func routesTo(t domain.PooledTipOut, companyID string, departmentID domain.DepartmentID, r domain.DateRange) bool {
	return t.AdjustmentType == domain.AdjustmentTipOutAutomatic &&
		t.CompanyID == companyID &&
		t.Distribution.Kind() == domain.DistributionDepartment &&
		t.Distribution.Destination() == departmentID &&
		r.Contains(t.ServiceDate)
}

func categoryBreakdown(total decimal.Decimal, distribution map[domain.CategoryID]decimal.Decimal, places int32) (map[domain.CategoryID]decimal.Decimal, error) {
	breakdown := make(map[domain.CategoryID]decimal.Decimal, len(distribution))
	if len(distribution) == 0 {
		return breakdown, nil
	}

	ids := make([]domain.CategoryID, 0, len(distribution))
	for id := range distribution {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	keys := make([]string, len(ids))
	weights := make([]decimal.Decimal, len(ids))
	for i, id := range ids {
		keys[i] = string(id)
		weights[i] = distribution[id]
	}
	parts, err := splitByWeight(total, keys, weights, places)
	if err != nil {
		return nil, err
	}
	for i, id := range ids {
		breakdown[id] = parts[i]
	}
	return breakdown, nil
}
