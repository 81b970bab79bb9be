package dto

import (
	"time"

	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PoolRecipientRequest is one department member with the hours they worked.
type PoolRecipientRequest struct {
	UserID      string          `json:"userID" binding:"required"`
	HoursWorked decimal.Decimal `json:"hoursWorked" binding:"decimal_gte0"`
}

// CreatePoolRequest defines the data needed to distribute a department pool.
type CreatePoolRequest struct {
	DepartmentID string `json:"departmentID" binding:"required"`
	StartDate    string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate      string `json:"endDate" binding:"required,datetime=2006-01-02"`
	// TotalAmount overrides the pay-period tip-out total when set.
	TotalAmount *decimal.Decimal       `json:"totalAmount"`
	Recipients  []PoolRecipientRequest `json:"recipients" binding:"dive"`
}

// PoolDistributionResponse is one recipient's share.
type PoolDistributionResponse struct {
	UserID            string          `json:"userID"`
	HoursWorked       decimal.Decimal `json:"hoursWorked"`
	DistributedAmount decimal.Decimal `json:"distributedAmount"`
}

// PoolResponse defines the data returned for a pool.
type PoolResponse struct {
	PoolID        string                     `json:"poolID"`
	DepartmentID  string                     `json:"departmentID"`
	StartDate     string                     `json:"startDate"`
	EndDate       string                     `json:"endDate"`
	TotalAmount   decimal.Decimal            `json:"totalAmount"`
	TotalHours    decimal.Decimal            `json:"totalHours"`
	RatePerHour   decimal.Decimal            `json:"ratePerHour"`
	Distributions []PoolDistributionResponse `json:"distributions,omitempty"`
	CreatedAt     time.Time                  `json:"createdAt"`
	CreatedBy     string                     `json:"createdBy"`
}

// ListPoolsParams selects a page of pools.
type ListPoolsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListPoolsResponse wraps one page of the pools of a department.
type ListPoolsResponse struct {
	Pools     []PoolResponse `json:"pools"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// PayPeriodSummaryResponse is the tip-out total routed to a department.
type PayPeriodSummaryResponse struct {
	DepartmentID        string                     `json:"departmentID"`
	StartDate           string                     `json:"startDate"`
	EndDate             string                     `json:"endDate"`
	TotalTipOutAmount   decimal.Decimal            `json:"totalTipOutAmount"`
	CategoryBreakdown   map[string]decimal.Decimal `json:"categoryBreakdown"`
	ContributingReports int                        `json:"contributingReports"`
}

// ToPoolRecipients converts request recipients to allocator input.
func ToPoolRecipients(reqs []PoolRecipientRequest) []domain.PoolRecipient {
	out := make([]domain.PoolRecipient, len(reqs))
	for i, r := range reqs {
		out[i] = domain.PoolRecipient{UserID: domain.UserID(r.UserID), HoursWorked: r.HoursWorked}
	}
	return out
}

// ToPoolResponse converts a domain.Pool to PoolResponse DTO.
func ToPoolResponse(p *domain.Pool) PoolResponse {
	resp := PoolResponse{
		PoolID:       p.PoolID,
		DepartmentID: string(p.DepartmentID),
		StartDate:    p.StartDate.Format(DateLayout),
		EndDate:      p.EndDate.Format(DateLayout),
		TotalAmount:  p.TotalAmount,
		TotalHours:   p.TotalHours,
		RatePerHour:  p.RatePerHour,
		CreatedAt:    p.CreatedAt,
		CreatedBy:    p.CreatedBy,
	}
	for _, d := range p.Distributions {
		resp.Distributions = append(resp.Distributions, PoolDistributionResponse{
			UserID:            string(d.UserID),
			HoursWorked:       d.HoursWorked,
			DistributedAmount: d.DistributedAmount,
		})
	}
	return resp
}

// ToListPoolsResponse converts a page of domain.Pool to ListPoolsResponse.
func ToListPoolsResponse(pools []domain.Pool, nextToken *string) ListPoolsResponse {
	list := make([]PoolResponse, len(pools))
	for i := range pools {
		list[i] = ToPoolResponse(&pools[i])
	}
	return ListPoolsResponse{Pools: list, NextToken: nextToken}
}

// ToPayPeriodSummaryResponse converts a domain.PayPeriodSummary to its DTO.
func ToPayPeriodSummaryResponse(s *domain.PayPeriodSummary) PayPeriodSummaryResponse {
	breakdown := make(map[string]decimal.Decimal, len(s.CategoryBreakdown))
	for id, v := range s.CategoryBreakdown {
		breakdown[string(id)] = v
	}
	return PayPeriodSummaryResponse{
		DepartmentID:        string(s.DepartmentID),
		StartDate:           s.Range.Start.Format(DateLayout),
		EndDate:             s.Range.End.Format(DateLayout),
		TotalTipOutAmount:   s.TotalTipOutAmount,
		CategoryBreakdown:   breakdown,
		ContributingReports: s.ContributingReports,
	}
}
