package dto

import (
	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	"github.com/SscSPs/tip_pooling_app/internal/core/tipping"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of service and pay-period dates.
const DateLayout = "2006-01-02"

// ManualAdjustmentRequest is a line entered by hand on a cash-out.
type ManualAdjustmentRequest struct {
	Type          string          `json:"type" binding:"required,oneof=MANUAL SPLIT_PAYOUT"`
	Amount        decimal.Decimal `json:"amount" binding:"decimal_ne0"`
	RelatedUserID *string         `json:"relatedUserID"`
	Note          string          `json:"note" binding:"max=500"`
}

// CashOutRequest defines the end-of-shift figures submitted by a reporter.
type CashOutRequest struct {
	ReporterID   string          `json:"reporterID" binding:"required"`
	ServiceDate  string          `json:"serviceDate" binding:"required,datetime=2006-01-02"`
	FoodSales    decimal.Decimal `json:"foodSales" binding:"decimal_gte0"`
	AlcoholSales decimal.Decimal `json:"alcoholSales" binding:"decimal_gte0"`
	GrossTips    decimal.Decimal `json:"grossTips" binding:"decimal_gte0"`
	CashOnHand   decimal.Decimal `json:"cashOnHand" binding:"decimal_gte0"`
	WasCollector bool            `json:"wasCollector"`
	// RecipientSelections maps a rule ID to the employees picked for it.
	RecipientSelections map[string][]string       `json:"recipientSelections"`
	ManualAdjustments   []ManualAdjustmentRequest `json:"manualAdjustments" binding:"dive"`
}

// EditManualAdjustmentsRequest replaces the hand-entered lines of a stored cash-out.
type EditManualAdjustmentsRequest struct {
	ManualAdjustments []ManualAdjustmentRequest `json:"manualAdjustments" binding:"dive"`
}

// AdjustmentResponse defines the data returned for a ledger line.
type AdjustmentResponse struct {
	AdjustmentID  string          `json:"adjustmentID,omitempty"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	RuleID        *string         `json:"ruleID,omitempty"`
	UserID        string          `json:"userID"`
	RelatedUserID *string         `json:"relatedUserID,omitempty"`
	Note          string          `json:"note,omitempty"`
}

// SkippedRuleResponse explains why an applicable rule produced no lines.
type SkippedRuleResponse struct {
	RuleID string `json:"ruleID"`
	Reason string `json:"reason"`
}

// CashOutResponse is the evaluated ledger of a report.
type CashOutResponse struct {
	ReportID     string                `json:"reportID,omitempty"`
	ReporterID   string                `json:"reporterID"`
	ReporterRole string                `json:"reporterRole"`
	ServiceDate  string                `json:"serviceDate"`
	WasCollector bool                  `json:"wasCollector"`
	TotalSales   decimal.Decimal       `json:"totalSales"`
	GrossTips    decimal.Decimal       `json:"grossTips"`
	CashOnHand   decimal.Decimal       `json:"cashOnHand"`
	TotalTipOut  decimal.Decimal       `json:"totalTipOut"`
	DueBack      decimal.Decimal       `json:"dueBack"`
	Adjustments  []AdjustmentResponse  `json:"adjustments"`
	Skipped      []SkippedRuleResponse `json:"skippedRules,omitempty"`
}

// ToManualAdjustments converts request lines to domain manual adjustments.
func ToManualAdjustments(reqs []ManualAdjustmentRequest) []domain.ManualAdjustment {
	out := make([]domain.ManualAdjustment, len(reqs))
	for i, r := range reqs {
		out[i] = domain.ManualAdjustment{
			Type:   domain.AdjustmentType(r.Type),
			Amount: r.Amount,
			Note:   r.Note,
		}
		if r.RelatedUserID != nil {
			related := domain.UserID(*r.RelatedUserID)
			out[i].RelatedUserID = &related
		}
	}
	return out
}

// ToAdjustmentResponse converts a domain.Adjustment to AdjustmentResponse DTO.
func ToAdjustmentResponse(a *domain.Adjustment) AdjustmentResponse {
	resp := AdjustmentResponse{
		AdjustmentID: a.AdjustmentID,
		Type:         string(a.Type),
		Amount:       a.Amount,
		UserID:       string(a.UserID),
		Note:         a.Note,
	}
	if a.RuleID != nil {
		ruleID := string(*a.RuleID)
		resp.RuleID = &ruleID
	}
	if a.RelatedUserID != nil {
		related := string(*a.RelatedUserID)
		resp.RelatedUserID = &related
	}
	return resp
}

// ToCashOutResponse converts an evaluation to CashOutResponse DTO.
func ToCashOutResponse(e *tipping.Evaluation) CashOutResponse {
	adjustments := make([]AdjustmentResponse, len(e.Ledger))
	for i := range e.Ledger {
		adjustments[i] = ToAdjustmentResponse(&e.Ledger[i])
	}
	var skipped []SkippedRuleResponse
	for _, s := range e.Skipped {
		skipped = append(skipped, SkippedRuleResponse{RuleID: string(s.RuleID), Reason: string(s.Reason)})
	}
	return CashOutResponse{
		ReportID:     e.Report.ReportID,
		ReporterID:   string(e.Report.ReporterID),
		ReporterRole: string(e.Report.ReporterRole),
		ServiceDate:  e.Report.ServiceDate.Format(DateLayout),
		WasCollector: e.Report.WasCollector,
		TotalSales:   e.Report.TotalSales(),
		GrossTips:    e.Report.GrossTips,
		CashOnHand:   e.Report.CashOnHand,
		TotalTipOut:  e.TotalTipOut,
		DueBack:      e.DueBack,
		Adjustments:  adjustments,
		Skipped:      skipped,
	}
}
