package mapping

import (
	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	"github.com/SscSPs/tip_pooling_app/internal/models"
)

// ToModelCashOutReport converts a domain CashOutReport to a model CashOutReport
func ToModelCashOutReport(d domain.CashOutReport) models.CashOutReport {
	return models.CashOutReport{
		ReportID:     d.ReportID,
		CompanyID:    d.CompanyID,
		ReporterID:   string(d.ReporterID),
		ReporterRole: string(d.ReporterRole),
		ServiceDate:  d.ServiceDate,
		FoodSales:    d.FoodSales,
		AlcoholSales: d.AlcoholSales,
		GrossTips:    d.GrossTips,
		CashOnHand:   d.CashOnHand,
		WasCollector: d.WasCollector,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashOutReport converts a model CashOutReport to a domain CashOutReport
func ToDomainCashOutReport(m models.CashOutReport) domain.CashOutReport {
	return domain.CashOutReport{
		ReportID:     m.ReportID,
		CompanyID:    m.CompanyID,
		ReporterID:   domain.UserID(m.ReporterID),
		ReporterRole: domain.Role(m.ReporterRole),
		ServiceDate:  m.ServiceDate,
		FoodSales:    m.FoodSales,
		AlcoholSales: m.AlcoholSales,
		GrossTips:    m.GrossTips,
		CashOnHand:   m.CashOnHand,
		WasCollector: m.WasCollector,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAdjustment converts a domain Adjustment at ledger position to a model Adjustment
func ToModelAdjustment(d domain.Adjustment, position int) models.Adjustment {
	m := models.Adjustment{
		AdjustmentID:   d.AdjustmentID,
		ReportID:       d.ReportID,
		Position:       position,
		AdjustmentType: string(d.Type),
		Amount:         d.Amount,
		UserID:         string(d.UserID),
		Note:           optionalString(d.Note),
	}
	if d.RuleID != nil {
		m.RuleID = optionalString(string(*d.RuleID))
	}
	if d.RelatedUserID != nil {
		m.RelatedUserID = optionalString(string(*d.RelatedUserID))
	}
	return m
}

// ToDomainAdjustment converts a model Adjustment to a domain Adjustment
func ToDomainAdjustment(m models.Adjustment) domain.Adjustment {
	d := domain.Adjustment{
		AdjustmentID: m.AdjustmentID,
		ReportID:     m.ReportID,
		Type:         domain.AdjustmentType(m.AdjustmentType),
		Amount:       m.Amount,
		UserID:       domain.UserID(m.UserID),
		Note:         stringOrEmpty(m.Note),
	}
	if m.RuleID != nil {
		ruleID := domain.RuleID(*m.RuleID)
		d.RuleID = &ruleID
	}
	if m.RelatedUserID != nil {
		related := domain.UserID(*m.RelatedUserID)
		d.RelatedUserID = &related
	}
	return d
}
