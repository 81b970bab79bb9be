package services

import (
	"context"

	"github.com/SscSPs/tip_pooling_app/internal/core/tipping"
	"github.com/SscSPs/tip_pooling_app/internal/dto"
)

// CashOutReaderSvc defines read operations on cash-out reports
type CashOutReaderSvc interface {
	// PreviewCashOut evaluates a report against the current rule set without storing anything.
	PreviewCashOut(ctx context.Context, companyID string, req dto.CashOutRequest, userID string) (*tipping.Evaluation, error)

	// GetCashOut returns a stored report with its ledger and recomputed due back.
	GetCashOut(ctx context.Context, companyID string, reportID string, userID string) (*tipping.Evaluation, error)
}

// CashOutWriterSvc defines write operations on cash-out reports
type CashOutWriterSvc interface {
	// SubmitCashOut evaluates and stores a report with its whole ledger.
	SubmitCashOut(ctx context.Context, companyID string, req dto.CashOutRequest, userID string) (*tipping.Evaluation, error)

	// EditManualAdjustments replaces the hand-entered lines of a stored report.
	EditManualAdjustments(ctx context.Context, companyID string, reportID string, req dto.EditManualAdjustmentsRequest, userID string) (*tipping.Evaluation, error)
}

// CashOutSvcFacade combines all cash-out service interfaces
type CashOutSvcFacade interface {
	CashOutReaderSvc
	CashOutWriterSvc
}
