package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
)

// CashOutReader defines read operations for cash-out reports and their ledgers
type CashOutReader interface {
	// FindReportByID retrieves a report, returning apperrors.ErrNotFound when absent.
	FindReportByID(ctx context.Context, companyID string, reportID string) (*domain.CashOutReport, error)

	// FindAdjustmentsByReportID retrieves the ledger of a report in insertion order.
	FindAdjustmentsByReportID(ctx context.Context, reportID string) ([]domain.Adjustment, error)

	// ListPooledTipOuts retrieves automatic adjustments of department-pool rules routed to
	// departmentID for reports of the company whose service date falls in the range.
	ListPooledTipOuts(ctx context.Context, companyID string, departmentID domain.DepartmentID, dateRange domain.DateRange) ([]domain.PooledTipOut, error)
}

// CashOutWriter defines write operations for cash-out reports
type CashOutWriter interface {
	// SaveCashOut persists a report and its whole ledger in one transaction.
	// Returns apperrors.ErrDuplicate when the reporter already filed for the date.
	SaveCashOut(ctx context.Context, report domain.CashOutReport, ledger []domain.Adjustment) error

	// ReplaceManualAdjustments deletes the MANUAL and SPLIT_PAYOUT lines of a report and
	// inserts the given ones, in one transaction. Automatic lines are left untouched.
	ReplaceManualAdjustments(ctx context.Context, reportID string, manual []domain.Adjustment, userID string, now time.Time) error
}

// CashOutRepositoryFacade combines all cash-out repository interfaces
type CashOutRepositoryFacade interface {
	CashOutReader
	CashOutWriter
}
