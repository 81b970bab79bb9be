package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/tip_pooling_app/internal/apperrors"
	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tip_pooling_app/internal/core/ports/repositories"
	"github.com/SscSPs/tip_pooling_app/internal/models"
	"github.com/SscSPs/tip_pooling_app/internal/utils/mapping"
)

const insertAdjustmentQuery = `
	INSERT INTO adjustments (adjustment_id, report_id, position, adjustment_type, amount, rule_id, user_id, related_user_id, note)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`

type PgxCashOutRepository struct {
	BaseRepository
}

func newPgxCashOutRepository(pool *pgxpool.Pool) portsrepo.CashOutRepositoryFacade {
	return &PgxCashOutRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CashOutRepositoryFacade = (*PgxCashOutRepository)(nil)

func queueAdjustment(batch *pgx.Batch, m models.Adjustment) {
	batch.Queue(insertAdjustmentQuery,
		m.AdjustmentID,
		m.ReportID,
		m.Position,
		m.AdjustmentType,
		m.Amount,
		m.RuleID,
		m.UserID,
		m.RelatedUserID,
		m.Note,
	)
}

// SaveCashOut inserts the report and its ledger in one transaction.
func (r *PgxCashOutRepository) SaveCashOut(ctx context.Context, report domain.CashOutReport, ledger []domain.Adjustment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelCashOutReport(report)
	reportQuery := `
		INSERT INTO cash_out_reports (
			report_id, company_id, reporter_id, reporter_role, service_date,
			food_sales, alcohol_sales, gross_tips, cash_on_hand, was_collector,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`
	_, err = tx.Exec(ctx, reportQuery,
		m.ReportID,
		m.CompanyID,
		m.ReporterID,
		m.ReporterRole,
		m.ServiceDate,
		m.FoodSales,
		m.AlcoholSales,
		m.GrossTips,
		m.CashOnHand,
		m.WasCollector,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s already filed a report for %s", apperrors.ErrDuplicate,
				m.ReporterID, m.ServiceDate.Format(time.DateOnly))
		}
		return apperrors.NewAppError(500, "failed to insert cash-out report "+m.ReportID, err)
	}

	if len(ledger) > 0 {
		batch := &pgx.Batch{}
		for i, adj := range ledger {
			queueAdjustment(batch, mapping.ToModelAdjustment(adj, i))
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return apperrors.NewAppError(500, "failed to insert ledger for report "+m.ReportID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// ReplaceManualAdjustments swaps the caller-entered lines of a report. Automatic lines keep their positions.
func (r *PgxCashOutRepository) ReplaceManualAdjustments(ctx context.Context, reportID string, manual []domain.Adjustment, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// Lock the report so concurrent edits serialize.
	var locked string
	err = tx.QueryRow(ctx, `SELECT report_id FROM cash_out_reports WHERE report_id = $1 FOR UPDATE;`, reportID).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock report "+reportID, err)
	}

	deleteQuery := `DELETE FROM adjustments WHERE report_id = $1 AND adjustment_type IN ('MANUAL', 'SPLIT_PAYOUT');`
	if _, err := tx.Exec(ctx, deleteQuery, reportID); err != nil {
		return apperrors.NewAppError(500, "failed to delete manual adjustments of report "+reportID, err)
	}

	var next int
	err = tx.QueryRow(ctx, `SELECT COALESCE(MAX(position) + 1, 0) FROM adjustments WHERE report_id = $1;`, reportID).Scan(&next)
	if err != nil {
		return apperrors.NewAppError(500, "failed to read ledger position of report "+reportID, err)
	}

	batch := &pgx.Batch{}
	for i, adj := range manual {
		queueAdjustment(batch, mapping.ToModelAdjustment(adj, next+i))
	}
	batch.Queue(`UPDATE cash_out_reports SET last_updated_at = $2, last_updated_by = $3 WHERE report_id = $1;`,
		reportID, now, userID)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to write manual adjustments of report "+reportID, err)
	}

	return r.Commit(ctx, tx)
}

// FindReportByID retrieves a report of the company.
func (r *PgxCashOutRepository) FindReportByID(ctx context.Context, companyID string, reportID string) (*domain.CashOutReport, error) {
	query := `
		SELECT report_id, company_id, reporter_id, reporter_role, service_date,
		       food_sales, alcohol_sales, gross_tips, cash_on_hand, was_collector,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM cash_out_reports
		WHERE company_id = $1 AND report_id = $2;`

	var m models.CashOutReport
	err := r.Pool.QueryRow(ctx, query, companyID, reportID).Scan(
		&m.ReportID,
		&m.CompanyID,
		&m.ReporterID,
		&m.ReporterRole,
		&m.ServiceDate,
		&m.FoodSales,
		&m.AlcoholSales,
		&m.GrossTips,
		&m.CashOnHand,
		&m.WasCollector,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find cash-out report "+reportID, err)
	}

	report := mapping.ToDomainCashOutReport(m)
	return &report, nil
}

// FindAdjustmentsByReportID retrieves the ledger of a report by position.
func (r *PgxCashOutRepository) FindAdjustmentsByReportID(ctx context.Context, reportID string) ([]domain.Adjustment, error) {
	query := `
		SELECT adjustment_id, report_id, position, adjustment_type, amount, rule_id, user_id, related_user_id, note
		FROM adjustments
		WHERE report_id = $1
		ORDER BY position;`

	rows, err := r.Pool.Query(ctx, query, reportID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query adjustments for report "+reportID, err)
	}
	defer rows.Close()

	ledger := []domain.Adjustment{}
	for rows.Next() {
		var m models.Adjustment
		err := rows.Scan(
			&m.AdjustmentID,
			&m.ReportID,
			&m.Position,
			&m.AdjustmentType,
			&m.Amount,
			&m.RuleID,
			&m.UserID,
			&m.RelatedUserID,
			&m.Note,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan adjustment row for report "+reportID, err)
		}
		ledger = append(ledger, mapping.ToDomainAdjustment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating adjustment rows for report "+reportID, err)
	}
	return ledger, nil
}

// ListPooledTipOuts returns the automatic deductions of department-pool rules routed to the department.
// The rule is joined regardless of is_active so deactivated rules still count for past periods.
func (r *PgxCashOutRepository) ListPooledTipOuts(ctx context.Context, companyID string, departmentID domain.DepartmentID, dateRange domain.DateRange) ([]domain.PooledTipOut, error) {
	query := `
		SELECT a.adjustment_id, a.report_id, c.company_id, c.service_date, a.adjustment_type, a.amount,
		       a.rule_id, t.destination_department_id
		FROM adjustments a
		JOIN cash_out_reports c ON c.report_id = a.report_id
		JOIN tip_out_rules t ON t.rule_id = a.rule_id
		WHERE c.company_id = $1
		  AND t.distribution_type = 'DEPARTMENT_POOL'
		  AND t.destination_department_id = $2
		  AND c.service_date BETWEEN $3 AND $4
		  AND a.adjustment_type = 'TIP_OUT_AUTOMATIC'
		  AND a.amount < 0
		  AND a.related_user_id IS NULL
		ORDER BY c.service_date, a.report_id, a.position;`

	rows, err := r.Pool.Query(ctx, query, companyID, string(departmentID), dateRange.Start, dateRange.End)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query pooled tip-outs for department "+string(departmentID), err)
	}
	defer rows.Close()

	tipOuts := []domain.PooledTipOut{}
	for rows.Next() {
		var (
			t           domain.PooledTipOut
			ruleID      string
			destination string
		)
		err := rows.Scan(
			&t.AdjustmentID,
			&t.ReportID,
			&t.CompanyID,
			&t.ServiceDate,
			&t.AdjustmentType,
			&t.Amount,
			&ruleID,
			&destination,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan pooled tip-out row", err)
		}
		t.RuleID = domain.RuleID(ruleID)
		if t.Distribution, err = domain.NewDepartmentPool(domain.DepartmentID(destination)); err != nil {
			return nil, err
		}
		tipOuts = append(tipOuts, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating pooled tip-out rows", err)
	}
	return tipOuts, nil
}
