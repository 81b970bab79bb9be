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

const ruleColumns = `
	rule_id, company_id, name, source_role, calculation_basis, percentage, flat_amount,
	distribution_type, destination_department_id, eligible_roles, position, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxRuleRepository struct {
	BaseRepository
}

func newPgxRuleRepository(pool *pgxpool.Pool) portsrepo.TipOutRuleRepositoryFacade {
	return &PgxRuleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TipOutRuleRepositoryFacade = (*PgxRuleRepository)(nil)

func scanRule(row pgx.Row) (models.TipOutRule, error) {
	var m models.TipOutRule
	err := row.Scan(
		&m.RuleID,
		&m.CompanyID,
		&m.Name,
		&m.SourceRole,
		&m.CalculationBasis,
		&m.Percentage,
		&m.FlatAmount,
		&m.DistributionType,
		&m.DestinationDepartmentID,
		&m.EligibleRoles,
		&m.Position,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// ListRulesByCompany returns the active rules of a company ordered by position.
func (r *PgxRuleRepository) ListRulesByCompany(ctx context.Context, companyID string) ([]domain.TipOutRule, error) {
	query := `SELECT ` + ruleColumns + `
		FROM tip_out_rules
		WHERE company_id = $1 AND is_active = TRUE
		ORDER BY position, name, rule_id;`

	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query rules for company "+companyID, err)
	}
	defer rows.Close()

	rules := []domain.TipOutRule{}
	for rows.Next() {
		m, err := scanRule(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rule row", err)
		}
		rule, err := mapping.ToDomainRule(m)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating rule rows", err)
	}
	return rules, nil
}

// FindRuleByID retrieves a rule of the company, active or not.
func (r *PgxRuleRepository) FindRuleByID(ctx context.Context, companyID string, ruleID domain.RuleID) (*domain.TipOutRule, error) {
	query := `SELECT ` + ruleColumns + `
		FROM tip_out_rules
		WHERE company_id = $1 AND rule_id = $2;`

	m, err := scanRule(r.Pool.QueryRow(ctx, query, companyID, string(ruleID)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find rule "+string(ruleID), err)
	}
	rule, err := mapping.ToDomainRule(m)
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// SaveRule inserts a new rule.
func (r *PgxRuleRepository) SaveRule(ctx context.Context, rule domain.TipOutRule) error {
	m := mapping.ToModelRule(rule)
	query := `INSERT INTO tip_out_rules (` + ruleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);`

	_, err := r.Pool.Exec(ctx, query,
		m.RuleID,
		m.CompanyID,
		m.Name,
		m.SourceRole,
		m.CalculationBasis,
		m.Percentage,
		m.FlatAmount,
		m.DistributionType,
		m.DestinationDepartmentID,
		m.EligibleRoles,
		m.Position,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: rule with ID %s already exists", apperrors.ErrDuplicate, m.RuleID)
		}
		return apperrors.NewAppError(500, "failed to insert rule "+m.RuleID, err)
	}
	return nil
}

// DeactivateRule flips is_active off. Adjustments already written keep their rule_id.
func (r *PgxRuleRepository) DeactivateRule(ctx context.Context, companyID string, ruleID domain.RuleID, userID string, now time.Time) error {
	query := `
		UPDATE tip_out_rules
		SET is_active = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE company_id = $1 AND rule_id = $2 AND is_active = TRUE;`

	tag, err := r.Pool.Exec(ctx, query, companyID, string(ruleID), now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate rule "+string(ruleID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
