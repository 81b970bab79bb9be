package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/tip_pooling_app/internal/apperrors"
	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tip_pooling_app/internal/core/ports/repositories"
	"github.com/SscSPs/tip_pooling_app/internal/models"
	"github.com/SscSPs/tip_pooling_app/internal/utils/mapping"
)

type PgxDepartmentRepository struct {
	BaseRepository
}

func newPgxDepartmentRepository(pool *pgxpool.Pool) portsrepo.DepartmentReader {
	return &PgxDepartmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DepartmentReader = (*PgxDepartmentRepository)(nil)

// FindDepartmentByID retrieves a department with its category shares.
func (r *PgxDepartmentRepository) FindDepartmentByID(ctx context.Context, companyID string, departmentID domain.DepartmentID) (*domain.Department, error) {
	departments, err := r.queryDepartments(ctx, `AND d.department_id = $2`, companyID, string(departmentID))
	if err != nil {
		return nil, err
	}
	if len(departments) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &departments[0], nil
}

// ListDepartmentsByCompany retrieves every department of the company ordered by name.
func (r *PgxDepartmentRepository) ListDepartmentsByCompany(ctx context.Context, companyID string) ([]domain.Department, error) {
	return r.queryDepartments(ctx, "", companyID)
}

// queryDepartments left-joins the category rows so departments without categories still come back.
func (r *PgxDepartmentRepository) queryDepartments(ctx context.Context, filter string, args ...any) ([]domain.Department, error) {
	query := `
		SELECT d.department_id, d.company_id, d.name, dc.category_id, dc.percentage
		FROM departments d
		LEFT JOIN department_categories dc ON dc.department_id = d.department_id
		WHERE d.company_id = $1 ` + filter + `
		ORDER BY d.name, d.department_id, dc.category_id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query departments", err)
	}
	defer rows.Close()

	var order []string
	heads := map[string]models.Department{}
	categories := map[string][]models.DepartmentCategory{}
	for rows.Next() {
		var d models.Department
		var categoryID *string
		var pct decimal.NullDecimal
		if err := rows.Scan(&d.DepartmentID, &d.CompanyID, &d.Name, &categoryID, &pct); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan department row", err)
		}
		if _, seen := heads[d.DepartmentID]; !seen {
			heads[d.DepartmentID] = d
			order = append(order, d.DepartmentID)
		}
		if categoryID != nil && pct.Valid {
			categories[d.DepartmentID] = append(categories[d.DepartmentID], models.DepartmentCategory{
				DepartmentID: d.DepartmentID,
				CategoryID:   *categoryID,
				Percentage:   pct.Decimal,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating department rows", err)
	}

	departments := make([]domain.Department, 0, len(order))
	for _, id := range order {
		departments = append(departments, mapping.ToDomainDepartment(heads[id], categories[id]))
	}
	return departments, nil
}
