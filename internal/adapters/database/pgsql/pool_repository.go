package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/tip_pooling_app/internal/apperrors"
	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tip_pooling_app/internal/core/ports/repositories"
	"github.com/SscSPs/tip_pooling_app/internal/models"
	"github.com/SscSPs/tip_pooling_app/internal/utils/mapping"
	"github.com/SscSPs/tip_pooling_app/internal/utils/pagination"
)

const poolColumns = `
	pool_id, company_id, department_id, start_date, end_date, total_amount, total_hours, rate_per_hour,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxPoolRepository struct {
	BaseRepository
}

func newPgxPoolRepository(pool *pgxpool.Pool) portsrepo.PoolRepositoryFacade {
	return &PgxPoolRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PoolRepositoryFacade = (*PgxPoolRepository)(nil)

func scanPool(row pgx.Row) (models.Pool, error) {
	var m models.Pool
	err := row.Scan(
		&m.PoolID,
		&m.CompanyID,
		&m.DepartmentID,
		&m.StartDate,
		&m.EndDate,
		&m.TotalAmount,
		&m.TotalHours,
		&m.RatePerHour,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SavePool inserts the pool and its distributions atomically.
func (r *PgxPoolRepository) SavePool(ctx context.Context, pool domain.Pool) error {
	m, distributions := mapping.ToModelPool(pool)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	poolQuery := `INSERT INTO pools (` + poolColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`
	_, err = tx.Exec(ctx, poolQuery,
		m.PoolID,
		m.CompanyID,
		m.DepartmentID,
		m.StartDate,
		m.EndDate,
		m.TotalAmount,
		m.TotalHours,
		m.RatePerHour,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: department %s already has a pool for %s to %s", apperrors.ErrDuplicate,
				m.DepartmentID, m.StartDate.Format(time.DateOnly), m.EndDate.Format(time.DateOnly))
		}
		return apperrors.NewAppError(500, "failed to insert pool "+m.PoolID, err)
	}

	batch := &pgx.Batch{}
	distQuery := `
		INSERT INTO pool_distributions (pool_id, user_id, position, hours_worked, distributed_amount)
		VALUES ($1, $2, $3, $4, $5);`
	for _, d := range distributions {
		batch.Queue(distQuery, d.PoolID, d.UserID, d.Position, d.HoursWorked, d.DistributedAmount)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert distributions for pool "+m.PoolID, err)
	}

	return r.Commit(ctx, tx)
}

// FindPoolByID retrieves a pool with its distributions.
func (r *PgxPoolRepository) FindPoolByID(ctx context.Context, companyID string, poolID string) (*domain.Pool, error) {
	query := `SELECT ` + poolColumns + ` FROM pools WHERE company_id = $1 AND pool_id = $2;`
	return r.findOne(ctx, query, companyID, poolID)
}

// FindPoolByPeriod retrieves the pool of a department for exactly this period.
func (r *PgxPoolRepository) FindPoolByPeriod(ctx context.Context, companyID string, departmentID domain.DepartmentID, start, end time.Time) (*domain.Pool, error) {
	query := `SELECT ` + poolColumns + `
		FROM pools
		WHERE company_id = $1 AND department_id = $2 AND start_date = $3 AND end_date = $4;`
	return r.findOne(ctx, query, companyID, string(departmentID), start, end)
}

func (r *PgxPoolRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Pool, error) {
	m, err := scanPool(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find pool", err)
	}

	distributions, err := r.findDistributions(ctx, m.PoolID)
	if err != nil {
		return nil, err
	}
	pool := mapping.ToDomainPool(m, distributions)
	return &pool, nil
}

func (r *PgxPoolRepository) findDistributions(ctx context.Context, poolID string) ([]models.PoolDistribution, error) {
	query := `
		SELECT pool_id, user_id, position, hours_worked, distributed_amount
		FROM pool_distributions
		WHERE pool_id = $1
		ORDER BY position;`

	rows, err := r.Pool.Query(ctx, query, poolID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query distributions for pool "+poolID, err)
	}
	defer rows.Close()

	distributions := []models.PoolDistribution{}
	for rows.Next() {
		var d models.PoolDistribution
		if err := rows.Scan(&d.PoolID, &d.UserID, &d.Position, &d.HoursWorked, &d.DistributedAmount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan distribution row for pool "+poolID, err)
		}
		distributions = append(distributions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating distribution rows for pool "+poolID, err)
	}
	return distributions, nil
}

// ListPoolsByDepartment returns a page of pools ordered by start date descending, then pool id.
// One extra row is fetched to tell whether another page follows.
func (r *PgxPoolRepository) ListPoolsByDepartment(ctx context.Context, companyID string, departmentID domain.DepartmentID, limit int, nextToken *string) ([]domain.Pool, *string, error) {
	limit = pagination.ClampLimit(limit)
	args := []any{companyID, string(departmentID)}
	cursorClause := ""
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		cursorClause = `AND (start_date, pool_id) < ($3, $4)`
		args = append(args, cursor.Date, cursor.ID)
	}
	args = append(args, limit+1)

	query := `SELECT ` + poolColumns + `
		FROM pools
		WHERE company_id = $1 AND department_id = $2 ` + cursorClause + `
		ORDER BY start_date DESC, pool_id DESC
		LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query pools for department "+string(departmentID), err)
	}
	defer rows.Close()

	pools := []domain.Pool{}
	for rows.Next() {
		m, err := scanPool(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan pool row", err)
		}
		pools = append(pools, mapping.ToDomainPool(m, nil))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating pool rows", err)
	}

	if len(pools) <= limit {
		return pools, nil, nil
	}
	pools = pools[:limit]
	last := pools[limit-1]
	token := pagination.EncodeToken(pagination.Cursor{Date: last.StartDate, ID: last.PoolID})
	return pools, &token, nil
}
