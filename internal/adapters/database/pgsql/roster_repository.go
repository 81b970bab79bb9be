package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/tip_pooling_app/internal/apperrors"
	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tip_pooling_app/internal/core/ports/repositories"
	"github.com/SscSPs/tip_pooling_app/internal/models"
)

// PgxRosterRepository reads active rows of the employees table.
type PgxRosterRepository struct {
	BaseRepository
}

func newPgxRosterRepository(pool *pgxpool.Pool) portsrepo.RosterReader {
	return &PgxRosterRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RosterReader = (*PgxRosterRepository)(nil)

func (r *PgxRosterRepository) GetRoster(ctx context.Context, companyID string) (domain.Roster, error) {
	query := `
		SELECT user_id, company_id, role, display_name, is_active
		FROM employees
		WHERE company_id = $1 AND is_active = TRUE;`

	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query roster for company "+companyID, err)
	}
	defer rows.Close()

	roster := domain.Roster{}
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.UserID, &e.CompanyID, &e.Role, &e.DisplayName, &e.IsActive); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan employee row", err)
		}
		roster[domain.UserID(e.UserID)] = domain.RosterEntry{Role: domain.Role(e.Role), DisplayName: e.DisplayName}
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating employee rows", err)
	}
	return roster, nil
}

func (r *PgxRosterRepository) FindEmployee(ctx context.Context, companyID string, userID domain.UserID) (*domain.RosterEntry, error) {
	query := `
		SELECT role, display_name
		FROM employees
		WHERE company_id = $1 AND user_id = $2 AND is_active = TRUE;`

	var e models.Employee
	err := r.Pool.QueryRow(ctx, query, companyID, string(userID)).Scan(&e.Role, &e.DisplayName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find employee "+string(userID), err)
	}
	return &domain.RosterEntry{Role: domain.Role(e.Role), DisplayName: e.DisplayName}, nil
}
