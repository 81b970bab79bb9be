package repositories

import (
	"context"

	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
)

// RosterReader exposes the employee roster maintained by the staff collaborator.
type RosterReader interface {
	// GetRoster returns every active employee of the company with their role.
	GetRoster(ctx context.Context, companyID string) (domain.Roster, error)

	// FindEmployee retrieves one active employee, returning apperrors.ErrNotFound when absent.
	FindEmployee(ctx context.Context, companyID string, userID domain.UserID) (*domain.RosterEntry, error)
}

// DepartmentReader defines read operations for department data
type DepartmentReader interface {
	// FindDepartmentByID retrieves a department with its category distribution.
	FindDepartmentByID(ctx context.Context, companyID string, departmentID domain.DepartmentID) (*domain.Department, error)

	// ListDepartmentsByCompany retrieves every department of a company with their category distribution.
	ListDepartmentsByCompany(ctx context.Context, companyID string) ([]domain.Department, error)
}
