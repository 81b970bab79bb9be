package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
)

// PoolReader defines read operations for pool data
type PoolReader interface {
	// FindPoolByID retrieves a pool with its distributions.
	FindPoolByID(ctx context.Context, companyID string, poolID string) (*domain.Pool, error)

	// FindPoolByPeriod retrieves the pool of a department for exactly this period, if any.
	FindPoolByPeriod(ctx context.Context, companyID string, departmentID domain.DepartmentID, start, end time.Time) (*domain.Pool, error)

	// ListPoolsByDepartment retrieves a page of a department's pools, most recent period first,
	// without distributions. It returns the token of the next page, nil on the last one.
	ListPoolsByDepartment(ctx context.Context, companyID string, departmentID domain.DepartmentID, limit int, nextToken *string) ([]domain.Pool, *string, error)
}

// PoolWriter defines write operations for pool data
type PoolWriter interface {
	// SavePool persists a pool and all of its distributions atomically.
	SavePool(ctx context.Context, pool domain.Pool) error
}

// PoolRepositoryFacade combines all pool-related repository interfaces
type PoolRepositoryFacade interface {
	PoolReader
	PoolWriter
}
