package services

import (
	"context"
	"time"

	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	"github.com/SscSPs/tip_pooling_app/internal/dto"
)

// PayPeriodSvc aggregates the tip-outs routed to a department
type PayPeriodSvc interface {
	// SummarizePayPeriod totals the department-pool tip-outs of an inclusive date range.
	SummarizePayPeriod(ctx context.Context, companyID string, departmentID domain.DepartmentID, start, end time.Time, userID string) (*domain.PayPeriodSummary, error)
}

// PoolReaderSvc defines read operations on pools
type PoolReaderSvc interface {
	GetPool(ctx context.Context, companyID string, poolID string, userID string) (*domain.Pool, error)
	// ListPools returns one page of a department's pools.
	ListPools(ctx context.Context, companyID string, departmentID domain.DepartmentID, userID string, params dto.ListPoolsParams) (*dto.ListPoolsResponse, error)

	// ExportPool renders a pool as an XLSX workbook and names the file.
	ExportPool(ctx context.Context, companyID string, poolID string, userID string) ([]byte, string, error)
}

// PoolWriterSvc defines write operations on pools
type PoolWriterSvc interface {
	// CreatePool allocates a pool by hours worked and stores it. Pools are never edited.
	CreatePool(ctx context.Context, companyID string, req dto.CreatePoolRequest, userID string) (*domain.Pool, error)
}

// PoolSvcFacade combines all pool-related service interfaces
type PoolSvcFacade interface {
	PayPeriodSvc
	PoolReaderSvc
	PoolWriterSvc
}
