package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Department is a row of departments; its category shares live in department_categories.
type Department struct {
	DepartmentID string `db:"department_id"`
	CompanyID    string `db:"company_id"`
	Name         string `db:"name"`
}

// DepartmentCategory is a row of department_categories.
type DepartmentCategory struct {
	DepartmentID string          `db:"department_id"`
	CategoryID   string          `db:"category_id"`
	Percentage   decimal.Decimal `db:"percentage"`
}

// Employee is a row of employees.
type Employee struct {
	UserID      string `db:"user_id"`
	CompanyID   string `db:"company_id"`
	Role        string `db:"role"`
	DisplayName string `db:"display_name"`
	IsActive    bool   `db:"is_active"`
}

// Pool is a row of pools.
type Pool struct {
	PoolID       string          `db:"pool_id"`
	CompanyID    string          `db:"company_id"`
	DepartmentID string          `db:"department_id"`
	StartDate    time.Time       `db:"start_date"`
	EndDate      time.Time       `db:"end_date"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
	TotalHours   decimal.Decimal `db:"total_hours"`
	RatePerHour  decimal.Decimal `db:"rate_per_hour"`
	AuditFields
}

// PoolDistribution is a row of pool_distributions.
type PoolDistribution struct {
	PoolID            string          `db:"pool_id"`
	UserID            string          `db:"user_id"`
	Position          int             `db:"position"`
	HoursWorked       decimal.Decimal `db:"hours_worked"`
	DistributedAmount decimal.Decimal `db:"distributed_amount"`
}
