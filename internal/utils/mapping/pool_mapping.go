package mapping

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	"github.com/SscSPs/tip_pooling_app/internal/models"
)

// ToModelPool converts a domain Pool to a model Pool and its distribution rows
func ToModelPool(d domain.Pool) (models.Pool, []models.PoolDistribution) {
	m := models.Pool{
		PoolID:       d.PoolID,
		CompanyID:    d.CompanyID,
		DepartmentID: string(d.DepartmentID),
		StartDate:    d.StartDate,
		EndDate:      d.EndDate,
		TotalAmount:  d.TotalAmount,
		TotalHours:   d.TotalHours,
		RatePerHour:  d.RatePerHour,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
	rows := make([]models.PoolDistribution, len(d.Distributions))
	for i, dist := range d.Distributions {
		rows[i] = models.PoolDistribution{
			PoolID:            d.PoolID,
			UserID:            string(dist.UserID),
			Position:          i,
			HoursWorked:       dist.HoursWorked,
			DistributedAmount: dist.DistributedAmount,
		}
	}
	return m, rows
}

// ToDomainPool converts a model Pool and its distribution rows to a domain Pool
func ToDomainPool(m models.Pool, rows []models.PoolDistribution) domain.Pool {
	d := domain.Pool{
		PoolID:       m.PoolID,
		CompanyID:    m.CompanyID,
		DepartmentID: domain.DepartmentID(m.DepartmentID),
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		TotalAmount:  m.TotalAmount,
		TotalHours:   m.TotalHours,
		RatePerHour:  m.RatePerHour,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	if len(rows) > 0 {
		d.Distributions = make([]domain.PoolDistribution, len(rows))
		for i, r := range rows {
			d.Distributions[i] = domain.PoolDistribution{
				UserID:            domain.UserID(r.UserID),
				HoursWorked:       r.HoursWorked,
				DistributedAmount: r.DistributedAmount,
			}
		}
	}
	return d
}

// ToDomainDepartment converts a department row and its category rows to a domain Department
func ToDomainDepartment(m models.Department, categories []models.DepartmentCategory) domain.Department {
	d := domain.Department{
		DepartmentID: domain.DepartmentID(m.DepartmentID),
		CompanyID:    m.CompanyID,
		Name:         m.Name,
	}
	if len(categories) > 0 {
		d.CategoryDistribution = make(map[domain.CategoryID]decimal.Decimal, len(categories))
		for _, c := range categories {
			d.CategoryDistribution[domain.CategoryID(c.CategoryID)] = c.Percentage
		}
	}
	return d
}
