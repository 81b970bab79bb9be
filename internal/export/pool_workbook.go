// Package export renders stored pools as spreadsheets for payroll.
package export

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
)

const (
	distributionSheet = "Distribution"
	dateLayout        = "2006-01-02"
)

var distributionHeaders = []string{"Employee ID", "Name", "Role", "Hours worked", "Amount"}

// PoolWorkbook builds an XLSX workbook with one row per recipient followed by a totals row.
func PoolWorkbook(pool domain.Pool, department domain.Department, roster domain.Roster, places int32) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(distributionSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}

	title := fmt.Sprintf("%s pool %s to %s", department.Name, pool.StartDate.Format(dateLayout), pool.EndDate.Format(dateLayout))
	if err := f.SetCellValue(distributionSheet, "A1", title); err != nil {
		return nil, err
	}
	for i, header := range distributionHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		if err := f.SetCellValue(distributionSheet, cell, header); err != nil {
			return nil, err
		}
	}

	row := 4
	for _, d := range pool.Distributions {
		entry := roster[d.UserID]
		values := []any{string(d.UserID), entry.DisplayName, string(entry.Role)}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(distributionSheet, cell, v); err != nil {
				return nil, err
			}
		}
		if err := setDecimal(f, fmt.Sprintf("D%d", row), d.HoursWorked, 2); err != nil {
			return nil, err
		}
		if err := setDecimal(f, fmt.Sprintf("E%d", row), d.DistributedAmount, places); err != nil {
			return nil, err
		}
		row++
	}

	if err := f.SetCellValue(distributionSheet, fmt.Sprintf("A%d", row), "Total"); err != nil {
		return nil, err
	}
	if err := setDecimal(f, fmt.Sprintf("D%d", row), pool.TotalHours, 2); err != nil {
		return nil, err
	}
	if err := setDecimal(f, fmt.Sprintf("E%d", row), pool.DistributedTotal(), places); err != nil {
		return nil, err
	}
	row++
	if err := f.SetCellValue(distributionSheet, fmt.Sprintf("A%d", row), "Rate per hour"); err != nil {
		return nil, err
	}
	if err := setDecimal(f, fmt.Sprintf("E%d", row), pool.RatePerHour, 4); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName is the attachment name used when serving a pool workbook.
func FileName(pool domain.Pool) string {
	return fmt.Sprintf("pool_%s_%s_%s.xlsx", pool.DepartmentID, pool.StartDate.Format(dateLayout), pool.EndDate.Format(dateLayout))
}

func setDecimal(f *excelize.File, cell string, v decimal.Decimal, places int32) error {
	return f.SetCellFloat(distributionSheet, cell, v.InexactFloat64(), int(places), 64)
}
