package service

import (
	"fmt"

	"timeclock/backend/internal/repository/postgres/report"

	"github.com/xuri/excelize/v2"
)

// LaborCostExcel writes a labor cost report to an xlsx file, one row per
// employee plus a totals row.
func LaborCostExcel(data report.LaborCostResponse, fileName string) error {
	f := excelize.NewFile()
	sheet := "Sheet1"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Employee ID", "First Name", "Last Name", "Role", "Total Hours", "Labor Cost", "Entries"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	rowNum := 2
	for _, emp := range data.Employees {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), emp.UserID)
		if emp.FirstName != nil {
			f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), *emp.FirstName)
		}
		if emp.LastName != nil {
			f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), *emp.LastName)
		}
		if emp.Role != nil {
			f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), *emp.Role)
		}
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), emp.TotalHours)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), emp.LaborCost)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), emp.EntryCount)
		rowNum++
	}

	f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), "TOTAL")
	f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), data.TotalHours)
	f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), data.TotalLaborCost)

	if err := f.SaveAs(fileName); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

// WeeklyHoursExcel writes a weekly hours report to an xlsx file.
func WeeklyHoursExcel(data report.WeeklyHoursResponse, fileName string) error {
	f := excelize.NewFile()
	sheet := "Sheet1"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Employee ID", "First Name", "Last Name", "Email", "Total Hours", "Entries"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	rowNum := 2
	for _, emp := range data.Employees {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), emp.UserID)
		if emp.FirstName != nil {
			f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), *emp.FirstName)
		}
		if emp.LastName != nil {
			f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), *emp.LastName)
		}
		if emp.Email != nil {
			f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), *emp.Email)
		}
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), emp.TotalHours)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), len(emp.Entries))
		rowNum++
	}

	if err := f.SaveAs(fileName); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}
